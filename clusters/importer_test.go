package clusters

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const TOLERANCE = 0.000001

func TestImportedLoadDataOfCorrectLength(t *testing.T) {
	d, err := NewCsvImporter().Import("testdata/test.csv", 0, 2)
	require.NoError(t, err)

	assert.Len(t, d, 3)
}

func TestImportedLoadCorrectData(t *testing.T) {
	s := [][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
		{0.7, 0.8, 0.9},
	}

	d, err := NewCsvImporter().Import("testdata/test.csv", 0, 2)
	require.NoError(t, err)

	assert.True(t, fsliceEqual(d, s), "imported data mismatch: %v vs %v", d, s)
}

func TestImportReaderSelectsColumns(t *testing.T) {
	in := strings.NewReader("id,x,y\n1, 2.5, 3\n2,4,5.5\n")

	d, err := NewCsvImporter().ImportReader(in, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{2.5, 3}, {4, 5.5}}, d)
}

func TestImportInvalidRange(t *testing.T) {
	i := NewCsvImporter()

	_, err := i.Import("testdata/test.csv", 2, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = i.ImportReader(strings.NewReader(""), -1, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), "columns -1:1")
}

func TestImportMissingFile(t *testing.T) {
	_, err := NewCsvImporter().Import("testdata/missing.csv", 0, 1)
	assert.Error(t, err)
}

func TestImportMalformedCSV(t *testing.T) {
	_, err := NewCsvImporter().ImportReader(strings.NewReader("1,\"2\n"), 0, 1)
	assert.Error(t, err)
}

func fsliceEqual(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if len(a[i]) != len(b[i]) {
			return false
		}

		for j := 0; j < len(a[i]); j++ {
			if d := math.Abs(a[i][j] - b[i][j]); d > TOLERANCE {
				return false
			}
		}
	}

	return true
}

func BenchmarkImport(b *testing.B) {
	i := NewCsvImporter()

	for n := 0; n < b.N; n++ {
		if _, err := i.Import("testdata/test.csv", 0, 2); err != nil {
			b.Fatalf("error importing data: %s", err)
		}
	}
}
