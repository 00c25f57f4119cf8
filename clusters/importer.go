package clusters

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// CsvImporter loads observations from comma separated files.
type CsvImporter struct {
}

func NewCsvImporter() *CsvImporter {
	return &CsvImporter{}
}

// Import reads columns start through end, inclusive, of every row in file.
// Rows that are too short or hold a non-numeric value in the selected columns
// are skipped.
func (i *CsvImporter) Import(file string, start, end int) ([][]float64, error) {
	f, err := os.Open(file)
	if err != nil {
		return [][]float64{}, errors.Wrap(err, "open dataset")
	}

	defer f.Close()

	return i.ImportReader(bufio.NewReader(f), start, end)
}

func (i *CsvImporter) ImportReader(in io.Reader, start, end int) ([][]float64, error) {
	if start < 0 || end < 0 || start > end {
		return [][]float64{}, errors.Wrapf(ErrInvalidRange, "columns %d:%d", start, end)
	}

	var (
		d = make([][]float64, 0, 64)
		r = csv.NewReader(in)
		s = end - start + 1
		g []float64
	)

	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

Main:
	for {
		record, err := r.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			return [][]float64{}, errors.Wrap(err, "read dataset")
		}

		if len(record) <= end {
			continue
		}

		g = make([]float64, 0, s)

		for j := start; j <= end; j++ {
			f, err := strconv.ParseFloat(record[j], 64)
			if err == nil {
				g = append(g, f)
			} else {
				continue Main
			}
		}

		d = append(d, g)
	}

	return d, nil
}
