package main

import (
	"fmt"
	"io"
	"strings"
)

// writeCentroids prints one line per centroid in the form
// "centroid no. 01 -> (x0: 2.000000, x1: 10.000000)".
func writeCentroids(w io.Writer, k int, centroids [][]float64) error {
	if _, err := fmt.Fprintf(w, "value of k :: %d\n", k); err != nil {
		return err
	}

	var b strings.Builder
	for i, c := range centroids {
		b.Reset()
		fmt.Fprintf(&b, "centroid no. %02d -> (", i+1)
		for f, v := range c {
			if f > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "x%d: %f", f, v)
		}
		b.WriteString(")\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}
