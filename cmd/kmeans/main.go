// Command kmeans clusters a small two-dimensional dataset, or the columns of
// a CSV file, and prints the resulting centroids.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/AdityaMayukhSom/machine-learning-algorithms/clusters"
)

var sample = [][]float64{
	{2.0, 10.0},
	{2.0, 5.0},
	{8.0, 4.0},
	{5.0, 8.0},
	{7.0, 5.0},
	{6.0, 4.0},
	{1.0, 2.0},
	{4.0, 9.0},
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if code := exitCode(err); code != 0 {
		slog.Error("kmeans failed", slog.Any("error", err))
		os.Exit(code)
	}
}

// exitCode maps the result of run to a process status. Asking for help is
// not a failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		k          = fs.Int("k", 3, "number of clusters")
		iterations = fs.Int("iterations", 100, "number of Lloyd iterations")
		seed       = fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
		data       = fs.String("data", "", "CSV file to cluster, empty uses the built-in sample")
		columns    = fs.String("columns", "0:1", "inclusive column range start:end read from -data")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	points := sample
	if *data != "" {
		start, end, err := parseColumns(*columns)
		if err != nil {
			return err
		}

		if points, err = clusters.NewCsvImporter().Import(*data, start, end); err != nil {
			return err
		}

		logger.Debug("dataset loaded", slog.String("file", *data), slog.Int("points", len(points)))
	}

	opts := []clusters.Option{clusters.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, clusters.WithSeed(*seed))
	}

	c, err := clusters.NewKMeans(opts...)
	if err != nil {
		return err
	}

	if err := c.Fit(points, *k, *iterations); err != nil {
		return err
	}

	m, err := c.Centroids()
	if err != nil {
		return err
	}

	return writeCentroids(stdout, c.K(), m)
}

func parseColumns(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Errorf("columns %q: want start:end", s)
	}

	start, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "columns %q", s)
	}

	end, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "columns %q", s)
	}

	return start, end, nil
}
