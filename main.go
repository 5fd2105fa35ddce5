package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"example.com/mppfixtures/fixture"
	"example.com/mppfixtures/models"
	"example.com/mppfixtures/psv"
)

const (
	DefaultRows   = 50
	DefaultOutput = "test_data_50_rows.psv"
)

var (
	output = flag.String("output", DefaultOutput, "Output file path")
	rows   = flag.Int("rows", DefaultRows, "Number of records to generate")
	seed   = flag.Uint64("seed", 0, "Random seed, 0 picks one from system entropy")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	n, err := run(*output, *rows, *seed, time.Now())
	if err != nil {
		logger.Error("generating test data", "output", *output, "err", err)
		os.Exit(1)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Successfully generated %d rows of test data in '%s'.\n", n, *output)
}

func run(path string, rowCount int, seed uint64, now time.Time) (int, error) {
	if rowCount <= 0 {
		return 0, errors.New("rows must be greater than zero")
	}

	records := fixture.New(seed, now).Batch(rowCount)
	if err := psv.WriteFile(path, models.Columns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
