// Package psv writes records as a pipe separated extract: one header line of
// column names, then one line per record.
package psv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"example.com/mppfixtures/models"
)

const Delimiter = '|'

// NewWriter returns a pipe delimited writer with "\n" line endings.
func NewWriter(w io.Writer) *gocsv.SafeCSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	cw.UseCRLF = false
	return gocsv.NewSafeCSVWriter(cw)
}

// Row formats a record against the column layout. Reserved columns and
// columns missing from the record are left blank.
func Row(cols []models.Column, rec models.Record) []string {
	row := make([]string, len(cols))
	for i, c := range cols {
		if c.Reserved() {
			continue
		}
		if v, ok := rec.Get(c.Name); ok {
			row[i] = v.String()
		}
	}
	return row
}

// Write encodes the extract as UTF-8 onto w.
func Write(w io.Writer, cols []models.Column, records []models.Record) error {
	enc := transform.NewWriter(w, unicode.UTF8.NewEncoder())
	pw := NewWriter(enc)
	if err := pw.Write(models.Header(cols)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		if err := pw.Write(Row(cols, rec)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	pw.Flush()
	if err := pw.Error(); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFile creates or truncates path and writes the extract to it.
func WriteFile(path string, cols []models.Column, records []models.Record) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := Write(file, cols, records); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
