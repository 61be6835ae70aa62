// Package dataset reads and writes two-column CSV files as series datasets.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-align/dsp/core"
	"github.com/cwbudde/algo-align/dsp/series"
)

// ErrMalformed reports a CSV file that does not hold an x/y table.
var ErrMalformed = fmt.Errorf("dataset: malformed csv: %w", core.ErrInvalidInput)

// Table is a dataset together with the column names of its source file.
type Table struct {
	series.Dataset

	XLabel string
	YLabel string
}

// Read parses CSV from r. The first record is the header; the first two
// columns hold x and y and any further columns are ignored.
func Read(r io.Reader, name string) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("%w: %s: missing header", ErrMalformed, name)
	}
	if err != nil {
		return Table{}, fmt.Errorf("dataset: read %s: %w", name, err)
	}
	if len(header) < 2 {
		return Table{}, fmt.Errorf("%w: %s: need at least two columns, got %d", ErrMalformed, name, len(header))
	}

	var x, y []float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("dataset: read %s: %w", name, err)
		}
		if isBlank(rec) {
			continue
		}

		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return Table{}, fmt.Errorf("%w: %s:%d: need two columns", ErrMalformed, name, line)
		}

		xv, err := parseField(rec[0])
		if err != nil {
			return Table{}, fmt.Errorf("%w: %s:%d: x: %v", ErrMalformed, name, line, err)
		}
		yv, err := parseField(rec[1])
		if err != nil {
			return Table{}, fmt.Errorf("%w: %s:%d: y: %v", ErrMalformed, name, line, err)
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	ds, err := series.New(name, x, y)
	if err != nil {
		return Table{}, fmt.Errorf("dataset: %s: %w", name, err)
	}

	return Table{
		Dataset: ds,
		XLabel:  strings.TrimSpace(header[0]),
		YLabel:  strings.TrimSpace(header[1]),
	}, nil
}

// ReadFile opens path and parses it with Read. The dataset is named after
// the file's base name.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f, filepath.Base(path))
}

// Write emits t as CSV with its labels as header. Empty labels default to
// "x" and "y".
func Write(w io.Writer, t Table) error {
	xl, yl := t.XLabel, t.YLabel
	if xl == "" {
		xl = "x"
	}
	if yl == "" {
		yl = "y"
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{xl, yl}); err != nil {
		return err
	}
	for i := range t.X {
		rec := []string{formatField(t.X[i]), formatField(t.Y[i])}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes t to path, replacing any existing file.
func WriteFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}
	return f.Close()
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatField(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
