package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-align/dsp/core"
	"github.com/cwbudde/algo-align/dsp/series"
)

func TestRead(t *testing.T) {
	in := "time, level, note\n-5,7,a\n-4,5,b\n\n# comment\n-3,4,c\n"

	tbl, err := Read(strings.NewReader(in), "levels.csv")
	require.NoError(t, err)

	assert.Equal(t, "levels.csv", tbl.Name)
	assert.Equal(t, "time", tbl.XLabel)
	assert.Equal(t, "level", tbl.YLabel)
	assert.Equal(t, []float64{-5, -4, -3}, tbl.X)
	assert.Equal(t, []float64{7, 5, 4}, tbl.Y)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrMalformed},
		{"one column", "x\n1\n2\n", ErrMalformed},
		{"short record", "x,y\n1,2\n3\n", ErrMalformed},
		{"not a number", "x,y\n1,2\n3,abc\n", ErrMalformed},
		{"too few rows", "x,y\n1,2\n", series.ErrTooFewPoints},
		{"infinite", "x,y\n1,2\n2,+Inf\n", series.ErrNonFinite},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.in), tc.name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	ds, err := series.New("shifted", []float64{-5, -4.5, 0.125}, []float64{1, -2, 3e-9})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Table{Dataset: ds, XLabel: "t"}))
	assert.True(t, strings.HasPrefix(buf.String(), "t,y\n"))

	back, err := Read(&buf, "shifted")
	require.NoError(t, err)
	assert.Equal(t, ds.X, back.X)
	assert.Equal(t, ds.Y, back.Y)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	ds, err := series.New("a", []float64{0, 1}, []float64{2, 3})
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, Table{Dataset: ds, XLabel: "x", YLabel: "v"}))

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out.csv", tbl.Name)
	assert.Equal(t, "v", tbl.YLabel)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
