package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-align/internal/dataset"
)

type alignJSON struct {
	Dataset1 string `json:"dataset1"`
	Dataset2 string `json:"dataset2"`
	Result   struct {
		Offset      float64   `json:"offset"`
		Reposition  float64   `json:"reposition"`
		StepSize    float64   `json:"step_size"`
		MaxIndex    int       `json:"max_index"`
		MaxValue    float64   `json:"max_value"`
		Correlation []float64 `json:"correlation"`
		Strategy    string    `json:"strategy"`
	} `json:"result"`
}

// execute runs the command tree in an isolated environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"XCOFFSET_METHOD", "XCOFFSET_FORMAT", "XCOFFSET_SAMPLE", "XCOFFSET_WATCH"} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAlignDefaultSampleText(t *testing.T) {
	out, err := execute(t, "align")
	require.NoError(t, err)

	assert.Contains(t, out, "default/1 vs default/2")
	assert.Contains(t, out, "Predicted offset (x)")
	assert.Contains(t, out, "104")
}

func TestAlignJSONWithCorrelation(t *testing.T) {
	out, err := execute(t, "align", "--format", "json", "--show-correlation", "--method", "fft")
	require.NoError(t, err)

	var got alignJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, 5.0, got.Result.Offset)
	assert.Equal(t, 11.0, got.Result.Reposition)
	assert.Equal(t, 1.0, got.Result.StepSize)
	assert.Equal(t, 6, got.Result.MaxIndex)
	assert.InDelta(t, 104.0, got.Result.MaxValue, 1e-9)
	assert.Equal(t, "fft", got.Result.Strategy)
	assert.Len(t, got.Result.Correlation, 14)
}

func TestAlignCSVFilesWritesAdjusted(t *testing.T) {
	dir := t.TempDir()
	first := writeCSV(t, dir, "first.csv", "t,v\n-5,7\n-4,5\n-3,4\n-2,3\n-1,2\n0,0\n1,-1\n2,-3\n")
	second := writeCSV(t, dir, "second.csv", "t,v\n0,7\n1,5\n2,4\n3,3\n4,2\n5,0\n6,-1\n")
	adjusted := filepath.Join(dir, "adjusted.csv")

	out, err := execute(t, "align", "--format", "json", "--adjusted", adjusted, first, second)
	require.NoError(t, err)

	var got alignJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "first.csv", got.Dataset1)
	assert.Equal(t, 5.0, got.Result.Offset)
	assert.Empty(t, got.Result.Correlation)

	tbl, err := dataset.ReadFile(adjusted)
	require.NoError(t, err)
	assert.Equal(t, []float64{-5, -4, -3, -2, -1, 0, 1}, tbl.X)
	assert.Equal(t, []float64{7, 5, 4, 3, 2, 0, -1}, tbl.Y)
	assert.Equal(t, "t", tbl.XLabel)
}

func TestAlignShowDatasets(t *testing.T) {
	out, err := execute(t, "align", "--sample", "pulse", "--show-datasets", "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "| pulse/1 | 40 | 0 .. 19.5 | 0.5 |")
	assert.Contains(t, out, "| pulse/2 | 24 | 4 .. 15.5 | 0.5 |")
	assert.Contains(t, out, "| Predicted offset (time) | 4 |")
}

func TestAlignRejectsSingleFile(t *testing.T) {
	dir := t.TempDir()
	first := writeCSV(t, dir, "first.csv", "x,y\n0,1\n1,2\n")

	_, err := execute(t, "align", first)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected two CSV files")
}

func TestAlignUnknownMethod(t *testing.T) {
	_, err := execute(t, "align", "--method", "wavelet")
	require.Error(t, err)
}

func TestWatchNeedsFiles(t *testing.T) {
	_, err := execute(t, "align", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch")
}

func TestConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCSV(t, dir, "config.toml", "method = \"fft\"\nformat = \"json\"\n")

	out, err := execute(t, "align", "--config", cfgPath)
	require.NoError(t, err)

	var got alignJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "fft", got.Result.Strategy)

	out, err = execute(t, "align", "--config", cfgPath, "--method", "direct")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "direct", got.Result.Strategy, "flags override the config file")
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCSV(t, dir, "config.toml", "format = \"json\"\n")

	t.Setenv("HOME", dir)
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	t.Setenv("XCOFFSET_FORMAT", "yaml")
	root.SetArgs([]string{"align", "--config", cfgPath})
	require.NoError(t, root.Execute())

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "default/1", got["dataset1"])
}

func TestScanDefaultSample(t *testing.T) {
	out, err := execute(t, "scan", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Values    []*float64 `json:"values"`
		BestIndex int        `json:"best_index"`
		Offset    float64    `json:"offset"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Values, 11)
	assert.Equal(t, 5, got.BestIndex)
	assert.Equal(t, 5.0, got.Offset)
}

func TestSamplesCommand(t *testing.T) {
	out, err := execute(t, "samples", "--format", "json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "default", got[0]["name"])
	assert.Equal(t, 5.0, got[0]["expected_offset"])
}

func TestTapersCommand(t *testing.T) {
	out, err := execute(t, "tapers", "--size", "256")
	require.NoError(t, err)

	for _, name := range []string{"rectangular", "hann", "hamming", "blackman", "tukey"} {
		assert.Contains(t, out, name)
	}
}
