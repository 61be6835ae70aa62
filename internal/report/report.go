// Package report renders alignment results for the terminal, Markdown
// documents or machine consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-align/dsp/offset"
	"github.com/cwbudde/algo-align/dsp/series"
	"github.com/cwbudde/algo-align/dsp/xcorr"
)

// Format selects the output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat maps a name (any case) to a Format. "md" is accepted for
// Markdown and the empty string selects text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	default:
		return FormatText, fmt.Errorf("report: unknown format %q", name)
	}
}

// Alignment describes one correlation run.
type Alignment struct {
	Dataset1 string `json:"dataset1" yaml:"dataset1"`
	Dataset2 string `json:"dataset2" yaml:"dataset2"`
	XLabel   string `json:"x_label,omitempty" yaml:"x_label,omitempty"`
	// Len2 is the number of samples in the second dataset; it maps
	// correlation indices to lags.
	Len2   int              `json:"-" yaml:"-"`
	Result offset.Alignment `json:"result" yaml:"result"`
	// Datasets, when set, are listed before the result.
	Datasets []series.Summary `json:"datasets,omitempty" yaml:"datasets,omitempty"`
	// ShowCorrelation includes the correlation array in the output.
	ShowCorrelation bool `json:"-" yaml:"-"`
}

// Scan describes one difference-scan run.
type Scan struct {
	Dataset1 string      `json:"dataset1" yaml:"dataset1"`
	Dataset2 string      `json:"dataset2" yaml:"dataset2"`
	Result   offset.Scan `json:"result" yaml:"result"`
	Offset   float64     `json:"offset" yaml:"offset"`
}

// WriteAlignment renders a in format f.
func WriteAlignment(w io.Writer, f Format, a Alignment) error {
	if !a.ShowCorrelation {
		a.Result.Correlation = nil
	}

	switch f {
	case FormatJSON:
		return writeJSON(w, a)
	case FormatYAML:
		return writeYAML(w, a)
	case FormatText, FormatMarkdown:
		return writeAlignmentTables(w, f == FormatMarkdown, a)
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}

// WriteScan renders s in format f.
func WriteScan(w io.Writer, f Format, s Scan) error {
	s.Offset = s.Result.Offset()

	switch f {
	case FormatJSON:
		return writeJSON(w, newJSONScan(s))
	case FormatYAML:
		return writeYAML(w, s)
	case FormatText, FormatMarkdown:
		return writeScanTables(w, f == FormatMarkdown, s)
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}

func writeAlignmentTables(w io.Writer, markdown bool, a Alignment) error {
	if len(a.Datasets) > 0 {
		if err := writeDatasetTable(w, markdown, a.Datasets); err != nil {
			return err
		}
	}

	r := a.Result
	unit := ""
	if a.XLabel != "" {
		unit = " (" + a.XLabel + ")"
	}

	t := newTable(markdown, fmt.Sprintf("%s vs %s", a.Dataset1, a.Dataset2))
	t.header("Quantity", "Value")
	t.row("Strategy", r.Strategy.String())
	t.row("Repositioning"+unit, formatFloat(r.Reposition))
	t.row("Step size"+unit, formatFloat(r.StepSize))
	t.row("Maximum value", formatFloat(r.MaxValue))
	t.row("Maximum index", r.MaxIndex)
	t.row("Predicted offset"+unit, formatFloat(r.Offset))
	t.alignRight(2)

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}

	if len(r.Correlation) == 0 {
		return nil
	}

	c := newTable(markdown, "Cross correlation")
	c.header("Index", "Lag", "Value")
	for i, v := range r.Correlation {
		c.row(i, xcorr.LagFromIndex(i, a.Len2), formatFloat(v))
	}
	c.alignRight(1, 2, 3)

	_, err := fmt.Fprintln(w, c.String())
	return err
}

func writeDatasetTable(w io.Writer, markdown bool, sums []series.Summary) error {
	t := newTable(markdown, "Datasets")
	t.header("Dataset", "Points", "X range", "Step", "Mean", "RMS", "Peak")
	for _, s := range sums {
		step := formatFloat(s.Step)
		if !s.Steady() {
			step += " (uneven)"
		}
		t.row(s.Name, s.Points,
			formatFloat(s.XMin)+" .. "+formatFloat(s.XMax),
			step, formatFloat(s.Mean), formatFloat(s.RMS), formatFloat(s.Peak))
	}
	t.alignRight(2, 4, 5, 6, 7)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeScanTables(w io.Writer, markdown bool, s Scan) error {
	t := newTable(markdown, fmt.Sprintf("%s vs %s (difference scan)", s.Dataset1, s.Dataset2))
	t.header("Slide", "Shift", "Mean difference")
	for i, v := range s.Result.Values {
		t.row(i, formatFloat(float64(i)*s.Result.Increment), formatFloat(v))
	}
	t.alignRight(1, 2, 3)

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Smallest |difference| %s at slide %d, predicted offset %s\n",
		formatFloat(s.Result.BestValue), s.Result.BestIndex, formatFloat(s.Offset))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// jsonScan mirrors Scan with NaN slides encoded as null, which
// encoding/json cannot emit for float64.
type jsonScan struct {
	Dataset1  string     `json:"dataset1"`
	Dataset2  string     `json:"dataset2"`
	Values    []*float64 `json:"values"`
	Increment float64    `json:"increment"`
	BestIndex int        `json:"best_index"`
	BestValue float64    `json:"best_value"`
	Offset    float64    `json:"offset"`
}

func newJSONScan(s Scan) jsonScan {
	values := make([]*float64, len(s.Result.Values))
	for i := range s.Result.Values {
		if !math.IsNaN(s.Result.Values[i]) {
			values[i] = &s.Result.Values[i]
		}
	}

	return jsonScan{
		Dataset1:  s.Dataset1,
		Dataset2:  s.Dataset2,
		Values:    values,
		Increment: s.Result.Increment,
		BestIndex: s.Result.BestIndex,
		BestValue: s.Result.BestValue,
		Offset:    s.Offset,
	}
}
