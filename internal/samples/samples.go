// Package samples holds the dataset pairs embedded in the binary, used when
// no CSV files are given on the command line.
package samples

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-align/dsp/series"
	"github.com/cwbudde/algo-align/internal/dataset"
)

// Default names the sample used when none is selected.
const Default = "default"

//go:embed *.yaml
var sampleFS embed.FS

// Points is one dataset of a sample pair.
type Points struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
}

// Pair is one embedded sample: two datasets plus the offset the estimator
// is known to produce for them.
type Pair struct {
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	XLabel         string  `yaml:"x_label"`
	YLabel         string  `yaml:"y_label"`
	ExpectedOffset float64 `yaml:"expected_offset"`
	First          Points  `yaml:"first"`
	Second         Points  `yaml:"second"`
}

// Load reads a sample pair by name from the embedded YAML files.
func Load(name string) (*Pair, error) {
	data, err := sampleFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("sample %q not found (available: %s): %w",
			name, strings.Join(List(), ", "), err)
	}
	var p Pair
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse sample %q: %w", name, err)
	}
	return &p, nil
}

// List returns the names of all embedded samples, sorted.
func List() []string {
	entries, _ := sampleFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Tables converts the pair into validated tables named "<sample>/1" and
// "<sample>/2".
func (p *Pair) Tables() (dataset.Table, dataset.Table, error) {
	first, err := p.table("1", p.First)
	if err != nil {
		return dataset.Table{}, dataset.Table{}, err
	}
	second, err := p.table("2", p.Second)
	if err != nil {
		return dataset.Table{}, dataset.Table{}, err
	}
	return first, second, nil
}

func (p *Pair) table(suffix string, pts Points) (dataset.Table, error) {
	ds, err := series.New(p.Name+"/"+suffix, pts.X, pts.Y)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("sample %q: %w", p.Name, err)
	}
	return dataset.Table{Dataset: ds, XLabel: p.XLabel, YLabel: p.YLabel}, nil
}
