// Package suggest resolves short-form scores and context tags into exactly
// one severity band and its canned suggestion bundle.
package suggest

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"calmcompass/internal/model"
)

//go:embed bands.yaml
var bandsYAML []byte

type bandEntry struct {
	Action    string   `yaml:"action"`
	NextSteps []string `yaml:"next_steps"`
}

type contentTable struct {
	Understanding map[string]string        `yaml:"understanding"`
	Reassurance   string                   `yaml:"reassurance"`
	Support       string                   `yaml:"support"`
	PartialNote   string                   `yaml:"partial_note"`
	Bands         map[model.Band]bandEntry `yaml:"bands"`
}

var table contentTable

func init() {
	if err := yaml.Unmarshal(bandsYAML, &table); err != nil {
		panic(fmt.Sprintf("suggest: bad embedded band table: %v", err))
	}
	for _, band := range []model.Band{model.BandMinimal, model.BandElevated, model.BandElevatedAnxiety, model.BandElevatedMood, model.BandBurnout} {
		e, ok := table.Bands[band]
		if !ok || e.Action == "" || len(e.NextSteps) != 2 {
			panic(fmt.Sprintf("suggest: band %q missing or malformed", band))
		}
	}
}

// UnderstandingLine returns the one-line understanding text for the given
// key (minimal, elevated, incomplete).
func UnderstandingLine(key string) string {
	if line, ok := table.Understanding[key]; ok {
		return line
	}
	return table.Understanding["minimal"]
}

// PartialNote is the disclosure attached when exactly one score is absent.
func PartialNote() string { return table.PartialNote }
