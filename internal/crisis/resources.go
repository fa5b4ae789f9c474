package crisis

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed resources/*.json
var resourceFS embed.FS

// Line is one crisis line (lifeline or text line).
type Line struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Keyword string `json:"keyword,omitempty"`
	Number  string `json:"number,omitempty"`
}

// CrisisLines groups the region's emergency guidance and hotlines.
type CrisisLines struct {
	ImmediateDanger string `json:"immediate_danger"`
	Lifeline        Line   `json:"lifeline"`
	TextLine        Line   `json:"text_line"`
}

// RegionResources is the per-region crisis resource file.
type RegionResources struct {
	Region      string      `json:"region"`
	Crisis      CrisisLines `json:"crisis"`
	SupportNote string      `json:"support_note"`
}

// LoadRegion loads resources/{region}.json, falling back to the US set for
// unknown regions.
func LoadRegion(region string) RegionResources {
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		region = "us"
	}
	data, err := resourceFS.ReadFile("resources/" + region + ".json")
	if err != nil {
		data, _ = resourceFS.ReadFile("resources/us.json")
	}
	var res RegionResources
	if err := json.Unmarshal(data, &res); err != nil {
		// The embedded US file is checked by tests; reaching this means a
		// broken region file slipped in, so fall back to US.
		usData, _ := resourceFS.ReadFile("resources/us.json")
		_ = json.Unmarshal(usData, &res)
	}
	return res
}

// MessageImmediate renders the fixed crisis message for the region.
func (r RegionResources) MessageImmediate() string {
	lines := []string{
		fmt.Sprintf("**%s**", r.Crisis.ImmediateDanger),
		"",
		"**You’re not alone. Reach out now.**",
		"",
	}
	if r.Crisis.Lifeline.Name != "" {
		lines = append(lines, fmt.Sprintf("- **%s** — Call or text **%s** (24/7)", r.Crisis.Lifeline.Name, r.Crisis.Lifeline.Phone))
	}
	if r.Crisis.TextLine.Name != "" {
		lines = append(lines, fmt.Sprintf("- **%s** — Text **%s** to **%s** (24/7)", r.Crisis.TextLine.Name, r.Crisis.TextLine.Keyword, r.Crisis.TextLine.Number))
	}
	lines = append(lines, "", r.SupportNote)
	return strings.Join(lines, "\n")
}
