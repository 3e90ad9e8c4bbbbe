// Package data loads the campaign dataset served for the session. The
// embedded sample mirrors the demo campaign; a JSON file configured via
// REPORT_DATA_FILE replaces it.
package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"hypeads-report/internal/core/domain"
)

//go:embed sample.json
var sampleJSON []byte

// Dataset is the campaign summary plus its daily breakdown. The two are
// supplied independently and are not checked for consistency.
type Dataset struct {
	Summary domain.CampaignSummary `json:"summary"`
	Daily   []domain.DailyReport   `json:"daily"`
}

// Load reads the dataset from path, or the embedded sample when path is
// empty. An empty daily breakdown is valid; the table renders placeholder
// averages for it.
func Load(path string) (Dataset, error) {
	raw := sampleJSON
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Dataset{}, fmt.Errorf("read dataset: %w", err)
		}
		raw = b
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	if ds.Summary.CampaignName == "" {
		return Dataset{}, fmt.Errorf("dataset has no campaign name")
	}
	return ds, nil
}
