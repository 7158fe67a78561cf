package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "building-cost/pkg/errors"
)

func writeRatesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing rates file: %v", err)
	}
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeRatesFile(t, `
materials:
  - id: cement
    unit: bags (50kg)
    rate: 420
    per_area_factor: 0.4
    icon: "🧱"
  - id: labour
    unit: lumpsum/sqft
    rate: 375
    per_area_factor: 1.0
    icon: "👷"
bedroom_multipliers:
  1: 0.9
  2: 1.0
area_type_multipliers:
  "Carpet Area": 0.9
`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := len(table.Materials()); got != 2 {
		t.Fatalf("material count = %d, want 2", got)
	}
	cement, ok := table.Get("cement")
	if !ok {
		t.Fatal("Get(cement) not found after load")
	}
	if !cement.Rate.Equal(decimal.NewFromInt(420)) {
		t.Errorf("cement rate = %s, want 420", cement.Rate)
	}
	if got := table.BedroomMultiplier(1); got != 0.9 {
		t.Errorf("BedroomMultiplier(1) = %v, want 0.9", got)
	}
	if got := table.AreaTypeMultiplier("Carpet Area"); got != 0.9 {
		t.Errorf("AreaTypeMultiplier(Carpet Area) = %v, want 0.9", got)
	}
	// Tiers the file does not declare stay neutral.
	if got := table.BedroomMultiplier(5); got != 1.0 {
		t.Errorf("BedroomMultiplier(5) = %v, want neutral 1.0", got)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{
			name:     "no materials",
			content:  "materials: []\n",
			wantCode: apperrors.ErrCodeEmptyRateTable,
		},
		{
			name: "duplicate id",
			content: `
materials:
  - id: cement
    rate: 400
    per_area_factor: 0.4
  - id: cement
    rate: 410
    per_area_factor: 0.5
`,
			wantCode: apperrors.ErrCodeDuplicateMaterial,
		},
		{
			name: "negative rate",
			content: `
materials:
  - id: cement
    rate: -400
    per_area_factor: 0.4
`,
			wantCode: apperrors.ErrCodeNegativeRate,
		},
		{
			name: "empty id",
			content: `
materials:
  - rate: 400
    per_area_factor: 0.4
`,
			wantCode: apperrors.ErrCodeRatesLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRatesFile(t, tt.content)
			table, err := Load(path)
			if err == nil {
				t.Fatalf("Load() = %+v, want error", table)
			}
			ee, ok := err.(*apperrors.EstimateError)
			if !ok {
				t.Fatalf("error type = %T, want *EstimateError", err)
			}
			if ee.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", ee.Code, tt.wantCode)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on a missing file returned nil error")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeRatesFile(t, "materials: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed YAML returned nil error")
	}
}
