package rates

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	apperrors "building-cost/pkg/errors"
	"building-cost/pkg/units"
)

// fileTable is the YAML shape of a rate table override.
type fileTable struct {
	Materials []struct {
		ID            string  `yaml:"id"`
		Unit          string  `yaml:"unit"`
		Rate          float64 `yaml:"rate"`
		PerAreaFactor float64 `yaml:"per_area_factor"`
		Icon          string  `yaml:"icon"`
	} `yaml:"materials"`
	BedroomMultipliers  map[int]float64    `yaml:"bedroom_multipliers"`
	AreaTypeMultipliers map[string]float64 `yaml:"area_type_multipliers"`
}

// Load reads a rate table from a YAML file. The loaded table replaces
// the built-in one wholesale; it is read once at startup and immutable
// afterwards, the same contract as Default.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rates file: %w", err)
	}

	var ft fileTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing rates YAML: %w", err)
	}

	return buildTable(ft)
}

func buildTable(ft fileTable) (*Table, error) {
	if len(ft.Materials) == 0 {
		return nil, &apperrors.EstimateError{
			Code:     apperrors.ErrCodeEmptyRateTable,
			Message:  "rates file declares no materials",
			Severity: apperrors.SeverityFatal,
		}
	}

	t := newTable()
	for _, m := range ft.Materials {
		if m.ID == "" {
			return nil, apperrors.NewRatesLoadError("material with empty id")
		}
		if _, exists := t.byID[m.ID]; exists {
			return nil, apperrors.NewDuplicateMaterialError(m.ID)
		}
		if m.Rate < 0 || m.PerAreaFactor < 0 {
			return nil, &apperrors.EstimateError{
				Code:     apperrors.ErrCodeNegativeRate,
				Message:  fmt.Sprintf("material %s has a negative rate or consumption factor", m.ID),
				Severity: apperrors.SeverityFatal,
				Field:    m.ID,
			}
		}
		t.addMaterial(MaterialSpec{
			ID:            m.ID,
			Unit:          units.Unit(m.Unit),
			Rate:          decimal.NewFromFloat(m.Rate),
			PerAreaFactor: m.PerAreaFactor,
			Icon:          m.Icon,
		})
	}

	for count, mult := range ft.BedroomMultipliers {
		if mult < 0 {
			return nil, apperrors.NewRatesLoadError(
				fmt.Sprintf("negative bedroom multiplier for tier %d", count))
		}
		t.bedroomMultipliers[count] = mult
	}
	for label, mult := range ft.AreaTypeMultipliers {
		if mult < 0 {
			return nil, apperrors.NewRatesLoadError(
				fmt.Sprintf("negative area-type multiplier for %q", label))
		}
		t.areaTypeMultipliers[label] = mult
	}

	return t, nil
}
