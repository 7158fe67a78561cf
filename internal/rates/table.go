// Package rates provides the static construction rate table with
// bedroom-count and area-type adjustment lookups.
package rates

import (
	"sort"

	"github.com/shopspring/decimal"

	"building-cost/pkg/units"
)

// MaxBedroomTier is the ceiling for the bedroom multiplier lookup;
// larger homes plateau in per-area overhead.
const MaxBedroomTier = 6

// MaterialSpec represents one material line item in the rate table.
type MaterialSpec struct {
	ID            string          `json:"id"`
	Unit          units.Unit      `json:"unit"`
	Rate          decimal.Decimal `json:"rate"`
	PerAreaFactor float64         `json:"per_area_factor"`
	Icon          string          `json:"icon"`
}

// Table is the read-only rate and adjustment store. It is built once
// at startup and never mutated afterwards.
type Table struct {
	materials []MaterialSpec
	byID      map[string]MaterialSpec

	bedroomMultipliers  map[int]float64
	areaTypeMultipliers map[string]float64
}

// newTable creates an empty table ready for addMaterial calls.
func newTable() *Table {
	return &Table{
		materials:           make([]MaterialSpec, 0),
		byID:                make(map[string]MaterialSpec),
		bedroomMultipliers:  make(map[int]float64),
		areaTypeMultipliers: make(map[string]float64),
	}
}

func (t *Table) addMaterial(spec MaterialSpec) {
	if _, exists := t.byID[spec.ID]; exists {
		return
	}
	t.materials = append(t.materials, spec)
	t.byID[spec.ID] = spec
}

// Materials returns the material specs in declaration order.
func (t *Table) Materials() []MaterialSpec {
	out := make([]MaterialSpec, len(t.materials))
	copy(out, t.materials)
	return out
}

// Get retrieves a material spec by id.
func (t *Table) Get(id string) (MaterialSpec, bool) {
	spec, ok := t.byID[id]
	return spec, ok
}

// BedroomMultiplier resolves the adjustment for a bedroom count.
// Counts above MaxBedroomTier clamp to the top tier; counts with no
// declared tier resolve to the neutral multiplier 1.0.
func (t *Table) BedroomMultiplier(count int) float64 {
	if count > MaxBedroomTier {
		count = MaxBedroomTier
	}
	if mult, ok := t.bedroomMultipliers[count]; ok {
		return mult
	}
	return 1.0
}

// AreaTypeMultiplier resolves the adjustment for an area-measurement
// convention. Unknown labels resolve to the neutral multiplier 1.0;
// this is a deliberate fallback, not a validation failure.
func (t *Table) AreaTypeMultiplier(label string) float64 {
	if mult, ok := t.areaTypeMultipliers[label]; ok {
		return mult
	}
	return 1.0
}

// AreaTypes returns the known area-type labels in sorted order.
func (t *Table) AreaTypes() []string {
	out := make([]string, 0, len(t.areaTypeMultipliers))
	for label := range t.areaTypeMultipliers {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Default returns the Bangalore metro rate table, average market rates
// for 2024-2025.
func Default() *Table {
	t := newTable()

	t.addMaterial(MaterialSpec{
		ID:            "cement",
		Unit:          units.UnitCementBags,
		Rate:          decimal.NewFromInt(400),
		PerAreaFactor: 0.4,
		Icon:          "🧱",
	})
	t.addMaterial(MaterialSpec{
		ID:            "steel",
		Unit:          units.UnitKg,
		Rate:          decimal.NewFromInt(75),
		PerAreaFactor: 4.5,
		Icon:          "🔩",
	})
	t.addMaterial(MaterialSpec{
		ID:            "bricks",
		Unit:          units.UnitPieces,
		Rate:          decimal.NewFromInt(10),
		PerAreaFactor: 8,
		Icon:          "🧱",
	})
	t.addMaterial(MaterialSpec{
		ID:            "sand",
		Unit:          units.UnitCubicFt,
		Rate:          decimal.NewFromInt(55),
		PerAreaFactor: 1.25,
		Icon:          "⏳",
	})
	t.addMaterial(MaterialSpec{
		ID:            "aggregate",
		Unit:          units.UnitCubicFt,
		Rate:          decimal.NewFromInt(45),
		PerAreaFactor: 0.65,
		Icon:          "🪨",
	})
	t.addMaterial(MaterialSpec{
		ID:            "flooring",
		Unit:          units.UnitSqft,
		Rate:          decimal.NewFromInt(85), // vitrified tiles avg
		PerAreaFactor: 1.0,
		Icon:          "🏗️",
	})
	t.addMaterial(MaterialSpec{
		ID:            "plumbing",
		Unit:          units.UnitLumpsumPerSqft,
		Rate:          decimal.NewFromInt(120),
		PerAreaFactor: 1.0,
		Icon:          "🚿",
	})
	t.addMaterial(MaterialSpec{
		ID:            "electrical",
		Unit:          units.UnitLumpsumPerSqft,
		Rate:          decimal.NewFromInt(100),
		PerAreaFactor: 1.0,
		Icon:          "⚡",
	})
	t.addMaterial(MaterialSpec{
		ID:            "painting",
		Unit:          units.UnitSqft,
		Rate:          decimal.NewFromInt(25),
		PerAreaFactor: 2.5, // wall area ~2.5x floor area
		Icon:          "🎨",
	})
	t.addMaterial(MaterialSpec{
		ID:            "windows_doors",
		Unit:          units.UnitLumpsumPerSqft,
		Rate:          decimal.NewFromInt(150),
		PerAreaFactor: 1.0,
		Icon:          "🪟",
	})
	t.addMaterial(MaterialSpec{
		ID:            "labour",
		Unit:          units.UnitLumpsumPerSqft,
		Rate:          decimal.NewFromInt(350),
		PerAreaFactor: 1.0,
		Icon:          "👷",
	})

	// Larger homes need slightly more per sqft for rooms and walls.
	t.bedroomMultipliers = map[int]float64{
		1: 0.90,
		2: 0.95,
		3: 1.00,
		4: 1.05,
		5: 1.10,
		6: 1.15,
	}

	t.areaTypeMultipliers = map[string]float64{
		"Super built-up Area": 1.10, // higher quality finishes
		"Built-up Area":       1.00,
		"Plot Area":           0.95,
		"Carpet Area":         0.90,
	}

	return t
}
