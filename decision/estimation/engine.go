// Package estimation provides the materials and cost estimation engine.
// Combines the rate table with bedroom-count and area-type adjustments
// to produce a per-material cost breakdown.
package estimation

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"building-cost/internal/rates"
	"building-cost/pkg/currency"
	apperrors "building-cost/pkg/errors"
	"building-cost/pkg/units"
)

// DefaultAreaType is assumed when the caller does not name an
// area-measurement convention.
const DefaultAreaType = "Super built-up Area"

// Engine computes material estimates against a rate table.
type Engine struct {
	table *rates.Table
}

// NewEngine creates an estimation engine over the given rate table.
func NewEngine(table *rates.Table) *Engine {
	return &Engine{table: table}
}

// Request contains inputs for a materials estimate.
type Request struct {
	// TotalArea is the floor area in square feet. Must be positive.
	TotalArea float64 `json:"total_area"`

	// Bedrooms is the BHK count. Values above the top multiplier tier
	// clamp to that tier; negative values are rejected.
	Bedrooms int `json:"bedrooms"`

	// AreaType is the area-measurement convention. Unknown labels use
	// the neutral multiplier; empty means DefaultAreaType.
	AreaType string `json:"area_type"`
}

// LineItem is one material in the estimate breakdown.
type LineItem struct {
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          units.Unit      `json:"unit"`
	Rate          decimal.Decimal `json:"rate"`
	Cost          decimal.Decimal `json:"cost"`
	CostFormatted string          `json:"cost_formatted"`
}

// Result is the complete estimation output. All numeric and formatted
// fields are a pure function of the request and the rate table;
// EstimateID and EstimatedAt identify the run for audit purposes.
type Result struct {
	EstimateID  uuid.UUID `json:"estimate_id"`
	EstimatedAt time.Time `json:"estimated_at"`

	// Input echo
	TotalArea float64 `json:"total_area"`
	Bedrooms  int     `json:"bedrooms"`
	AreaType  string  `json:"area_type"`

	// Breakdown, sorted by cost descending
	Materials []LineItem `json:"materials"`

	TotalCost          decimal.Decimal `json:"total_cost"`
	TotalCostFormatted string          `json:"total_cost_formatted"`

	CostPerSqft          decimal.Decimal `json:"cost_per_sqft"`
	CostPerSqftFormatted string          `json:"cost_per_sqft_formatted"`
}

// Estimate computes the materials breakdown and total cost for one
// house. Quantities round to 1 decimal, per-material costs to whole
// rupees, cost per square foot to 2 decimals.
func (e *Engine) Estimate(req Request) (*Result, error) {
	if req.TotalArea <= 0 {
		return nil, apperrors.NewInvalidInputError("total_area",
			"total area must be greater than zero square feet")
	}
	if req.Bedrooms < 0 {
		return nil, apperrors.NewInvalidInputError("bedrooms",
			"bedroom count must not be negative")
	}

	areaType := req.AreaType
	if areaType == "" {
		areaType = DefaultAreaType
	}

	bhkMult := e.table.BedroomMultiplier(req.Bedrooms)
	areaMult := e.table.AreaTypeMultiplier(areaType)
	combined := decimal.NewFromFloat(bhkMult * areaMult)
	area := decimal.NewFromFloat(req.TotalArea)

	materials := e.table.Materials()
	items := make([]LineItem, 0, len(materials))
	totalCost := decimal.Zero

	for _, spec := range materials {
		// Half-rupee and half-unit ties round to even.
		quantity := decimal.NewFromFloat(spec.PerAreaFactor).
			Mul(area).
			Mul(combined).
			RoundBank(1)
		cost := quantity.Mul(spec.Rate).RoundBank(0)
		totalCost = totalCost.Add(cost)

		items = append(items, LineItem{
			Name:          displayName(spec.ID),
			Icon:          spec.Icon,
			Quantity:      quantity,
			Unit:          spec.Unit,
			Rate:          spec.Rate,
			Cost:          cost,
			CostFormatted: currency.FormatINR(cost.InexactFloat64()),
		})
	}

	costPerSqft := totalCost.Div(area).RoundBank(2)

	// Highest cost first
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Cost.GreaterThan(items[j].Cost)
	})

	return &Result{
		EstimateID:           uuid.New(),
		EstimatedAt:          time.Now(),
		TotalArea:            req.TotalArea,
		Bedrooms:             req.Bedrooms,
		AreaType:             areaType,
		Materials:            items,
		TotalCost:            totalCost,
		TotalCostFormatted:   currency.FormatINR(totalCost.InexactFloat64()),
		CostPerSqft:          costPerSqft,
		CostPerSqftFormatted: currency.FormatINR(costPerSqft.InexactFloat64()),
	}, nil
}

// displayName derives a human-readable material name from its id:
// underscores become spaces, each word is capitalized.
func displayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
