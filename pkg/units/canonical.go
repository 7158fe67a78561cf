// Package units provides canonical construction unit types and conversions.
package units

// Unit represents a measurable quantity.
type Unit string

const (
	// Material units
	UnitCementBags Unit = "bags (50kg)"
	UnitKg         Unit = "kg"
	UnitPieces     Unit = "pieces"
	UnitCubicFt    Unit = "cubic ft"
	UnitSqft       Unit = "sq.ft"

	// Lumpsum items billed against floor area
	UnitLumpsumPerSqft Unit = "lumpsum/sqft"
)

// CementBagKg is the standard cement bag weight.
const CementBagKg = 50.0

// SqftPerSqm is the number of square feet in one square metre.
const SqftPerSqm = 10.7639

// SqftToSqm converts square feet to square metres.
func SqftToSqm(sqft float64) float64 {
	return sqft / SqftPerSqm
}

// SqmToSqft converts square metres to square feet.
func SqmToSqft(sqm float64) float64 {
	return sqm * SqftPerSqm
}

// BagsToKg converts cement bag count to kilograms.
func BagsToKg(bags float64) float64 {
	return bags * CementBagKg
}

// KgToBags converts kilograms of cement to bag count.
func KgToBags(kg float64) float64 {
	return kg / CementBagKg
}
