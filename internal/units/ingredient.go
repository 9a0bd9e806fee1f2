package units

import "strconv"

// ConvertedIngredient is the display-ready form of one ingredient quantity.
// Quantity and QuantityMax mirror the nullable backend fields; the Display
// strings are what renderers actually show.
type ConvertedIngredient struct {
	Quantity           *float64 `json:"quantity"`
	QuantityMax        *float64 `json:"quantity_max,omitempty"`
	Unit               string   `json:"unit"`
	DisplayQuantity    string   `json:"display_quantity"`
	DisplayQuantityMax string   `json:"display_quantity_max,omitempty"`
}

// ConvertIngredient converts a quantity/quantityMax/unit triple as a unit.
// Missing quantity or unit, or an unrecognized unit, degrades to
// pass-through: original values with best-effort stringified displays.
// Recipes are full of free-text units and that is not an error.
//
// When both ends of a range are present the displayed max always uses the
// same unit as the displayed min, even when independent unit selection
// would disagree near a threshold boundary.
func ConvertIngredient(quantity, quantityMax *float64, unit string, target System) ConvertedIngredient {
	out := ConvertedIngredient{Quantity: quantity, QuantityMax: quantityMax, Unit: unit}

	passthrough := func() ConvertedIngredient {
		if quantity != nil {
			out.DisplayQuantity = rawString(*quantity)
		}
		if quantityMax != nil {
			out.DisplayQuantityMax = rawString(*quantityMax)
		}
		return out
	}

	if quantity == nil || unit == "" {
		return passthrough()
	}

	converted := ConvertUnit(*quantity, unit, target)
	if converted == nil {
		return passthrough()
	}

	q := converted.Quantity
	out.Quantity = &q
	out.Unit = converted.Unit
	out.DisplayQuantity = FormatQuantity(converted.Quantity, converted.Unit, target)

	if quantityMax != nil {
		maxQ := convertMax(*quantityMax, unit, converted.Unit, target)
		out.QuantityMax = &maxQ
		out.DisplayQuantityMax = FormatQuantity(maxQ, converted.Unit, target)
	}
	return out
}

// convertMax converts the top of a range, forcing the result into the unit
// already chosen for the bottom. If independent conversion landed on the
// same unit its value is used directly; otherwise the max is re-derived
// straight from the original unit into the min's unit, skipping unit
// selection entirely.
func convertMax(quantityMax float64, fromUnit, chosenUnit string, target System) float64 {
	converted := ConvertUnit(quantityMax, fromUnit, target)
	if converted != nil && converted.Unit == chosenUnit {
		return converted.Quantity
	}
	from := GetDefinition(fromUnit)
	chosen := GetDefinition(chosenUnit)
	if from == nil || chosen == nil {
		return quantityMax
	}
	return smartRound(quantityMax * from.ToBase / chosen.ToBase)
}

// rawString is the unformatted fallback for quantities we could not
// convert: the shortest exact decimal form of the float.
func rawString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
