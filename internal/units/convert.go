package units

import "math"

// displayUnit pairs a canonical unit with the minimum base-unit magnitude
// at which it becomes the preferred display unit.
type displayUnit struct {
	Unit      string
	Threshold float64
}

// preferredUnits lists display units per system and type in descending
// threshold order. The scan in pickDisplayUnit takes the first entry whose
// threshold the base value reaches, so larger units win once the quantity
// is big enough. Thresholds are tuned for readable kitchen quantities, not
// precision: cup kicks in around half a cup of milliliters rather than a
// full one.
var preferredUnits = map[System]map[Type][]displayUnit{
	Metric: {
		Volume: {
			{Unit: "l", Threshold: 1000},
			{Unit: "ml", Threshold: 1},
		},
		Weight: {
			{Unit: "kg", Threshold: 1000},
			{Unit: "g", Threshold: 1},
		},
	},
	Imperial: {
		Volume: {
			{Unit: "gallon", Threshold: 3785.411784},
			{Unit: "quart", Threshold: 946.352946},
			{Unit: "pint", Threshold: 473.176473},
			{Unit: "cup", Threshold: 118.29411825},
			{Unit: "tbsp", Threshold: 14.78676478125},
			{Unit: "tsp", Threshold: 1},
		},
		Weight: {
			{Unit: "lb", Threshold: 453.59237},
			{Unit: "oz", Threshold: 1},
		},
	},
}

// validatePreferredUnits runs at init. A misordered table would silently
// pick wrong display units, so fail loudly at process start instead.
func validatePreferredUnits() {
	for system, byType := range preferredUnits {
		for typ, list := range byType {
			for i, entry := range list {
				def := definitionIndex[entry.Unit]
				if def == nil {
					panic("units: preferred unit " + entry.Unit + " has no definition")
				}
				if def.Type != typ || def.System != system {
					panic("units: preferred unit " + entry.Unit + " listed under wrong system or type")
				}
				if i > 0 && list[i-1].Threshold <= entry.Threshold {
					panic("units: preferred units for " + string(system) + "/" + string(typ) + " not in descending threshold order")
				}
			}
		}
	}
}

// pickDisplayUnit selects the largest preferred unit the base value
// qualifies for, falling back to the smallest when the value is below every
// threshold.
func pickDisplayUnit(typ Type, target System, baseValue float64) *Definition {
	list := preferredUnits[target][typ]
	for _, entry := range list {
		if baseValue >= entry.Threshold {
			return definitionIndex[entry.Unit]
		}
	}
	return definitionIndex[list[len(list)-1].Unit]
}

// Converted is the result of a single quantity conversion.
type Converted struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ConvertUnit converts a quantity from fromUnit into the target system's
// preferred display unit. It returns nil when fromUnit is not recognized.
// Count, other, and same-system units pass through numerically unchanged
// but still come back with the canonical unit spelling.
//
// The conversion is deliberately lossy: the result goes through smartRound,
// so a metric->imperial->metric round trip is not expected to reproduce the
// input exactly.
func ConvertUnit(quantity float64, fromUnit string, target System) *Converted {
	def := GetDefinition(fromUnit)
	if def == nil {
		return nil
	}
	if (def.Type != Volume && def.Type != Weight) || def.System == target || def.System == Both {
		return &Converted{Quantity: quantity, Unit: def.Canonical}
	}

	baseValue := quantity * def.ToBase
	chosen := pickDisplayUnit(def.Type, target, baseValue)
	return &Converted{
		Quantity: smartRound(baseValue / chosen.ToBase),
		Unit:     chosen.Canonical,
	}
}

// smartRound rounds with less precision as magnitude grows. Nobody measures
// 473.176 ml of stock; 473 reads fine, and small quantities still keep the
// quarter/eighth granularity that maps onto measuring spoons.
func smartRound(value float64) float64 {
	switch {
	case value >= 100:
		return math.Round(value)
	case value >= 10:
		return math.Round(value*2) / 2
	case value >= 0.25:
		return math.Round(value*4) / 4
	case value >= 0.125:
		return math.Round(value*8) / 8
	default:
		return math.Round(value*100) / 100
	}
}
