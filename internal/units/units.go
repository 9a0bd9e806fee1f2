// Package units converts recipe ingredient quantities between metric and
// imperial measurement systems and renders them as kitchen-friendly display
// strings. Everything operates over a static table built once at init;
// unrecognized units are never errors, lookups just come back empty and
// callers leave the original text alone.
package units

import "strings"

type Type string

const (
	Volume Type = "volume"
	Weight Type = "weight"
	Count  Type = "count"
	Other  Type = "other"
)

type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
	// Both marks system-agnostic units like "clove" that read the same
	// everywhere and are never converted.
	Both System = "both"
)

// ParseSystem maps user input ("metric"/"imperial") to a System.
func ParseSystem(raw string) (System, bool) {
	switch System(strings.ToLower(strings.TrimSpace(raw))) {
	case Metric:
		return Metric, true
	case Imperial:
		return Imperial, true
	}
	return "", false
}

// Definition describes one canonical unit. ToBase converts a quantity in
// this unit to the base unit for its type (ml for volume, g for weight,
// an abstract piece for count).
type Definition struct {
	Canonical string
	Type      Type
	System    System
	BaseUnit  string
	ToBase    float64
	Aliases   []string
}

var definitions = []Definition{
	// volume, base ml
	{Canonical: "ml", Type: Volume, System: Metric, BaseUnit: "ml", ToBase: 1,
		Aliases: []string{"milliliter", "milliliters", "millilitre", "millilitres"}},
	{Canonical: "l", Type: Volume, System: Metric, BaseUnit: "ml", ToBase: 1000,
		Aliases: []string{"liter", "liters", "litre", "litres"}},
	{Canonical: "dl", Type: Volume, System: Metric, BaseUnit: "ml", ToBase: 100,
		Aliases: []string{"deciliter", "deciliters", "decilitre", "decilitres"}},
	{Canonical: "tsp", Type: Volume, System: Imperial, BaseUnit: "ml", ToBase: 4.92892159375,
		Aliases: []string{"teaspoon", "teaspoons", "tsp.", "tsps"}},
	{Canonical: "tbsp", Type: Volume, System: Imperial, BaseUnit: "ml", ToBase: 14.78676478125,
		Aliases: []string{"tablespoon", "tablespoons", "tbsp.", "tbs", "tbl"}},
	{Canonical: "fl oz", Type: Volume, System: Imperial, BaseUnit: "ml", ToBase: 29.5735295625,
		Aliases: []string{"fluid ounce", "fluid ounces", "fl. oz.", "fl. oz", "floz"}},
	{Canonical: "cup", Type: Volume, System: Imperial, BaseUnit: "ml", ToBase: 236.5882365,
		Aliases: []string{"cups", "c"}},
	{Canonical: "pint", Type: Volume, System: Imperial, BaseUnit: "ml", ToBase: 473.176473,
		Aliases: []string{"pints", "pt"}},
	{Canonical: "quart", Type: Volume, System: Imperial, BaseUnit: "ml", ToBase: 946.352946,
		Aliases: []string{"quarts", "qt", "qts"}},
	{Canonical: "gallon", Type: Volume, System: Imperial, BaseUnit: "ml", ToBase: 3785.411784,
		Aliases: []string{"gallons", "gal"}},

	// weight, base g
	{Canonical: "mg", Type: Weight, System: Metric, BaseUnit: "g", ToBase: 0.001,
		Aliases: []string{"milligram", "milligrams"}},
	{Canonical: "g", Type: Weight, System: Metric, BaseUnit: "g", ToBase: 1,
		Aliases: []string{"gram", "grams", "gr"}},
	{Canonical: "kg", Type: Weight, System: Metric, BaseUnit: "g", ToBase: 1000,
		Aliases: []string{"kilogram", "kilograms", "kilo", "kilos"}},
	{Canonical: "oz", Type: Weight, System: Imperial, BaseUnit: "g", ToBase: 28.349523125,
		Aliases: []string{"ounce", "ounces", "oz."}},
	{Canonical: "lb", Type: Weight, System: Imperial, BaseUnit: "g", ToBase: 453.59237,
		Aliases: []string{"pound", "pounds", "lbs", "lb.", "lbs."}},

	// count units read the same in either system
	{Canonical: "piece", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"pieces", "pc", "pcs"}},
	{Canonical: "clove", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"cloves"}},
	{Canonical: "slice", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"slices"}},
	{Canonical: "can", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"cans"}},
	{Canonical: "stick", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"sticks"}},
	{Canonical: "bunch", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"bunches"}},
	{Canonical: "head", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"heads"}},
	{Canonical: "sprig", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"sprigs"}},
	{Canonical: "stalk", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"stalks"}},
	{Canonical: "package", Type: Count, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"packages", "pkg", "packet", "packets"}},

	// untranslatable kitchen measures
	{Canonical: "pinch", Type: Other, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"pinches"}},
	{Canonical: "dash", Type: Other, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"dashes"}},
	{Canonical: "handful", Type: Other, System: Both, BaseUnit: "piece", ToBase: 1,
		Aliases: []string{"handfuls"}},
	{Canonical: "to taste", Type: Other, System: Both, BaseUnit: "piece", ToBase: 1},
}

// aliasIndex maps every lowercased alias (canonical keys included) to its
// canonical unit. Built once so lookups never scan the definition list.
var (
	aliasIndex      = map[string]string{}
	definitionIndex = map[string]*Definition{}
)

func init() {
	for i := range definitions {
		def := &definitions[i]
		definitionIndex[def.Canonical] = def
		for _, alias := range append([]string{def.Canonical}, def.Aliases...) {
			key := strings.ToLower(alias)
			if prev, ok := aliasIndex[key]; ok && prev != def.Canonical {
				panic("units: alias " + key + " maps to both " + prev + " and " + def.Canonical)
			}
			aliasIndex[key] = def.Canonical
		}
	}
	validatePreferredUnits()
}

// Normalize resolves a raw unit string (any alias, any case, surrounding
// whitespace) to its canonical form. ok is false for unrecognized or empty
// input.
func Normalize(raw string) (string, bool) {
	canonical, ok := aliasIndex[strings.ToLower(strings.TrimSpace(raw))]
	return canonical, ok
}

// GetDefinition returns the definition for a raw unit string, nil if the
// unit is not recognized.
func GetDefinition(raw string) *Definition {
	canonical, ok := Normalize(raw)
	if !ok {
		return nil
	}
	return definitionIndex[canonical]
}

// IsConvertible reports whether a unit participates in cross-system
// conversion. Only volume and weight convert; count and other units are
// displayed as-is.
func IsConvertible(raw string) bool {
	def := GetDefinition(raw)
	return def != nil && (def.Type == Volume || def.Type == Weight)
}

// SystemOf returns the measurement system a unit belongs to.
func SystemOf(raw string) (System, bool) {
	def := GetDefinition(raw)
	if def == nil {
		return "", false
	}
	return def.System, true
}

// NeedsConversion reports whether displaying a unit in target actually
// requires numeric conversion.
func NeedsConversion(raw string, target System) bool {
	def := GetDefinition(raw)
	if def == nil {
		return false
	}
	return (def.Type == Volume || def.Type == Weight) &&
		def.System != target && def.System != Both
}
