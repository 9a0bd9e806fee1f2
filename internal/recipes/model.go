package recipes

import (
	"mirepoix/internal/units"

	"github.com/samber/lo"
)

// Ingredient mirrors the backend's raw ingredient record. Quantity and
// QuantityMax are nullable; Unit is free text straight from the recipe.
type Ingredient struct {
	Name        string   `json:"name"`
	Quantity    *float64 `json:"quantity"`
	QuantityMax *float64 `json:"quantity_max,omitempty"`
	Unit        string   `json:"unit"`
}

type Recipe struct {
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions,omitempty"`
}

// LocalizedIngredient is an ingredient ready for display in the user's
// chosen measurement system.
type LocalizedIngredient struct {
	Name string `json:"name"`
	units.ConvertedIngredient
}

// Localize converts every ingredient into the target system. Conversion
// never fails per ingredient; unrecognized units keep their original text.
func (r *Recipe) Localize(target units.System) []LocalizedIngredient {
	return lo.Map(r.Ingredients, func(ing Ingredient, _ int) LocalizedIngredient {
		return LocalizedIngredient{
			Name:                ing.Name,
			ConvertedIngredient: units.ConvertIngredient(ing.Quantity, ing.QuantityMax, ing.Unit, target),
		}
	})
}

// String renders one display line: "454 g flour", "1-2 cup broth",
// "2 eggs" when there is no unit, or just the name when there is no
// quantity at all.
func (i LocalizedIngredient) String() string {
	qty := i.DisplayQuantity
	if i.DisplayQuantityMax != "" {
		qty += "-" + i.DisplayQuantityMax
	}
	switch {
	case qty == "":
		return i.Name
	case i.Unit == "":
		return qty + " " + i.Name
	default:
		return qty + " " + i.Unit + " " + i.Name
	}
}
