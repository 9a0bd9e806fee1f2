package recipes

import (
	"fmt"
	"strings"

	"mirepoix/internal/units"
)

type Formatter struct {
	System units.System
}

func NewFormatter(system units.System) *Formatter {
	return &Formatter{System: system}
}

func (f *Formatter) FormatRecipe(recipe *Recipe) string {
	var output strings.Builder

	output.WriteString(strings.ToUpper(recipe.Title) + "\n")
	output.WriteString(strings.Repeat("=", 50) + "\n\n")

	if recipe.Description != "" {
		output.WriteString(recipe.Description + "\n\n")
	}

	output.WriteString(fmt.Sprintf("INGREDIENTS (%s):\n", f.System))
	for _, ingredient := range recipe.Localize(f.System) {
		output.WriteString(fmt.Sprintf("  • %s\n", ingredient))
	}

	if len(recipe.Instructions) > 0 {
		output.WriteString("\nINSTRUCTIONS:\n")
		for i, instruction := range recipe.Instructions {
			output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, instruction))
		}
	}

	return output.String()
}

// FormatIngredient is the one-line form used by the CLI's single-quantity
// mode.
func (f *Formatter) FormatIngredient(ingredient Ingredient) string {
	localized := LocalizedIngredient{
		Name: ingredient.Name,
		ConvertedIngredient: units.ConvertIngredient(
			ingredient.Quantity, ingredient.QuantityMax, ingredient.Unit, f.System),
	}
	return strings.TrimSpace(localized.String())
}
