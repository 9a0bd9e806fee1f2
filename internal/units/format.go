package units

import (
	"math"
	"strconv"
	"strings"
)

// cookingFractions are the denominators a cook can actually measure. The
// nearest-match scan below uses strict less-than, so an exact tie keeps the
// entry that appears first in this list.
var cookingFractions = []struct {
	value float64
	text  string
}{
	{0, ""},
	{0.125, "1/8"},
	{0.25, "1/4"},
	{1.0 / 3.0, "1/3"},
	{0.375, "3/8"},
	{0.5, "1/2"},
	{0.625, "5/8"},
	{2.0 / 3.0, "2/3"},
	{0.75, "3/4"},
	{0.875, "7/8"},
	{1, ""},
}

// FormatQuantity renders a quantity for display. Imperial volumes use
// cooking fractions ("1 1/2"), everything else gets magnitude-tiered
// decimals: whole numbers stay whole, big values drop decimals entirely,
// sub-unit values keep two places.
func FormatQuantity(quantity float64, unit string, system System) string {
	if system == Imperial {
		if def := GetDefinition(unit); def != nil && def.Type == Volume {
			return FormatAsFraction(quantity)
		}
	}
	if quantity == math.Trunc(quantity) {
		return strconv.FormatFloat(quantity, 'f', 0, 64)
	}
	switch {
	case quantity >= 10:
		return strconv.FormatFloat(math.Round(quantity), 'f', 0, 64)
	case quantity >= 1:
		return strings.TrimSuffix(strconv.FormatFloat(quantity, 'f', 1, 64), ".0")
	default:
		s := strconv.FormatFloat(quantity, 'f', 2, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, ".")
	}
}

// FormatAsFraction renders a value as "<whole> <fraction>", "<fraction>"
// when the whole part is zero, or just the whole number when the remainder
// snaps to 0 or 1. The remainder always snaps to the nearest entry in
// cookingFractions.
func FormatAsFraction(value float64) string {
	whole := int(math.Floor(value))
	remainder := value - math.Floor(value)

	best := 0
	bestDiff := math.Inf(1)
	for i, f := range cookingFractions {
		if diff := math.Abs(remainder - f.value); diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}

	chosen := cookingFractions[best]
	if chosen.value == 1 {
		whole++
	}
	if chosen.text == "" {
		return strconv.Itoa(whole)
	}
	if whole == 0 {
		return chosen.text
	}
	return strconv.Itoa(whole) + " " + chosen.text
}
