package units

import "testing"

func TestConvertUnit(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		target   System
		want     *Converted
	}{
		{
			name:     "two cups to metric",
			quantity: 2, unit: "cup", target: Metric,
			want: &Converted{Quantity: 473, Unit: "ml"},
		},
		{
			name:     "one pound to metric",
			quantity: 1, unit: "lb", target: Metric,
			want: &Converted{Quantity: 454, Unit: "g"},
		},
		{
			name:     "two pounds to metric",
			quantity: 2, unit: "lb", target: Metric,
			want: &Converted{Quantity: 907, Unit: "g"},
		},
		{
			name:     "liter to imperial picks quart",
			quantity: 1, unit: "l", target: Imperial,
			want: &Converted{Quantity: 1, Unit: "quart"},
		},
		{
			name:     "250 ml to imperial picks cup",
			quantity: 250, unit: "ml", target: Imperial,
			want: &Converted{Quantity: 1, Unit: "cup"},
		},
		{
			name:     "100 g to imperial",
			quantity: 100, unit: "g", target: Imperial,
			want: &Converted{Quantity: 3.5, Unit: "oz"},
		},
		{
			name:     "half teaspoon to metric",
			quantity: 0.5, unit: "tsp", target: Metric,
			want: &Converted{Quantity: 2.5, Unit: "ml"},
		},
		{
			name:     "1500 g to metric picks kg",
			quantity: 1500, unit: "g", target: Metric,
			want: &Converted{Quantity: 1.5, Unit: "kg"},
		},
		{
			name:     "below every threshold falls to smallest unit",
			quantity: 0.5, unit: "ml", target: Imperial,
			want: &Converted{Quantity: 0.1, Unit: "tsp"},
		},
		{
			name:     "same system passes through with canonical alias",
			quantity: 2, unit: "Cups", target: Imperial,
			want: &Converted{Quantity: 2, Unit: "cup"},
		},
		{
			name:     "count unit passes through",
			quantity: 3, unit: "cloves", target: Metric,
			want: &Converted{Quantity: 3, Unit: "clove"},
		},
		{
			name:     "other unit passes through",
			quantity: 1, unit: "pinches", target: Imperial,
			want: &Converted{Quantity: 1, Unit: "pinch"},
		},
		{
			name:     "unknown unit",
			quantity: 2, unit: "flibbertigibbet", target: Metric,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertUnit(tt.quantity, tt.unit, tt.target)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ConvertUnit(%v, %q, %q) = %+v, want nil", tt.quantity, tt.unit, tt.target, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ConvertUnit(%v, %q, %q) = nil, want %+v", tt.quantity, tt.unit, tt.target, tt.want)
			}
			if got.Quantity != tt.want.Quantity || got.Unit != tt.want.Unit {
				t.Fatalf("ConvertUnit(%v, %q, %q) = %+v, want %+v", tt.quantity, tt.unit, tt.target, got, tt.want)
			}
		})
	}
}

// Unit selection must never regress to a smaller unit as the magnitude
// grows within one system and type.
func TestUnitSelectionMonotonic(t *testing.T) {
	for system, byType := range preferredUnits {
		for typ, list := range byType {
			rank := map[string]int{}
			for i, entry := range list {
				rank[entry.Unit] = len(list) - i
			}
			last := 0
			for base := 0.1; base < 1e5; base *= 1.5 {
				chosen := pickDisplayUnit(typ, system, base)
				if rank[chosen.Canonical] < last {
					t.Fatalf("%s/%s: selection regressed to %q at base value %v", system, typ, chosen.Canonical, base)
				}
				last = rank[chosen.Canonical]
			}
		}
	}
}

func TestSmartRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{473.176, 473},
		{100.4, 100},
		{907.18474, 907},
		// 99.6 sits in the 10..100 tier and rounds to the nearest half,
		// not to an integer
		{99.6, 99.5},
		{12.3, 12.5},
		{10, 10},
		{1.1, 1},
		{3.6, 3.5},
		{2.4645, 2.5},
		{0.3, 0.25},
		{0.2, 0.25},
		{0.13, 0.125},
		{0.05, 0.05},
		{0.101, 0.1},
	}
	for _, tt := range tests {
		if got := smartRound(tt.in); got != tt.want {
			t.Errorf("smartRound(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Converting back and forth is lossy on purpose; the result only has to
// land in the same display neighborhood, not on the original value.
func TestRoundTripIsLossyNotBroken(t *testing.T) {
	imperial := ConvertUnit(500, "ml", Imperial)
	if imperial == nil {
		t.Fatal("conversion failed")
	}
	back := ConvertUnit(imperial.Quantity, imperial.Unit, Metric)
	if back == nil {
		t.Fatal("round trip conversion failed")
	}
	if back.Unit != "ml" {
		t.Fatalf("round trip landed on %q, want ml", back.Unit)
	}
	if back.Quantity < 400 || back.Quantity > 600 {
		t.Fatalf("round trip of 500 ml came back as %v ml", back.Quantity)
	}
}
