package quantity

import (
	"encoding/json"
	"math"
	"testing"
)

func TestConversionsNonConvertible(t *testing.T) {
	for _, u := range []Unit{Piece, Clove, Slice, Pinch, Dash, ToTaste, None} {
		got := Conversions(u, 3)
		if got == nil || len(got) != 0 {
			t.Errorf("Conversions(%s, 3) = %v, want empty", u, got)
		}
	}
}

func TestConversionsLengthHasNoRules(t *testing.T) {
	for _, u := range []Unit{Centimeter, Millimeter} {
		if !IsConvertible(u) {
			t.Fatalf("%s should be convertible", u)
		}
		got := Conversions(u, 2)
		if got == nil || len(got) != 0 {
			t.Errorf("Conversions(%s, 2) = %v, want empty", u, got)
		}
		if rules := RulesFrom(u); len(rules) != 0 {
			t.Errorf("RulesFrom(%s) = %v, want none", u, rules)
		}
	}
}

func TestConversionsOrder(t *testing.T) {
	tests := []struct {
		name   string
		unit   Unit
		amount float64
		want   []Unit
	}{
		{"ounces to grams first", Ounce, 16, []Unit{Gram, Pound}},
		{"cup", Cup, 1, []Unit{Milliliter, Liter, Tablespoon, Teaspoon}},
		{"readable cup first", Milliliter, 240, []Unit{Cup, Teaspoon, Tablespoon, Liter}},
		{"grams", Gram, 1500, []Unit{Ounce, Pound, Kilogram, Milligram}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Conversions(tt.unit, tt.amount)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results %v, want %v", len(got), got, tt.want)
			}
			for i, u := range tt.want {
				if got[i].Unit != u {
					t.Errorf("result[%d] = %s, want %s (all: %v)", i, got[i].Unit, u, got)
				}
			}
		})
	}
}

func TestConversionsOunceToGram(t *testing.T) {
	got := Conversions(Ounce, 16)
	if len(got) == 0 {
		t.Fatal("expected conversions for ounces")
	}
	first := got[0]
	if first.System != SystemMetric {
		t.Fatalf("first system = %s, want metric", first.System)
	}
	if math.Abs(first.Amount-453.6) > 0.1 {
		t.Errorf("16 oz = %v g, want about 453.6", first.Amount)
	}
	if first.Label != "gram" {
		t.Errorf("label = %q, want gram", first.Label)
	}
}

func TestConversionsShape(t *testing.T) {
	amounts := []float64{0.001, 0.5, 1, 16, 250, 5000}
	for _, u := range Units() {
		if !IsConvertible(u) {
			continue
		}
		source := SystemOf(u)
		for _, amount := range amounts {
			got := Conversions(u, amount)
			if len(got) > MaxConversions {
				t.Errorf("Conversions(%s, %v) returned %d results", u, amount, len(got))
			}
			seenSameSystem := false
			for _, r := range got {
				if r.System == SystemUniversal {
					t.Errorf("Conversions(%s, %v) returned universal unit %s", u, amount, r.Unit)
				}
				if r.Unit == u {
					t.Errorf("Conversions(%s, %v) converted to itself", u, amount)
				}
				if r.System == source {
					seenSameSystem = true
				} else if seenSameSystem {
					t.Errorf("Conversions(%s, %v): cross-system %s after same-system result", u, amount, r.Unit)
				}
			}
		}
	}
}

func TestReadabilityScore(t *testing.T) {
	tests := []struct {
		input float64
		want  int
	}{
		{2, scoreInteger},
		{1000, scoreInteger},
		{2.5, scoreFraction},
		{2.33, scoreFraction},
		{0.75, scoreFraction},
		{3.05, scoreNearWhole},
		{3.95, scoreNearWhole},
		{2.4, scoreDefault},
		{0.005, scoreUnreadable},
		{1500, scoreUnreadable},
	}
	for _, tt := range tests {
		if got := readabilityScore(tt.input); got != tt.want {
			t.Errorf("readabilityScore(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestConversionResultJSON(t *testing.T) {
	data, err := json.Marshal(ConversionResult{Unit: Gram, Amount: 453.592, System: SystemMetric, Label: "gram"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"unit":"g","amount":453.592,"system":"metric","label":"gram"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
