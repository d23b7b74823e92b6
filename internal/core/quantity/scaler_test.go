package quantity

import (
	"math"
	"sync"
	"testing"
)

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		multiplier float64
		want       string
	}{
		{"whole number", "2", 1.5, "3"},
		{"fraction", "1/2", 4, "2"},
		{"mixed number", "1 1/2", 2, "3"},
		{"glyph", "½", 3, "1½"},
		{"halve", "250", 0.5, "125"},
		{"decimal result", "3", 0.8, "2.4"},
		{"tiny result", "1", 0.001, "<0.01"},
		{"unparsable passthrough", "a pinch", 2, "a pinch"},
		{"empty passthrough", "", 2, ""},
		{"nan multiplier", "2", math.NaN(), "2"},
		{"inf multiplier", "2", math.Inf(1), "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleAmount(tt.raw, tt.multiplier); got != tt.want {
				t.Errorf("ScaleAmount(%q, %v) = %q, want %q", tt.raw, tt.multiplier, got, tt.want)
			}
		})
	}
}

func TestScaleAmountByOneNormalizes(t *testing.T) {
	inputs := []string{"2", "2.50", "1/2", "1 1/2", "1½", "0.333", "１２", "250.00"}
	for _, s := range inputs {
		v, ok := ParseAmount(s)
		if !ok {
			t.Fatalf("ParseAmount(%q) failed", s)
		}
		if got, want := ScaleAmount(s, 1), FormatAmount(v); got != want {
			t.Errorf("ScaleAmount(%q, 1) = %q, want %q", s, got, want)
		}
	}
}

func TestServingsMultiplier(t *testing.T) {
	if m, ok := ServingsMultiplier(4, 6); !ok || m != 1.5 {
		t.Errorf("ServingsMultiplier(4, 6) = %v, %v", m, ok)
	}
	if _, ok := ServingsMultiplier(0, 6); ok {
		t.Error("expected zero original servings to be rejected")
	}
	if _, ok := ServingsMultiplier(4, -1); ok {
		t.Error("expected negative target servings to be rejected")
	}
}

func TestConcurrentUse(t *testing.T) {
	inputs := []struct {
		raw  string
		unit Unit
	}{
		{"1 1/2", Cup},
		{"16", Ounce},
		{"½", Teaspoon},
		{"250", Gram},
		{"a pinch", Pinch},
	}
	wantScaled := make([]string, len(inputs))
	wantConv := make([][]ConversionResult, len(inputs))
	for i, in := range inputs {
		wantScaled[i] = ScaleAmount(in.raw, 3)
		v, _ := ParseAmount(in.raw)
		wantConv[i] = Conversions(in.unit, v)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				i := n % len(inputs)
				in := inputs[i]
				if got := ScaleAmount(in.raw, 3); got != wantScaled[i] {
					t.Errorf("ScaleAmount(%q, 3) = %q, want %q", in.raw, got, wantScaled[i])
					return
				}
				v, _ := ParseAmount(in.raw)
				got := Conversions(in.unit, v)
				if len(got) != len(wantConv[i]) {
					t.Errorf("Conversions(%s, %v) = %v, want %v", in.unit, v, got, wantConv[i])
					return
				}
				for k := range got {
					if got[k] != wantConv[i][k] {
						t.Errorf("Conversions(%s, %v)[%d] = %v, want %v", in.unit, v, k, got[k], wantConv[i][k])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
