package recipe

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"recipe-quantity/internal/core/cache"
	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"
)

func newTestService(cm *cache.CacheManager) *IngredientService {
	return NewIngredientService(cm, config.ScalingConfig{MaxMultiplier: 10, MaxIngredients: 5})
}

func TestScale(t *testing.T) {
	s := newTestService(nil)
	req := ScaleRequest{
		Ingredients: []common.Ingredient{
			{Name: "flour", Amount: "2", Unit: "cup"},
			{Name: "butter", Amount: "1/2", Unit: "Tbsp."},
			{Name: "salt", Amount: "a pinch", Unit: "pinch", IsSpice: true},
			{Name: "eggs", Amount: "2", Unit: ""},
		},
		OriginalServings: 4,
		TargetServings:   6,
	}

	res, err := s.Scale(context.Background(), req)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if res.Multiplier != 1.5 {
		t.Errorf("multiplier = %v, want 1.5", res.Multiplier)
	}
	if len(res.Ingredients) != 4 {
		t.Fatalf("got %d ingredients", len(res.Ingredients))
	}

	tests := []struct {
		idx         int
		amount      string
		unit        string
		scaled      bool
		conversions bool
	}{
		{0, "3", "cup", true, true},
		{1, "¾", "tbsp", true, true},
		{2, "a pinch", "pinch", false, false},
		{3, "3", "", true, false},
	}
	for _, tt := range tests {
		got := res.Ingredients[tt.idx]
		if got.Amount != tt.amount || got.Unit != tt.unit || got.Scaled != tt.scaled {
			t.Errorf("%s: got amount=%q unit=%q scaled=%v", got.Name, got.Amount, got.Unit, got.Scaled)
		}
		if (len(got.Conversions) > 0) != tt.conversions {
			t.Errorf("%s: conversions = %v", got.Name, got.Conversions)
		}
		if got.Conversions == nil {
			t.Errorf("%s: conversions must not be nil", got.Name)
		}
	}

	if res.Ingredients[0].OriginalAmount != "2" {
		t.Errorf("original amount = %q", res.Ingredients[0].OriginalAmount)
	}
	if !res.Ingredients[2].IsSpice {
		t.Error("is_spice flag lost")
	}
	if res.Ingredients[0].Conversions[0].System != quantity.SystemMetric {
		t.Errorf("cup conversions should lead with metric, got %v", res.Ingredients[0].Conversions)
	}
}

func TestScaleValidation(t *testing.T) {
	s := newTestService(nil)
	one := []common.Ingredient{{Name: "flour", Amount: "1", Unit: "cup"}}

	tests := []struct {
		name string
		req  ScaleRequest
		want error
	}{
		{"zero original", ScaleRequest{Ingredients: one, OriginalServings: 0, TargetServings: 2}, common.ErrInvalidServings},
		{"negative target", ScaleRequest{Ingredients: one, OriginalServings: 2, TargetServings: -1}, common.ErrInvalidServings},
		{"multiplier too large", ScaleRequest{Ingredients: one, OriginalServings: 1, TargetServings: 20}, common.ErrInvalidMultiplier},
		{"too many ingredients", ScaleRequest{Ingredients: make([]common.Ingredient, 6), OriginalServings: 1, TargetServings: 2}, common.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Scale(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestScaleUsesCache(t *testing.T) {
	cm := cache.NewManager(&config.CacheConfig{Enabled: true, TTL: time.Minute, CleanupInterval: time.Minute}, nil)
	s := newTestService(cm)
	req := ScaleRequest{
		Ingredients:      []common.Ingredient{{Name: "milk", Amount: "1 1/2", Unit: "cups"}},
		OriginalServings: 2,
		TargetServings:   4,
	}

	first, err := s.Scale(context.Background(), req)
	if err != nil {
		t.Fatalf("first Scale: %v", err)
	}
	second, err := s.Scale(context.Background(), req)
	if err != nil {
		t.Fatalf("second Scale: %v", err)
	}
	if first.Ingredients[0].Amount != "3" || second.Ingredients[0].Amount != "3" {
		t.Errorf("amounts = %q, %q", first.Ingredients[0].Amount, second.Ingredients[0].Amount)
	}
	if len(second.Ingredients[0].Conversions) != len(first.Ingredients[0].Conversions) {
		t.Errorf("cached conversions differ: %v vs %v", second.Ingredients[0].Conversions, first.Ingredients[0].Conversions)
	}
	if stats := cm.GetStats(); stats.Hits != 1 {
		t.Errorf("expected one cache hit, stats = %+v", stats)
	}
}

func TestConversions(t *testing.T) {
	s := newTestService(nil)

	set, err := s.Conversions(context.Background(), "oz", "16")
	if err != nil {
		t.Fatalf("Conversions: %v", err)
	}
	if set.Unit != quantity.Ounce || set.System != quantity.SystemUS || set.Amount != 16 {
		t.Errorf("unexpected set %+v", set)
	}
	if len(set.Conversions) == 0 || set.Conversions[0].Unit != quantity.Gram {
		t.Errorf("expected grams first, got %v", set.Conversions)
	}

	set, err = s.Conversions(context.Background(), "clove", "2")
	if err != nil {
		t.Fatalf("Conversions: %v", err)
	}
	if len(set.Conversions) != 0 {
		t.Errorf("count units must not convert, got %v", set.Conversions)
	}

	if _, err := s.Conversions(context.Background(), "parsec", "1"); !errors.Is(err, common.ErrUnknownUnit) {
		t.Errorf("err = %v, want unknown unit", err)
	}
	if _, err := s.Conversions(context.Background(), "g", "lots"); !errors.Is(err, common.ErrInvalidAmount) {
		t.Errorf("err = %v, want invalid amount", err)
	}
}

func TestServiceScaleAmount(t *testing.T) {
	s := newTestService(nil)

	got, parsable, err := s.ScaleAmount("½", 3)
	if err != nil || !parsable || got != "1½" {
		t.Errorf("ScaleAmount(½, 3) = %q, %v, %v", got, parsable, err)
	}
	got, parsable, err = s.ScaleAmount("some", 2)
	if err != nil || parsable || got != "some" {
		t.Errorf("ScaleAmount(some, 2) = %q, %v, %v", got, parsable, err)
	}
	for _, m := range []float64{math.NaN(), math.Inf(1), -1, 11} {
		if _, _, err := s.ScaleAmount("1", m); !errors.Is(err, common.ErrInvalidMultiplier) {
			t.Errorf("multiplier %v: err = %v", m, err)
		}
	}
}
