package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-quantity/internal/api"
	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/core/recipe"
	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	srv := httptest.NewServer(api.SetupRouter(cfg, nil))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 5*time.Second)
}

func TestClientQuantity(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	parsed, err := c.Parse(ctx, "2 1/4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Parsable || parsed.Value == nil || *parsed.Value != 2.25 || parsed.Formatted != "2¼" {
		t.Errorf("Parse = %+v", parsed)
	}

	text, err := c.Format(ctx, 0.5)
	if err != nil || text != "½" {
		t.Errorf("Format(0.5) = %q, %v", text, err)
	}

	scaled, err := c.Scale(ctx, "3", 0.5)
	if err != nil || scaled.Scaled != "1½" || !scaled.Parsable {
		t.Errorf("Scale = %+v, %v", scaled, err)
	}
}

func TestClientUnitsAndConversions(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	units, err := c.Units(ctx)
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if len(units) != len(quantity.Units()) {
		t.Errorf("got %d units", len(units))
	}

	u, err := c.Unit(ctx, "lbs")
	if err != nil || u.Code != "lb" {
		t.Errorf("Unit(lbs) = %+v, %v", u, err)
	}

	set, err := c.Conversions(ctx, "g", "500")
	if err != nil {
		t.Fatalf("Conversions: %v", err)
	}
	if set.Unit != quantity.Gram || len(set.Conversions) == 0 || set.Conversions[0].System != quantity.SystemUS {
		t.Errorf("Conversions = %+v", set)
	}
}

func TestClientScaleRecipe(t *testing.T) {
	c := newTestClient(t)
	res, err := c.ScaleRecipe(context.Background(), recipe.ScaleRequest{
		Ingredients: []common.Ingredient{
			{Name: "sugar", Amount: "1", Unit: "cup"},
		},
		OriginalServings: 2,
		TargetServings:   1,
	})
	if err != nil {
		t.Fatalf("ScaleRecipe: %v", err)
	}
	if res.Multiplier != 0.5 || res.Ingredients[0].Amount != "½" {
		t.Errorf("ScaleRecipe = %+v", res)
	}
}

func TestClientErrors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Unit(ctx, "parsec"); !errors.Is(err, common.ErrUnknownUnit) {
		t.Errorf("Unit(parsec) err = %v", err)
	}
	if _, err := c.Scale(ctx, "1", -1); !errors.Is(err, common.ErrInvalidMultiplier) {
		t.Errorf("Scale(-1) err = %v", err)
	}

	down := New("http://127.0.0.1:1", time.Second)
	if _, err := down.Parse(ctx, "1"); !errors.Is(err, common.ErrServiceUnavailable) {
		t.Errorf("unreachable server err = %v", err)
	}
}
