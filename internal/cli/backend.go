package cli

import (
	"context"
	"fmt"

	qtyapi "recipe-quantity/internal/api/handlers/quantity"
	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/core/recipe"
	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"
)

// backend 是 CLI 使用的數量引擎，可為本地或遠端 HTTP 服務
type backend interface {
	Units(ctx context.Context) ([]qtyapi.UnitInfo, error)
	Unit(ctx context.Context, unit string) (*qtyapi.UnitInfo, error)
	Parse(ctx context.Context, amount string) (*qtyapi.ParseResponse, error)
	Format(ctx context.Context, value float64) (string, error)
	Scale(ctx context.Context, amount string, multiplier float64) (*qtyapi.ScaleResponse, error)
	Conversions(ctx context.Context, unit, amount string) (*recipe.ConversionSet, error)
	ScaleRecipe(ctx context.Context, req recipe.ScaleRequest) (*recipe.ScaleResult, error)
}

// localBackend 直接在程序內呼叫引擎
type localBackend struct {
	ingredients *recipe.IngredientService
}

func newLocalBackend(scaling config.ScalingConfig) *localBackend {
	return &localBackend{ingredients: recipe.NewIngredientService(nil, scaling)}
}

func (b *localBackend) Units(ctx context.Context) ([]qtyapi.UnitInfo, error) {
	units := quantity.Units()
	out := make([]qtyapi.UnitInfo, 0, len(units))
	for _, u := range units {
		out = append(out, qtyapi.NewUnitInfo(u))
	}
	return out, nil
}

func (b *localBackend) Unit(ctx context.Context, unit string) (*qtyapi.UnitInfo, error) {
	u, ok := quantity.ParseUnit(unit)
	if !ok {
		return nil, common.ErrUnknownUnit.WithErr(fmt.Errorf("unit %q", unit))
	}
	info := qtyapi.NewUnitInfo(u)
	return &info, nil
}

func (b *localBackend) Parse(ctx context.Context, amount string) (*qtyapi.ParseResponse, error) {
	resp := &qtyapi.ParseResponse{Amount: amount}
	if v, ok := quantity.ParseAmount(amount); ok {
		resp.Value = &v
		resp.Parsable = true
		resp.Formatted = quantity.FormatAmount(v)
	}
	return resp, nil
}

func (b *localBackend) Format(ctx context.Context, value float64) (string, error) {
	return quantity.FormatAmount(value), nil
}

func (b *localBackend) Scale(ctx context.Context, amount string, multiplier float64) (*qtyapi.ScaleResponse, error) {
	scaled, parsable, err := b.ingredients.ScaleAmount(amount, multiplier)
	if err != nil {
		return nil, err
	}
	return &qtyapi.ScaleResponse{Amount: amount, Scaled: scaled, Parsable: parsable}, nil
}

func (b *localBackend) Conversions(ctx context.Context, unit, amount string) (*recipe.ConversionSet, error) {
	return b.ingredients.Conversions(ctx, unit, amount)
}

func (b *localBackend) ScaleRecipe(ctx context.Context, req recipe.ScaleRequest) (*recipe.ScaleResult, error) {
	return b.ingredients.Scale(ctx, req)
}
