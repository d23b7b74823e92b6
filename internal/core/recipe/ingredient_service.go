package recipe

import (
	"context"
	"fmt"
	"math"

	"recipe-quantity/internal/core/cache"
	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	scaleNamespace       = "scale"
	conversionsNamespace = "conversions"
)

// IngredientService 食材份量服務：依份量縮放食材列表並附上替代單位
type IngredientService struct {
	*Service
	scaling config.ScalingConfig
}

// NewIngredientService 創建新的食材份量服務
func NewIngredientService(cacheManager *cache.CacheManager, scaling config.ScalingConfig) *IngredientService {
	return &IngredientService{
		Service: NewService(cacheManager),
		scaling: scaling,
	}
}

// Scale 依 original/target 份量縮放整份食材列表。
// 無法解析的數量原樣保留；無法辨識的單位不提供換算。
func (s *IngredientService) Scale(ctx context.Context, req ScaleRequest) (*ScaleResult, error) {
	if len(req.Ingredients) > s.scaling.MaxIngredients {
		return nil, common.ErrInvalidRequest.WithErr(
			fmt.Errorf("too many ingredients: %d > %d", len(req.Ingredients), s.scaling.MaxIngredients))
	}

	multiplier, ok := quantity.ServingsMultiplier(req.OriginalServings, req.TargetServings)
	if !ok {
		return nil, common.ErrInvalidServings.WithErr(
			fmt.Errorf("original=%d target=%d", req.OriginalServings, req.TargetServings))
	}
	if multiplier > s.scaling.MaxMultiplier {
		return nil, common.ErrInvalidMultiplier.WithErr(
			fmt.Errorf("multiplier %.2f exceeds %.2f", multiplier, s.scaling.MaxMultiplier))
	}

	key, err := s.getCacheKey(req)
	if err != nil {
		return nil, err
	}
	var cached ScaleResult
	if s.getFromCache(ctx, scaleNamespace, key, &cached) {
		return &cached, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, common.ErrRequestTimeout.WithErr(err)
	}

	result := &ScaleResult{
		Multiplier:  multiplier,
		Ingredients: make([]ScaledIngredient, 0, len(req.Ingredients)),
	}
	scaledCount := 0
	for _, ing := range req.Ingredients {
		scaled := scaleIngredient(ing, multiplier)
		if scaled.Scaled {
			scaledCount++
		}
		result.Ingredients = append(result.Ingredients, scaled)
	}

	common.LogInfo("食材份量已縮放",
		zap.Int("original_servings", req.OriginalServings),
		zap.Int("target_servings", req.TargetServings),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Int("scaled", scaledCount),
	)

	s.setToCache(ctx, scaleNamespace, key, result)
	return result, nil
}

func scaleIngredient(ing common.Ingredient, multiplier float64) ScaledIngredient {
	out := ScaledIngredient{
		Name:           ing.Name,
		Amount:         quantity.ScaleAmount(ing.Amount, multiplier),
		OriginalAmount: ing.Amount,
		Unit:           ing.Unit,
		IsSpice:        ing.IsSpice,
		Conversions:    []quantity.ConversionResult{},
	}

	value, parsable := quantity.ParseAmount(ing.Amount)
	out.Scaled = parsable

	unit, known := quantity.ParseUnit(ing.Unit)
	if known && unit != quantity.None {
		out.Unit = unit.String()
	}
	if parsable && known {
		out.Conversions = quantity.Conversions(unit, value*multiplier)
	}
	return out
}

// Conversions 返回以文字表示的數量在其他單位下的等量
func (s *IngredientService) Conversions(ctx context.Context, unitText, amountText string) (*ConversionSet, error) {
	unit, ok := quantity.ParseUnit(unitText)
	if !ok {
		return nil, common.ErrUnknownUnit.WithErr(fmt.Errorf("unit %q", unitText))
	}
	amount, ok := quantity.ParseAmount(amountText)
	if !ok {
		return nil, common.ErrInvalidAmount.WithErr(fmt.Errorf("amount %q", amountText))
	}

	key := unit.String() + "|" + fmt.Sprintf("%g", amount)
	var cached ConversionSet
	if s.getFromCache(ctx, conversionsNamespace, key, &cached) {
		return &cached, nil
	}

	result := &ConversionSet{
		Unit:        unit,
		Amount:      amount,
		System:      quantity.SystemOf(unit),
		Conversions: quantity.Conversions(unit, amount),
	}
	s.setToCache(ctx, conversionsNamespace, key, result)
	return result, nil
}

// ScaleAmount 依倍率縮放單一數量，倍率必須為有限非負數且不超過上限
func (s *IngredientService) ScaleAmount(raw string, multiplier float64) (string, bool, error) {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier < 0 {
		return "", false, common.ErrInvalidMultiplier
	}
	if multiplier > s.scaling.MaxMultiplier {
		return "", false, common.ErrInvalidMultiplier.WithErr(
			fmt.Errorf("multiplier %.2f exceeds %.2f", multiplier, s.scaling.MaxMultiplier))
	}
	_, parsable := quantity.ParseAmount(raw)
	return quantity.ScaleAmount(raw, multiplier), parsable, nil
}
