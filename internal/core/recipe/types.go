package recipe

import (
	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/pkg/common"
)

// ScaleRequest 依份量縮放食材的請求
type ScaleRequest = common.RecipeScaleRequest

// ScaledIngredient 縮放後的食材
type ScaledIngredient struct {
	Name           string                      `json:"name" yaml:"name"`
	Amount         string                      `json:"amount" yaml:"amount"`
	OriginalAmount string                      `json:"original_amount" yaml:"original_amount"`
	Unit           string                      `json:"unit" yaml:"unit"`
	IsSpice        bool                        `json:"is_spice" yaml:"is_spice"`
	Scaled         bool                        `json:"scaled" yaml:"scaled"`
	Conversions    []quantity.ConversionResult `json:"conversions" yaml:"conversions"`
}

// ScaleResult 食材列表縮放結果
type ScaleResult struct {
	Multiplier  float64            `json:"multiplier" yaml:"multiplier"`
	Ingredients []ScaledIngredient `json:"ingredients" yaml:"ingredients"`
}

// ConversionSet 單一數量的替代單位
type ConversionSet struct {
	Unit        quantity.Unit               `json:"unit" yaml:"unit"`
	Amount      float64                     `json:"amount" yaml:"amount"`
	System      quantity.System             `json:"system" yaml:"system"`
	Conversions []quantity.ConversionResult `json:"conversions" yaml:"conversions"`
}
