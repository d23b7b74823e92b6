package common

import (
	"fmt"
	"strings"
)

// Ingredient 食材（與外部儲存層相同的形狀）
type Ingredient struct {
	Name    string `json:"name" yaml:"name"`
	Amount  string `json:"amount" yaml:"amount"`
	Unit    string `json:"unit" yaml:"unit"`
	IsSpice bool   `json:"is_spice" yaml:"is_spice"`
}

// RecipeScaleRequest 依份量縮放食材的請求；份量由 ServingsMultiplier 驗證
type RecipeScaleRequest struct {
	Ingredients      []Ingredient `json:"ingredients" binding:"required"`
	OriginalServings int          `json:"original_servings"`
	TargetServings   int          `json:"target_servings"`
}

// FormatIngredients 格式化食材列表，每行一項
func FormatIngredients(ingredients []Ingredient) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		line := strings.TrimSpace(fmt.Sprintf("%s %s", ing.Amount, ing.Unit))
		if line == "" {
			sb.WriteString(fmt.Sprintf("- %s\n", ing.Name))
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", ing.Name, line))
	}
	return sb.String()
}
