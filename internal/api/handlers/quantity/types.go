package quantity

import (
	"recipe-quantity/internal/core/quantity"
)

// UnitInfo 單位描述
type UnitInfo struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	System      quantity.System `json:"system"`
	Family      quantity.Family `json:"family"`
	Convertible bool            `json:"convertible"`
}

// NewUnitInfo 由單位建立描述
func NewUnitInfo(u quantity.Unit) UnitInfo {
	return UnitInfo{
		Code:        u.String(),
		Name:        quantity.FullName(u),
		System:      quantity.SystemOf(u),
		Family:      quantity.FamilyOf(u),
		Convertible: quantity.IsConvertible(u),
	}
}

// ParseRequest 解析數量文字
type ParseRequest struct {
	Amount string `json:"amount"`
}

// ParseResponse 解析結果；無法解析時 value 為 null
type ParseResponse struct {
	Amount    string   `json:"amount"`
	Value     *float64 `json:"value"`
	Parsable  bool     `json:"parsable"`
	Formatted string   `json:"formatted,omitempty"`
}

// FormatRequest 將數值格式化為易讀文字
type FormatRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

// FormatResponse 格式化結果
type FormatResponse struct {
	Text string `json:"text"`
}

// ScaleRequest 依倍率縮放單一數量
type ScaleRequest struct {
	Amount     string   `json:"amount"`
	Multiplier *float64 `json:"multiplier" binding:"required"`
}

// ScaleResponse 縮放結果；無法解析的數量原樣返回
type ScaleResponse struct {
	Amount   string `json:"amount"`
	Scaled   string `json:"scaled"`
	Parsable bool   `json:"parsable"`
}
