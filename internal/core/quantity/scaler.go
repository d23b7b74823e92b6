package quantity

import "math"

// ScaleAmount 依倍率縮放儲存的數量文字。
// 無法解析的文字（例如 "a pinch"）原樣返回。
func ScaleAmount(raw string, multiplier float64) string {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return raw
	}
	v, ok := ParseAmount(raw)
	if !ok {
		return raw
	}
	return FormatAmount(v * multiplier)
}

// ServingsMultiplier returns target/original for serving-size scaling.
func ServingsMultiplier(original, target int) (float64, bool) {
	if original <= 0 || target <= 0 {
		return 0, false
	}
	return float64(target) / float64(original), true
}
