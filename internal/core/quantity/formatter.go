package quantity

import (
	"math"
	"strconv"
	"strings"
)

const (
	minDisplayAmount  = 0.01
	fractionTolerance = 0.02
)

// 顯示用分數，依序比對
var displayFractions = []vulgarFraction{
	{"¼", 0.25},
	{"⅓", 0.33},
	{"½", 0.5},
	{"⅔", 0.67},
	{"¾", 0.75},
}

// FormatAmount 將數值轉為易讀字串，例如 "1½"、"2.5"、"250"。
// 永遠返回非空字串；非有限值顯示為 "0"。
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount == 0 {
		return "0"
	}
	if amount < 0 {
		return "-" + FormatAmount(-amount)
	}
	if amount < minDisplayAmount {
		return "<0.01"
	}

	whole := math.Floor(amount)
	decimal := amount - whole
	for _, f := range displayFractions {
		if math.Abs(decimal-f.value) < fractionTolerance {
			if whole > 0 {
				return strconv.FormatFloat(whole, 'f', 0, 64) + f.glyph
			}
			return f.glyph
		}
	}

	switch {
	case amount >= 100:
		return strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	case amount >= 10:
		return trimDecimal(strconv.FormatFloat(amount, 'f', 1, 64))
	default:
		return trimDecimal(strconv.FormatFloat(amount, 'f', 2, 64))
	}
}

// trimDecimal strips trailing zeros and a dangling decimal point.
func trimDecimal(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
