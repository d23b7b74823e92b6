package quantity

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

type vulgarFraction struct {
	glyph string
	value float64
}

// 依此順序比對，只取第一個命中的字元
var vulgarFractions = []vulgarFraction{
	{"¼", 0.25},
	{"½", 0.5},
	{"¾", 0.75},
	{"⅓", 1.0 / 3.0},
	{"⅔", 2.0 / 3.0},
	{"⅛", 0.125},
	{"⅜", 0.375},
	{"⅝", 0.625},
	{"⅞", 0.875},
}

var (
	simpleFractionPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)$`)
	mixedNumberPattern    = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)$`)
)

// ParseAmount 將使用者或 AI 產生的數量文字解析為數值。
// 無法解析時返回 false，呼叫端應把原文當作顯示文字處理。
//
// 支援整數、小數、分數 "1/2"、帶分數 "1 1/2" 以及 "1½" 這類
// Unicode 分數字元。全形數字會先轉為半形。負數與非有限值視為無法解析。
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(width.Narrow.String(raw))
	if s == "" {
		return 0, false
	}

	if v, ok := parseVulgarFraction(s); ok {
		return accept(v)
	}

	if m := simpleFractionPattern.FindStringSubmatch(s); m != nil {
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return accept(num / den)
	}

	if m := mixedNumberPattern.FindStringSubmatch(s); m != nil {
		whole, err1 := strconv.ParseFloat(m[1], 64)
		num, err2 := strconv.ParseFloat(m[2], 64)
		den, err3 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, false
		}
		return accept(whole + num/den)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return accept(v)
}

// parseVulgarFraction handles "½", "1½" and "2 ¾". Only the first glyph in
// vulgarFractions order is honored; text after the glyph is ignored.
func parseVulgarFraction(s string) (float64, bool) {
	for _, f := range vulgarFractions {
		idx := strings.Index(s, f.glyph)
		if idx < 0 {
			continue
		}
		whole := 0
		if prefix := strings.TrimSpace(s[:idx]); prefix != "" {
			if n, err := strconv.Atoi(prefix); err == nil {
				whole = n
			}
		}
		return float64(whole) + f.value, true
	}
	return 0, false
}

func accept(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
