package quantity

import (
	"math"
	"sort"
)

// MaxConversions 每次查詢最多返回的換算結果數
const MaxConversions = 4

// ConversionResult 一筆替代單位的換算結果
type ConversionResult struct {
	Unit   Unit    `json:"unit"`
	Amount float64 `json:"amount"`
	System System  `json:"system"`
	Label  string  `json:"label"`
}

// Conversions 返回 amount（以 u 表示）在其他單位下的等量，
// 依可讀性排序，最多 MaxConversions 筆。不可換算的單位返回空切片。
func Conversions(u Unit, amount float64) []ConversionResult {
	if !IsConvertible(u) {
		return []ConversionResult{}
	}

	rules := RulesFrom(u)
	results := make([]ConversionResult, 0, len(rules))
	for _, r := range rules {
		system := SystemOf(r.To)
		if system == SystemUniversal {
			continue
		}
		results = append(results, ConversionResult{
			Unit:   r.To,
			Amount: amount * r.Factor,
			System: system,
			Label:  FullName(r.To),
		})
	}

	results = rankConversions(SystemOf(u), results)
	if len(results) > MaxConversions {
		results = results[:MaxConversions]
	}
	return results
}

// rankConversions orders results for display: conversions into another
// measurement system come first, then higher readability scores. Ties keep
// table order.
func rankConversions(source System, results []ConversionResult) []ConversionResult {
	sort.SliceStable(results, func(i, j int) bool {
		ci, cj := results[i].System != source, results[j].System != source
		if ci != cj {
			return ci
		}
		return readabilityScore(results[i].Amount) > readabilityScore(results[j].Amount)
	})
	return results
}

// readability scores
const (
	scoreInteger    = 100
	scoreFraction   = 80
	scoreNearWhole  = 60
	scoreDefault    = 40
	scoreUnreadable = 10
)

var readableFractions = []float64{0.25, 0.5, 0.75, 0.33, 0.67}

// readabilityScore 可讀性評分，屬於顯示策略，可調整門檻
func readabilityScore(v float64) int {
	if v < 0.01 || v > 1000 {
		return scoreUnreadable
	}
	if math.Abs(v-math.Round(v)) < 1e-9 {
		return scoreInteger
	}
	frac := v - math.Floor(v)
	for _, f := range readableFractions {
		if math.Abs(frac-f) <= 0.01 {
			return scoreFraction
		}
	}
	if frac <= 0.1 || frac >= 0.9 {
		return scoreNearWhole
	}
	return scoreDefault
}
