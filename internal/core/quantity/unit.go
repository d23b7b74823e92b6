// Package quantity parses, formats, converts and scales ingredient amounts.
// Everything here is a pure function over static unit tables and is safe
// for concurrent use.
package quantity

import (
	"fmt"
	"strings"
)

// Unit 食材計量單位
type Unit int

const (
	Milliliter Unit = iota
	Liter
	Teaspoon
	Tablespoon
	Cup
	Milligram
	Gram
	Kilogram
	Ounce
	Pound
	Centimeter
	Millimeter
	Piece
	Clove
	Slice
	Pinch
	Dash
	ToTaste
	None

	unitCount
)

// System 度量系統
type System string

const (
	SystemMetric    System = "metric"
	SystemUS        System = "us"
	SystemUniversal System = "universal"
)

// Family 單位類別，換算只會發生在同一類別內
type Family string

const (
	FamilyVolume Family = "volume"
	FamilyWeight Family = "weight"
	FamilyLength Family = "length"
	FamilyCount  Family = "count"
)

type unitInfo struct {
	code    string
	name    string
	system  System
	family  Family
	aliases []string
}

var unitTable = [...]unitInfo{
	Milliliter: {"ml", "milliliter", SystemMetric, FamilyVolume, []string{"milliliters", "millilitre", "millilitres", "mls"}},
	Liter:      {"l", "liter", SystemMetric, FamilyVolume, []string{"liters", "litre", "litres", "ltr"}},
	Teaspoon:   {"tsp", "teaspoon", SystemUS, FamilyVolume, []string{"teaspoons", "tsps"}},
	Tablespoon: {"tbsp", "tablespoon", SystemUS, FamilyVolume, []string{"tablespoons", "tbsps", "tbs", "tbl"}},
	Cup:        {"cup", "cup", SystemUS, FamilyVolume, []string{"cups"}},
	Milligram:  {"mg", "milligram", SystemMetric, FamilyWeight, []string{"milligrams", "milligramme"}},
	Gram:       {"g", "gram", SystemMetric, FamilyWeight, []string{"grams", "gramme", "grammes", "gr"}},
	Kilogram:   {"kg", "kilogram", SystemMetric, FamilyWeight, []string{"kilograms", "kilo", "kilos", "kgs"}},
	Ounce:      {"oz", "ounce", SystemUS, FamilyWeight, []string{"ounces"}},
	Pound:      {"lb", "pound", SystemUS, FamilyWeight, []string{"pounds", "lbs"}},
	Centimeter: {"cm", "centimeter", SystemMetric, FamilyLength, []string{"centimeters", "centimetre", "centimetres"}},
	Millimeter: {"mm", "millimeter", SystemMetric, FamilyLength, []string{"millimeters", "millimetre", "millimetres"}},
	Piece:      {"piece", "piece", SystemUniversal, FamilyCount, []string{"pieces", "pc", "pcs"}},
	Clove:      {"clove", "clove", SystemUniversal, FamilyCount, []string{"cloves"}},
	Slice:      {"slice", "slice", SystemUniversal, FamilyCount, []string{"slices"}},
	Pinch:      {"pinch", "pinch", SystemUniversal, FamilyCount, []string{"pinches"}},
	Dash:       {"dash", "dash", SystemUniversal, FamilyCount, []string{"dashes"}},
	ToTaste:    {"to_taste", "to taste", SystemUniversal, FamilyCount, []string{"to taste", "to-taste"}},
	None:       {"none", "", SystemUniversal, FamilyCount, []string{""}},
}

// unitTable must describe every Unit.
var _ = [1]struct{}{}[len(unitTable)-int(unitCount)]

var unitLookup = buildUnitLookup()

func buildUnitLookup() map[string]Unit {
	m := make(map[string]Unit, len(unitTable)*4)
	for i, info := range unitTable {
		u := Unit(i)
		m[info.code] = u
		m[info.name] = u
		for _, alias := range info.aliases {
			m[alias] = u
		}
	}
	return m
}

// Units 依宣告順序返回所有單位
func Units() []Unit {
	out := make([]Unit, 0, unitCount)
	for u := Unit(0); u < unitCount; u++ {
		out = append(out, u)
	}
	return out
}

// Valid 是否為已知單位
func (u Unit) Valid() bool {
	return u >= 0 && u < unitCount
}

// String returns the short code used on the wire ("ml", "tbsp", "to_taste").
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitTable[u].code
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid unit %d", int(u))
	}
	return []byte(unitTable[u].code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and accepts the same
// spellings as ParseUnit.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, ok := ParseUnit(string(text))
	if !ok {
		return fmt.Errorf("unknown unit %q", string(text))
	}
	*u = parsed
	return nil
}

// ParseUnit 解析單位文字，支援代碼、全名與常見別名（不分大小寫）
func ParseUnit(text string) (Unit, bool) {
	key := strings.ToLower(strings.TrimSpace(text))
	key = strings.TrimSuffix(key, ".")
	u, ok := unitLookup[key]
	return u, ok
}

// SystemOf 返回單位所屬的度量系統
func SystemOf(u Unit) System {
	if !u.Valid() {
		return SystemUniversal
	}
	return unitTable[u].system
}

// FamilyOf 返回單位類別
func FamilyOf(u Unit) Family {
	if !u.Valid() {
		return FamilyCount
	}
	return unitTable[u].family
}

// IsConvertible reports whether amounts in u can be shown in other units.
// Count-based units never convert.
func IsConvertible(u Unit) bool {
	return SystemOf(u) != SystemUniversal
}

// FullName 返回單位全名，None 為空字串
func FullName(u Unit) string {
	if !u.Valid() {
		return ""
	}
	return unitTable[u].name
}
