package quantity

// Rule 單位換算規則：amount(To) = amount(From) * Factor
type Rule struct {
	From   Unit
	To     Unit
	Factor float64
}

// conversionRules 換算表。每一組換算都提供雙向規則；
// 體積與重量之間不做換算（不假設密度），長度單位沒有任何規則。
var conversionRules = []Rule{
	// volume: metric <-> US
	{Milliliter, Teaspoon, 0.202884},
	{Teaspoon, Milliliter, 4.92892},
	{Milliliter, Tablespoon, 0.067628},
	{Tablespoon, Milliliter, 14.7868},
	{Milliliter, Cup, 0.00422675},
	{Cup, Milliliter, 236.588},
	{Liter, Cup, 4.22675},
	{Cup, Liter, 0.236588},

	// volume: US
	{Teaspoon, Tablespoon, 1.0 / 3.0},
	{Tablespoon, Teaspoon, 3},
	{Tablespoon, Cup, 1.0 / 16.0},
	{Cup, Tablespoon, 16},
	{Teaspoon, Cup, 1.0 / 48.0},
	{Cup, Teaspoon, 48},

	// volume: metric
	{Milliliter, Liter, 0.001},
	{Liter, Milliliter, 1000},

	// weight: metric <-> US
	{Gram, Ounce, 0.035274},
	{Ounce, Gram, 28.3495},
	{Kilogram, Pound, 2.20462},
	{Pound, Kilogram, 0.453592},
	{Pound, Gram, 453.592},
	{Gram, Pound, 0.00220462},

	// weight: metric
	{Milligram, Gram, 0.001},
	{Gram, Milligram, 1000},
	{Gram, Kilogram, 0.001},
	{Kilogram, Gram, 1000},

	// weight: US
	{Ounce, Pound, 1.0 / 16.0},
	{Pound, Ounce, 16},
}

// RulesFrom 返回以 u 為來源的換算規則，保持換算表宣告順序
func RulesFrom(u Unit) []Rule {
	var out []Rule
	for _, r := range conversionRules {
		if r.From == u {
			out = append(out, r)
		}
	}
	return out
}
