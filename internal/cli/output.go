package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	qtyapi "recipe-quantity/internal/api/handlers/quantity"
	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/core/recipe"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// render 以 yaml 輸出 v，或呼叫 text 輸出純文字
func render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case outputText, "":
		return text(w)
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}

func writeUnits(w io.Writer, units []qtyapi.UnitInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tSYSTEM\tFAMILY\tCONVERTIBLE")
	for _, u := range units {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", u.Code, u.Name, u.System, u.Family, u.Convertible)
	}
	return tw.Flush()
}

func writeConversions(w io.Writer, set *recipe.ConversionSet) error {
	fmt.Fprintf(w, "%s %s (%s)\n", quantity.FormatAmount(set.Amount), set.Unit, set.System)
	if len(set.Conversions) == 0 {
		fmt.Fprintln(w, "  no conversions")
		return nil
	}
	for _, c := range set.Conversions {
		fmt.Fprintf(w, "  = %s %s (%s, %s)\n", quantity.FormatAmount(c.Amount), c.Unit, c.Label, c.System)
	}
	return nil
}

func writeScaledRecipe(w io.Writer, res *recipe.ScaleResult) error {
	fmt.Fprintf(w, "multiplier: %s\n", quantity.FormatAmount(res.Multiplier))
	for _, ing := range res.Ingredients {
		line := ing.Amount
		if ing.Unit != "" {
			line += " " + ing.Unit
		}
		if ing.Scaled {
			fmt.Fprintf(w, "- %s: %s (was %s)\n", ing.Name, line, ing.OriginalAmount)
		} else {
			fmt.Fprintf(w, "- %s: %s\n", ing.Name, line)
		}
		for _, c := range ing.Conversions {
			fmt.Fprintf(w, "    ≈ %s %s\n", quantity.FormatAmount(c.Amount), c.Unit)
		}
	}
	return nil
}
