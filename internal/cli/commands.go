package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	qtyapi "recipe-quantity/internal/api/handlers/quantity"
	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/core/recipe"
	"recipe-quantity/internal/pkg/common"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <amount>",
		Short: "Parse an amount such as \"1 1/2\" or \"2¾\"",
		Example: `  qty parse "1 1/2"
  qty parse ¾ -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ctx, cancel := opts.newContext(cmd)
			defer cancel()

			resp, err := opts.backend().Parse(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, resp, func(w io.Writer) error {
				if !resp.Parsable {
					fmt.Fprintf(w, "%q is not a number\n", resp.Amount)
					return nil
				}
				fmt.Fprintf(w, "%s\t%s\n", strconv.FormatFloat(*resp.Value, 'f', -1, 64), resp.Formatted)
				return nil
			})
		},
	}
}

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "format <number>",
		Short:   "Render a number the way a recipe would show it",
		Example: `  qty format 0.333`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}
			ctx, cancel := opts.newContext(cmd)
			defer cancel()

			text, err := opts.backend().Format(ctx, value)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, qtyapi.FormatResponse{Text: text}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, text)
				return err
			})
		},
	}
}

func newScaleCmd(opts *options) *cobra.Command {
	var (
		by       float64
		from, to int
	)
	cmd := &cobra.Command{
		Use:   "scale <amount>",
		Short: "Scale an amount by a multiplier or by servings",
		Example: `  qty scale "1 1/2" --by 2
  qty scale ½ --from 4 --to 6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			multiplier, err := resolveMultiplier(cmd, by, from, to)
			if err != nil {
				return err
			}
			ctx, cancel := opts.newContext(cmd)
			defer cancel()

			resp, err := opts.backend().Scale(ctx, strings.Join(args, " "), multiplier)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, resp, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, resp.Scaled)
				return err
			})
		},
	}
	cmd.Flags().Float64Var(&by, "by", 0, "multiplier")
	cmd.Flags().IntVar(&from, "from", 0, "original servings")
	cmd.Flags().IntVar(&to, "to", 0, "target servings")
	cmd.MarkFlagsMutuallyExclusive("by", "from")
	cmd.MarkFlagsMutuallyExclusive("by", "to")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

// resolveMultiplier 從 --by 或 --from/--to 取得倍率
func resolveMultiplier(cmd *cobra.Command, by float64, from, to int) (float64, error) {
	if cmd.Flags().Changed("by") {
		return by, nil
	}
	if !cmd.Flags().Changed("from") {
		return 0, errors.New("either --by or --from/--to is required")
	}
	m, ok := quantity.ServingsMultiplier(from, to)
	if !ok {
		return 0, common.ErrInvalidServings.WithErr(fmt.Errorf("from=%d to=%d", from, to))
	}
	return m, nil
}

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <amount> <unit>",
		Short: "Show an amount in other units",
		Example: `  qty convert 16 oz
  qty convert "1 1/2" cups`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ctx, cancel := opts.newContext(cmd)
			defer cancel()

			set, err := opts.backend().Conversions(ctx, args[1], args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, set, func(w io.Writer) error {
				return writeConversions(w, set)
			})
		},
	}
}

func newUnitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List known units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ctx, cancel := opts.newContext(cmd)
			defer cancel()

			units, err := opts.backend().Units(ctx)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, units, func(w io.Writer) error {
				return writeUnits(w, units)
			})
		},
	}
}

func newUnitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unit <name>",
		Short: "Look up one unit by code, name or alias",
		Example: `  qty unit tablespoons
  qty unit lbs -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ctx, cancel := opts.newContext(cmd)
			defer cancel()

			info, err := opts.backend().Unit(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, info, func(w io.Writer) error {
				return writeUnits(w, []qtyapi.UnitInfo{*info})
			})
		},
	}
}

func newRecipeCmd(opts *options) *cobra.Command {
	var (
		from, to int
		plain    bool
	)
	cmd := &cobra.Command{
		Use:   "recipe <file>",
		Short: "Scale an ingredient list (JSON or YAML) to a new serving count",
		Long: `Scale every ingredient in a file by target/original servings.

The file holds a list of ingredients with name, amount, unit and is_spice
fields, in JSON or YAML. Amounts that are not numbers ("a pinch") are kept
as they are. JSON files are decoded strictly: unknown fields are an error.`,
		Example: `  qty recipe pancakes.json --from 4 --to 6
  qty recipe pancakes.yaml --from 2 --to 3 --plain`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ingredients, err := readIngredients(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := opts.newContext(cmd)
			defer cancel()

			res, err := opts.backend().ScaleRecipe(ctx, recipe.ScaleRequest{
				Ingredients:      ingredients,
				OriginalServings: from,
				TargetServings:   to,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, res, func(w io.Writer) error {
				if plain {
					_, err := io.WriteString(w, common.FormatIngredients(scaledIngredients(res)))
					return err
				}
				return writeScaledRecipe(w, res)
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "original servings")
	cmd.Flags().IntVar(&to, "to", 0, "target servings")
	cmd.Flags().BoolVar(&plain, "plain", false, "print only the scaled list, without original amounts or conversions")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// readIngredients 讀取食材列表；.json 檔以嚴格模式解析，其餘視為 YAML
func readIngredients(path string) ([]common.Ingredient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	var ingredients []common.Ingredient
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = common.DecodeJSONStrict(f, &ingredients)
	} else {
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&ingredients)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%s contains no ingredients", path)
	}
	return ingredients, nil
}

// scaledIngredients 將縮放結果轉回食材列表
func scaledIngredients(res *recipe.ScaleResult) []common.Ingredient {
	out := make([]common.Ingredient, 0, len(res.Ingredients))
	for _, ing := range res.Ingredients {
		out = append(out, common.Ingredient{
			Name:    ing.Name,
			Amount:  ing.Amount,
			Unit:    ing.Unit,
			IsSpice: ing.IsSpice,
		})
	}
	return out
}
