// Package cli 實作 qty 命令列工具。
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-quantity/internal/client"
	"recipe-quantity/internal/infrastructure/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options 全域旗標
type options struct {
	v       *viper.Viper
	timeout time.Duration
	output  string
}

// NewRootCmd 建立 qty 根命令
func NewRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "qty",
		Short: "Parse, format, convert and scale ingredient quantities",
		Long: `qty works with the free-form ingredient amounts found in recipes.

It understands integers, decimals, fractions ("1/2"), mixed numbers ("1 1/2")
and vulgar fractions ("1½"), converts between metric and US kitchen units and
rescales amounts when the number of servings changes.

By default everything runs locally. Pass --server (or set QTY_SERVER) to use a
running quantity API instead.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("server", "", "base URL of the quantity API (default: run locally)")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	flags.StringVarP(&opts.output, "output", "o", outputText, "output format: text or yaml")
	flags.Float64("max-multiplier", 0, "largest allowed scaling multiplier (default from config)")

	_ = opts.v.BindPFlag("server", flags.Lookup("server"))
	_ = opts.v.BindPFlag("scaling.max_multiplier", flags.Lookup("max-multiplier"))
	opts.v.SetEnvPrefix("QTY")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	opts.v.AutomaticEnv()

	rootCmd.AddCommand(
		newParseCmd(opts),
		newFormatCmd(opts),
		newScaleCmd(opts),
		newConvertCmd(opts),
		newUnitsCmd(opts),
		newUnitCmd(opts),
		newRecipeCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// backend 依 --server 選擇本地引擎或 HTTP 客戶端
func (o *options) backend() backend {
	if server := o.v.GetString("server"); server != "" {
		return client.New(server, o.timeout)
	}
	scaling := config.Default().Scaling
	if m := o.v.GetFloat64("scaling.max_multiplier"); m > 0 {
		scaling.MaxMultiplier = m
	}
	return newLocalBackend(scaling)
}

func (o *options) newContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, o.timeout)
}

func (o *options) validate() error {
	switch o.output {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", o.output)
	}
}
