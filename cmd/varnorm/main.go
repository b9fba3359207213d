// Package main provides the varnorm command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "varnorm",
		Short: "Normalize genomic variant representations",
		Long: `varnorm rewrites indel variant representations (chrom-pos-ref-alt
identifiers) into a canonical left- or right-aligned minimal form and
computes padded genomic spans over groups of variants.

Deletions written with a sentinel alternate ("*" or "-") need a reference
genome FASTA to materialize the anchor base; supply one with --fasta.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newSpanCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.varnorm.yaml and VARNORM_* environment overrides.
// A missing config file is not an error.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".varnorm")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("VARNORM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// newLogger builds the CLI logger writing to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
