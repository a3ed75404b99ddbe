// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the samplecheck CLI: it validates a
// sequencing samplesheet and writes the normalized CSV the downstream
// pipeline stages consume.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the samplecheck CLI.
var rootCmd = &cobra.Command{
	Use:   "samplecheck",
	Short: "Validate and normalize sequencing samplesheets",
	Long: `samplecheck validates a tabular samplesheet describing sequencing inputs
(FASTQ read pairs or BAM files) and writes a canonical CSV for downstream
pipeline stages. Validation is strict: the first violation aborts the run
and no output is written, so a malformed sheet can never feed the pipeline
a partially-correct input.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./samplecheck.yaml or ~/.config/samplecheck/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("samplecheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "samplecheck"))
		}
	}

	viper.SetEnvPrefix("SAMPLECHECK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
