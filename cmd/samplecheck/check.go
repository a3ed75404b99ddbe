package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/samplecheck/internal/registry"
	"github.com/pdiddy/samplecheck/internal/samplesheet"
	"github.com/pdiddy/samplecheck/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE_IN FILE_OUT FORMAT",
	Short: "Validate a samplesheet and write the normalized CSV",
	Long: `Check reads the samplesheet at FILE_IN, validates its structure and every
row, and writes the normalized CSV to FILE_OUT. FORMAT must be exactly
'FASTQ' or 'BAM'.

FASTQ sheets (sample,fastq_1,fastq_2) are classified single- or paired-end
per row, and samples with multiple runs are renamed with a _T{n} replicate
suffix. BAM sheets (sample,bam) keep the sample name and number runs in a
separate idx column.

Successful runs are recorded in the local run registry unless --no-record
is given.`,
	Args: cobra.ExactArgs(3),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	format, err := types.ParseFormat(args[2])
	if err != nil {
		return err
	}

	result, err := samplesheet.Check(inPath, outPath, format)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "validated %s sheet: %d sample(s), %d row(s) -> %s\n",
		result.Format, result.Samples, result.Rows, outPath)

	if summaryPath, _ := cmd.Flags().GetString("summary"); summaryPath != "" {
		if err := writeSummaryFile(result, summaryPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote summary -> %s\n", summaryPath)
	}

	// The normalized sheet is already written and correct; registry trouble
	// is a warning, not a failure.
	if noRecord, _ := cmd.Flags().GetBool("no-record"); !noRecord {
		if err := recordRun(cmd, inPath, outPath, result); err != nil {
			fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
		}
	}

	return nil
}

func writeSummaryFile(result *types.CheckResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	if err := samplesheet.WriteSummary(result, f); err != nil {
		f.Close()
		return fmt.Errorf("writing summary: %w", err)
	}
	return f.Close()
}

func recordRun(cmd *cobra.Command, inPath, outPath string, result *types.CheckResult) error {
	store, err := registry.Open(registryDir(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(context.Background(), types.RunRecord{
		Input:   inPath,
		Output:  outPath,
		Format:  result.Format,
		Samples: result.Samples,
		Rows:    result.Rows,
	})
}

// registryDir resolves the registry location: flag, then config, then the
// default .samplecheck directory.
func registryDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("registry-dir"); dir != "" {
		return dir
	}
	if dir := viper.GetString("registry_dir"); dir != "" {
		return dir
	}
	return ".samplecheck"
}

func init() {
	checkCmd.Flags().String("summary", "", "also write a per-sample YAML summary to this path")
	checkCmd.Flags().Bool("no-record", false, "do not record the run in the registry")
	checkCmd.Flags().String("registry-dir", "", "run registry directory (default: .samplecheck)")

	rootCmd.AddCommand(checkCmd)
}
