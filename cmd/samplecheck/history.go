package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/samplecheck/internal/registry"
	"github.com/pdiddy/samplecheck/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded validation runs",
	Long: `History lists samplesheets that passed validation, newest first, from the
local run registry. Use --json for machine-readable output.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := registry.Open(registryDir(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(records, jsonOutput)
}

func formatHistoryOutput(records []types.RunRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-6s  %-40s  %-8s  %s\n",
		"ID", "Checked", "Format", "Input", "Samples", "Rows")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 96))

	for _, r := range records {
		input := r.Input
		if len(input) > 40 {
			input = "..." + input[len(input)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-6s  %-40s  %-8d  %d\n",
			r.ID, r.CheckedAt.Local().Format(time.DateTime), r.Format, input, r.Samples, r.Rows)
	}

	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(records))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (0 = all)")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().String("registry-dir", "", "run registry directory (default: .samplecheck)")

	rootCmd.AddCommand(historyCmd)
}
