// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/roster/internal/ledger"
	"github.com/pdiddy/roster/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past conversion runs from the ledger",
	Long: `History reads the run ledger selected with --ledger (or ROSTER_LEDGER)
and lists recent conversions newest first. Use --export to write the
listed runs to a JSON or YAML file.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := viper.GetString("ledger")
	if path == "" {
		return errors.New("no ledger configured: set --ledger or ROSTER_LEDGER")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	exportPath, _ := cmd.Flags().GetString("export")

	l, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	runs, err := l.Runs(context.Background(), limit)
	if err != nil {
		return err
	}

	if exportPath != "" {
		format := types.FormatJSON
		if strings.HasSuffix(exportPath, ".yaml") || strings.HasSuffix(exportPath, ".yml") {
			format = types.FormatYAML
		}
		if err := ledger.Export(exportPath, format, runs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d runs to %s\n", len(runs), exportPath)
		return nil
	}

	return formatHistoryOutput(cmd, runs, jsonOutput)
}

func formatHistoryOutput(cmd *cobra.Command, runs []types.Run, jsonOutput bool) error {
	w := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-8s  %-8s  %-12s  %s\n", "Started", "Accepted", "Skipped", "IDs", "Input")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range runs {
		ids := "-"
		if r.FirstID != "" {
			ids = r.FirstID + ".." + r.LastID
		}
		fmt.Fprintf(w, "%-20s  %-8d  %-8d  %-12s  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Accepted, r.Skipped, ids, r.Input)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().String("export", "", "write runs to a .json or .yaml file instead of listing")

	rootCmd.AddCommand(historyCmd)
}
