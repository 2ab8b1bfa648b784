// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/roster/internal/sample"
	"github.com/pdiddy/roster/pkg/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a fake roster CSV",
	Long: `Sample writes a roster CSV filled with fake clients, useful for demo
recordings of the offline UI and as convert input while testing.`,
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	out, _ := cmd.Flags().GetString("out")
	header, _ := cmd.Flags().GetBool("header")
	dotted, _ := cmd.Flags().GetBool("dotted-dates")

	cfg := types.SampleConfig{Count: count, Header: header, DottedDates: dotted}

	if out == "" || out == "-" {
		return sample.Write(cmd.OutOrStdout(), cfg)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := sample.Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d sample clients to %s\n", count, out)
	return nil
}

func init() {
	sampleCmd.Flags().Int("count", 10, "number of clients to generate")
	sampleCmd.Flags().String("out", "-", "output CSV path (- for stdout)")
	sampleCmd.Flags().Bool("header", true, "write a header row")
	sampleCmd.Flags().Bool("dotted-dates", false, "write every other date of birth as DD.MM.YYYY")

	rootCmd.AddCommand(sampleCmd)
}
