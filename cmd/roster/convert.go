// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/roster/internal/convert"
	"github.com/pdiddy/roster/internal/ledger"
	"github.com/pdiddy/roster/pkg/types"
)

// envKeyReplacer maps flag-style keys (id-prefix) to env names (ROSTER_ID_PREFIX).
var envKeyReplacer = strings.NewReplacer("-", "_")

var convertCmd = &cobra.Command{
	Use:   "convert <roster.csv>",
	Short: "Convert a roster CSV into the UI clients document",
	Long: `Convert reads a roster CSV with nine columns (last name, first name,
middle name, date of birth, phone, address, email, status, responsible),
assigns sequential client ids, and writes clients.json for the offline UI.

A first row containing "lastName" or "Фамилия" is treated as a header.
Rows with fewer than nine columns are skipped. Dates of birth in
DD.MM.YYYY form are rewritten as YYYY-MM-DD; other values pass through.

With --make-dossiers and --make-transcripts, placeholder files are created
under --public-dir for every client, replacing any file already at that
path. Pass --keep-existing to leave existing files untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig()
	input := args[0]

	res, err := convert.ConvertFile(input, cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if res.Skipped > 0 || res.StubsWritten > 0 || res.StubsSkipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nSummary: %d accepted, %d rows skipped, %d stubs created, %d stubs kept\n",
			res.Accepted(), res.Skipped, res.StubsWritten, res.StubsSkipped)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %d clients -> %s\n", res.Accepted(), cfg.OutPath)

	return recordRun(input, cfg, res)
}

// recordRun appends the run to the ledger when one is configured.
func recordRun(input string, cfg types.ConvertConfig, res convert.Result) error {
	path := viper.GetString("ledger")
	if path == "" {
		return nil
	}

	l, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	first, last := res.IDRange()
	_, err = l.Record(context.Background(), types.Run{
		Input:    input,
		Output:   cfg.OutPath,
		Format:   cfg.Format,
		Accepted: res.Accepted(),
		Skipped:  res.Skipped,
		Header:   res.Header,
		FirstID:  first,
		LastID:   last,
	})
	return err
}

func convertConfig() types.ConvertConfig {
	return types.ConvertConfig{
		ID: types.IDConfig{
			Prefix: viper.GetString("id-prefix"),
			Start:  viper.GetInt("id-start"),
			Pad:    viper.GetInt("id-pad"),
		},
		OutPath:         viper.GetString("out-json"),
		PublicDir:       viper.GetString("public-dir"),
		Format:          types.OutputFormat(viper.GetString("format")),
		MakeDossiers:    viper.GetBool("make-dossiers"),
		MakeTranscripts: viper.GetBool("make-transcripts"),
		KeepExisting:    viper.GetBool("keep-existing"),
	}
}

func init() {
	f := convertCmd.Flags()
	f.String("out-json", "public/assets/clients/clients.json", "output clients document path")
	f.String("public-dir", "public", "UI public directory that resource paths are relative to")
	f.String("id-prefix", "c", "client id prefix")
	f.Int("id-start", 1, "number assigned to the first client")
	f.Int("id-pad", 3, "zero-pad width of the id number (3 gives c001)")
	f.Bool("make-dossiers", false, "create placeholder dossier HTML files")
	f.Bool("make-transcripts", false, "create placeholder transcript TXT files")
	f.Bool("keep-existing", false, "leave existing placeholder files untouched")
	f.String("format", "json", "output format: json or yaml")

	bindConvertFlags()
	rootCmd.AddCommand(convertCmd)
}

// convertKeys are the convert flags resolvable through viper (env, config).
var convertKeys = []string{
	"out-json", "public-dir", "id-prefix", "id-start", "id-pad",
	"make-dossiers", "make-transcripts", "keep-existing", "format",
}

func bindConvertFlags() {
	for _, name := range convertKeys {
		_ = viper.BindPFlag(name, convertCmd.Flags().Lookup(name))
	}
}
