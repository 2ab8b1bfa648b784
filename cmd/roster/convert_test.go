// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/roster/pkg/types"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(t, rootCmd)
		viper.Reset()
		bindRootFlags()
		bindConvertFlags()
	})
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(in, []byte(
		"lastName,firstName,middleName,dob,phone,address,email,status,responsible\n"+
			"Ivanov,Ivan,Ivanovich,05.03.1980,1,2,3,4,5\n"+
			"short,row\n"+
			"Petrov,Petr,Petrovich,1975-12-31,1,2,3,4,5\n"), 0o644))
	out := filepath.Join(dir, "public", "assets", "clients", "clients.json")
	ledgerPath := filepath.Join(dir, "history.db")

	stdout, _, err := execute(t, "convert", in,
		"--out-json", out,
		"--public-dir", filepath.Join(dir, "public"),
		"--id-prefix", "k", "--id-start", "7", "--id-pad", "2",
		"--make-dossiers",
		"--ledger", ledgerPath,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK: wrote 2 clients -> "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var clients []types.Client
	require.NoError(t, json.Unmarshal(data, &clients))
	require.Len(t, clients, 2)
	assert.Equal(t, "k07", clients[0].ID)
	assert.Equal(t, "k08", clients[1].ID)
	assert.Equal(t, "1980-03-05", clients[0].DOB)
	assert.FileExists(t, filepath.Join(dir, "public", "assets", "clients", "dossiers", "k08.html"))

	stdout, _, err = execute(t, "history", "--ledger", ledgerPath, "--json")
	require.NoError(t, err)
	var runs []types.Run
	require.NoError(t, json.Unmarshal([]byte(stdout), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, 2, runs[0].Accepted)
	assert.Equal(t, 1, runs[0].Skipped)
	assert.Equal(t, "k07", runs[0].FirstID)
}

func TestConvertCommandEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(in, nil, 0o644))
	out := filepath.Join(dir, "clients.json")

	_, _, err := execute(t, "convert", in, "--out-json", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster is empty")
	assert.NoFileExists(t, out)
}

func TestConvertCommandFlagsDoNotLeak(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(in, []byte("Ivanov,Ivan,Ivanovich,,,,,,\n"), 0o644))

	_, _, err := execute(t, "convert", in,
		"--out-json", filepath.Join(dir, "first.json"),
		"--public-dir", filepath.Join(dir, "public"),
		"--id-prefix", "z", "--make-dossiers",
	)
	require.NoError(t, err)
	resetFlags(t, rootCmd)
	viper.Reset()
	bindRootFlags()
	bindConvertFlags()

	out := filepath.Join(dir, "second.json")
	_, _, err = execute(t, "convert", in, "--out-json", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var clients []types.Client
	require.NoError(t, json.Unmarshal(data, &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "c001", clients[0].ID, "id prefix must fall back to its default")
	assert.Empty(t, viper.GetString("ledger"))
	assert.False(t, viper.GetBool("make-dossiers"))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "roster dev\n", stdout)
}
