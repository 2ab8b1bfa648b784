// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the roster CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// envFile is loaded before configuration is resolved; variables already
// set in the environment take precedence.
const envFile = ".env"

// rootCmd is the base command for the roster CLI.
var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Prepare client rosters for the offline call UI",
	Long: `roster turns a client roster exported from a spreadsheet into the
clients.json document the offline call UI loads, and can scaffold
placeholder dossier and transcript files so every client opens cleanly.

Every flag can also be set through a ROSTER_* environment variable
(e.g. ROSTER_ID_PREFIX), a .env file, or a roster.yaml config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFile(envFile)
	},
}

// loadEnvFile reads path into the process environment. A missing file is
// not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Loaded environment from %s\n", path)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./roster.yaml or ~/.config/roster/roster.yaml)")
	rootCmd.PersistentFlags().String("ledger", "", "SQLite run history database (empty disables the ledger)")
	bindRootFlags()
}

func bindRootFlags() {
	_ = viper.BindPFlag("ledger", rootCmd.PersistentFlags().Lookup("ledger"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("roster")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "roster"))
		}
	}

	viper.SetEnvPrefix("ROSTER")
	viper.SetEnvKeyReplacer(envKeyReplacer)
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
