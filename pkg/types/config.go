// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the serialization written to the output path.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// IDConfig controls client id synthesis.
type IDConfig struct {
	// Prefix is prepended to every id (default "c").
	Prefix string `json:"prefix" yaml:"prefix"`

	// Start is the counter value assigned to the first accepted row (default 1).
	Start int `json:"start" yaml:"start"`

	// Pad is the minimum digit width of the counter (default 3).
	Pad int `json:"pad" yaml:"pad"`
}

// ConvertConfig holds settings for a roster conversion run.
type ConvertConfig struct {
	ID IDConfig `json:"id" yaml:"id"`

	// OutPath is where the clients document is written
	// (default "public/assets/clients/clients.json").
	OutPath string `json:"out_path" yaml:"out_path"`

	// PublicDir is the UI root that resource paths are relative to (default "public").
	PublicDir string `json:"public_dir" yaml:"public_dir"`

	// Format selects json or yaml output.
	Format OutputFormat `json:"format" yaml:"format"`

	// MakeDossiers creates a placeholder dossier per client.
	MakeDossiers bool `json:"make_dossiers" yaml:"make_dossiers"`

	// MakeTranscripts creates a placeholder transcript per client.
	MakeTranscripts bool `json:"make_transcripts" yaml:"make_transcripts"`

	// KeepExisting leaves placeholder files that already exist untouched
	// instead of overwriting them.
	KeepExisting bool `json:"keep_existing" yaml:"keep_existing"`
}

// SampleConfig holds settings for fake roster generation.
type SampleConfig struct {
	// Count is the number of client rows to generate.
	Count int `json:"count" yaml:"count"`

	// Header writes a column header row first.
	Header bool `json:"header" yaml:"header"`

	// DottedDates writes every other birth date as DD.MM.YYYY.
	DottedDates bool `json:"dotted_dates" yaml:"dotted_dates"`
}
