// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Run records one completed conversion in the ledger.
type Run struct {
	ID        string       `json:"id" yaml:"id"`
	StartedAt time.Time    `json:"started_at" yaml:"started_at"`
	Input     string       `json:"input" yaml:"input"`
	Output    string       `json:"output" yaml:"output"`
	Format    OutputFormat `json:"format" yaml:"format"`
	Accepted  int          `json:"accepted" yaml:"accepted"`
	Skipped   int          `json:"skipped" yaml:"skipped"`
	Header    bool         `json:"header" yaml:"header"`

	// FirstID and LastID bound the id range assigned by the run; both are
	// empty when no rows were accepted.
	FirstID string `json:"first_id,omitempty" yaml:"first_id,omitempty"`
	LastID  string `json:"last_id,omitempty" yaml:"last_id,omitempty"`
}
