// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns client roster rows into the clients document the
// offline UI loads, optionally scaffolding per-client placeholder files.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/roster/internal/roster"
	"github.com/pdiddy/roster/pkg/types"
)

// ErrEmptyInput is returned when the roster contains no rows at all.
var ErrEmptyInput = errors.New("roster is empty")

// dobLayouts are tried in order. Single-digit day and month are accepted.
var dobLayouts = []string{"2006-1-2", "2.1.2006"}

const dobCanonical = "2006-01-02"

// Result holds the outcome of a conversion run.
type Result struct {
	Clients []types.Client

	// Skipped counts data rows dropped for having too few fields.
	Skipped int

	// Header reports whether the first row was discarded as a header.
	Header bool

	StubsWritten int
	StubsSkipped int
}

// Accepted returns the number of client records produced.
func (r Result) Accepted() int {
	return len(r.Clients)
}

// IDRange returns the first and last assigned ids, or empty strings when no
// rows were accepted.
func (r Result) IDRange() (first, last string) {
	if len(r.Clients) == 0 {
		return "", ""
	}
	return r.Clients[0].ID, r.Clients[len(r.Clients)-1].ID
}

// Validate checks cfg for values that cannot produce a usable document.
func Validate(cfg types.ConvertConfig) error {
	if cfg.ID.Start < 0 {
		return fmt.Errorf("id start must be non-negative, got %d", cfg.ID.Start)
	}
	if cfg.ID.Pad < 0 {
		return fmt.Errorf("id pad must be non-negative, got %d", cfg.ID.Pad)
	}
	switch cfg.Format {
	case types.FormatJSON, types.FormatYAML, "":
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", cfg.Format)
	}
	if cfg.OutPath == "" {
		return errors.New("output path is required")
	}
	return nil
}

// ConvertFile reads the roster at inPath, builds client records, writes the
// requested placeholder files, and writes the clients document to
// cfg.OutPath. No output is written when the roster is empty.
func ConvertFile(inPath string, cfg types.ConvertConfig, w io.Writer) (Result, error) {
	if err := Validate(cfg); err != nil {
		return Result{}, err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	rows, err := roster.Read(f)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", inPath, err)
	}

	res, err := Convert(rows, cfg, w)
	if err != nil {
		return res, err
	}

	if err := WriteClients(cfg.OutPath, cfg.Format, res.Clients); err != nil {
		return res, err
	}
	return res, nil
}

// Convert maps rows to client records in input order. A header row is
// dropped, short rows are skipped without consuming an id, and
// placeholder files are written under cfg.PublicDir when enabled.
func Convert(rows [][]string, cfg types.ConvertConfig, w io.Writer) (Result, error) {
	if len(rows) == 0 {
		return Result{}, ErrEmptyInput
	}

	var res Result
	if roster.HasHeader(rows[0]) {
		res.Header = true
		rows = rows[1:]
	}

	res.Clients = make([]types.Client, 0, len(rows))
	next := cfg.ID.Start

	for i, row := range rows {
		fields, ok := roster.FromRow(row)
		if !ok {
			fmt.Fprintf(w, "skipped: row %d (%d fields, need %d)\n", rowNumber(i, res.Header), len(row), roster.NumFields)
			res.Skipped++
			continue
		}

		c := NewClient(MakeID(cfg.ID.Prefix, next, cfg.ID.Pad), fields)
		next++
		res.Clients = append(res.Clients, c)

		if err := writeStubs(c, cfg, w, &res); err != nil {
			return res, err
		}
	}

	return res, nil
}

// NewClient builds the record for id from one roster row.
func NewClient(id string, f roster.Fields) types.Client {
	return types.Client{
		ID:          id,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		MiddleName:  f.MiddleName,
		DOB:         NormalizeDOB(f.DOB),
		Phone:       f.Phone,
		Address:     f.Address,
		Email:       f.Email,
		Status:      f.Status,
		Responsible: f.Responsible,
		Photo:       types.PhotoPlaceholder,
		Dossier:     types.DossierPath(id),
		Audio:       "",
		Transcript:  types.TranscriptPath(id),
	}
}

// NormalizeDOB rewrites a YYYY-MM-DD or DD.MM.YYYY date as YYYY-MM-DD.
// Anything else, including the empty string, is returned trimmed but
// otherwise unchanged.
func NormalizeDOB(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dobCanonical)
		}
	}
	return s
}

// MakeID formats n zero-padded to pad digits behind prefix.
func MakeID(prefix string, n, pad int) string {
	return fmt.Sprintf("%s%0*d", prefix, pad, n)
}

// rowNumber converts a data row index to its 1-based position in the file.
func rowNumber(i int, header bool) int {
	if header {
		return i + 2
	}
	return i + 1
}
