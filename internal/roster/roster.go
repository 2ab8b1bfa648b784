// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster decodes client roster CSV files into positional rows.
// A roster has nine columns in fixed order; extra columns are ignored and
// shorter rows are rejected by FromRow.
package roster

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// NumFields is the number of positional columns a roster row must carry.
const NumFields = 9

// Columns lists the roster columns in positional order.
var Columns = [NumFields]string{
	"lastName", "firstName", "middleName", "dob",
	"phone", "address", "email", "status", "responsible",
}

// headerMarkers are lowercased last-name column titles that identify a
// header row (English export and the Russian spreadsheet template).
var headerMarkers = []string{"lastname", "фамилия"}

var bom = []byte{0xEF, 0xBB, 0xBF}

// Fields holds the trimmed values of one accepted roster row.
type Fields struct {
	LastName    string
	FirstName   string
	MiddleName  string
	DOB         string
	Phone       string
	Address     string
	Email       string
	Status      string
	Responsible string
}

// Read decodes all CSV records from r. A leading UTF-8 byte-order mark is
// discarded. Records may have any number of fields. Blank lines carry no
// record, except that input made only of blank lines yields a single empty
// row so it reads as a roster without clients rather than an empty file.
func Read(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		if _, err := br.Discard(len(bom)); err != nil {
			return nil, fmt.Errorf("skipping byte-order mark: %w", err)
		}
	}

	cr := &countingReader{r: br}
	csvr := csv.NewReader(cr)
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true

	rows, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 && cr.n > 0 {
		return [][]string{{}}, nil
	}
	return rows, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// HasHeader reports whether row looks like a column header row.
func HasHeader(row []string) bool {
	for _, cell := range row {
		c := strings.ToLower(strings.TrimSpace(cell))
		for _, m := range headerMarkers {
			if c == m {
				return true
			}
		}
	}
	return false
}

// FromRow maps the first NumFields cells of row to Fields. It returns false
// when the row is too short to be a client.
func FromRow(row []string) (Fields, bool) {
	if len(row) < NumFields {
		return Fields{}, false
	}
	v := make([]string, NumFields)
	for i := range v {
		v[i] = strings.TrimSpace(row[i])
	}
	return Fields{
		LastName:    v[0],
		FirstName:   v[1],
		MiddleName:  v[2],
		DOB:         v[3],
		Phone:       v[4],
		Address:     v[5],
		Email:       v[6],
		Status:      v[7],
		Responsible: v[8],
	}, true
}
