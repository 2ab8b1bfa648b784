// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/roster/internal/convert"
	"github.com/pdiddy/roster/internal/roster"
	"github.com/pdiddy/roster/pkg/types"
)

var (
	isoDate    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dottedDate = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name     string
		cfg      types.SampleConfig
		wantRows int
	}{
		{"data only", types.SampleConfig{Count: 5}, 5},
		{"with header", types.SampleConfig{Count: 3, Header: true}, 4},
		{"zero rows", types.SampleConfig{Count: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.cfg))

			rows, err := roster.Read(&buf)
			require.NoError(t, err)
			require.Len(t, rows, tt.wantRows)
			for _, r := range rows {
				assert.Len(t, r, roster.NumFields)
			}
			if tt.cfg.Header {
				assert.True(t, roster.HasHeader(rows[0]))
			}
		})
	}
}

func TestWriteNegativeCount(t *testing.T) {
	err := Write(&bytes.Buffer{}, types.SampleConfig{Count: -1})
	assert.Error(t, err)
}

func TestRowDates(t *testing.T) {
	even, err := Row(0, true)
	require.NoError(t, err)
	assert.Regexp(t, isoDate, even[3])

	odd, err := Row(1, true)
	require.NoError(t, err)
	assert.Regexp(t, dottedDate, odd[3])

	plain, err := Row(1, false)
	require.NoError(t, err)
	assert.Regexp(t, isoDate, plain[3])
}

func TestRowVocabulary(t *testing.T) {
	r, err := Row(0, false)
	require.NoError(t, err)
	assert.Contains(t, Statuses, r[7])
	assert.Contains(t, Responsible, r[8])
	assert.NotEmpty(t, r[0])
	assert.NotEmpty(t, r[6])
}

func TestWriteConvertsToEveryClient(t *testing.T) {
	const n = 7
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, types.SampleConfig{Count: n, Header: true, DottedDates: true}))

	rows, err := roster.Read(&buf)
	require.NoError(t, err)

	cfg := types.ConvertConfig{ID: types.IDConfig{Prefix: "c", Start: 1, Pad: 3}}
	res, err := convert.Convert(rows, cfg, &bytes.Buffer{})
	require.NoError(t, err)

	assert.True(t, res.Header)
	assert.Equal(t, 0, res.Skipped)
	require.Len(t, res.Clients, n)
	for i, c := range res.Clients {
		assert.Equal(t, fmt.Sprintf("c%03d", i+1), c.ID)
		assert.Regexp(t, isoDate, c.DOB, "client %s", c.ID)
	}
}
