// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "plain rows",
			input: "a,b,c\nd,e\n",
			want:  [][]string{{"a", "b", "c"}, {"d", "e"}},
		},
		{
			name:  "strips byte-order mark",
			input: "\ufeffФамилия,Имя\nИванов,Иван\n",
			want:  [][]string{{"Фамилия", "Имя"}, {"Иванов", "Иван"}},
		},
		{
			name:  "skips blank lines",
			input: "a,b\n\n\nc,d\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "quoted field with comma",
			input: `Petrov,"Moscow, Tverskaya 1",x` + "\n",
			want:  [][]string{{"Petrov", "Moscow, Tverskaya 1", "x"}},
		},
		{
			name:  "blank lines only",
			input: "\n",
			want:  [][]string{{}},
		},
		{
			name:  "byte-order mark then blank line",
			input: "\ufeff\r\n\n",
			want:  [][]string{{}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "byte-order mark only",
			input: "\ufeff",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasHeader(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"english camel case", []string{"lastName", "firstName"}, true},
		{"russian with padding", []string{"  Фамилия ", "Имя"}, true},
		{"marker not in first cell", []string{"#", "LASTNAME"}, true},
		{"data row", []string{"Ivanov", "Ivan"}, false},
		{"substring does not count", []string{"lastname2"}, false},
		{"empty row", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasHeader(tt.row))
		})
	}
}

func TestFromRow(t *testing.T) {
	row := []string{" Ivanov ", "Ivan", "Ivanovich", "05.03.1980", "+7 900", "Moscow", "i@x.ru", "VIP", " Titov ", "extra", "more"}
	f, ok := FromRow(row)
	require.True(t, ok)
	assert.Equal(t, Fields{
		LastName:    "Ivanov",
		FirstName:   "Ivan",
		MiddleName:  "Ivanovich",
		DOB:         "05.03.1980",
		Phone:       "+7 900",
		Address:     "Moscow",
		Email:       "i@x.ru",
		Status:      "VIP",
		Responsible: "Titov",
	}, f)
}

func TestFromRowTooShort(t *testing.T) {
	_, ok := FromRow([]string{"a", "b", "c", "d", "e"})
	assert.False(t, ok)

	_, ok = FromRow(make([]string, NumFields-1))
	assert.False(t, ok)

	_, ok = FromRow(make([]string, NumFields))
	assert.True(t, ok, "exactly nine empty fields is a valid row")
}
