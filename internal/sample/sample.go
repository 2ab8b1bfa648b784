// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample generates fake client rosters for demos and fixtures.
package sample

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bxcodec/faker/v3"

	"github.com/pdiddy/roster/internal/roster"
	"github.com/pdiddy/roster/pkg/types"
)

// Statuses is the service tier vocabulary the UI offers in its admin form.
var Statuses = []string{"Стандарт", "Плюс", "Плюс Про", "ВИП"}

// Responsible lists the staff names the UI offers as account owners.
var Responsible = []string{
	"Котова Людмила",
	"Титов Степан",
	"Поздняков Александр",
	"Бурлов Евгений",
	"Сафонова Ирина",
	"Арутюнов Вагит",
	"Николаев Леонид",
	"Смирнов Геннадий",
}

// Write generates cfg.Count fake roster rows and writes them to w as CSV.
func Write(w io.Writer, cfg types.SampleConfig) error {
	if cfg.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", cfg.Count)
	}

	cw := csv.NewWriter(w)
	if cfg.Header {
		if err := cw.Write(roster.Columns[:]); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i := 0; i < cfg.Count; i++ {
		row, err := Row(i, cfg.DottedDates)
		if err != nil {
			return err
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Row returns one fake roster row. When dotted is set, odd rows carry the
// birth date as DD.MM.YYYY.
func Row(i int, dotted bool) ([]string, error) {
	dob := faker.Date()
	if dotted && i%2 == 1 {
		t, err := time.Parse("2006-01-02", dob)
		if err != nil {
			return nil, fmt.Errorf("parsing generated date %q: %w", dob, err)
		}
		dob = t.Format("02.01.2006")
	}

	picks, err := faker.RandomInt(0, 99, 3)
	if err != nil {
		return nil, fmt.Errorf("picking random values: %w", err)
	}
	if len(picks) < 3 {
		return nil, errors.New("picking random values: short result")
	}

	return []string{
		faker.LastName(),
		faker.FirstName(),
		faker.FirstName(),
		dob,
		faker.Phonenumber(),
		fmt.Sprintf("%s St. %d", faker.LastName(), picks[0]+1),
		faker.Email(),
		Statuses[picks[1]%len(Statuses)],
		Responsible[picks[2]%len(Responsible)],
	}, nil
}
