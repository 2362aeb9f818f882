package bnalpha

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains functions to handle the import/export formats.
// The CSV stays byte-compatible with the files the tool always produced:
// spreadsheet imports built on that shape keep working.

// Sentinel errors for the two distinguishable import failures.
var (
	// ErrImportParse is returned when the document cannot be parsed at all.
	ErrImportParse = errors.New("import file cannot be parsed")
	// ErrImportFormat is returned when the document parses but its top level
	// is not an array of users.
	ErrImportFormat = errors.New("import file has the wrong shape")
)

// csvColumns are the per-user column labels of the tabular export, in order:
// balance, trade, activity, claim, net total, fee, revenue.
var csvColumns = []string{"余额", "交易", "活动", "消耗", "积分合计", "磨损", "收益"}

// formatPoints renders a point value the way the grid shows it: shortest
// exact decimal form.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportCSV writes the dense grid as UTF-8 comma-separated text with a BOM
// prefix: one header row, then one row per date ascending, with seven
// columns per user and 0 for absent values. Each seven-column group keeps
// its trailing comma, matching the historical file format exactly.
func ExportCSV(w io.Writer, users []*User) error {
	grid := NewGrid(users)
	var b strings.Builder
	b.WriteString("\uFEFF")

	b.WriteString("日期,")
	for _, u := range users {
		for _, col := range csvColumns {
			b.WriteString(u.Name)
			b.WriteString("-")
			b.WriteString(col)
			b.WriteString(",")
		}
	}
	b.WriteString("\n")

	for _, on := range grid.Dates() {
		b.WriteString(on.String())
		b.WriteString(",")
		for _, u := range users {
			cell := grid.Cell(u.ID, on)
			point := cell.Point
			if point == nil {
				point = &PointRecord{Date: on}
			}
			b.WriteString(formatPoints(point.BalanceReward))
			b.WriteString(",")
			b.WriteString(formatPoints(point.TradeReward))
			b.WriteString(",")
			b.WriteString(formatPoints(point.ActivityPoints))
			b.WriteString(",")
			b.WriteString(formatPoints(point.ClaimCost))
			b.WriteString(",")
			b.WriteString(formatPoints(point.Net()))
			b.WriteString(",")
			if cell.Cost != nil {
				b.WriteString(cell.Cost.Fee.String())
			} else {
				b.WriteString("0")
			}
			b.WriteString(",")
			if cell.Revenue != nil {
				b.WriteString(cell.Revenue.Amount.String())
			} else {
				b.WriteString("0")
			}
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("cannot write CSV export: %w", err)
	}
	return nil
}

// ExportJSON writes the user collection as a pretty-printed JSON array, an
// exact structural mirror of the in-memory collection. The output of
// ExportJSON is accepted back by ImportUsers unchanged.
func ExportJSON(w io.Writer, users []*User) error {
	if users == nil {
		users = []*User{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(users); err != nil {
		return fmt.Errorf("cannot write JSON export: %w", err)
	}
	return nil
}

// ImportUsers parses a JSON document whose top level must be an array of
// users and returns the collection verbatim, without per-record validation.
// It returns ErrImportParse when the document is malformed and
// ErrImportFormat when it parses to something other than an array; in both
// cases the caller's state is untouched.
func ImportUsers(r io.Reader) ([]*User, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	var shape any
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}
	if _, ok := shape.([]any); !ok {
		return nil, fmt.Errorf("%w: top level is not an array", ErrImportFormat)
	}

	var users []*User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}
	if users == nil {
		users = []*User{}
	}
	return users, nil
}
