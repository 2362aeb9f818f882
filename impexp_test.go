package bnalpha

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func exportUsers() []*User {
	a := testUser("u1", "alice")
	a.PointRecords = []PointRecord{
		{Date: MustParseDate("2024-03-01"), BalanceReward: 1, TradeReward: 2.5},
		{Date: MustParseDate("2024-03-02"), ActivityPoints: 3, ClaimCost: 1},
	}
	a.CostRecords = []CostRecord{
		{Date: MustParseDate("2024-03-01"), Fee: decimal.RequireFromString("0.75")},
	}
	b := testUser("u2", "bob")
	b.RevenueRecords = []RevenueRecord{
		{Date: MustParseDate("2024-03-02"), Amount: decimal.RequireFromString("12.5")},
	}
	return []*User{a, b}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, exportUsers()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\uFEFF") {
		t.Error("export should start with a BOM")
	}
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\uFEFF"), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("export has %d lines, want header + 2 dates", len(lines))
	}

	wantHeader := "日期," +
		"alice-余额,alice-交易,alice-活动,alice-消耗,alice-积分合计,alice-磨损,alice-收益," +
		"bob-余额,bob-交易,bob-活动,bob-消耗,bob-积分合计,bob-磨损,bob-收益,"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	// Dates ascend; absent values render as 0; each group keeps its trailing
	// comma.
	want1 := "2024-03-01,1,2.5,0,0,3.5,0.75,0,0,0,0,0,0,0,0,"
	if lines[1] != want1 {
		t.Errorf("row 1 = %q, want %q", lines[1], want1)
	}
	want2 := "2024-03-02,0,0,3,1,2,0,0,0,0,0,0,0,0,12.5,"
	if lines[2] != want2 {
		t.Errorf("row 2 = %q, want %q", lines[2], want2)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	users := exportUsers()
	var buf bytes.Buffer
	if err := ExportJSON(&buf, users); err != nil {
		t.Fatal(err)
	}

	got, err := ImportUsers(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(users) {
		t.Fatalf("round trip returned %d users, want %d", len(got), len(users))
	}
	for i, u := range got {
		orig := users[i]
		if u.ID != orig.ID || u.Name != orig.Name {
			t.Errorf("user %d identity = (%s, %s), want (%s, %s)", i, u.ID, u.Name, orig.ID, orig.Name)
		}
		if len(u.PointRecords) != len(orig.PointRecords) {
			t.Fatalf("user %d has %d point records, want %d", i, len(u.PointRecords), len(orig.PointRecords))
		}
		for j, r := range u.PointRecords {
			if r != orig.PointRecords[j] {
				t.Errorf("user %d point record %d = %+v, want %+v", i, j, r, orig.PointRecords[j])
			}
		}
		for j, r := range u.CostRecords {
			if r.Date != orig.CostRecords[j].Date || !r.Fee.Equal(orig.CostRecords[j].Fee) {
				t.Errorf("user %d cost record %d = %+v, want %+v", i, j, r, orig.CostRecords[j])
			}
		}
		for j, r := range u.RevenueRecords {
			if r.Date != orig.RevenueRecords[j].Date || !r.Amount.Equal(orig.RevenueRecords[j].Amount) {
				t.Errorf("user %d revenue record %d = %+v, want %+v", i, j, r, orig.RevenueRecords[j])
			}
		}
	}
}

func TestExportJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty export = %q, want []", got)
	}
}

func TestImportUsersErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  error
	}{
		{"garbage", "not json at all", ErrImportParse},
		{"truncated", `[{"id":"u1"`, ErrImportParse},
		{"object top level", `{"id":"u1"}`, ErrImportFormat},
		{"number top level", `42`, ErrImportFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportUsers(strings.NewReader(tc.input))
			if !errors.Is(err, tc.want) {
				t.Errorf("ImportUsers(%q) error = %v, want %v", tc.input, err, tc.want)
			}
		})
	}
}

func TestImportUsersEmptyArray(t *testing.T) {
	got, err := ImportUsers(strings.NewReader("[]"))
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ImportUsers([]) = %v, want empty non-nil slice", got)
	}
}
