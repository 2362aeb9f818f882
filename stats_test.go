package bnalpha

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func points(dates ...string) []PointRecord {
	recs := make([]PointRecord, 0, len(dates))
	for _, d := range dates {
		recs = append(recs, PointRecord{Date: MustParseDate(d), TradeReward: 1})
	}
	return recs
}

func TestCurrentCyclePointsOn(t *testing.T) {
	today := MustParseDate("2024-06-15")
	testCases := []struct {
		name    string
		records []PointRecord
		want    float64
	}{
		{"empty", nil, 0},
		{"today excluded", points("2024-06-15"), 0},
		{"yesterday counted", points("2024-06-14"), 1},
		{"cutoff day counted", points("2024-05-31"), 1},
		{"before cutoff excluded", points("2024-05-30"), 0},
		{"mixed", points("2024-05-30", "2024-05-31", "2024-06-10", "2024-06-15"), 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentCyclePointsOn(tc.records, today); got != tc.want {
				t.Errorf("CurrentCyclePointsOn() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCurrentCyclePointsOnUsesNet(t *testing.T) {
	today := MustParseDate("2024-06-15")
	records := []PointRecord{{
		Date:           MustParseDate("2024-06-10"),
		BalanceReward:  4,
		TradeReward:    6,
		ActivityPoints: 2,
		ClaimCost:      5,
	}}
	if got := CurrentCyclePointsOn(records, today); got != 7 {
		t.Errorf("CurrentCyclePointsOn() = %v, want 7", got)
	}
}

func TestTomorrowPreviewPointsOn(t *testing.T) {
	today := MustParseDate("2024-06-15")

	// Without a record for exactly today there is no preview.
	if _, ok := TomorrowPreviewPointsOn(points("2024-06-14"), today); ok {
		t.Error("preview should be absent without a record for today")
	}

	testCases := []struct {
		name    string
		records []PointRecord
		want    float64
	}{
		{"today alone", points("2024-06-15"), 1},
		{"today plus yesterday", points("2024-06-14", "2024-06-15"), 2},
		{"tomorrow's cutoff day counted", points("2024-06-01", "2024-06-15"), 2},
		{"day falling out excluded", points("2024-05-31", "2024-06-15"), 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TomorrowPreviewPointsOn(tc.records, today)
			if !ok {
				t.Fatal("preview should be available")
			}
			if got != tc.want {
				t.Errorf("TomorrowPreviewPointsOn() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPeriodSumCostAsOf(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []CostRecord{
		{Date: MustParseDate("2024-01-01"), Fee: decimal.RequireFromString("10")},
		{Date: MustParseDate("2024-06-01"), Fee: decimal.RequireFromString("5")},
	}
	got := PeriodSumCostAsOf(records, 30, now)
	if !got.Equal(decimal.RequireFromString("5")) {
		t.Errorf("PeriodSumCostAsOf(30d) = %s, want 5", got)
	}
	// A wide enough window sees everything.
	got = PeriodSumCostAsOf(records, 365, now)
	if !got.Equal(decimal.RequireFromString("15")) {
		t.Errorf("PeriodSumCostAsOf(365d) = %s, want 15", got)
	}
}

func TestPeriodSumCountsFutureRecords(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []RevenueRecord{
		{Date: MustParseDate("2024-07-01"), Amount: decimal.RequireFromString("3")},
	}
	got := PeriodSumRevenueAsOf(records, 7, now)
	if !got.Equal(decimal.RequireFromString("3")) {
		t.Errorf("PeriodSumRevenueAsOf() = %s, want 3 (upper bound is open)", got)
	}
}

func TestAllUsersSums(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	a := testUser("u1", "alice")
	a.CostRecords = []CostRecord{
		{Date: MustParseDate("2024-06-10"), Fee: decimal.RequireFromString("1.5")},
	}
	a.RevenueRecords = []RevenueRecord{
		{Date: MustParseDate("2024-06-10"), Amount: decimal.RequireFromString("4")},
	}
	b := testUser("u2", "bob")
	b.CostRecords = []CostRecord{
		{Date: MustParseDate("2024-01-01"), Fee: decimal.RequireFromString("2")},
	}
	users := []*User{a, b}

	if got := AllUsersPeriodSum(users, Cost, 30, now); !got.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("AllUsersPeriodSum(cost, 30d) = %s, want 1.5", got)
	}
	if got := AllUsersTotal(users, Cost); !got.Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("AllUsersTotal(cost) = %s, want 3.5", got)
	}
	if got := AllUsersTotal(users, Revenue); !got.Equal(decimal.RequireFromString("4")) {
		t.Errorf("AllUsersTotal(revenue) = %s, want 4", got)
	}
}
