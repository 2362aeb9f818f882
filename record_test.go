package bnalpha

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPointRecordNet(t *testing.T) {
	r := PointRecord{BalanceReward: 4, TradeReward: 6, ActivityPoints: 2, ClaimCost: 5}
	if got := r.Net(); got != 7 {
		t.Errorf("Net() = %v, want 7", got)
	}
	if got := (PointRecord{}).Net(); got != 0 {
		t.Errorf("zero record Net() = %v, want 0", got)
	}
}

func TestParsePointField(t *testing.T) {
	testCases := []struct {
		input string
		want  PointField
		ok    bool
	}{
		{"balance", BalanceReward, true},
		{"balanceReward", BalanceReward, true},
		{"trade", TradeReward, true},
		{" Trade ", TradeReward, true},
		{"activity", ActivityPoints, true},
		{"claim", ClaimCost, true},
		{"claimCost", ClaimCost, true},
		{"net", 0, false},
		{"", 0, false},
	}
	for _, tc := range testCases {
		got, err := ParsePointField(tc.input)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParsePointField(%q) = (%v, %v), want (%v, nil)", tc.input, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParsePointField(%q) should fail", tc.input)
		}
	}
}

func TestParseStreamKind(t *testing.T) {
	if k, err := ParseStreamKind("Cost"); err != nil || k != Cost {
		t.Errorf("ParseStreamKind(Cost) = (%v, %v)", k, err)
	}
	if k, err := ParseStreamKind(" revenue "); err != nil || k != Revenue {
		t.Errorf("ParseStreamKind(revenue) = (%v, %v)", k, err)
	}
	if _, err := ParseStreamKind("points"); err == nil {
		t.Error("ParseStreamKind(points) should fail")
	}
}

func TestCoercePoints(t *testing.T) {
	testCases := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"2.5", 2.5},
		{" -1 ", -1},
		{"", 0},
		{"abc", 0},
		{"1,5", 0},
	}
	for _, tc := range testCases {
		if got := CoercePoints(tc.input); got != tc.want {
			t.Errorf("CoercePoints(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCoerceAmount(t *testing.T) {
	if got := CoerceAmount(" 2.50 "); !got.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("CoerceAmount(2.50) = %s", got)
	}
	if got := CoerceAmount("garbage"); !got.IsZero() {
		t.Errorf("CoerceAmount(garbage) = %s, want 0", got)
	}
	if got := CoerceAmount(""); !got.IsZero() {
		t.Errorf("CoerceAmount(empty) = %s, want 0", got)
	}
}
