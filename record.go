package bnalpha

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// PointRecord holds one day of alpha point activity for a single account.
// The four counters are independent; the daily net value is
// balance + trade + activity - claim.
type PointRecord struct {
	Date           Date    `json:"date"`
	BalanceReward  float64 `json:"balanceReward"`
	TradeReward    float64 `json:"tradeReward"`
	ActivityPoints float64 `json:"activityPoints"`
	ClaimCost      float64 `json:"claimCost"`
}

// Net returns the day's net point value.
func (r PointRecord) Net() float64 {
	return r.BalanceReward + r.TradeReward + r.ActivityPoints - r.ClaimCost
}

// CostRecord holds one day of trading wear (fees) for a single account.
type CostRecord struct {
	Date Date            `json:"date"`
	Fee  decimal.Decimal `json:"fee"`
}

// RevenueRecord holds one day of realized revenue for a single account.
type RevenueRecord struct {
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// PointField designates one of the four counters of a PointRecord.
type PointField int

const (
	BalanceReward PointField = iota
	TradeReward
	ActivityPoints
	ClaimCost
)

func (f PointField) String() string {
	switch f {
	case BalanceReward:
		return "balance"
	case TradeReward:
		return "trade"
	case ActivityPoints:
		return "activity"
	case ClaimCost:
		return "claim"
	default:
		return "unknown"
	}
}

// ParsePointField parses a string into a PointField.
func ParsePointField(s string) (PointField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "balance", "balancereward":
		return BalanceReward, nil
	case "trade", "tradereward":
		return TradeReward, nil
	case "activity", "activitypoints":
		return ActivityPoints, nil
	case "claim", "claimcost":
		return ClaimCost, nil
	default:
		return 0, fmt.Errorf("unknown point field: %q", s)
	}
}

// StreamKind designates one of the two monetary record streams of an account.
type StreamKind int

const (
	Cost StreamKind = iota
	Revenue
)

func (k StreamKind) String() string {
	switch k {
	case Cost:
		return "cost"
	case Revenue:
		return "revenue"
	default:
		return "unknown"
	}
}

// ParseStreamKind parses a string into a StreamKind.
func ParseStreamKind(s string) (StreamKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cost":
		return Cost, nil
	case "revenue":
		return Revenue, nil
	default:
		return 0, fmt.Errorf("unknown stream kind: %q", s)
	}
}

// CoercePoints converts free-form numeric input into a point value.
// Unparseable input becomes 0, never an error: cells accept whatever the
// operator types and blank or garbage means "no points".
func CoercePoints(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// CoerceAmount converts free-form numeric input into a monetary value, with
// the same tolerance as CoercePoints.
func CoerceAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
