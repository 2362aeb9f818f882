package bnalpha

import (
	"time"

	"github.com/shopspring/decimal"
)

// cycleDays is the length of the trailing window used to compute an
// account's current net point balance.
const cycleDays = 15

// CurrentCyclePoints returns the net point total of the trailing cycle,
// evaluated against the local clock.
func CurrentCyclePoints(records []PointRecord) float64 {
	return CurrentCyclePointsOn(records, Today())
}

// CurrentCyclePointsOn sums the net point value of all records in the
// trailing cycle window ending at today: cutoff inclusive, today exclusive.
// Today's own record is excluded because the running day is not closed yet.
// Returns 0 when no record qualifies.
func CurrentCyclePointsOn(records []PointRecord, today Date) float64 {
	cutoff := today.Add(-cycleDays)
	var sum float64
	for _, r := range records {
		if !r.Date.Before(cutoff) && r.Date.Before(today) {
			sum += r.Net()
		}
	}
	return sum
}

// TomorrowPreviewPoints returns the cycle total as it will stand tomorrow,
// evaluated against the local clock.
func TomorrowPreviewPoints(records []PointRecord) (float64, bool) {
	return TomorrowPreviewPointsOn(records, Today())
}

// TomorrowPreviewPointsOn returns the net point total of tomorrow's cycle
// window, and false when no record exists for exactly today: the preview is
// only meaningful once today's data has been entered.
//
// The window is cutoff inclusive through today inclusive. Unlike the current
// cycle, today IS counted here: tomorrow's cycle will contain it as a closed
// day. The two windows are intentionally asymmetric.
func TomorrowPreviewPointsOn(records []PointRecord, today Date) (float64, bool) {
	var hasToday bool
	for _, r := range records {
		if r.Date == today {
			hasToday = true
			break
		}
	}
	if !hasToday {
		return 0, false
	}
	cutoff := today.Add(1).Add(-cycleDays)
	var sum float64
	for _, r := range records {
		if !r.Date.Before(cutoff) && !r.Date.After(today) {
			sum += r.Net()
		}
	}
	return sum, true
}

// PeriodSumCost returns the fee total over the trailing window of the given
// number of days, evaluated against the local clock.
func PeriodSumCost(records []CostRecord, days int) decimal.Decimal {
	return PeriodSumCostAsOf(records, days, time.Now())
}

// PeriodSumCostAsOf sums fees of all records whose date is not before
// now minus days. The upper bound is unbounded: future-dated records count.
//
// The cutoff is an instant, not a date: a record dated exactly on the
// boundary day only qualifies when the call happens at midnight.
func PeriodSumCostAsOf(records []CostRecord, days int, now time.Time) decimal.Decimal {
	start := now.AddDate(0, 0, -days)
	sum := decimal.Zero
	for _, r := range records {
		if !r.Date.time().Before(start) {
			sum = sum.Add(r.Fee)
		}
	}
	return sum
}

// PeriodSumRevenue returns the revenue total over the trailing window of the
// given number of days, evaluated against the local clock.
func PeriodSumRevenue(records []RevenueRecord, days int) decimal.Decimal {
	return PeriodSumRevenueAsOf(records, days, time.Now())
}

// PeriodSumRevenueAsOf sums amounts with the same window semantics as
// PeriodSumCostAsOf.
func PeriodSumRevenueAsOf(records []RevenueRecord, days int, now time.Time) decimal.Decimal {
	start := now.AddDate(0, 0, -days)
	sum := decimal.Zero
	for _, r := range records {
		if !r.Date.time().Before(start) {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// AllUsersPeriodSum sums the chosen monetary stream of every user over the
// trailing window of the given number of days.
func AllUsersPeriodSum(users []*User, kind StreamKind, days int, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, u := range users {
		switch kind {
		case Cost:
			sum = sum.Add(PeriodSumCostAsOf(u.CostRecords, days, now))
		case Revenue:
			sum = sum.Add(PeriodSumRevenueAsOf(u.RevenueRecords, days, now))
		}
	}
	return sum
}

// TotalCost sums all fees, all time.
func TotalCost(records []CostRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Fee)
	}
	return sum
}

// TotalRevenue sums all amounts, all time.
func TotalRevenue(records []RevenueRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Amount)
	}
	return sum
}

// AllUsersTotal sums the chosen monetary stream of every user with an
// unbounded window.
func AllUsersTotal(users []*User, kind StreamKind) decimal.Decimal {
	sum := decimal.Zero
	for _, u := range users {
		switch kind {
		case Cost:
			sum = sum.Add(TotalCost(u.CostRecords))
		case Revenue:
			sum = sum.Add(TotalRevenue(u.RevenueRecords))
		}
	}
	return sum
}
