package bnalpha

import "github.com/shopspring/decimal"

// BatchValues is one day of data applied identically to several users at
// once. Absent fields are zero: the batch always writes all four point
// counters plus cost and revenue.
type BatchValues struct {
	BalanceReward  float64
	TradeReward    float64
	ActivityPoints float64
	ClaimCost      float64
	Cost           decimal.Decimal
	Revenue        decimal.Decimal
}

// ApplyBatch writes the values to the given date for every user whose id is
// in targetIDs; all other users are untouched. The point record is a full
// four-field replace (not the single-field update of SetPointField), and
// cost and revenue are upserted like SetCost/SetRevenue.
//
// An empty target set is a silent no-op; the interactive surface disables
// the action instead of calling it with no target.
func (s *Store) ApplyBatch(targetIDs []string, on Date, values BatchValues) {
	if len(targetIDs) == 0 {
		return
	}
	targets := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		targets[id] = true
	}
	var touched bool
	for _, u := range s.users {
		if !targets[u.ID] {
			continue
		}
		point := PointRecord{
			Date:           on,
			BalanceReward:  values.BalanceReward,
			TradeReward:    values.TradeReward,
			ActivityPoints: values.ActivityPoints,
			ClaimCost:      values.ClaimCost,
		}
		if rec := u.pointRecord(on); rec != nil {
			*rec = point
		} else {
			u.PointRecords = append(u.PointRecords, point)
		}
		if rec := u.costRecord(on); rec != nil {
			rec.Fee = values.Cost
		} else {
			u.CostRecords = append(u.CostRecords, CostRecord{Date: on, Fee: values.Cost})
		}
		if rec := u.revenueRecord(on); rec != nil {
			rec.Amount = values.Revenue
		} else {
			u.RevenueRecords = append(u.RevenueRecords, RevenueRecord{Date: on, Amount: values.Revenue})
		}
		touched = true
	}
	if touched {
		s.changed()
	}
}
