package bnalpha

import "github.com/shopspring/decimal"

// This file implements the upsert-by-date engine: after any of these calls
// at most one record exists for the targeted date in the targeted stream.
// Records are created lazily on first write and mutated in place after.

// SetPointField updates a single counter of the user's point record for the
// given date, creating a zero-filled record first when the date is new. The
// three non-targeted counters are left untouched.
func (s *Store) SetPointField(userID string, on Date, field PointField, value float64) error {
	u, err := s.User(userID)
	if err != nil {
		return err
	}
	rec := u.pointRecord(on)
	if rec == nil {
		u.PointRecords = append(u.PointRecords, PointRecord{Date: on})
		rec = &u.PointRecords[len(u.PointRecords)-1]
	}
	switch field {
	case BalanceReward:
		rec.BalanceReward = value
	case TradeReward:
		rec.TradeReward = value
	case ActivityPoints:
		rec.ActivityPoints = value
	case ClaimCost:
		rec.ClaimCost = value
	}
	s.changed()
	return nil
}

// SetCost replaces the user's cost record for the given date, inserting one
// when the date is new.
func (s *Store) SetCost(userID string, on Date, fee decimal.Decimal) error {
	u, err := s.User(userID)
	if err != nil {
		return err
	}
	if rec := u.costRecord(on); rec != nil {
		rec.Fee = fee
	} else {
		u.CostRecords = append(u.CostRecords, CostRecord{Date: on, Fee: fee})
	}
	s.changed()
	return nil
}

// SetRevenue replaces the user's revenue record for the given date,
// inserting one when the date is new.
func (s *Store) SetRevenue(userID string, on Date, amount decimal.Decimal) error {
	u, err := s.User(userID)
	if err != nil {
		return err
	}
	if rec := u.revenueRecord(on); rec != nil {
		rec.Amount = amount
	} else {
		u.RevenueRecords = append(u.RevenueRecords, RevenueRecord{Date: on, Amount: amount})
	}
	s.changed()
	return nil
}

// AddDate seeds a zero-valued point record for the given date on every user
// that does not already have one, making the date appear as a grid row.
// Users that already hold a record for that date are untouched.
func (s *Store) AddDate(on Date) {
	var touched bool
	for _, u := range s.users {
		if u.pointRecord(on) == nil {
			u.PointRecords = append(u.PointRecords, PointRecord{Date: on})
			touched = true
		}
	}
	if touched {
		s.changed()
	}
}
