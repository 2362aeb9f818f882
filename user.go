package bnalpha

import "github.com/google/uuid"

// seedDays is the number of consecutive point records pre-created for a new
// user: the 16 most recent calendar days ending today, all zero-valued, so
// that the grid immediately shows a full cycle plus today.
const seedDays = 16

// User is one tracked account: a display name and three independent sparse
// record streams keyed by date. A date need not appear in all three.
type User struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PointRecords   []PointRecord   `json:"pointRecords"`
	CostRecords    []CostRecord    `json:"costRecords"`
	RevenueRecords []RevenueRecord `json:"revenueRecords"`
}

// newUser creates a user with pre-seeded zero point records and empty
// cost/revenue streams.
func newUser(name string, today Date) *User {
	records := make([]PointRecord, 0, seedDays)
	for i := seedDays - 1; i >= 0; i-- {
		records = append(records, PointRecord{Date: today.Add(-i)})
	}
	return &User{
		ID:             uuid.NewString(),
		Name:           name,
		PointRecords:   records,
		CostRecords:    []CostRecord{},
		RevenueRecords: []RevenueRecord{},
	}
}

// pointRecord returns the point record for the given date, or nil.
func (u *User) pointRecord(on Date) *PointRecord {
	for i := range u.PointRecords {
		if u.PointRecords[i].Date == on {
			return &u.PointRecords[i]
		}
	}
	return nil
}

// costRecord returns the cost record for the given date, or nil.
func (u *User) costRecord(on Date) *CostRecord {
	for i := range u.CostRecords {
		if u.CostRecords[i].Date == on {
			return &u.CostRecords[i]
		}
	}
	return nil
}

// revenueRecord returns the revenue record for the given date, or nil.
func (u *User) revenueRecord(on Date) *RevenueRecord {
	for i := range u.RevenueRecords {
		if u.RevenueRecords[i].Date == on {
			return &u.RevenueRecords[i]
		}
	}
	return nil
}
