package bnalpha

import "sort"

// AllDates returns the de-duplicated union of all dates appearing in any
// stream of any user, sorted ascending. Display iterates it in reverse to
// put the most recent day first; export uses it as is.
func AllDates(users []*User) []Date {
	set := make(map[Date]bool)
	for _, u := range users {
		for _, r := range u.PointRecords {
			set[r.Date] = true
		}
		for _, r := range u.CostRecords {
			set[r.Date] = true
		}
		for _, r := range u.RevenueRecords {
			set[r.Date] = true
		}
	}
	dates := make([]Date, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Cell is the dense view of one (user, date) intersection: the three sparse
// streams reconciled into one addressable unit. Absent records are nil.
type Cell struct {
	Point   *PointRecord
	Cost    *CostRecord
	Revenue *RevenueRecord
}

// Net returns the cell's net point value, 0 when no point record exists.
func (c Cell) Net() float64 {
	if c.Point == nil {
		return 0
	}
	return c.Point.Net()
}

// userIndex holds one user's streams re-keyed by date for O(1) cell lookup.
type userIndex struct {
	points   map[Date]*PointRecord
	costs    map[Date]*CostRecord
	revenues map[Date]*RevenueRecord
}

// Grid reconciles the sparse per-user streams into a dense date × user
// lookup. It is a pure derivation of the store state, rebuilt whenever the
// caller needs a fresh view; rendering a full table then costs one map probe
// per cell instead of a linear scan per cell.
type Grid struct {
	dates []Date // ascending
	users []*User
	index map[string]userIndex // by user id
}

// NewGrid builds the dense grid for the given users.
func NewGrid(users []*User) *Grid {
	g := &Grid{
		dates: AllDates(users),
		users: users,
		index: make(map[string]userIndex, len(users)),
	}
	for _, u := range users {
		ix := userIndex{
			points:   make(map[Date]*PointRecord, len(u.PointRecords)),
			costs:    make(map[Date]*CostRecord, len(u.CostRecords)),
			revenues: make(map[Date]*RevenueRecord, len(u.RevenueRecords)),
		}
		for i := range u.PointRecords {
			ix.points[u.PointRecords[i].Date] = &u.PointRecords[i]
		}
		for i := range u.CostRecords {
			ix.costs[u.CostRecords[i].Date] = &u.CostRecords[i]
		}
		for i := range u.RevenueRecords {
			ix.revenues[u.RevenueRecords[i].Date] = &u.RevenueRecords[i]
		}
		g.index[u.ID] = ix
	}
	return g
}

// Dates returns the grid's dates, ascending.
func (g *Grid) Dates() []Date { return g.dates }

// Users returns the grid's users in store order.
func (g *Grid) Users() []*User { return g.users }

// Cell returns the dense cell for (userID, date). Unknown users yield an
// empty cell.
func (g *Grid) Cell(userID string, on Date) Cell {
	ix, ok := g.index[userID]
	if !ok {
		return Cell{}
	}
	return Cell{
		Point:   ix.points[on],
		Cost:    ix.costs[on],
		Revenue: ix.revenues[on],
	}
}
