package bnalpha

import "time"

// DefaultStatWindows are the trailing windows of the stat cards, in days.
var DefaultStatWindows = []int{15, 30, 90, 365}

// WindowStat is one trailing window of the all-users stat cards.
type WindowStat struct {
	Days    int
	Cost    Money
	Revenue Money
}

// StatsReport aggregates the monetary streams of all users: lifetime totals
// plus one row per trailing window.
type StatsReport struct {
	TotalCost    Money
	TotalRevenue Money
	Windows      []WindowStat
}

// NewStatsReport computes the stat cards for the given users and windows,
// evaluated at the given instant. Sums stay exact; rounding happens at
// rendering time.
func NewStatsReport(users []*User, windows []int, now time.Time) *StatsReport {
	r := &StatsReport{
		TotalCost:    USD(AllUsersTotal(users, Cost)),
		TotalRevenue: USD(AllUsersTotal(users, Revenue)),
	}
	for _, days := range windows {
		r.Windows = append(r.Windows, WindowStat{
			Days:    days,
			Cost:    USD(AllUsersPeriodSum(users, Cost, days, now)),
			Revenue: USD(AllUsersPeriodSum(users, Revenue, days, now)),
		})
	}
	return r
}

// TableUser is the per-user header of the grid: identity plus the rolling
// point figures and lifetime monetary totals.
type TableUser struct {
	ID           string
	Name         string
	CyclePoints  float64
	Preview      float64
	HasPreview   bool
	TotalCost    Money
	TotalRevenue Money
}

// TableRow is one date of the dense grid with one cell per user, in store
// order.
type TableRow struct {
	Date  Date
	Cells []Cell
}

// TableReport is the dense date × user grid prepared for display: rows are
// sorted most recent first.
type TableReport struct {
	Users []TableUser
	Rows  []TableRow
}

// NewTableReport reconciles the users' sparse streams into a display-ready
// grid, evaluated against the given date.
func NewTableReport(users []*User, today Date) *TableReport {
	grid := NewGrid(users)
	report := &TableReport{}

	for _, u := range users {
		preview, ok := TomorrowPreviewPointsOn(u.PointRecords, today)
		report.Users = append(report.Users, TableUser{
			ID:           u.ID,
			Name:         u.Name,
			CyclePoints:  CurrentCyclePointsOn(u.PointRecords, today),
			Preview:      preview,
			HasPreview:   ok,
			TotalCost:    USD(TotalCost(u.CostRecords)),
			TotalRevenue: USD(TotalRevenue(u.RevenueRecords)),
		})
	}

	dates := grid.Dates()
	for i := len(dates) - 1; i >= 0; i-- {
		row := TableRow{Date: dates[i]}
		for _, u := range users {
			row.Cells = append(row.Cells, grid.Cell(u.ID, dates[i]))
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}
