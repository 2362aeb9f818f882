package bnalpha

import (
	"testing"

	"github.com/shopspring/decimal"
)

// testUser builds a bare user without seeded records, so dates are fully
// controlled by the test.
func testUser(id, name string) *User {
	return &User{ID: id, Name: name, PointRecords: []PointRecord{}, CostRecords: []CostRecord{}, RevenueRecords: []RevenueRecord{}}
}

func TestStore_SetPointFieldCreatesRecord(t *testing.T) {
	u := testUser("u1", "alice")
	store := NewStoreWith([]*User{u})
	on := MustParseDate("2024-03-01")

	if err := store.SetPointField("u1", on, TradeReward, 50); err != nil {
		t.Fatal(err)
	}

	if got := len(u.PointRecords); got != 1 {
		t.Fatalf("stream has %d records, want 1", got)
	}
	want := PointRecord{Date: on, TradeReward: 50}
	if u.PointRecords[0] != want {
		t.Errorf("record = %+v, want %+v", u.PointRecords[0], want)
	}
}

func TestStore_SetPointFieldUpdatesInPlace(t *testing.T) {
	u := testUser("u1", "alice")
	store := NewStoreWith([]*User{u})
	on := MustParseDate("2024-03-01")

	store.SetPointField("u1", on, BalanceReward, 10)
	store.SetPointField("u1", on, ClaimCost, 3)
	store.SetPointField("u1", on, BalanceReward, 12)

	if got := len(u.PointRecords); got != 1 {
		t.Fatalf("stream has %d records after repeated upserts, want 1", got)
	}
	rec := u.PointRecords[0]
	if rec.BalanceReward != 12 || rec.ClaimCost != 3 || rec.TradeReward != 0 || rec.ActivityPoints != 0 {
		t.Errorf("record = %+v, want balance=12 claim=3 others 0", rec)
	}
}

func TestStore_SetCostReplacesWholeRecord(t *testing.T) {
	u := testUser("u1", "alice")
	store := NewStoreWith([]*User{u})
	on := MustParseDate("2024-03-01")

	store.SetCost("u1", on, decimal.RequireFromString("2.5"))
	store.SetCost("u1", on, decimal.RequireFromString("4.25"))

	if got := len(u.CostRecords); got != 1 {
		t.Fatalf("stream has %d records, want 1", got)
	}
	if !u.CostRecords[0].Fee.Equal(decimal.RequireFromString("4.25")) {
		t.Errorf("fee = %s, want 4.25", u.CostRecords[0].Fee)
	}
}

func TestStore_SetRevenueReplacesWholeRecord(t *testing.T) {
	u := testUser("u1", "alice")
	store := NewStoreWith([]*User{u})
	on := MustParseDate("2024-03-01")

	store.SetRevenue("u1", on, decimal.RequireFromString("7"))
	store.SetRevenue("u1", on, decimal.RequireFromString("7"))

	if got := len(u.RevenueRecords); got != 1 {
		t.Fatalf("stream has %d records after idempotent upserts, want 1", got)
	}
	if !u.RevenueRecords[0].Amount.Equal(decimal.RequireFromString("7")) {
		t.Errorf("amount = %s, want 7", u.RevenueRecords[0].Amount)
	}
}

func TestStore_UpsertUnknownUser(t *testing.T) {
	store := NewStoreWith([]*User{testUser("u1", "alice")})
	on := MustParseDate("2024-03-01")
	if err := store.SetPointField("nope", on, TradeReward, 1); err == nil {
		t.Error("SetPointField on unknown user should fail")
	}
	if err := store.SetCost("nope", on, decimal.Zero); err == nil {
		t.Error("SetCost on unknown user should fail")
	}
	if err := store.SetRevenue("nope", on, decimal.Zero); err == nil {
		t.Error("SetRevenue on unknown user should fail")
	}
}

func TestStore_AddDate(t *testing.T) {
	a := testUser("u1", "alice")
	b := testUser("u2", "bob")
	on := MustParseDate("2024-03-01")
	b.PointRecords = append(b.PointRecords, PointRecord{Date: on, TradeReward: 5})
	store := NewStoreWith([]*User{a, b})

	store.AddDate(on)

	if got := len(a.PointRecords); got != 1 {
		t.Fatalf("alice has %d point records, want 1", got)
	}
	if a.PointRecords[0].Net() != 0 {
		t.Errorf("seeded record should be zero-valued: %+v", a.PointRecords[0])
	}
	// bob already had data for the date: untouched.
	if got := len(b.PointRecords); got != 1 {
		t.Fatalf("bob has %d point records, want 1", got)
	}
	if b.PointRecords[0].TradeReward != 5 {
		t.Errorf("bob's record was clobbered: %+v", b.PointRecords[0])
	}
}
