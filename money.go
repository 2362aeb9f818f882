package bnalpha

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display-oriented monetary value. Record streams keep raw
// decimals; reports wrap them in Money to get currency-correct formatting.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M wraps a decimal value with a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// USD wraps a decimal value in the tracker's reporting currency.
func USD(value decimal.Decimal) Money { return M(value, money.USD) }

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value,
// rounded to the currency's fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Value() decimal.Decimal { return m.value }
