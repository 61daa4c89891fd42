package vti

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currencies used by the valuation.
const (
	USD = "USD" // base currency, VTI is quoted in it.
	JPY = "JPY" // local currency of the converted total.
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to
// the currency's minor unit: "$2,654.00", "¥399,427".
func (m Money) String() string {
	cur := m.currency()
	rounded := m.value.Round(int32(cur.Fraction))
	minor := rounded.Shift(int32(cur.Fraction))
	if minor.GreaterThanOrEqual(minMinorUnits) && minor.LessThanOrEqual(maxMinorUnits) {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatLarge(cur, rounded)
}

// bounds of the amounts go-money can format, in minor units.
var (
	minMinorUnits = decimal.NewFromInt(math.MinInt64 + 1)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// formatLarge formats d like go-money does, without going through an int64.
func formatLarge(cur money.Currency, d decimal.Decimal) string {
	integer, fraction, _ := strings.Cut(d.Abs().StringFixed(int32(cur.Fraction)), ".")

	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(r)
	}
	if fraction != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(fraction)
	}

	s := strings.Replace(cur.Template, "1", b.String(), 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if d.IsNegative() {
		s = "-" + s
	}
	return s
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value), cur: m.cur} }

// Convert returns m expressed in currency, rate being the number of units of
// currency for one unit of m.
func (m Money) Convert(rate decimal.Decimal, currency string) Money {
	return Money{value: m.value.Mul(rate), cur: currency}
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
