package vti

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewValuation(t *testing.T) {
	full := Parse("PRICE: 265.40\nRATE: 150.50\nSUMMARY: text", nil, retrieved)
	noRate := Parse("PRICE: 265.40\nSUMMARY: text", nil, retrieved)
	noPrice := Parse("RATE: 150.50\nSUMMARY: text", nil, retrieved)

	tests := []struct {
		name      string
		shares    ShareCount
		quote     *Quote
		wantBase  string
		wantLocal string
	}{
		{"full quote", "10", &full, "$2,654.00", "¥399,427"},
		{"fractional shares", "0.5", &full, "$132.70", "¥19,971"},
		{"missing rate", "10", &noRate, "$2,654.00", "¥0"},
		{"missing price", "10", &noPrice, "$0.00", "¥0"},
		{"no quote", "10", nil, "$0.00", "¥0"},
		{"empty shares", "", &full, "$0.00", "¥0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValuation(tt.shares, tt.quote)
			if got := v.TotalBase.String(); got != tt.wantBase {
				t.Errorf("TotalBase = %s, want %s", got, tt.wantBase)
			}
			if got := v.TotalLocal.String(); got != tt.wantLocal {
				t.Errorf("TotalLocal = %s, want %s", got, tt.wantLocal)
			}
			if v.TotalBase.Currency() != USD || v.TotalLocal.Currency() != JPY {
				t.Errorf("currencies = %s, %s; want USD, JPY", v.TotalBase.Currency(), v.TotalLocal.Currency())
			}
		})
	}
}

func TestNewValuation_LargeShares(t *testing.T) {
	q := Parse("PRICE: 265.40\nRATE: 150.50", nil, retrieved)
	tests := []struct {
		shares    ShareCount
		wantBase  string
		wantLocal string
	}{
		{"1000000000000000", "$265,400,000,000,000,000.00", "¥39,942,700,000,000,000,000"},
		{"100000000000000000", "$26,540,000,000,000,000,000.00", "¥3,994,270,000,000,000,000,000"},
	}
	for _, tt := range tests {
		v := NewValuation(tt.shares, &q)
		if got := v.TotalBase.String(); got != tt.wantBase {
			t.Errorf("NewValuation(%s).TotalBase = %s, want %s", tt.shares, got, tt.wantBase)
		}
		if got := v.TotalLocal.String(); got != tt.wantLocal {
			t.Errorf("NewValuation(%s).TotalLocal = %s, want %s", tt.shares, got, tt.wantLocal)
		}
	}
}

func TestNewValuation_Exact(t *testing.T) {
	q := Parse("PRICE: 265.40\nRATE: 150.50", nil, retrieved)
	v := NewValuation("10", &q)
	if want := decimal.RequireFromString("2654.00"); !v.TotalBase.Decimal().Equal(want) {
		t.Errorf("TotalBase = %v, want %v", v.TotalBase.Decimal(), want)
	}
	if want := decimal.RequireFromString("399427.00"); !v.TotalLocal.Decimal().Equal(want) {
		t.Errorf("TotalLocal = %v, want %v", v.TotalLocal.Decimal(), want)
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(265.4, USD), "$265.40"},
		{M(1234567.891, USD), "$1,234,567.89"},
		{M(0, USD), "$0.00"},
		{M(399427.5, JPY), "¥399,428"},
		{M(999.4, JPY), "¥999"},
		{M(-1234.5, USD), "-$1,234.50"},
		{M(decimal.RequireFromString("-26540000000000000000"), USD), "-$26,540,000,000,000,000,000.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Money(%v %s).String() = %q, want %q", tt.m.Decimal(), tt.m.Currency(), got, tt.want)
		}
	}
}
