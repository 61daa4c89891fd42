package vti

import "github.com/shopspring/decimal"

// Valuation is the estimated value of a holding, derived from a share count
// and the current quote.
type Valuation struct {
	Shares     Quantity        `json:"shares"`
	Price      Money           `json:"price"`
	Rate       decimal.Decimal `json:"rate"`
	TotalBase  Money           `json:"totalBase"`  // in USD
	TotalLocal Money           `json:"totalLocal"` // in JPY
}

// NewValuation computes the holding value. An absent quote, price or rate
// counts as zero.
//
//	TotalBase  = shares * price
//	TotalLocal = TotalBase * rate
func NewValuation(shares ShareCount, q *Quote) Valuation {
	v := Valuation{
		Shares: shares.Quantity(),
		Price:  M(0, USD),
		Rate:   decimal.Zero,
	}
	if q != nil {
		v.Price = q.PriceMoney()
		v.Rate = q.Rate()
	}
	v.TotalBase = v.Price.Mul(v.Shares)
	v.TotalLocal = v.TotalBase.Convert(v.Rate, JPY)
	return v
}
