package vti

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Citation is a titled link given by the remote service as a source of the
// quote.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// defaultCitationTitle labels citations that come without a title.
const defaultCitationTitle = "Source"

// Quote is the price, rate and summary derived from one fetch.
//
// A Quote is immutable, a refresh replaces it as a whole.
type Quote struct {
	price       decimal.NullDecimal // USD for one share
	rate        decimal.NullDecimal // JPY for one USD
	summary     string
	sources     []Citation
	retrievedAt time.Time
}

// NewQuote creates a Quote. Sources are normalized as described in
// NormalizeCitations.
func NewQuote(price, rate decimal.NullDecimal, summary string, sources []Citation, retrievedAt time.Time) Quote {
	return Quote{
		price:       price,
		rate:        rate,
		summary:     summary,
		sources:     NormalizeCitations(sources),
		retrievedAt: retrievedAt,
	}
}

// Price returns the price of one share in USD, ok is false if the answer did
// not contain any.
func (q Quote) Price() (price decimal.Decimal, ok bool) { return q.price.Decimal, q.price.Valid }

// ExchangeRate returns the USD/JPY rate, ok is false if the answer did not
// contain any.
func (q Quote) ExchangeRate() (rate decimal.Decimal, ok bool) { return q.rate.Decimal, q.rate.Valid }

func (q Quote) Summary() string        { return q.summary }
func (q Quote) RetrievedAt() time.Time { return q.retrievedAt }

// Sources returns a copy of the quote citations in the remote service order.
func (q Quote) Sources() []Citation { return slices.Clone(q.sources) }

// PriceMoney returns the price as USD money, zero if absent.
func (q Quote) PriceMoney() Money { return M(orZero(q.price), USD) }

// Rate returns the exchange rate, zero if absent.
func (q Quote) Rate() decimal.Decimal { return orZero(q.rate) }

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// MarshalJSON writes the quote with a stable key order, absent numbers are
// omitted.
func (q Quote) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if q.price.Valid {
		w.Append("price", q.price.Decimal)
	}
	if q.rate.Valid {
		w.Append("rate", q.rate.Decimal)
	}
	w.Append("summary", q.summary)
	w.Append("sources", q.sources)
	w.Append("retrievedAt", q.retrievedAt)
	return w.MarshalJSON()
}
