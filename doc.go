// Package vti estimates the value of a holding of the Vanguard Total Stock
// Market ETF (VTI) in Japanese yen.
//
// The quote (price in USD, USD/JPY exchange rate and a short market summary)
// comes from a generative AI search service whose free text answer is parsed
// by this package:
//   - Quote: the immutable result of one fetch, with its grounding Citations.
//   - Parse: the marker based extraction of price, rate and summary.
//   - ShareCount: the user input, restricted to digits and one decimal point.
//   - Valuation: the derived totals in base (USD) and local (JPY) currency.
//
// Prices and rates are kept as exact decimals, an absent value counts as zero
// so that a partial answer never fails the whole valuation.
//
// This package serves as the foundational logic for the `vti` command-line
// tool. The data is provided as is, it may be delayed or wrong and must not
// be used to make investment decisions.
package vti
