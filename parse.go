package vti

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Markers expected in the remote answer:
//
//	PRICE: 265.40
//	RATE: 150.50
//	SUMMARY: free text
var (
	priceMarker   = regexp.MustCompile(`(?i)PRICE:\s*[$¥￥]?([\d,]+\.?\d*)`)
	rateMarker    = regexp.MustCompile(`(?i)RATE:\s*[$¥￥]?([\d,]+\.?\d*)`)
	summaryMarker = regexp.MustCompile(`(?is)SUMMARY:\s*(.*)`)

	// marker lines that may leak into a summary taken verbatim.
	displayNoise  = regexp.MustCompile(`(?m)^\s*(PRICE|RATE):.*$`)
	displayMarker = regexp.MustCompile(`(?im)^\s*SUMMARY:`)
)

// Parse extracts a Quote from the raw text answer of the remote service.
//
// Parse never fails: a missing or malformed number is absent in the quote,
// and without a SUMMARY marker the whole text is the summary.
func Parse(raw string, sources []Citation, at time.Time) Quote {
	summary := raw
	if m := summaryMarker.FindStringSubmatch(raw); m != nil {
		summary = strings.TrimSpace(m[1])
	}
	return NewQuote(
		findNumber(priceMarker, raw),
		findNumber(rateMarker, raw),
		summary,
		sources,
		at,
	)
}

func findNumber(marker *regexp.Regexp, raw string) decimal.NullDecimal {
	m := marker.FindStringSubmatch(raw)
	if m == nil {
		return decimal.NullDecimal{}
	}
	return ParseNumber(m[1])
}

// ParseNumber parses a number literal with optional thousands separators
// ("1,234.5"). It returns an invalid NullDecimal on failure.
func ParseNumber(s string) decimal.NullDecimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimSuffix(s, ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// NormalizeCitations keeps citations with a link, in order, and gives a
// default title to the untitled ones. Duplicates are kept.
func NormalizeCitations(in []Citation) []Citation {
	out := make([]Citation, 0, len(in))
	for _, c := range in {
		if strings.TrimSpace(c.URI) == "" {
			continue
		}
		if strings.TrimSpace(c.Title) == "" {
			c.Title = defaultCitationTitle
		}
		out = append(out, c)
	}
	return out
}

// DisplaySummary returns the summary without the marker lines the model
// sometimes repeats in it.
func (q Quote) DisplaySummary() string {
	s := displayNoise.ReplaceAllString(q.summary, "")
	// only the first SUMMARY marker, on any line.
	if loc := displayMarker.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[1]:]
	}
	return strings.TrimSpace(s)
}
