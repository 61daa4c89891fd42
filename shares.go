package vti

import "regexp"

// shareInput is the accepted form of a share count while being typed:
// empty, or digits with at most one decimal point.
var shareInput = regexp.MustCompile(`^\d*\.?\d*$`)

// ShareCount is the number of shares as typed by the user.
type ShareCount string

// ValidShareInput reports whether input is an acceptable share count text.
func ValidShareInput(input string) bool { return shareInput.MatchString(input) }

// Accept returns input as the new share count if it is valid, otherwise s
// unchanged. ok tells which one happened.
func (s ShareCount) Accept(input string) (next ShareCount, ok bool) {
	if !ValidShareInput(input) {
		return s, false
	}
	return ShareCount(input), true
}

// Quantity returns the share count as a number, zero when empty or invalid.
func (s ShareCount) Quantity() Quantity {
	if !ValidShareInput(string(s)) {
		return Q(0)
	}
	return parseQuantity(string(s))
}
