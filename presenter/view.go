package presenter

import "github.com/etnz/vti"

// View is everything a renderer needs to display the valuation screen.
type View struct {
	State     vti.FetchState `json:"state"`
	Quote     *vti.Quote     `json:"quote,omitempty"`
	Error     string         `json:"error,omitempty"`
	Shares    vti.ShareCount `json:"shares"`
	Valuation vti.Valuation  `json:"valuation"`
}

// CanRefresh reports whether the refresh control is enabled.
func (v View) CanRefresh() bool { return v.State != vti.Loading }

// Placeholder reports whether the quote values must be displayed as
// pending: the first load is in flight and there is nothing to show yet.
func (v View) Placeholder() bool { return v.Quote == nil && v.State == vti.Loading }
