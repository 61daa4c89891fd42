// Package presenter holds the state of the valuation screen: the current
// quote, the fetch state and the share count typed by the user.
package presenter

import (
	"context"
	"log"
	"sync"

	"github.com/etnz/vti"
)

// Fetcher retrieves a new quote. *gemini.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context) (vti.Quote, error)
}

// Presenter is the Idle -> Loading -> Success|Error state machine.
//
// Refreshes are not de-duplicated: concurrent calls each perform their own
// fetch and the last one to resolve sets the state.
type Presenter struct {
	fetcher Fetcher

	mu      sync.Mutex
	state   vti.FetchState
	quote   *vti.Quote // last successful quote, nil before the first success.
	message string     // user facing error message.
	shares  vti.ShareCount
}

// New creates a Presenter in the Idle state.
func New(fetcher Fetcher, shares vti.ShareCount) *Presenter {
	if !vti.ValidShareInput(string(shares)) {
		shares = ""
	}
	return &Presenter{fetcher: fetcher, shares: shares}
}

// Refresh fetches a new quote.
//
// While loading the previous quote is still visible. On failure the
// previous quote is kept, the cause is logged and returned, but the user
// only gets vti.FetchFailureMessage.
func (p *Presenter) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.state = vti.Loading
	p.message = ""
	p.mu.Unlock()

	q, err := p.fetcher.Fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		log.Printf("quote fetch failed: %v", err)
		p.state = vti.Error
		p.message = vti.FetchFailureMessage
		return err
	}
	p.quote = &q
	p.state = vti.Success
	p.message = ""
	return nil
}

// SetShares replaces the share count with input if it is a valid share
// count text, otherwise the share count is left unchanged and SetShares
// returns false.
func (p *Presenter) SetShares(input string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	next, ok := p.shares.Accept(input)
	p.shares = next
	return ok
}

// State returns the current fetch state.
func (p *Presenter) State() vti.FetchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// View returns a snapshot of the presenter, with the valuation computed
// from the current share count and quote.
func (p *Presenter) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := View{
		State:  p.state,
		Error:  p.message,
		Shares: p.shares,
	}
	if p.quote != nil {
		q := *p.quote
		v.Quote = &q
	}
	v.Valuation = vti.NewValuation(v.Shares, v.Quote)
	return v
}
