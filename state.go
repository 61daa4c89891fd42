package vti

import "fmt"

// FetchState is the state of the quote retrieval as seen by the user.
type FetchState int

const (
	Idle    FetchState = iota // nothing fetched yet
	Loading                   // a fetch is in flight
	Success                   // the last resolved fetch succeeded
	Error                     // the last resolved fetch failed
)

var fetchStateNames = []string{"idle", "loading", "success", "error"}

func (s FetchState) String() string {
	if s < 0 || int(s) >= len(fetchStateNames) {
		return fmt.Sprintf("FetchState(%d)", int(s))
	}
	return fetchStateNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s FetchState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
