package vti

import (
	"errors"
	"fmt"
)

// ErrNoAnswer is returned when the remote service answered without any
// candidate.
var ErrNoAnswer = errors.New("no answer from the remote service")

// FetchFailureMessage is the only message shown to the user when a fetch
// fails, the cause is logged instead.
const FetchFailureMessage = "データの取得に失敗しました。もう一度お試しください。"

// ErrorKind tells apart transport failures from remote service failures.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota // the remote could not be reached
	KindService                  // the remote answered with an error
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindService:
		return "service"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// FetchError is the failure of a quote fetch. No partial quote is ever
// returned with it.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s error fetching quote: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
