package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// ticker/source load failures; abort the run
	ErrorKind_Setup ErrorKind = "setup"
	// price, ratio or sentiment retrieval failures
	ErrorKind_Provider ErrorKind = "provider"
	// not enough data on a date; recovered by skipping the date
	ErrorKind_Eligibility ErrorKind = "eligibility"
	// no dates survive the factor intersection
	ErrorKind_EmptyPanel ErrorKind = "empty_panel"
)

type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether any error in err's chain is a *Error of kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	for err != nil {
		if errors.As(err, &e) {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		return false
	}
	return false
}

var ErrEmptyPanel = NewError(ErrorKind_EmptyPanel, "build factor panel", errors.New("no dates common to all factor sources"))

// ErrNoReturns means every rebalance date was skipped
var ErrNoReturns = errors.New("no rebalance date produced a return")

// EligibilityGap is returned by the per-date steps when a date has to be
// skipped. It never escapes the backtest driver.
type EligibilityGap struct {
	Reason SkipReason
	Detail string
}

func (e EligibilityGap) Error() string {
	if e.Detail == "" {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func NewEligibilityGap(reason SkipReason, format string, args ...any) error {
	return NewError(ErrorKind_Eligibility, "rebalance date", EligibilityGap{
		Reason: reason,
		Detail: fmt.Sprintf(format, args...),
	})
}

// AsEligibilityGap extracts the gap carried by err, if any
func AsEligibilityGap(err error) (*EligibilityGap, bool) {
	var gap EligibilityGap
	if errors.As(err, &gap) {
		return &gap, true
	}
	return nil, false
}
