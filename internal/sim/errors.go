package sim

import "errors"

// Domain failures are non-fatal: the triggering operation returns a safe
// default (zero value, empty info, no-op) alongside the error, and the
// engine keeps running. Only snapshot decoding surfaces a hard failure.
var (
	// ErrMissingComponent reports that a blueprint was referenced before
	// being registered with the engine.
	ErrMissingComponent = errors.New("sim: missing component")

	// ErrInsufficientFunds reports that at least one cost of a purchase
	// exceeded the available resource balance. The purchase is aborted
	// with no partial deduction.
	ErrInsufficientFunds = errors.New("sim: insufficient funds")

	// ErrMalformedSnapshot reports that persisted bytes cannot
	// reconstruct a valid simulation state.
	ErrMalformedSnapshot = errors.New("sim: malformed snapshot")
)
