package dapp

import (
	"errors"
	"fmt"
)

var (
	ErrProviderUnavailable = errors.New("no wallet provider available")
	ErrConnectionRejected  = errors.New("connection rejected")
	ErrNotConnected        = errors.New("wallet not connected")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrRemoteCallFailed    = errors.New("remote call failed")
	ErrTransactionFailed   = errors.New("transaction failed")

	// ErrBusy is returned when another action is still in flight.
	ErrBusy = errors.New("another action is in progress")
	// ErrCooldown is returned when a deposit/withdraw comes too soon after the previous one.
	ErrCooldown = errors.New("cooldown active")
)

// fail tags cause with one of the sentinel kinds so both match errors.Is.
func fail(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// ErrorCode returns a stable snake_case code for err, "ok" for nil.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, ErrConnectionRejected):
		return "connection_rejected"
	case errors.Is(err, ErrNotConnected):
		return "not_connected"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrRemoteCallFailed):
		return "remote_call_failed"
	case errors.Is(err, ErrTransactionFailed):
		return "transaction_failed"
	case errors.Is(err, ErrBusy):
		return "busy"
	case errors.Is(err, ErrCooldown):
		return "cooldown"
	default:
		return "internal"
	}
}
