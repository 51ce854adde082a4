package services

import "errors"

// Provider error taxonomy. Handlers map these onto HTTP statuses; the
// generators treat everything except ErrBadRequest as a signal to fall
// back to template content.
var (
	// ErrAuth means the provider rejected our credentials. Retrying
	// cannot help.
	ErrAuth = errors.New("provider authentication failed")

	// ErrBadRequest means the provider rejected the request payload
	// itself. The wrapped message carries the provider's explanation.
	ErrBadRequest = errors.New("provider rejected request")

	// ErrProviderUnavailable means every attempt failed with a
	// transient condition (rate limit, server error, network).
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// errRateLimited marks a 429 so the retry loop can back off
// exponentially instead of using the flat transient delay.
var errRateLimited = errors.New("rate limited")

// isFatal reports whether err should short-circuit the retry loop.
func isFatal(err error) bool {
	return errors.Is(err, ErrAuth) || errors.Is(err, ErrBadRequest)
}
