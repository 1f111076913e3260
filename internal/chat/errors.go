package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	// ErrMissingAPIKey means the generator session cannot be established.
	// It is the only failure allowed to cross the dispatch boundary; the
	// caller shows a setup message and may retry after configuration.
	ErrMissingAPIKey = errors.New("generator credential is not configured")

	// ErrDispatchBusy rejects a dispatch while another one is still
	// awaiting its completion. The session never interleaves requests.
	ErrDispatchBusy = errors.New("a dispatch is already in flight")

	// ErrEmptyMessage rejects input that is empty after trimming.
	ErrEmptyMessage = errors.New("message text is empty")
)
