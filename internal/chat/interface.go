package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Dispatch submits user text to the coordinator session and returns the
	// specialist-labeled result. It returns ErrMissingAPIKey when the
	// generator cannot be configured, ErrDispatchBusy while another dispatch
	// is outstanding, and ErrEmptyMessage for blank input. Transport
	// failures after a session is established do not surface as errors;
	// they resolve to a fallback DispatchOutput.
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)

	// History returns a snapshot of the session's ordered turn history.
	History(ctx context.Context) []Turn

	// Reset discards the active session and its history. The next Dispatch
	// lazily builds a fresh session.
	Reset(ctx context.Context)

	// Busy reports whether a dispatch is currently awaiting its completion,
	// so the UI can disable submission.
	Busy() bool
}

// Generator is one established conversation with the text generator. The
// connection keeps the directive and prior turns itself; the session only
// pushes user text and reads raw completions.
type Generator interface {
	Send(ctx context.Context, text string) (string, error)
}

// GeneratorFactory opens a new generator conversation carrying the given
// standing directive. It fails when the credential is missing, which the
// session reports as ErrMissingAPIKey.
type GeneratorFactory interface {
	Open(systemInstruction string) (Generator, error)
}
