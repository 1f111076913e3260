package gemini

import "context"

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// StartChat opens a new multi-turn chat session carrying the given
	// system instruction for its whole lifetime.
	StartChat(systemInstruction string) Chat

	// Model returns the model being used
	Model() string
}

// Chat is a single ongoing conversation. The session keeps the message
// history itself; callers only push user text and read completions.
// A Chat is owned by exactly one caller and is not safe for concurrent use.
type Chat interface {
	// Send appends the user message, requests one completion, appends the
	// model reply to the session history, and returns the completion text.
	Send(ctx context.Context, text string) (string, error)
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
