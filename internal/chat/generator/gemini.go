package generator

import (
	"hospital-coordinator/internal/chat"
	"hospital-coordinator/pkg/gemini"
)

// Gemini opens chat sessions against the Gemini API. Construction is
// deferred to Open so a missing credential surfaces on first dispatch
// (as a typed configuration error) instead of at process start.
type Gemini struct {
	cfg gemini.Config
}

// NewGemini creates a session factory for the given client configuration.
func NewGemini(cfg gemini.Config) *Gemini {
	return &Gemini{cfg: cfg}
}

// Open builds the client and starts one conversation carrying the
// standing directive.
func (g *Gemini) Open(systemInstruction string) (chat.Generator, error) {
	client, err := gemini.New(g.cfg)
	if err != nil {
		return nil, err
	}
	return client.StartChat(systemInstruction), nil
}

var _ chat.GeneratorFactory = (*Gemini)(nil)
