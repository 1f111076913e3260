package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hospital-coordinator/internal/chat"
)

// GreetingMessage is the pre-seeded coordinator turn that opens every
// session. It is author-supplied text, not generator output, so it never
// goes through the completion parser.
const GreetingMessage = "Halo, saya adalah Sistem Koordinator Rumah Sakit. Apa yang bisa saya bantu hari ini? (Contoh: Pendaftaran pasien, Cek pendapatan, Informasi medis)"

// ensureStartedLocked establishes the generator session on first use.
// Idempotent once a session exists. On factory failure the session stays
// unset so a later call can retry after the credential is fixed.
// Caller must hold uc.mu.
func (uc *implUseCase) ensureStartedLocked(ctx context.Context) error {
	if uc.generator != nil {
		return nil
	}

	gen, err := uc.factory.Open(chat.CompileDirective())
	if err != nil {
		uc.l.Errorf(ctx, "chat: cannot establish generator session: %v", err)
		return chat.ErrMissingAPIKey
	}

	uc.generator = gen
	uc.history = append(uc.history, chat.Turn{
		ID:        uuid.NewString(),
		Author:    chat.AuthorAgent,
		Text:      GreetingMessage,
		Agent:     chat.AgentCoordinator,
		CreatedAt: time.Now(),
	})
	uc.l.Infof(ctx, "chat: session established")
	return nil
}

// Reset discards the active session and its history. The next Dispatch
// lazily builds a fresh one.
func (uc *implUseCase) Reset(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.generator = nil
	uc.history = nil
	uc.l.Infof(ctx, "chat: session reset")
}

// History returns a snapshot copy of the ordered turn history.
func (uc *implUseCase) History(ctx context.Context) []chat.Turn {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]chat.Turn, len(uc.history))
	copy(out, uc.history)
	return out
}

// Busy reports whether a dispatch is currently awaiting its completion.
func (uc *implUseCase) Busy() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.busy
}
