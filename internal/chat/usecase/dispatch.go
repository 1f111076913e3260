package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hospital-coordinator/internal/chat"
)

// TransportFailureMessage is shown in place of a completion when the
// generator call fails after the session was established.
const TransportFailureMessage = "Terjadi kesalahan koneksi dengan sistem AI. Silakan coba lagi."

// Dispatch submits user text to the coordinator session and returns the
// specialist-labeled result. Exactly one request may be in flight at a
// time; a concurrent call is rejected with chat.ErrDispatchBusy rather
// than queued, and the caller is expected to disable submission while
// Busy() reports true.
func (uc *implUseCase) Dispatch(ctx context.Context, input chat.DispatchInput) (chat.DispatchOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.DispatchOutput{}, chat.ErrEmptyMessage
	}

	uc.mu.Lock()
	if uc.busy {
		uc.mu.Unlock()
		return chat.DispatchOutput{}, chat.ErrDispatchBusy
	}
	if err := uc.ensureStartedLocked(ctx); err != nil {
		uc.mu.Unlock()
		return chat.DispatchOutput{}, err
	}

	uc.busy = true
	generator := uc.generator
	uc.history = append(uc.history, chat.Turn{
		ID:        uuid.NewString(),
		Author:    chat.AuthorUser,
		Text:      text,
		CreatedAt: time.Now(),
	})
	uc.mu.Unlock()

	// The only suspension point: one outstanding generator call, made
	// outside the lock so History/Busy stay readable while it runs.
	raw, err := generator.Send(ctx, text)

	var parsed chat.ParsedCompletion
	if err != nil {
		// Transport failures never escape the facade; they resolve to a
		// fallback result the UI renders like any other reply.
		uc.l.Errorf(ctx, "chat: generator call failed: %v", err)
		parsed = chat.ParsedCompletion{
			Kind:  chat.CompletionEmpty,
			Agent: chat.AgentUnknown,
			Text:  TransportFailureMessage,
		}
	} else {
		parsed = chat.ParseCompletion(raw)
		if parsed.Kind == chat.CompletionUnrecognized {
			uc.l.Warnf(ctx, "chat: completion without recognized tag, falling back to %s", parsed.Agent.Label())
		}
	}

	turn := chat.Turn{
		ID:        uuid.NewString(),
		Author:    chat.AuthorAgent,
		Text:      parsed.Text,
		Agent:     parsed.Agent,
		CreatedAt: time.Now(),
	}

	uc.mu.Lock()
	uc.busy = false
	if uc.generator == generator {
		uc.history = append(uc.history, turn)
	}
	// else: the session was reset while the call was outstanding; the
	// result still goes back to this caller but not into the new history.
	uc.mu.Unlock()

	return chat.DispatchOutput{
		Agent:     turn.Agent,
		Text:      turn.Text,
		CreatedAt: turn.CreatedAt,
	}, nil
}
