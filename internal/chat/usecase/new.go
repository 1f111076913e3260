package usecase

import (
	"sync"

	"hospital-coordinator/internal/chat"
	pkgLog "hospital-coordinator/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	factory chat.GeneratorFactory

	mu        sync.Mutex
	generator chat.Generator // nil until the session is established
	history   []chat.Turn
	busy      bool
}

// New creates a new chat UseCase instance. The generator session is not
// opened here; the first Dispatch establishes it lazily.
func New(l pkgLog.Logger, factory chat.GeneratorFactory) *implUseCase {
	return &implUseCase{
		l:       l,
		factory: factory,
	}
}
