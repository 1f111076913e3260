package usecase

import (
	"context"
	"errors"

	"hospital-coordinator/internal/chat"
)

// Mock logger (no-op)
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// scriptedGenerator returns pre-scripted completions in order. A script
// entry with a non-nil err simulates a transport failure. When block is
// set, Send waits until release is closed, simulating a slow completion.
type scriptedGenerator struct {
	script  []scriptedReply
	calls   int
	block   bool
	started chan struct{} // closed-ish signal: receives one value per Send entry
	release chan struct{}
}

type scriptedReply struct {
	text string
	err  error
}

func (g *scriptedGenerator) Send(ctx context.Context, text string) (string, error) {
	if g.block {
		g.started <- struct{}{}
		<-g.release
	}
	if g.calls >= len(g.script) {
		return "", errors.New("no scripted reply left")
	}
	reply := g.script[g.calls]
	g.calls++
	return reply.text, reply.err
}

// mockFactory hands out a fixed generator, or fails to simulate a missing
// credential.
type mockFactory struct {
	generator chat.Generator
	err       error
	opened    int
	directive string
}

func (f *mockFactory) Open(systemInstruction string) (chat.Generator, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.opened++
	f.directive = systemInstruction
	return f.generator, nil
}

func newTestUseCase(script ...scriptedReply) (*implUseCase, *mockFactory) {
	factory := &mockFactory{generator: &scriptedGenerator{script: script}}
	return New(&mockLogger{}, factory), factory
}
