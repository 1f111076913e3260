package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hospital-coordinator/internal/chat"
	"hospital-coordinator/internal/middleware"
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

// mockUseCase returns scripted results per call.
type mockUseCase struct {
	out     chat.DispatchOutput
	err     error
	history []chat.Turn
	busy    bool
	resets  int
}

func (m *mockUseCase) Dispatch(ctx context.Context, input chat.DispatchInput) (chat.DispatchOutput, error) {
	return m.out, m.err
}
func (m *mockUseCase) History(ctx context.Context) []chat.Turn { return m.history }
func (m *mockUseCase) Reset(ctx context.Context)               { m.resets++ }
func (m *mockUseCase) Busy() bool                              { return m.busy }

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.New(&mockLogger{}, 600)
	RegisterRoutes(router.Group("/api/v1"), New(&mockLogger{}, uc), mw)
	return router
}

func TestDispatchRoute(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		uc         *mockUseCase
		wantStatus int
	}{
		{
			name: "labeled result",
			body: `{"message": "cek jadwal"}`,
			uc: &mockUseCase{out: chat.DispatchOutput{
				Agent: chat.AgentPatientManager,
				Text:  "Janji temu terkonfirmasi.",
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty body",
			body:       `{}`,
			uc:         &mockUseCase{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "whitespace-only message",
			body:       `{"message": "   "}`,
			uc:         &mockUseCase{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "dispatch busy",
			body:       `{"message": "halo"}`,
			uc:         &mockUseCase{err: chat.ErrDispatchBusy},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing credential",
			body:       `{"message": "halo"}`,
			uc:         &mockUseCase{err: chat.ErrMissingAPIKey},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.uc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var resp struct {
					Data dispatchResp `json:"data"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if resp.Data.Label != tt.uc.out.Agent.Label() {
					t.Errorf("label = %q, want %q", resp.Data.Label, tt.uc.out.Agent.Label())
				}
				if resp.Data.Text != tt.uc.out.Text {
					t.Errorf("text = %q", resp.Data.Text)
				}
			}
		})
	}
}

func TestHistoryRoute(t *testing.T) {
	uc := &mockUseCase{history: []chat.Turn{
		{ID: "t1", Author: chat.AuthorAgent, Agent: chat.AgentCoordinator, Text: "Halo"},
		{ID: "t2", Author: chat.AuthorUser, Text: "cek kamar"},
	}}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data historyResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Count != 2 || len(resp.Data.Turns) != 2 {
		t.Fatalf("unexpected history payload: %+v", resp.Data)
	}
	if resp.Data.Turns[1].Agent != "" {
		t.Errorf("user turn must serialize without an agent, got %q", resp.Data.Turns[1].Agent)
	}
}

func TestStatusRoute(t *testing.T) {
	router := newTestRouter(&mockUseCase{busy: true})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/status", nil))

	var resp struct {
		Data statusResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Data.Busy {
		t.Error("expected busy=true")
	}
}

func TestResetRoute(t *testing.T) {
	uc := &mockUseCase{}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/chat/session", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.resets != 1 {
		t.Errorf("resets = %d, want 1", uc.resets)
	}
}
