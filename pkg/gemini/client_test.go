package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-coordinator/pkg/gemini"
)

// wireRequest mirrors the generateContent request body for assertions.
type wireRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (gemini.IGemini, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := gemini.New(gemini.Config{
		APIKey:      "test-api-key",
		APIURL:      ts.URL,
		HTTPClient:  ts.Client(),
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts
}

func completionBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": text}},
			}},
		},
	})
	return string(b)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestChat_Send(t *testing.T) {
	var lastReq wireRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&lastReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		last := lastReq.Contents[len(lastReq.Contents)-1]
		if last.Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionBody("mocked response string")))
	})

	chat := client.StartChat("system directive text")
	ctx := context.Background()

	t.Run("carries system instruction and temperature", func(t *testing.T) {
		got, err := chat.Send(ctx, "halo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "mocked response string" {
			t.Errorf("unexpected completion: %q", got)
		}
		if lastReq.SystemInstruction == nil || lastReq.SystemInstruction.Parts[0].Text != "system directive text" {
			t.Errorf("system instruction not sent: %+v", lastReq.SystemInstruction)
		}
		if lastReq.GenerationConfig == nil || lastReq.GenerationConfig.Temperature != 0.7 {
			t.Errorf("temperature not sent: %+v", lastReq.GenerationConfig)
		}
	})

	t.Run("accumulates history across sends", func(t *testing.T) {
		if _, err := chat.Send(ctx, "pesan kedua"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// user, model, user
		if len(lastReq.Contents) != 3 {
			t.Fatalf("expected 3 contents, got %d", len(lastReq.Contents))
		}
		if lastReq.Contents[0].Role != "user" || lastReq.Contents[1].Role != "model" {
			t.Errorf("unexpected roles: %s, %s", lastReq.Contents[0].Role, lastReq.Contents[1].Role)
		}
		if lastReq.Contents[2].Parts[0].Text != "pesan kedua" {
			t.Errorf("unexpected last message: %q", lastReq.Contents[2].Parts[0].Text)
		}
	})

	t.Run("API error surfaces and keeps history clean", func(t *testing.T) {
		_, err := chat.Send(ctx, "cause_500")
		if err == nil {
			t.Fatal("expected error for 500 response")
		}
		if !strings.Contains(err.Error(), "API error 500") {
			t.Errorf("unexpected error: %v", err)
		}

		// The failed exchange must not leak into the next request.
		if _, err := chat.Send(ctx, "lanjut"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lastReq.Contents) != 5 {
			t.Errorf("expected 5 contents after failed send, got %d", len(lastReq.Contents))
		}
	})
}

func TestChat_EmptyCandidates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates": []}`))
	})

	chat := client.StartChat("")
	got, err := chat.Send(context.Background(), "halo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty completion, got %q", got)
	}
}
