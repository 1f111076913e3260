package generator

import (
	"testing"

	"hospital-coordinator/pkg/gemini"
)

func TestOpen_MissingAPIKey(t *testing.T) {
	factory := NewGemini(gemini.Config{})

	if _, err := factory.Open("directive"); err == nil {
		t.Fatal("expected error when the api key is missing")
	}
}

func TestOpen_WithKey(t *testing.T) {
	factory := NewGemini(gemini.Config{APIKey: "test-key"})

	gen, err := factory.Open("directive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen == nil {
		t.Fatal("expected a generator session")
	}
}
