package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type geminiImpl struct {
	apiKey      string
	model       string
	apiURL      string
	temperature float64
	httpClient  *http.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		apiURL:      cfg.APIURL,
		temperature: cfg.Temperature,
		httpClient:  cfg.HTTPClient,
	}
}

// StartChat opens a new chat session bound to this client.
func (g *geminiImpl) StartChat(systemInstruction string) Chat {
	return &chatSession{
		client:            g,
		systemInstruction: systemInstruction,
	}
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// chatSession accumulates the contents history across Send calls so the
// model sees the whole conversation on every request.
type chatSession struct {
	client            *geminiImpl
	systemInstruction string
	history           []content
}

func (s *chatSession) Send(ctx context.Context, text string) (string, error) {
	req := generateRequest{
		Contents: append(append([]content{}, s.history...), content{
			Role:  "user",
			Parts: []part{{Text: text}},
		}),
		GenerationConfig: &generationConfig{
			Temperature: s.client.temperature,
		},
	}
	if s.systemInstruction != "" {
		req.SystemInstruction = &content{
			Parts: []part{{Text: s.systemInstruction}},
		}
	}

	resp, err := s.client.callAPI(ctx, req)
	if err != nil {
		return "", err
	}

	reply := extractText(resp)

	// Only commit the exchange once the request succeeded, so a failed
	// call leaves the session history unchanged.
	s.history = append(s.history, content{
		Role:  "user",
		Parts: []part{{Text: text}},
	})
	s.history = append(s.history, content{
		Role:  "model",
		Parts: []part{{Text: reply}},
	})

	return reply, nil
}

// callAPI sends a request to the Gemini API
func (g *geminiImpl) callAPI(ctx context.Context, req generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
