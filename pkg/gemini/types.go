package gemini

// generateRequest is the request body for the generateContent endpoint.
type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

// content wraps a list of part objects to form a message.
type content struct {
	Role  string `json:"role,omitempty"` // "user" or "model"
	Parts []part `json:"parts"`
}

// part holds a text segment of a content message.
type part struct {
	Text string `json:"text"`
}

// generationConfig holds optional generation settings.
type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// generateResponse is the response body from the generateContent endpoint.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// candidate represents a single response candidate.
type candidate struct {
	Content content `json:"content"`
}
