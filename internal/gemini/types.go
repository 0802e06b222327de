package gemini

// Wire shapes for the generative-language generateContent endpoint.

// Content is a role-tagged block of parts. Roles on this API are "user" and
// "model"; the system instruction carries no role.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a single text fragment.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig mirrors the persona's fixed generation parameters.
type GenerationConfig struct {
	Temperature      float32 `json:"temperature"`
	TopK             int32   `json:"topK"`
	TopP             float32 `json:"topP"`
	MaxOutputTokens  int32   `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType"`
}

// GenerateRequest is the generateContent request body.
type GenerateRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// GenerateResponse is the response envelope. Safety blocks can leave the
// candidate list empty.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate wraps one generated content block.
type Candidate struct {
	Content *Content `json:"content"`
}

// Text returns the first part of the first candidate, or "" when the
// envelope carries no usable candidate. Later parts are ignored.
func (r *GenerateResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
