package llm

import "context"

// Provider abstracts a text-generation backend (Gemini, Anthropic,
// OpenAI). The advisory layer treats every provider as an opaque
// prompt-in, string-out service.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Embed(ctx context.Context, input []string) ([][]float32, error)
	Name() string
}

// Gateway routes completion and embedding requests across configured
// providers with retry and fallback.
type Gateway interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Embed(ctx context.Context, input []string) ([][]float32, error)
	Provider(name string) (Provider, error)
	HasEmbeddings() bool
}

// CompletionRequest is one prompt for one completion.
type CompletionRequest struct {
	Provider    string  `json:"provider,omitempty"`
	Model       string  `json:"model,omitempty"`
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

// CompletionResponse is the generated text plus usage accounting.
type CompletionResponse struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	Content      string `json:"content"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	LatencyMs    int64  `json:"latency_ms"`
}
