package service

import "context"

// AIService generates a text answer from a fully assembled prompt.
type AIService interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder turns text into fixed-dimension vectors. The same embedder
// instance is used for ingestion and querying so dimensions always match.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// SpeechSynthesizer converts a text answer into encoded audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
