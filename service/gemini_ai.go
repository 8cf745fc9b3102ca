package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"virtual-assistant-be/config"
)

// GeminiService talks to the Gemini API for both chat completion and text
// embeddings. It implements AIService and Embedder.
type GeminiService struct {
	client     *genai.Client
	chatModel  string
	embedModel string
	timeout    time.Duration
}

func NewGeminiService(ctx context.Context, cfg config.AIConfig) (*GeminiService, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, errors.New("GOOGLE_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GoogleAPIKey))
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:     client,
		chatModel:  cfg.ChatModel,
		embedModel: cfg.EmbeddingModel,
		timeout:    time.Duration(cfg.TimeoutSec) * time.Second,
	}, nil
}

func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	model := s.client.GenerativeModel(s.chatModel)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func (s *GeminiService) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	em := s.client.EmbeddingModel(s.embedModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, errors.New("no embedding returned")
	}
	return res.Embedding.Values, nil
}

func (s *GeminiService) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	em := s.client.EmbeddingModel(s.embedModel)
	batch := em.NewBatch()
	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(res.Embeddings) != len(texts) {
		return nil, errors.New("embedding count does not match input count")
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, emb := range res.Embeddings {
		vectors[i] = emb.Values
	}
	return vectors, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}
