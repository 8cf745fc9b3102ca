package service

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"

	"virtual-assistant-be/config"
)

// OpenAIService is the alternative AI provider for OpenAI-compatible
// deployments (including local inference servers). It implements AIService
// and Embedder.
type OpenAIService struct {
	client     *openai.Client
	chatModel  string
	embedModel string
	timeout    time.Duration
}

func NewOpenAIService(cfg config.AIConfig) (*OpenAIService, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIService{
		client:     openai.NewClientWithConfig(clientConfig),
		chatModel:  cfg.ChatModel,
		embedModel: cfg.EmbeddingModel,
		timeout:    time.Duration(cfg.TimeoutSec) * time.Second,
	}, nil
}

func (s *OpenAIService) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (s *OpenAIService) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(s.embedModel),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, errors.New("embedding count does not match input count")
	}

	vectors := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		vectors[i] = data.Embedding
	}
	return vectors, nil
}
