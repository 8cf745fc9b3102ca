package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"virtual-assistant-be/types"
)

const answerPromptTemplate = `You are a virtual assistant that answers questions based on the provided documents.
Use only the following context to answer the user's question.
If the answer is not in the context, say that you do not know the answer.
Always answer in %s.

Context:
%s

Question: %s

Answer:`

// RAGService answers a query by retrieving the most relevant chunks and
// conditioning the language model on them.
type RAGService struct {
	index    ChunkIndex
	ai       AIService
	topK     int
	language string
}

func NewRAGService(index ChunkIndex, ai AIService, topK int, language string) *RAGService {
	return &RAGService{
		index:    index,
		ai:       ai,
		topK:     topK,
		language: language,
	}
}

// Respond returns the model's answer for the query, grounded on the top-k
// retrieved chunks. The model output is returned verbatim.
func (s *RAGService) Respond(ctx context.Context, query string) (string, error) {
	chunks, err := s.index.Search(ctx, query, s.topK)
	if err != nil {
		return "", err
	}

	contextTexts := make([]string, len(chunks))
	for i, chunk := range chunks {
		contextTexts[i] = chunk.Content
	}
	contextBlock := strings.Join(contextTexts, "\n\n")

	prompt := fmt.Sprintf(answerPromptTemplate, s.language, contextBlock, query)

	answer, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		return "", types.NewAppError(types.ErrKindGeneration, "failed to generate answer").WithCause(err)
	}

	log.Debug().Int("context_chunks", len(chunks)).Msg("generated answer")
	return answer, nil
}
