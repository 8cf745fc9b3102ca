package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"virtual-assistant-be/config"
	"virtual-assistant-be/types"
)

const batchSize = 200

// WeaviateStore stores chunk embeddings in a Weaviate class. Vectors are
// supplied by the caller (vectorizer "none"), so the embedding model used at
// ingestion and at query time is always the same one.
type WeaviateStore struct {
	client    *weaviate.Client
	class     string
	dimension int
	timeout   time.Duration
}

func NewWeaviateStore(cfg config.IndexConfig) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(cfg.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(cfg.Host, scheme+"://")

	wcfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if cfg.APIKey != "" {
		wcfg.AuthConfig = auth.ApiKey{
			Value: cfg.APIKey,
		}
	}

	client, err := weaviate.NewClient(wcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}

	store := &WeaviateStore{
		client:    client,
		class:     cfg.Class,
		dimension: cfg.Dimension,
		timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
	}
	if err := store.ensureClass(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// ensureClass creates the chunk class if it does not exist yet. Safe to call
// on every startup.
func (s *WeaviateStore) ensureClass(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	schema, err := s.client.Schema().Getter().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to get schema: %w", err)
	}
	for _, class := range schema.Classes {
		if class.Class == s.class {
			return nil
		}
	}

	log.Info().Str("class", s.class).Msg("creating weaviate class")
	err = s.client.Schema().ClassCreator().WithClass(s.classObject()).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create class %s: %w", s.class, err)
	}
	return nil
}

func (s *WeaviateStore) classObject() *models.Class {
	return &models.Class{
		Class: s.class,
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}},
			{Name: "documentId", DataType: []string{"text"}},
			{Name: "filename", DataType: []string{"text"}},
			{Name: "chunkIndex", DataType: []string{"int"}},
		},
		// Embeddings are computed client-side
		Vectorizer:      "none",
		VectorIndexType: "hnsw",
		VectorIndexConfig: map[string]interface{}{
			"distance": "cosine",
		},
	}
}

func (s *WeaviateStore) AddChunks(ctx context.Context, chunks []types.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunk/vector count mismatch: %d != %d", len(chunks), len(vectors))
	}
	for i, vector := range vectors {
		if err := s.checkDimension(vector); err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
	}

	total := len(chunks)
	for i := 0; i < total; i += batchSize {
		end := i + batchSize
		if end > total {
			end = total
		}

		batcher := s.client.Batch().ObjectsBatcher()
		for j := i; j < end; j++ {
			batcher = batcher.WithObjects(&models.Object{
				Class:      s.class,
				Properties: chunkProperties(chunks[j]),
				Vector:     vectors[j],
			})
		}

		bctx, cancel := context.WithTimeout(ctx, s.timeout)
		_, err := batcher.Do(bctx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
		log.Debug().Int("from", i).Int("to", end).Int("total", total).Msg("inserted chunk batch")
	}
	return nil
}

func (s *WeaviateStore) SearchByVector(ctx context.Context, vector []float32, limit int) ([]types.ScoredChunk, error) {
	if err := s.checkDimension(vector); err != nil {
		return nil, err
	}

	fields := []graphql.Field{
		{Name: "content"},
		{Name: "documentId"},
		{Name: "filename"},
		{Name: "chunkIndex"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}
	nearVector := s.client.GraphQL().NearVectorArgBuilder().WithVector(vector)

	sctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.client.GraphQL().Get().
		WithClassName(s.class).
		WithFields(fields...).
		WithNearVector(nearVector).
		WithLimit(limit).
		Do(sctx)
	if err != nil {
		return nil, err
	}
	if err := graphqlError(result.Errors); err != nil {
		return nil, err
	}

	return parseSearchResult(result.Data, s.class), nil
}

// checkDimension rejects vectors whose length does not match the configured
// index dimension, so a misconfigured embedding model fails with a taxonomy
// error instead of an opaque server response.
func (s *WeaviateStore) checkDimension(vector []float32) error {
	if s.dimension > 0 && len(vector) != s.dimension {
		return types.NewAppError(types.ErrKindEmbedding,
			fmt.Sprintf("embedding dimension mismatch: got %d, index expects %d", len(vector), s.dimension))
	}
	return nil
}

func graphqlError(errs []*models.GraphQLError) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("search failed: %v", errs[0].Message)
}

func chunkProperties(chunk types.Chunk) map[string]interface{} {
	return map[string]interface{}{
		"content":    chunk.Content,
		"documentId": chunk.Metadata.DocumentID,
		"filename":   chunk.Metadata.Filename,
		"chunkIndex": chunk.Metadata.ChunkIndex,
	}
}

func parseSearchResult(data map[string]models.JSONObject, class string) []types.ScoredChunk {
	var chunks []types.ScoredChunk
	get, ok := data["Get"].(map[string]interface{})
	if !ok {
		return chunks
	}
	items, ok := get[class].([]interface{})
	if !ok {
		return chunks
	}
	for _, item := range items {
		props, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		chunks = append(chunks, chunkFromProperties(props))
	}
	return chunks
}

func chunkFromProperties(props map[string]interface{}) types.ScoredChunk {
	chunk := types.ScoredChunk{}
	chunk.Content, _ = props["content"].(string)
	chunk.Metadata.DocumentID, _ = props["documentId"].(string)
	chunk.Metadata.Filename, _ = props["filename"].(string)
	if idx, ok := props["chunkIndex"].(float64); ok {
		chunk.Metadata.ChunkIndex = int(idx)
		chunk.Index = int(idx)
	}
	if additional, ok := props["_additional"].(map[string]interface{}); ok {
		if distance, ok := additional["distance"].(float64); ok {
			// cosine distance is 1 - similarity
			chunk.Score = 1 - float32(distance)
		}
	}
	return chunk
}
