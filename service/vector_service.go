package service

import (
	"context"

	"virtual-assistant-be/database"
	"virtual-assistant-be/types"
)

// ChunkIndex is the vector-index surface the pipelines depend on: store
// chunks at ingestion time, retrieve nearest chunks at query time.
type ChunkIndex interface {
	AddChunks(ctx context.Context, chunks []types.Chunk) error
	Search(ctx context.Context, query string, k int) ([]types.ScoredChunk, error)
}

// VectorIndexService owns the embedding step in front of the vector
// database, guaranteeing that ingestion and search use the same embedding
// model and dimension.
type VectorIndexService struct {
	db       database.VectorDatabase
	embedder Embedder
}

func NewVectorIndexService(db database.VectorDatabase, embedder Embedder) *VectorIndexService {
	return &VectorIndexService{
		db:       db,
		embedder: embedder,
	}
}

// AddChunks embeds every chunk and stores (vector, content, metadata) in the
// index. There is no deduplication; re-ingesting identical content creates
// duplicate entries.
func (s *VectorIndexService) AddChunks(ctx context.Context, chunks []types.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return types.NewAppError(types.ErrKindEmbedding, "failed to embed chunks").WithCause(err)
	}

	if err := s.db.AddChunks(ctx, chunks, vectors); err != nil {
		return types.NewAppError(types.ErrKindIndex, "failed to store chunks").WithCause(err)
	}
	return nil
}

// Search embeds the query once and returns the k nearest chunks by cosine
// similarity, ranked descending by score.
func (s *VectorIndexService) Search(ctx context.Context, query string, k int) ([]types.ScoredChunk, error) {
	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, types.NewAppError(types.ErrKindEmbedding, "failed to embed query").WithCause(err)
	}

	chunks, err := s.db.SearchByVector(ctx, vector, k)
	if err != nil {
		return nil, types.NewAppError(types.ErrKindIndex, "vector search failed").WithCause(err)
	}
	return chunks, nil
}
