package database

import (
	"context"

	"virtual-assistant-be/types"
)

// VectorDatabase defines the operations the ingestion and query pipelines
// need from the external vector index. Embeddings are computed by the caller;
// the index only stores and searches vectors.
type VectorDatabase interface {
	// AddChunks stores chunks with their precomputed embeddings.
	// len(chunks) must equal len(vectors). Append-only, no deduplication.
	AddChunks(ctx context.Context, chunks []types.Chunk, vectors [][]float32) error

	// SearchByVector returns up to limit chunks nearest to vector by cosine
	// similarity, ordered by non-increasing score. Ties are broken in
	// index-assigned order, which is not deterministic across runs.
	SearchByVector(ctx context.Context, vector []float32, limit int) ([]types.ScoredChunk, error)
}
