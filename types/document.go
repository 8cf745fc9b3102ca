package types

// Chunk is the unit stored in and retrieved from the vector index.
type Chunk struct {
	Content  string        // The actual text content
	Index    int           // Position of the chunk within its document, 0-based
	Metadata ChunkMetadata // Associated metadata for the chunk
}

// ChunkMetadata ties a chunk back to the upload that produced it.
type ChunkMetadata struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	ChunkIndex int    `json:"chunk_index"`
}

// ScoredChunk is a search result: a chunk with its similarity score.
// Score is cosine similarity, higher is more similar.
type ScoredChunk struct {
	Chunk
	Score float32
}

// DocumentServiceConfig contains configuration options for document processing
type DocumentServiceConfig struct {
	MaxChunkSize int // Maximum size for text chunks
	OverlapSize  int // Size of overlap between chunks
}
