package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"virtual-assistant-be/types"
	"virtual-assistant-be/utils"
)

// IngestService runs the upload pipeline: temp file, text extraction,
// chunking, and submission to the vector index. Every chunk is tagged with
// the document id generated for the upload.
type IngestService struct {
	tempDir   string
	documents *DocumentService
	index     ChunkIndex
}

func NewIngestService(tempDir string, documents *DocumentService, index ChunkIndex) *IngestService {
	return &IngestService{
		tempDir:   tempDir,
		documents: documents,
		index:     index,
	}
}

// Ingest processes an uploaded file and returns the generated document id.
// The temporary file is removed on every exit path. Submission is not
// transactional: if storing fails partway, already-stored chunks remain.
func (s *IngestService) Ingest(ctx context.Context, fileBytes []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !s.documents.Supports(filename) {
		return "", types.NewAppError(types.ErrKindUnsupportedFormat, "unsupported file type: "+ext)
	}

	documentID := uuid.New().String()

	tempPath, err := utils.SaveTempFile(s.tempDir, fileBytes, "temp_"+documentID+ext)
	if err != nil {
		return "", types.NewAppError(types.ErrKindDocumentParse, "failed to persist upload").WithCause(err)
	}
	defer os.Remove(tempPath)

	text, err := s.documents.ExtractText(tempPath)
	if err != nil {
		return "", err
	}

	contents := s.documents.CreateChunks(text)
	chunks := make([]types.Chunk, len(contents))
	for i, content := range contents {
		chunks[i] = types.Chunk{
			Content: content,
			Index:   i,
			Metadata: types.ChunkMetadata{
				DocumentID: documentID,
				Filename:   filename,
				ChunkIndex: i,
			},
		}
	}

	if err := s.index.AddChunks(ctx, chunks); err != nil {
		return "", err
	}

	log.Info().
		Str("document_id", documentID).
		Str("filename", filename).
		Int("chunks", len(chunks)).
		Msg("document ingested")
	return documentID, nil
}
