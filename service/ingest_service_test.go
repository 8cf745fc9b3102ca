package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"virtual-assistant-be/types"
)

type fakeChunkIndex struct {
	added   []types.Chunk
	addErr  error
	results []types.ScoredChunk
}

func (f *fakeChunkIndex) AddChunks(ctx context.Context, chunks []types.Chunk) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, chunks...)
	return nil
}

func (f *fakeChunkIndex) Search(ctx context.Context, query string, k int) ([]types.ScoredChunk, error) {
	if k < len(f.results) {
		return f.results[:k], nil
	}
	return f.results, nil
}

// plaintextDocumentService parses .txt files verbatim, so pipeline tests do
// not depend on real PDF/DOCX fixtures.
func plaintextDocumentService() *DocumentService {
	return &DocumentService{
		maxChunkSize: 1000,
		overlapSize:  200,
		parsers: map[string]parseFunc{
			".txt": func(filePath string) (string, error) {
				data, err := os.ReadFile(filePath)
				return string(data), err
			},
			".bad": func(filePath string) (string, error) {
				return "", errors.New("corrupt file")
			},
		},
	}
}

func TestIngestTagsChunksWithDocumentID(t *testing.T) {
	index := &fakeChunkIndex{}
	ingest := NewIngestService(t.TempDir(), plaintextDocumentService(), index)

	text := strings.Repeat("abcde", 500)
	documentID, err := ingest.Ingest(context.Background(), []byte(text), "report.txt")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if documentID == "" {
		t.Fatal("expected non-empty document id")
	}
	if len(index.added) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(index.added))
	}
	for i, chunk := range index.added {
		if chunk.Metadata.DocumentID != documentID {
			t.Errorf("chunk %d has document_id %q, want %q", i, chunk.Metadata.DocumentID, documentID)
		}
		if chunk.Metadata.ChunkIndex != i {
			t.Errorf("chunk %d has chunk_index %d", i, chunk.Metadata.ChunkIndex)
		}
		if chunk.Metadata.Filename != "report.txt" {
			t.Errorf("chunk %d has filename %q", i, chunk.Metadata.Filename)
		}
	}
}

func TestIngestDocumentIDUniquePerUpload(t *testing.T) {
	index := &fakeChunkIndex{}
	ingest := NewIngestService(t.TempDir(), plaintextDocumentService(), index)

	id1, err := ingest.Ingest(context.Background(), []byte("same content"), "a.txt")
	if err != nil {
		t.Fatalf("first Ingest failed: %v", err)
	}
	id2, err := ingest.Ingest(context.Background(), []byte("same content"), "a.txt")
	if err != nil {
		t.Fatalf("second Ingest failed: %v", err)
	}
	if id1 == id2 {
		t.Errorf("document id reused across uploads: %s", id1)
	}
	// no deduplication: both uploads stored
	if len(index.added) != 2 {
		t.Errorf("expected 2 stored chunks, got %d", len(index.added))
	}
}

func TestIngestUnsupportedFormat(t *testing.T) {
	tempDir := t.TempDir()
	ingest := NewIngestService(tempDir, plaintextDocumentService(), &fakeChunkIndex{})

	_, err := ingest.Ingest(context.Background(), []byte("data"), "image.png")
	if kind := types.KindOf(err); kind != types.ErrKindUnsupportedFormat {
		t.Fatalf("expected kind %s, got %s", types.ErrKindUnsupportedFormat, kind)
	}
	assertDirEmpty(t, tempDir)
}

func TestIngestCleansUpTempFile(t *testing.T) {
	tempDir := t.TempDir()
	ingest := NewIngestService(tempDir, plaintextDocumentService(), &fakeChunkIndex{})

	if _, err := ingest.Ingest(context.Background(), []byte("hello"), "ok.txt"); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	assertDirEmpty(t, tempDir)
}

func TestIngestParseFailureCleansUp(t *testing.T) {
	tempDir := t.TempDir()
	ingest := NewIngestService(tempDir, plaintextDocumentService(), &fakeChunkIndex{})

	_, err := ingest.Ingest(context.Background(), []byte("data"), "broken.bad")
	if kind := types.KindOf(err); kind != types.ErrKindDocumentParse {
		t.Fatalf("expected kind %s, got %s", types.ErrKindDocumentParse, kind)
	}
	assertDirEmpty(t, tempDir)
}

func TestIngestIndexErrorPropagates(t *testing.T) {
	indexErr := types.NewAppError(types.ErrKindIndex, "store down")
	ingest := NewIngestService(t.TempDir(), plaintextDocumentService(), &fakeChunkIndex{addErr: indexErr})

	_, err := ingest.Ingest(context.Background(), []byte("hello"), "ok.txt")
	if kind := types.KindOf(err); kind != types.ErrKindIndex {
		t.Errorf("expected kind %s, got %s", types.ErrKindIndex, kind)
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no leftover temp files, found %d", len(entries))
	}
}
