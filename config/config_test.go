package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "port: \"9000\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.RAG.ChunkSize != 1000 || cfg.RAG.ChunkOverlap != 200 {
		t.Errorf("unexpected chunking defaults: %d/%d", cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap)
	}
	if cfg.RAG.TopK != 5 {
		t.Errorf("expected top_k 5, got %d", cfg.RAG.TopK)
	}
	if cfg.Index.Dimension != 768 {
		t.Errorf("expected dimension 768, got %d", cfg.Index.Dimension)
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("expected gemini provider, got %s", cfg.AI.Provider)
	}
	if cfg.TTS.VoiceName != "id-ID-Standard-A" {
		t.Errorf("unexpected default voice %s", cfg.TTS.VoiceName)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfigFile(t, `
ai:
  provider: openai
  chat_model: gpt-4o-mini
rag:
  chunk_size: 500
  chunk_overlap: 100
  language: English
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.AI.Provider != "openai" || cfg.AI.ChatModel != "gpt-4o-mini" {
		t.Errorf("ai overrides not applied: %+v", cfg.AI)
	}
	if cfg.RAG.ChunkSize != 500 || cfg.RAG.ChunkOverlap != 100 {
		t.Errorf("rag overrides not applied: %+v", cfg.RAG)
	}
	if cfg.RAG.Language != "English" {
		t.Errorf("language override not applied: %s", cfg.RAG.Language)
	}
}

func TestLoadConfigSecretsFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "google-secret")
	t.Setenv("WEAVIATE_APIKEY", "weaviate-secret")

	path := writeConfigFile(t, "port: \"8000\"\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.AI.GoogleAPIKey != "google-secret" {
		t.Errorf("GOOGLE_API_KEY not bound, got %q", cfg.AI.GoogleAPIKey)
	}
	if cfg.Index.APIKey != "weaviate-secret" {
		t.Errorf("WEAVIATE_APIKEY not bound, got %q", cfg.Index.APIKey)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"overlap equals size", "rag:\n  chunk_size: 200\n  chunk_overlap: 200\n"},
		{"overlap exceeds size", "rag:\n  chunk_size: 100\n  chunk_overlap: 300\n"},
		{"zero dimension", "index:\n  dimension: 0\n"},
		{"unknown provider", "ai:\n  provider: anthropic\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
