package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string      `mapstructure:"port"`
	TempDir string      `mapstructure:"temp_dir"`
	AI      AIConfig    `mapstructure:"ai"`
	Index   IndexConfig `mapstructure:"index"`
	RAG     RAGConfig   `mapstructure:"rag"`
	TTS     TTSConfig   `mapstructure:"tts"`
}

type AIConfig struct {
	Provider       string `mapstructure:"provider"` // "gemini" or "openai"
	GoogleAPIKey   string `mapstructure:"GOOGLE_API_KEY"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `mapstructure:"openai_base_url"`
	ChatModel      string `mapstructure:"chat_model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	TimeoutSec     int    `mapstructure:"timeout_seconds"`
}

type IndexConfig struct {
	Host       string `mapstructure:"host"`
	APIKey     string `mapstructure:"WEAVIATE_APIKEY"`
	Class      string `mapstructure:"class"`
	Dimension  int    `mapstructure:"dimension"`
	TimeoutSec int    `mapstructure:"timeout_seconds"`
}

type RAGConfig struct {
	ChunkSize    int    `mapstructure:"chunk_size"`
	ChunkOverlap int    `mapstructure:"chunk_overlap"`
	TopK         int    `mapstructure:"top_k"`
	Language     string `mapstructure:"language"`
}

type TTSConfig struct {
	LanguageCode string `mapstructure:"language_code"`
	VoiceName    string `mapstructure:"voice_name"`
	TimeoutSec   int    `mapstructure:"timeout_seconds"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	// Secrets come from the environment, never from the config file
	v.AutomaticEnv()
	v.BindEnv("ai.GOOGLE_API_KEY", "GOOGLE_API_KEY")
	v.BindEnv("ai.OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("index.WEAVIATE_APIKEY", "WEAVIATE_APIKEY")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("temp_dir", "tmp")
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.chat_model", "gemini-1.5-flash")
	v.SetDefault("ai.embedding_model", "embedding-001")
	v.SetDefault("ai.timeout_seconds", 60)
	v.SetDefault("index.host", "http://localhost:8080")
	v.SetDefault("index.class", "DocumentChunk")
	v.SetDefault("index.dimension", 768)
	v.SetDefault("index.timeout_seconds", 30)
	v.SetDefault("rag.chunk_size", 1000)
	v.SetDefault("rag.chunk_overlap", 200)
	v.SetDefault("rag.top_k", 5)
	v.SetDefault("rag.language", "Indonesian")
	v.SetDefault("tts.language_code", "id-ID")
	v.SetDefault("tts.voice_name", "id-ID-Standard-A")
	v.SetDefault("tts.timeout_seconds", 30)
}

func validate(cfg *Config) error {
	if cfg.RAG.ChunkOverlap >= cfg.RAG.ChunkSize {
		return fmt.Errorf("chunk_overlap (%d) must be smaller than chunk_size (%d)",
			cfg.RAG.ChunkOverlap, cfg.RAG.ChunkSize)
	}
	if cfg.Index.Dimension <= 0 {
		return fmt.Errorf("index dimension must be positive, got %d", cfg.Index.Dimension)
	}
	switch cfg.AI.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
	return nil
}
