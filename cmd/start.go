package cmd

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"virtual-assistant-be/config"
	"virtual-assistant-be/database"
	"virtual-assistant-be/handler"
	"virtual-assistant-be/service"
	"virtual-assistant-be/types"
)

const audioStoreCapacity = 128

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the assistant server",
	Long:  `Starts the HTTP server serving the upload, chat, voice and audio endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		ai, err := newAIProvider(ctx, cfg.AI)
		if err != nil {
			log.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("failed to initialize AI provider")
		}

		store, err := database.NewWeaviateStore(cfg.Index)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to vector index")
		}

		tts, err := service.NewTTSService(ctx, cfg.TTS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize text-to-speech client")
		}

		index := service.NewVectorIndexService(store, ai)
		documents := service.NewDocumentService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.RAG.ChunkSize,
			OverlapSize:  cfg.RAG.ChunkOverlap,
		})
		ingest := service.NewIngestService(cfg.TempDir, documents, index)
		responder := service.NewRAGService(index, ai, cfg.RAG.TopK, cfg.RAG.Language)
		audioStore := service.NewAudioStore(audioStoreCapacity)
		assistant := service.NewAssistantService(responder, tts, audioStore)

		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(ingest)
		chatHandler := handler.NewChatHandler(assistant)
		voiceHandler := handler.NewVoiceHandler(assistant)
		audioHandler := handler.NewAudioHandler(audioStore)

		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		router.POST("/upload", uploadHandler.HandleUpload)
		router.POST("/chat", chatHandler.HandleChat)
		router.POST("/voice", voiceHandler.HandleVoice)
		router.GET("/audio/:response_id", audioHandler.HandleGetAudio)
		router.GET("/healthz", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		log.Info().Str("port", cfg.Port).Str("provider", cfg.AI.Provider).Msg("starting server")
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	},
}

// aiProvider is satisfied by both GeminiService and OpenAIService.
type aiProvider interface {
	service.AIService
	service.Embedder
}

func newAIProvider(ctx context.Context, cfg config.AIConfig) (aiProvider, error) {
	switch cfg.Provider {
	case "gemini":
		return service.NewGeminiService(ctx, cfg)
	case "openai":
		return service.NewOpenAIService(cfg)
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.Provider)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
}
