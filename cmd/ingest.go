package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"virtual-assistant-be/config"
	"virtual-assistant-be/database"
	"virtual-assistant-be/service"
	"virtual-assistant-be/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a document from the command line",
	Long: `Runs the upload pipeline for a local file without starting the server:
parses the document, chunks it and stores the embedded chunks in the
vector index. Prints the generated document id.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		filePath, _ := cmd.Flags().GetString("file")
		if filePath == "" {
			log.Fatal().Msg("--file is required")
		}

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

		index := service.NewVectorIndexService(store, ai)
		documents := service.NewDocumentService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.RAG.ChunkSize,
			OverlapSize:  cfg.RAG.ChunkOverlap,
		})
		ingest := service.NewIngestService(cfg.TempDir, documents, index)

		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatal().Err(err).Str("file", filePath).Msg("failed to read file")
		}

		documentID, err := ingest.Ingest(ctx, fileBytes, filepath.Base(filePath))
		if err != nil {
			log.Fatal().Err(err).Str("file", filePath).Msg("ingestion failed")
		}
		fmt.Println(documentID)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringP("file", "f", "", "Path to the document to ingest")
}
