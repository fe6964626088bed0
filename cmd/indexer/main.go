package main

import (
	"context"
	"log"
	"os"

	"rag-demo-be/internal/bootstrap"
	"rag-demo-be/internal/config"
	"rag-demo-be/pkg/database"

	"github.com/fatih/color"
)

// One-shot indexer: reads the corpus directory, embeds and upserts every
// chunk, prints a summary and exits. Useful for seeding a fresh database
// without starting the HTTP server.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	color.Cyan("🚀 Indexing corpus from %s\n", cfg.Rag.DataPath)

	res, err := container.IndexingService.IndexCorpus(context.Background(), "cli")
	if err != nil {
		color.Red("Indexing failed: %v", err)
		os.Exit(1)
	}

	color.Green("Status: %s", res.Message)
	color.Green("Files found: %d, processed: %d", res.TotalFilesFound, res.FilesProcessed)
	color.Green("Chunks indexed: %d", res.ChunksProcessed)

	if res.ChunksFailed > 0 {
		color.Yellow("Chunks failed: %d", res.ChunksFailed)
		for _, f := range res.Failures {
			color.Red("  %s: %s", f.ChunkId, f.Error)
		}
		os.Exit(1)
	}
}
