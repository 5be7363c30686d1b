package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"financehub/internal/config"
	"financehub/internal/database"
	"financehub/internal/dto"
	"financehub/internal/importer"
	"financehub/internal/repositories"
	"financehub/internal/services"
)

func main() {
	var (
		source    = flag.String("source", "auto", "statement source: auto, bank, brokerage or exchange")
		account   = flag.String("account", "", "account label (defaults to the source's standard label)")
		dbPath    = flag.String("db", "", "sqlite database path (overrides DB_SQLITE_PATH)")
		rulesPath = flag.String("rules", "", "YAML classification rules file (overrides IMPORT_RULES_PATH)")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: import [flags] file.csv [file.csv ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()
	if *dbPath != "" {
		cfg.Database.Driver = "sqlite"
		cfg.Database.SQLitePath = *dbPath
	}
	if *rulesPath != "" {
		cfg.Import.RulesPath = *rulesPath
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrationsIfEnabled(db, cfg.Database.Driver); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	rules, err := importer.LoadRules(cfg.Import.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load classification rules: %v", err)
	}

	requests := make([]dto.ImportFileRequest, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}
		requests = append(requests, dto.ImportFileRequest{
			FileName: filepath.Base(path),
			Content:  string(content),
			Source:   *source,
			Account:  *account,
		})
	}

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	pipeline := importer.NewPipeline(rules, nil)
	importService := services.NewImportService(transactionRepo, pipeline, cfg.Import, services.NewNoopMetrics())

	response, err := importService.ImportBatch(context.Background(), requests)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	failed := 0
	for _, file := range response.Files {
		if file.Error != "" {
			failed++
			fmt.Printf("%s: FAILED: %s\n", file.FileName, file.Error)
			continue
		}
		s := file.Summary
		fmt.Printf("%s: %s (%s)\n", s.FileName, s.SourceLabel, s.Account)
		fmt.Printf("  imported %d, skipped %d, flagged %d\n", s.Imported, s.Skipped, s.Flagged)
		if len(s.DuplicateKeys) > 0 {
			fmt.Printf("  dropped %d duplicate(s):\n", len(s.DuplicateKeys))
			for _, key := range s.DuplicateKeys {
				fmt.Printf("    %s\n", key)
			}
		}
	}

	fmt.Printf("total: imported %d, skipped %d, flagged %d\n",
		response.TotalImported, response.TotalSkipped, response.TotalFlagged)

	// Partial success is still success: only a batch where every file
	// was structurally unreadable exits nonzero.
	if failed == len(response.Files) {
		os.Exit(1)
	}
}
