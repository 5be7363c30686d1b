package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"financehub/internal/config"
	"financehub/internal/dto"
	"financehub/internal/importer"
	"financehub/internal/models"
	"financehub/internal/repositories"
)

var (
	ErrEmptyBatch   = errors.New("import batch contains no files")
	ErrFileTooLarge = errors.New("file exceeds the import size limit")
)

type importService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	pipeline        *importer.Pipeline
	cfg             config.ImportConfig
	metrics         MetricsRecorderInterface
}

func NewImportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	pipeline *importer.Pipeline,
	cfg config.ImportConfig,
	metrics MetricsRecorderInterface,
) ImportServiceInterface {
	return &importService{
		transactionRepo: transactionRepo,
		pipeline:        pipeline,
		cfg:             cfg,
		metrics:         metrics,
	}
}

// parseOutcome is the result of the concurrent phase for one file, held
// until the serialized commit phase picks it up in submission order.
type parseOutcome struct {
	parsed *importer.ParsedFile
	err    error
}

func (s *importService) ImportBatch(ctx context.Context, files []dto.ImportFileRequest) (*dto.ImportBatchResponse, error) {
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}
	for _, f := range files {
		if int64(len(f.Content)) > s.cfg.MaxFileSizeBytes {
			return nil, fmt.Errorf("%s: %w", f.FileName, ErrFileTooLarge)
		}
	}

	start := time.Now()
	outcomes := s.parseAll(files)

	existingKeys, err := s.transactionRepo.ExistingDedupKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load existing dedup keys: %w", err)
	}

	persisted, err := s.loadCollection()
	if err != nil {
		return nil, err
	}

	response := &dto.ImportBatchResponse{Files: make([]dto.ImportFileResult, 0, len(files))}

	for i, outcome := range outcomes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if outcome.err != nil {
			slog.Warn("import file rejected",
				"file", files[i].FileName,
				"error", outcome.err)
			s.metrics.IncrementCounter("import.file.rejected", map[string]string{"file": files[i].FileName})
			response.Files = append(response.Files, dto.ImportFileResult{
				FileName: files[i].FileName,
				Error:    outcome.err.Error(),
			})
			continue
		}

		summary, added, err := s.commitFile(outcome.parsed, existingKeys, persisted)
		if err != nil {
			return nil, err
		}
		persisted = append(persisted, added...)

		response.Files = append(response.Files, dto.ImportFileResult{
			FileName: outcome.parsed.FileName,
			Summary:  summary,
		})
		response.TotalImported += summary.Imported
		response.TotalSkipped += summary.Skipped
		response.TotalFlagged += summary.Flagged

		s.recordFileMetrics(summary)
	}

	s.metrics.RecordProcessingTime("import.batch", time.Since(start))
	slog.Info("import batch finished",
		"files", len(files),
		"imported", response.TotalImported,
		"skipped", response.TotalSkipped,
		"flagged", response.TotalFlagged,
		"duration_ms", time.Since(start).Milliseconds())

	return response, nil
}

// parseAll runs the pure per-file parse concurrently, bounded by
// MaxParallelFiles, and returns outcomes in submission order.
func (s *importService) parseAll(files []dto.ImportFileRequest) []parseOutcome {
	outcomes := make([]parseOutcome, len(files))

	limit := s.cfg.MaxParallelFiles
	if limit < 1 {
		limit = 1
	}
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f dto.ImportFileRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			parsed, err := s.pipeline.ParseFile(f.FileName, f.Content, f.Source, f.Account)
			outcomes[i] = parseOutcome{parsed: parsed, err: err}
		}(i, f)
	}
	wg.Wait()

	return outcomes
}

func (s *importService) loadCollection() ([]*models.Transaction, error) {
	existing, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction collection: %w", err)
	}
	collection := make([]*models.Transaction, 0, len(existing))
	for i := range existing {
		collection = append(collection, &existing[i])
	}
	return collection, nil
}

// commitFile dedupes one parsed file against everything already seen,
// re-runs transfer-pair detection over the grown collection and commits
// new plus re-flagged records in a single transaction. It returns the
// records that became part of the collection.
func (s *importService) commitFile(
	parsed *importer.ParsedFile,
	existingKeys map[string]struct{},
	persisted []*models.Transaction,
) (*importer.ImportSummary, []*models.Transaction, error) {
	summary := &importer.ImportSummary{
		FileName:    parsed.FileName,
		Source:      parsed.Source,
		SourceLabel: models.SourceLabel(parsed.Source),
		Account:     parsed.Account,
	}

	// Dedupe only against keys that existed before this file started.
	// Two identical rows inside one statement are usually two real
	// purchases (same payee, same day, same amount), so within-file
	// repeats are admitted; the keys join the set after the loop so
	// later files in the batch still dedupe against them.
	var created []*models.Transaction
	for _, txn := range parsed.Transactions {
		key := txn.ComputeDedupKey()
		if _, dup := existingKeys[key]; dup {
			summary.DuplicateKeys = append(summary.DuplicateKeys, key)
			continue
		}
		created = append(created, txn)
	}
	for _, txn := range created {
		existingKeys[txn.ComputeDedupKey()] = struct{}{}
	}

	collection := append(append([]*models.Transaction{}, persisted...), created...)
	updated := flagTransferPairs(collection, created)

	if err := s.transactionRepo.CommitImport(created, updated); err != nil {
		return nil, nil, fmt.Errorf("failed to commit %s: %w", parsed.FileName, err)
	}

	summary.Imported = len(created)
	summary.Skipped = parsed.TotalRows - len(created)
	for _, txn := range created {
		if !txn.IsApproved() {
			summary.Flagged++
		}
	}

	return summary, created, nil
}

// flagTransferPairs marks every pair member that is not already a
// transfer and returns the previously persisted records that changed,
// so the commit can write them back.
func flagTransferPairs(collection, created []*models.Transaction) []*models.Transaction {
	isNew := make(map[*models.Transaction]bool, len(created))
	for _, txn := range created {
		isNew[txn] = true
	}

	var updated []*models.Transaction
	for _, pair := range importer.DetectTransferPairs(collection) {
		for _, txn := range []*models.Transaction{pair.Out, pair.In} {
			if txn.IsTransfer {
				continue
			}
			txn.MarkTransferPair()
			if !isNew[txn] {
				updated = append(updated, txn)
			}
		}
	}
	return updated
}

func (s *importService) recordFileMetrics(summary *importer.ImportSummary) {
	tags := map[string]string{"source": summary.Source}
	s.metrics.IncrementCounter("import.file.processed", tags)
	s.metrics.RecordGauge("import.rows.imported", float64(summary.Imported), tags)
	s.metrics.RecordGauge("import.rows.skipped", float64(summary.Skipped), tags)
	s.metrics.RecordGauge("import.rows.flagged", float64(summary.Flagged), tags)
}
