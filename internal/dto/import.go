package dto

import "financehub/internal/importer"

// ImportFileRequest carries one CSV file submitted for ingestion. Source
// is optional; when empty (or "auto") the header row decides.
type ImportFileRequest struct {
	FileName string `json:"file_name" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Source   string `json:"source" validate:"omitempty,source"`
	Account  string `json:"account"`
}

// ImportFileResult reports the outcome for a single file. A file with no
// tabular structure fails alone; Error carries the reason and Summary
// stays nil while the rest of the batch proceeds.
type ImportFileResult struct {
	FileName string                  `json:"file_name"`
	Summary  *importer.ImportSummary `json:"summary,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

type ImportBatchResponse struct {
	Files         []ImportFileResult `json:"files"`
	TotalImported int                `json:"total_imported"`
	TotalSkipped  int                `json:"total_skipped"`
	TotalFlagged  int                `json:"total_flagged"`
}
