package importer

import (
	"fmt"

	"financehub/internal/models"
)

// SourceAuto asks the pipeline to sniff the header instead of trusting
// a caller-supplied source.
const SourceAuto = "auto"

// ParsedFile is the outcome of parsing one export file, before any
// dedupe or commit has happened.
type ParsedFile struct {
	FileName     string
	Source       string
	Account      string
	TotalRows    int
	Transactions []*models.Transaction
}

// ImportSummary reports what one committed file did to the collection.
// Skipped covers both unparseable rows and duplicates; DuplicateKeys
// lists the identity keys that were dropped as already present so a
// reviewer can audit what the dedupe filter ate.
type ImportSummary struct {
	FileName      string   `json:"file_name"`
	Source        string   `json:"source"`
	SourceLabel   string   `json:"source_label"`
	Account       string   `json:"account"`
	Imported      int      `json:"imported"`
	Skipped       int      `json:"skipped"`
	Flagged       int      `json:"flagged"`
	DuplicateKeys []string `json:"duplicate_keys,omitempty"`
}

// Pipeline owns the per-file half of an import: preamble stripping,
// source detection and row parsing. It is a pure function of the file
// content plus the keyword tables, so files can be parsed in parallel.
// Dedupe, commit and pair detection need a consistent view of the
// collection and live in the import service instead.
type Pipeline struct {
	bank      SourceParser
	brokerage SourceParser
	exchange  SourceParser
}

func NewPipeline(rules Rules, newID IDGenerator) *Pipeline {
	classifier := NewClassifier(rules)
	return &Pipeline{
		bank:      NewBankParser(classifier, newID),
		brokerage: NewBrokerageParser(newID),
		exchange:  NewExchangeParser(newID),
	}
}

// ParseFile tokenizes one export and runs the matching parser. Source
// and account fall back to header sniffing and a per-source default
// label when not supplied. The only error is ErrNotTabular; malformed
// rows are silently dropped and show up in the skipped count later.
func (p *Pipeline) ParseFile(fileName, text, source, account string) (*ParsedFile, error) {
	rows, err := ReadRows(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	if source == "" || source == SourceAuto {
		source = DetectSource(rows[0].Headers())
	}
	if !models.IsValidSource(source) {
		return nil, fmt.Errorf("%s: %w", fileName, models.ErrInvalidSource)
	}
	if account == "" {
		account = models.DefaultAccountLabel(source)
	}

	var parser SourceParser
	switch source {
	case models.SourceBrokerage:
		parser = p.brokerage
	case models.SourceExchange:
		parser = p.exchange
	default:
		parser = p.bank
	}

	return &ParsedFile{
		FileName:     fileName,
		Source:       source,
		Account:      account,
		TotalRows:    len(rows),
		Transactions: parser.Parse(rows, account),
	}, nil
}
