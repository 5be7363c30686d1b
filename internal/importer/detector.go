package importer

import (
	"strings"

	"financehub/internal/models"
)

// DetectSource sniffs a file's header names to pick the parser when the
// caller did not name a source explicitly. Priority-ordered heuristic,
// not a schema check: ambiguous headers always resolve to bank.
func DetectSource(headers []string) string {
	h := strings.ToLower(strings.Join(headers, " "))

	switch {
	case strings.Contains(h, "running bal"):
		return models.SourceBank
	case strings.Contains(h, "date") && strings.Contains(h, "description") &&
		strings.Contains(h, "amount") &&
		!strings.Contains(h, "action") && !strings.Contains(h, "symbol"):
		return models.SourceBank
	case strings.Contains(h, "action"), strings.Contains(h, "symbol"), strings.Contains(h, "fees"):
		return models.SourceBrokerage
	case strings.Contains(h, "txid"), strings.Contains(h, "refid"), strings.Contains(h, "asset"):
		return models.SourceExchange
	default:
		return models.SourceBank
	}
}
