package importer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"financehub/internal/models"
)

// IDGenerator produces the identifier for each parsed record. Injectable
// so tests are deterministic and concurrent imports cannot collide.
type IDGenerator func() uuid.UUID

// SourceParser turns raw rows plus an account label into canonical
// transactions. Rows missing a usable date or amount are dropped, not
// errored; the pipeline reports them in the skipped count.
type SourceParser interface {
	Parse(rows []Row, account string) []*models.Transaction
}

// krakenAssets translates exchange ledger asset codes to common tickers.
var krakenAssets = map[string]string{
	"XXBT": "BTC", "XBT": "BTC", "XETH": "ETH", "XLTC": "LTC",
	"XXRP": "XRP", "XADA": "ADA", "XDOT": "DOT", "XXLM": "XLM",
	"ZUSD": "USD", "ZEUR": "EUR", "ZGBP": "GBP", "ZCAD": "CAD", "ZJPY": "JPY",
}

var fiatAssets = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "CAD": true, "JPY": true, "AUD": true,
}

type bankParser struct {
	classifier *Classifier
	newID      IDGenerator
}

// NewBankParser builds the parser for checking/savings exports. It is
// the only parser that consults the keyword classifier, since bank rows
// carry nothing but a free-text description.
func NewBankParser(classifier *Classifier, newID IDGenerator) SourceParser {
	if newID == nil {
		newID = uuid.New
	}
	return &bankParser{classifier: classifier, newID: newID}
}

func (p *bankParser) Parse(rows []Row, account string) []*models.Transaction {
	out := make([]*models.Transaction, 0, len(rows))
	for _, r := range rows {
		date, ok := ParseDate(r.FindValue("date", "posted date"))
		if !ok {
			continue
		}
		desc := strings.TrimSpace(r.FindValue("description", "payee", "original description"))

		amt, ok := ParseAmount(r.FindValue("amount"))
		if !ok {
			// Some exports split the amount into debit/credit columns.
			if d, dok := ParseAmount(r.FindValue("debit", "withdrawal")); dok {
				amt, ok = d.Abs().Neg(), true
			} else if c, cok := ParseAmount(r.FindValue("credit", "deposit")); cok {
				amt, ok = c.Abs(), true
			}
		}
		if !ok {
			continue
		}

		cl := p.classifier.Classify(desc, amt)
		txType := models.TransactionTypeExpense
		if cl.IsTransfer {
			txType = models.TransactionTypeTransfer
		} else if amt.IsPositive() {
			txType = models.TransactionTypeIncome
		}

		t := &models.Transaction{
			ID:          p.newID(),
			Date:        date,
			Description: desc,
			Amount:      amt,
			Category:    cl.Category,
			Confidence:  cl.Confidence,
			IsTransfer:  cl.IsTransfer,
			Source:      models.SourceBank,
			Account:     account,
			Type:        txType,
		}
		if bal, bok := ParseAmount(r.FindValue("balance", "running bal")); bok {
			t.Balance = &bal
		}
		applyConfidenceStatus(t)
		t.DedupKey = t.ComputeDedupKey()
		out = append(out, t)
	}
	return out
}

type brokerageParser struct {
	newID IDGenerator
}

// NewBrokerageParser builds the parser for brokerage history exports.
// The action column is authoritative, so no keyword classification runs
// and every record carries a fixed 0.85 confidence.
func NewBrokerageParser(newID IDGenerator) SourceParser {
	if newID == nil {
		newID = uuid.New
	}
	return &brokerageParser{newID: newID}
}

func (p *brokerageParser) Parse(rows []Row, account string) []*models.Transaction {
	out := make([]*models.Transaction, 0, len(rows))
	for _, r := range rows {
		date, ok := ParseDate(r.FindValue("date"))
		if !ok {
			continue
		}
		desc := strings.TrimSpace(r.FindValue("description"))
		action := strings.TrimSpace(r.FindValue("action", "type"))

		amt, ok := ParseAmount(r.FindValue("amount", "net amount"))
		if !ok {
			price, pok := ParseAmount(r.FindValue("price"))
			qty, qok := ParseAmount(r.FindValue("quantity"))
			if pok && qok {
				amt, ok = price.Mul(qty), true
			}
		}
		if !ok {
			continue
		}

		category := models.CategoryInvestments
		txType := models.TransactionTypeOther
		switch a := strings.ToLower(action); {
		case strings.Contains(a, "buy"):
			txType = models.TransactionTypeBuy
		case strings.Contains(a, "sell"):
			txType = models.TransactionTypeSell
		case strings.Contains(a, "div"):
			txType = models.TransactionTypeDividend
			category = models.CategoryIncome
		case strings.Contains(a, "interest"):
			txType = models.TransactionTypeInterest
			category = models.CategoryIncome
		case strings.Contains(a, "transfer"), strings.Contains(a, "journal"):
			txType = models.TransactionTypeTransfer
			category = models.CategoryTransfer
		}

		if action != "" {
			desc = fmt.Sprintf("%s - %s", action, desc)
		}

		t := &models.Transaction{
			ID:          p.newID(),
			Date:        date,
			Description: desc,
			Amount:      amt,
			Category:    category,
			Confidence:  0.85,
			IsTransfer:  txType == models.TransactionTypeTransfer,
			Source:      models.SourceBrokerage,
			Account:     account,
			Type:        txType,
			Symbol:      strings.TrimSpace(r.FindValue("symbol")),
		}
		if qty, qok := ParseAmount(r.FindValue("quantity")); qok {
			t.Quantity = &qty
		}
		if fees, fok := ParseAmount(r.FindValue("fees", "comm")); fok {
			t.Fees = fees
		}
		applyConfidenceStatus(t)
		t.DedupKey = t.ComputeDedupKey()
		out = append(out, t)
	}
	return out
}

type exchangeParser struct {
	newID IDGenerator
}

// NewExchangeParser builds the parser for crypto exchange ledger
// exports. Asset codes translate through krakenAssets and fiat legs
// carry no symbol or quantity.
func NewExchangeParser(newID IDGenerator) SourceParser {
	if newID == nil {
		newID = uuid.New
	}
	return &exchangeParser{newID: newID}
}

func (p *exchangeParser) Parse(rows []Row, account string) []*models.Transaction {
	out := make([]*models.Transaction, 0, len(rows))
	for _, r := range rows {
		date, ok := ParseDate(r.FindValue("time"))
		if !ok {
			continue
		}
		amt, ok := ParseAmount(r.FindValue("amount"))
		if !ok {
			continue
		}

		ledgerType := strings.ToLower(r.FindValue("type"))
		rawAsset := strings.TrimSpace(r.FindValue("asset"))
		asset := rawAsset
		if common, found := krakenAssets[rawAsset]; found {
			asset = common
		}

		// Ledger types outside the mapped set (trade, spend, margin and
		// friends) pass through as-is with the Crypto default category.
		category := models.CategoryCrypto
		txType := ledgerType
		switch ledgerType {
		case "staking":
			category = models.CategoryIncome
			txType = models.TransactionTypeStaking
		case "deposit", "withdrawal":
			category = models.CategoryTransfer
			txType = models.TransactionTypeTransfer
		case "":
			txType = models.TransactionTypeOther
		}

		t := &models.Transaction{
			ID:          p.newID(),
			Date:        date,
			Description: fmt.Sprintf("Kraken %s: %s", ledgerType, asset),
			Amount:      amt,
			Category:    category,
			Confidence:  0.85,
			IsTransfer:  txType == models.TransactionTypeTransfer,
			Source:      models.SourceExchange,
			Account:     account,
			Type:        txType,
		}
		if !fiatAssets[asset] {
			qty := amt.Abs()
			t.Symbol = asset
			t.Quantity = &qty
		}
		if fee, fok := ParseAmount(r.FindValue("fee")); fok {
			t.Fees = fee
		}
		if bal, bok := ParseAmount(r.FindValue("balance")); bok {
			t.Balance = &bal
		}
		applyConfidenceStatus(t)
		t.DedupKey = t.ComputeDedupKey()
		out = append(out, t)
	}
	return out
}

// applyConfidenceStatus applies the auto-approval rule: confident
// classifications skip the review queue, everything else stays pending.
func applyConfidenceStatus(t *models.Transaction) {
	if t.Confidence >= AutoApproveThreshold {
		t.Reviewed = true
		t.Status = models.TransactionStatusApproved
	} else {
		t.Reviewed = false
		t.Status = models.TransactionStatusPending
	}
}
