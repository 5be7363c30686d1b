package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financehub/internal/models"
)

func bankRows(headers []string, records ...[]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, NewRow(headers, r))
	}
	return rows
}

func TestBankParser_Parse(t *testing.T) {
	parser := NewBankParser(NewClassifier(DefaultRules()), nil)

	t.Run("unified amount column", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Description", "Amount", "Running Bal."},
			[]string{"3/4/2024", "STARBUCKS #123", "-5.75", "1,200.00"},
		)

		txns := parser.Parse(rows, "BofA Checking")
		require.Len(t, txns, 1)

		tx := txns[0]
		assert.Equal(t, "2024-03-04", tx.DateString())
		assert.Equal(t, "STARBUCKS #123", tx.Description)
		assert.Equal(t, "-5.75", tx.Amount.String())
		assert.Equal(t, models.CategoryDining, tx.Category)
		assert.Equal(t, 0.8, tx.Confidence)
		assert.Equal(t, models.SourceBank, tx.Source)
		assert.Equal(t, "BofA Checking", tx.Account)
		assert.Equal(t, models.TransactionTypeExpense, tx.Type)
		require.NotNil(t, tx.Balance)
		assert.Equal(t, "1200", tx.Balance.String())
		assert.True(t, tx.Reviewed)
		assert.Equal(t, models.TransactionStatusApproved, tx.Status)
		assert.NotEmpty(t, tx.DedupKey)
	})

	t.Run("debit column negates", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Description", "Debit", "Credit"},
			[]string{"3/4/2024", "RENT PAYMENT", "1800.00", ""},
		)

		txns := parser.Parse(rows, "BofA Checking")
		require.Len(t, txns, 1)
		assert.Equal(t, "-1800", txns[0].Amount.String())
		assert.Equal(t, models.CategoryHousing, txns[0].Category)
	})

	t.Run("credit column stays positive", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Description", "Withdrawal", "Deposit"},
			[]string{"3/4/2024", "ACME PAYROLL", "", "3,200.55"},
		)

		txns := parser.Parse(rows, "BofA Checking")
		require.Len(t, txns, 1)
		assert.Equal(t, "3200.55", txns[0].Amount.String())
		assert.Equal(t, models.CategoryIncome, txns[0].Category)
		assert.Equal(t, models.TransactionTypeIncome, txns[0].Type)
	})

	t.Run("transfer classification sets transfer type", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Description", "Amount"},
			[]string{"3/4/2024", "ZELLE TO JOHN", "-200.00"},
		)

		txns := parser.Parse(rows, "BofA Checking")
		require.Len(t, txns, 1)
		assert.True(t, txns[0].IsTransfer)
		assert.Equal(t, models.CategoryTransfer, txns[0].Category)
		assert.Equal(t, models.TransactionTypeTransfer, txns[0].Type)
	})

	t.Run("low confidence stays pending", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Description", "Amount"},
			[]string{"3/4/2024", "MISC 7741", "-42.42"},
		)

		txns := parser.Parse(rows, "BofA Checking")
		require.Len(t, txns, 1)
		assert.False(t, txns[0].Reviewed)
		assert.Equal(t, models.TransactionStatusPending, txns[0].Status)
	})

	t.Run("bad date drops row", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Description", "Amount"},
			[]string{"not a date", "STARBUCKS", "-5.75"},
			[]string{"3/4/2024", "STARBUCKS", "-5.75"},
		)

		assert.Len(t, parser.Parse(rows, "BofA Checking"), 1)
	})

	t.Run("missing amount drops row", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Description", "Amount"},
			[]string{"3/4/2024", "PENDING CHARGE", "--"},
		)

		assert.Empty(t, parser.Parse(rows, "BofA Checking"))
	})
}

func TestBrokerageParser_Parse(t *testing.T) {
	parser := NewBrokerageParser(nil)

	t.Run("buy action", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Action", "Symbol", "Description", "Quantity", "Price", "Fees & Comm", "Amount"},
			[]string{"3/4/2024", "Buy", "VTI", "VANGUARD TOTAL STOCK", "10", "220.50", "0.65", "-2205.00"},
		)

		txns := parser.Parse(rows, "Schwab Brokerage")
		require.Len(t, txns, 1)

		tx := txns[0]
		assert.Equal(t, models.TransactionTypeBuy, tx.Type)
		assert.Equal(t, models.CategoryInvestments, tx.Category)
		assert.Equal(t, 0.85, tx.Confidence)
		assert.Equal(t, "Buy - VANGUARD TOTAL STOCK", tx.Description)
		assert.Equal(t, "VTI", tx.Symbol)
		require.NotNil(t, tx.Quantity)
		assert.Equal(t, "10", tx.Quantity.String())
		assert.Equal(t, "0.65", tx.Fees.String())
		assert.True(t, tx.Reviewed)
		assert.Equal(t, models.TransactionStatusApproved, tx.Status)
	})

	t.Run("dividend forces income", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Action", "Symbol", "Description", "Amount"},
			[]string{"3/4/2024", "Qualified Dividend", "VTI", "DIVIDEND PAYMENT", "32.10"},
		)

		txns := parser.Parse(rows, "Schwab Brokerage")
		require.Len(t, txns, 1)
		assert.Equal(t, models.TransactionTypeDividend, txns[0].Type)
		assert.Equal(t, models.CategoryIncome, txns[0].Category)
	})

	t.Run("journal maps to transfer", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Action", "Description", "Amount"},
			[]string{"3/4/2024", "Journaled Shares", "TRANSFER IN", "5000.00"},
		)

		txns := parser.Parse(rows, "Schwab Brokerage")
		require.Len(t, txns, 1)
		assert.Equal(t, models.TransactionTypeTransfer, txns[0].Type)
		assert.Equal(t, models.CategoryTransfer, txns[0].Category)
		assert.True(t, txns[0].IsTransfer)
	})

	t.Run("amount derived from price times quantity", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Action", "Symbol", "Quantity", "Price", "Description"},
			[]string{"3/4/2024", "Sell", "VTI", "4", "250.25", "SALE"},
		)

		txns := parser.Parse(rows, "Schwab Brokerage")
		require.Len(t, txns, 1)
		assert.Equal(t, "1001", txns[0].Amount.String())
		assert.Equal(t, models.TransactionTypeSell, txns[0].Type)
	})

	t.Run("unmapped action is other", func(t *testing.T) {
		rows := bankRows(
			[]string{"Date", "Action", "Description", "Amount"},
			[]string{"3/4/2024", "MoneyLink Hold", "HOLD", "0.00"},
		)

		txns := parser.Parse(rows, "Schwab Brokerage")
		require.Len(t, txns, 1)
		assert.Equal(t, models.TransactionTypeOther, txns[0].Type)
		assert.Equal(t, models.CategoryInvestments, txns[0].Category)
	})
}

func TestExchangeParser_Parse(t *testing.T) {
	parser := NewExchangeParser(nil)

	headers := []string{"txid", "refid", "time", "type", "asset", "amount", "fee", "balance"}

	t.Run("asset code translates to ticker", func(t *testing.T) {
		rows := bankRows(headers,
			[]string{"T1", "R1", "2024-03-04 10:22:01", "trade", "XXBT", "0.5", "0.001", "1.5"},
		)

		txns := parser.Parse(rows, "Kraken")
		require.Len(t, txns, 1)

		tx := txns[0]
		assert.Equal(t, "Kraken trade: BTC", tx.Description)
		assert.Equal(t, models.CategoryCrypto, tx.Category)
		assert.Equal(t, "BTC", tx.Symbol)
		require.NotNil(t, tx.Quantity)
		assert.Equal(t, "0.5", tx.Quantity.String())
		assert.Equal(t, "0.001", tx.Fees.String())
		require.NotNil(t, tx.Balance)
		assert.Equal(t, "trade", tx.Type)
	})

	t.Run("fiat leg has no symbol or quantity", func(t *testing.T) {
		rows := bankRows(headers,
			[]string{"T2", "R2", "2024-03-04 10:22:01", "deposit", "ZUSD", "1000.00", "0", "1000.00"},
		)

		txns := parser.Parse(rows, "Kraken")
		require.Len(t, txns, 1)

		tx := txns[0]
		assert.Empty(t, tx.Symbol)
		assert.Nil(t, tx.Quantity)
		assert.Equal(t, models.CategoryTransfer, tx.Category)
		assert.Equal(t, models.TransactionTypeTransfer, tx.Type)
		assert.True(t, tx.IsTransfer)
	})

	t.Run("staking is income", func(t *testing.T) {
		rows := bankRows(headers,
			[]string{"T3", "R3", "2024-03-04 10:22:01", "staking", "XDOT", "1.25", "0", "10"},
		)

		txns := parser.Parse(rows, "Kraken")
		require.Len(t, txns, 1)
		assert.Equal(t, models.CategoryIncome, txns[0].Category)
		assert.Equal(t, models.TransactionTypeStaking, txns[0].Type)
		assert.Equal(t, "DOT", txns[0].Symbol)
	})

	t.Run("withdrawal is transfer", func(t *testing.T) {
		rows := bankRows(headers,
			[]string{"T4", "R4", "2024-03-04 10:22:01", "withdrawal", "XETH", "-2.0", "0.005", "3"},
		)

		txns := parser.Parse(rows, "Kraken")
		require.Len(t, txns, 1)
		assert.Equal(t, models.CategoryTransfer, txns[0].Category)
		assert.True(t, txns[0].IsTransfer)
		assert.Equal(t, "2", txns[0].Quantity.String())
	})

	t.Run("unknown asset passes through", func(t *testing.T) {
		rows := bankRows(headers,
			[]string{"T5", "R5", "2024-03-04 10:22:01", "trade", "SOL", "3", "0", "3"},
		)

		txns := parser.Parse(rows, "Kraken")
		require.Len(t, txns, 1)
		assert.Equal(t, "SOL", txns[0].Symbol)
	})

	t.Run("missing time drops row", func(t *testing.T) {
		rows := bankRows(headers,
			[]string{"T6", "R6", "", "trade", "XXBT", "0.5", "0", "1"},
		)

		assert.Empty(t, parser.Parse(rows, "Kraken"))
	})
}
