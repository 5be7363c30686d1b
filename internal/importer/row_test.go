package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_Find(t *testing.T) {
	row := NewRow(
		[]string{"Posted Date", "Original Description", "Amount ($)", "Running Bal."},
		[]string{"3/4/2024", "STARBUCKS #123", "-5.75", "1,200.00"},
	)

	t.Run("matches despite casing and punctuation", func(t *testing.T) {
		v, ok := row.Find("amount")
		assert.True(t, ok)
		assert.Equal(t, "-5.75", v)
	})

	t.Run("fragment matches longer header", func(t *testing.T) {
		v, ok := row.Find("date")
		assert.True(t, ok)
		assert.Equal(t, "3/4/2024", v)
	})

	t.Run("first matching column wins", func(t *testing.T) {
		v, ok := row.Find("description", "running bal")
		assert.True(t, ok)
		assert.Equal(t, "STARBUCKS #123", v)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := row.Find("symbol", "quantity")
		assert.False(t, ok)
	})

	t.Run("find value returns empty on miss", func(t *testing.T) {
		assert.Equal(t, "", row.FindValue("symbol"))
	})
}

func TestNewRow_LengthMismatch(t *testing.T) {
	t.Run("short record pads with empty", func(t *testing.T) {
		row := NewRow([]string{"Date", "Description", "Amount"}, []string{"3/4/2024", "COFFEE"})
		assert.Equal(t, "", row.FindValue("amount"))
		assert.Equal(t, "COFFEE", row.FindValue("description"))
	})

	t.Run("long record drops overflow", func(t *testing.T) {
		row := NewRow([]string{"Date"}, []string{"3/4/2024", "extra"})
		assert.Equal(t, "3/4/2024", row.FindValue("date"))
	})
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Posted Date", "posted date"},
		{"Amount ($)", "amount"},
		{"Running Bal.", "running bal"},
		{"  Fees & Comm  ", "fees  comm"},
		{"TxID", "txid"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHeader(tt.input))
	}
}
