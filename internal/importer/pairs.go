package importer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// pairWindowDays is the widest date gap two legs of one transfer can
// show. Bank settlement and brokerage posting rarely land on the same
// day, but beyond a business week the legs are unrelated.
const pairWindowDays = 5

// TransferPair is two opposite-signed records believed to be the same
// movement of money between the user's own accounts.
type TransferPair struct {
	Out *models.Transaction
	In  *models.Transaction
}

// DetectTransferPairs scans the full collection for matching
// opposite-sign records across accounts. Records are sorted by date and
// matched greedy first-fit: once paired, a record is never reconsidered,
// and ties resolve to the earliest candidate after the sort. Quadratic
// in collection size, which is fine for personal-finance volumes but a
// known scaling limit for anything larger.
func DetectTransferPairs(txns []*models.Transaction) []TransferPair {
	sorted := make([]*models.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var pairs []TransferPair
	used := make([]bool, len(sorted))
	for i, a := range sorted {
		if used[i] || a.Amount.IsZero() {
			continue
		}
		for j := i + 1; j < len(sorted); j++ {
			if used[j] {
				continue
			}
			b := sorted[j]
			if daysBetween(a.Date, b.Date) > pairWindowDays {
				continue
			}
			if a.Account == b.Account {
				continue
			}
			if !sumNearZero(a, b) {
				continue
			}
			pairs = append(pairs, orderPair(a, b))
			used[i] = true
			used[j] = true
			break
		}
	}
	return pairs
}

func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}

// sumNearZero reports whether the two amounts cancel to within a cent
// of rounding tolerance.
func sumNearZero(a, b *models.Transaction) bool {
	return a.Amount.Add(b.Amount).Abs().LessThan(pairTolerance)
}

var pairTolerance = decimal.NewFromFloat(0.01)

func orderPair(a, b *models.Transaction) TransferPair {
	if a.Amount.IsNegative() {
		return TransferPair{Out: a, In: b}
	}
	return TransferPair{Out: b, In: a}
}
