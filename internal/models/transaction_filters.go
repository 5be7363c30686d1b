package models

import "time"

// TransactionFilters represents the filters a review listing can apply
type TransactionFilters struct {
	Status       string
	Source       string
	Account      string
	Category     string
	TransferOnly bool
	Search       string
	StartDate    *time.Time
	EndDate      *time.Time
	Offset       int
	Limit        int
}
