package dto

import (
	"github.com/google/uuid"

	"financehub/internal/models"
)

// TransactionListResponse wraps a filtered page of transactions.
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}

// UpdateTransactionRequest is the review edit. Only the fields present are
// applied; any edit marks the record reviewed.
type UpdateTransactionRequest struct {
	Category   *string `json:"category,omitempty" validate:"omitempty,category"`
	IsTransfer *bool   `json:"is_transfer,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending approved flagged"`
	Account    *string `json:"account,omitempty"`
}

type BulkApproveRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type BulkApproveResponse struct {
	Approved int64 `json:"approved"`
}
