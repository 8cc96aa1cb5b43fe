package dto

import "time"

type BalanceResponseDTO struct {
	Balance int `json:"balance" example:"120"`
}

type HistoryEntryDTO struct {
	ID          int64      `json:"id" example:"42"`
	Points      int        `json:"points" example:"-70"`
	Kind        string     `json:"kind" example:"order_spend"`
	ExternalRef *string    `json:"external_reference,omitempty" example:"10421"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-01-14T16:09:57+03:00"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type HistoryResponseDTO struct {
	Balance      int               `json:"balance" example:"120"`
	Transactions []HistoryEntryDTO `json:"transactions"`
}

type SpendRequestDTO struct {
	Points int `json:"points" example:"80"`
}

type SpendResponseDTO struct {
	ProvisionalRef string `json:"provisional_ref" example:"5f4d2a6e-9c1b-4a77-b5e2-0c9d4c1f2ab3"`
	Points         int    `json:"points" example:"80"`
}

type ConfirmRequestDTO struct {
	ProvisionalRef string `json:"provisional_ref" example:"5f4d2a6e-9c1b-4a77-b5e2-0c9d4c1f2ab3"`
	OrderID        string `json:"order_id" example:"10421"`
}
