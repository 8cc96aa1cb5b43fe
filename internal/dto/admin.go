package dto

type AdminAdjustRequestDTO struct {
	UserID int `json:"user_id" example:"1"`
	Points int `json:"points" example:"-50"`
}

type AdminAdjustResponseDTO struct {
	EntryID int64 `json:"entry_id" example:"42"`
	Points  int   `json:"points" example:"-50"`
}

type GrantWelcomeRequestDTO struct {
	UserID      int  `json:"user_id" example:"1"`
	ViaReferral bool `json:"via_referral,omitempty"`
}

type GrantBirthdayRequestDTO struct {
	UserID int `json:"user_id" example:"1"`
}

type GrantBonusResponseDTO struct {
	Points int `json:"points" example:"300"`
}

type OrderWebhookDTO struct {
	OrderID        int     `json:"order_id" example:"10421"`
	UserID         int     `json:"user_id" example:"1"`
	Status         string  `json:"status" example:"completed"`
	Total          float64 `json:"total" example:"1500"`
	ProvisionalRef string  `json:"provisional_ref,omitempty"`
	ReferrerID     *int    `json:"referrer_id,omitempty"`
}
