package domain

import "time"

// TxnKind is the business reason for a ledger entry. The string values are
// stored as-is in the kind column.
type TxnKind string

const (
	KindOrderEarn            TxnKind = "order_earn"
	KindPromoWelcome         TxnKind = "promo_welcome"
	KindPromoReferralWelcome TxnKind = "promo_referral_welcome"
	KindPromoBirthday        TxnKind = "promo_birthday"
	KindAdminAdjust          TxnKind = "admin_adjust"
	KindReferralEarn         TxnKind = "referral_earn"
	KindOrderSpend           TxnKind = "order_spend"
	KindOrderPendingSpend    TxnKind = "order_pending_spend"
	KindOrderSpendFailed     TxnKind = "order_spend_failed"
	KindExpired              TxnKind = "expired"
	KindSpendRefund          TxnKind = "spend_refund"
)

// LedgerEntry is one immutable point movement. Positive points are earns,
// negative points are spends and expiries; zero is invalid.
type LedgerEntry struct {
	ID                 int64      `db:"id"`
	UserID             int        `db:"user_id"`
	Points             int        `db:"points"`
	Kind               TxnKind    `db:"kind"`
	ExternalRef        *string    `db:"external_reference"`
	CreatedAt          time.Time  `db:"created_at"`
	ExpiresAt          *time.Time `db:"expires_at"`
	ProcessedForExpiry bool       `db:"processed_for_expiry"`
}

// Lot is the still-unconsumed remainder of a single earn entry, tracked
// during FIFO expiration matching. It never outlives one sweep pass.
type Lot struct {
	EntryID   int64
	Remaining int
	ExpiresAt *time.Time
}

// ExpiringSoon is the per-user aggregate of points that will burn on a given
// day, used for advance notifications.
type ExpiringSoon struct {
	UserID int
	Points int
}

// ShopSettings carries the loyalty policy supplied by the storefront; the
// ledger itself never decides amounts or lifetimes.
type ShopSettings struct {
	CashbackPercent      int
	PointsLifetimeDays   int
	WelcomeBonus         int
	ReferralWelcomeBonus int
	ReferrerBonus        int
	BirthdayBonus        int
}
