package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

// Repo is the narrow contract of the append-only transaction store. Entries
// are never deleted; the only mutations are the bookkeeping transitions
// exposed as explicit methods here.
type Repo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListForUser(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
	ListForUserPage(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error)
	SumUnexpired(ctx context.Context, userID int, now time.Time) (int, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.LedgerEntry, error)
	UsersWithExpiredLots(ctx context.Context, now time.Time) ([]int, error)
	ExpiringWithin(ctx context.Context, from, to time.Time) ([]domain.ExpiringSoon, error)
	MarkProcessedForExpiry(ctx context.Context, ids []int64) error
	ConfirmPending(ctx context.Context, provisionalRef, orderRef string) (bool, error)
	MarkSpendFailed(ctx context.Context, id int64) (bool, error)
	FindSpendByReference(ctx context.Context, userID int, ref string) (*domain.LedgerEntry, error)
	HasRefundForReference(ctx context.Context, userID int, ref string) (bool, error)
	Locked(ctx context.Context, userID int, fn func(ctx context.Context) error) error
}

var (
	ErrInvalidAmount       = errors.New("points amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrReservationNotFound = errors.New("reservation not found")
)

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// GetBalance returns the spendable balance: the sum of all non-expired
// entries, clamped at zero. Between a lot's expiry and the next sweep the raw
// sum can transiently dip below zero; the sweep converges the stored state.
func (s *Service) GetBalance(ctx context.Context, userID int) (int, error) {
	sum, err := s.repo.SumUnexpired(ctx, userID, s.now())
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if sum < 0 {
		sum = 0
	}
	return sum, nil
}

// GetHistory returns a page of the user's ledger, newest first, together
// with the current balance.
func (s *Service) GetHistory(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, int, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	entries, err := s.repo.ListForUserPage(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, 0, err
	}
	return entries, balance, nil
}

// Earn appends an earn-type entry. Amount, expiry and kind are policy inputs
// decided by the caller; the ledger only validates the sign. Admin
// adjustments are the single kind allowed to carry a negative amount, and
// they deliberately bypass the overdraft check used by Reserve.
func (s *Service) Earn(ctx context.Context, userID, amount int, kind domain.TxnKind, expiresAt *time.Time, externalRef *string) (*domain.LedgerEntry, error) {
	if amount == 0 {
		return nil, ErrInvalidAmount
	}
	if amount < 0 && kind != domain.KindAdminAdjust {
		return nil, ErrInvalidAmount
	}

	entry, err := s.repo.Append(ctx, &domain.LedgerEntry{
		UserID:      userID,
		Points:      amount,
		Kind:        kind,
		ExternalRef: externalRef,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		zap.L().Error("failed to append earn entry", zap.Error(err))
		return nil, err
	}

	if amount < 0 {
		balance, balErr := s.repo.SumUnexpired(ctx, userID, s.now())
		if balErr == nil && balance < 0 {
			zap.L().Warn("admin adjustment drove balance negative",
				zap.Int("userID", userID),
				zap.Int("balance", balance),
			)
		}
	}
	return entry, nil
}

// Reserve atomically validates and records a debit. The balance recheck and
// the append run inside the per-user exclusive section, so two concurrent
// reservations for the same user can never both pass the check.
func (s *Service) Reserve(ctx context.Context, userID, amount int, externalRef string, pending bool) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	kind := domain.KindOrderSpend
	if pending {
		kind = domain.KindOrderPendingSpend
	}

	var entry *domain.LedgerEntry
	err := s.repo.Locked(ctx, userID, func(ctx context.Context) error {
		balance, err := s.repo.SumUnexpired(ctx, userID, s.now())
		if err != nil {
			zap.L().Error("failed to recompute balance under lock", zap.Error(err))
			return err
		}
		if amount > balance {
			return ErrInsufficientBalance
		}

		entry, err = s.repo.Append(ctx, &domain.LedgerEntry{
			UserID:      userID,
			Points:      -amount,
			Kind:        kind,
			ExternalRef: &externalRef,
		})
		if err != nil {
			zap.L().Error("failed to append spend entry", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("points reserved",
		zap.Int("userID", userID),
		zap.Int("amount", amount),
		zap.Bool("pending", pending),
	)
	return entry, nil
}

// Confirm promotes a pending reservation to a confirmed spend carrying the
// real order id. A missing reservation is a no-op warning: duplicate webhook
// delivery legitimately hits this path.
func (s *Service) Confirm(ctx context.Context, provisionalRef, orderRef string) error {
	ok, err := s.repo.ConfirmPending(ctx, provisionalRef, orderRef)
	if err != nil {
		zap.L().Error("failed to confirm reservation", zap.Error(err))
		return err
	}
	if !ok {
		zap.L().Warn("no live reservation to confirm",
			zap.String("provisionalRef", provisionalRef),
			zap.String("orderRef", orderRef),
		)
		return ErrReservationNotFound
	}
	return nil
}

// Refund reverses a stale pending reservation: the entry flips to failed and
// a compensating refund is appended, both inside one per-user exclusive
// section so they commit together. The kind guard in MarkSpendFailed makes a
// second refund of the same entry impossible.
func (s *Service) Refund(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	var refund *domain.LedgerEntry
	err := s.repo.Locked(ctx, entry.UserID, func(ctx context.Context) error {
		ok, err := s.repo.MarkSpendFailed(ctx, entry.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrReservationNotFound
		}

		amount := entry.Points
		if amount < 0 {
			amount = -amount
		}
		refund, err = s.repo.Append(ctx, &domain.LedgerEntry{
			UserID:      entry.UserID,
			Points:      amount,
			Kind:        domain.KindSpendRefund,
			ExternalRef: entry.ExternalRef,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			zap.L().Warn("reservation already terminal, skipping refund", zap.Int64("entryID", entry.ID))
		}
		return nil, err
	}

	zap.L().Info("stale reservation refunded",
		zap.Int("userID", entry.UserID),
		zap.Int64("entryID", entry.ID),
		zap.Int("points", refund.Points),
	)
	return refund, nil
}

// RefundOrder compensates the confirmed spend of a cancelled order, at most
// once per order reference.
func (s *Service) RefundOrder(ctx context.Context, userID int, orderRef string) (*domain.LedgerEntry, error) {
	spend, err := s.repo.FindSpendByReference(ctx, userID, orderRef)
	if err != nil {
		return nil, err
	}
	if spend == nil {
		return nil, ErrReservationNotFound
	}

	var refund *domain.LedgerEntry
	err = s.repo.Locked(ctx, userID, func(ctx context.Context) error {
		exists, err := s.repo.HasRefundForReference(ctx, userID, orderRef)
		if err != nil {
			return err
		}
		if exists {
			zap.L().Warn("refund already issued for order", zap.String("orderRef", orderRef))
			return ErrReservationNotFound
		}

		refund, err = s.repo.Append(ctx, &domain.LedgerEntry{
			UserID:      userID,
			Points:      -spend.Points,
			Kind:        domain.KindSpendRefund,
			ExternalRef: &orderRef,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}
