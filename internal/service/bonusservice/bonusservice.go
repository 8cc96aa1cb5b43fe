package bonusservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bonusservice.go -destination=bonusservice_mock.go -package=bonusservice

// Ledger is the single primitive issuers need from the points core.
type Ledger interface {
	Earn(ctx context.Context, userID, amount int, kind domain.TxnKind, expiresAt *time.Time, externalRef *string) (*domain.LedgerEntry, error)
}

// SettingsProvider supplies the loyalty policy: percentages, bonus amounts
// and point lifetime. The ledger never decides these.
type SettingsProvider interface {
	ShopSettings(ctx context.Context) (domain.ShopSettings, error)
}

type Service struct {
	ledger   Ledger
	settings SettingsProvider
	now      func() time.Time
}

func New(ledger Ledger, settings SettingsProvider) *Service {
	return &Service{
		ledger:   ledger,
		settings: settings,
		now:      time.Now,
	}
}

// OrderCashback credits cashback for a completed order. Cashback points burn
// out after the configured lifetime.
func (s *Service) OrderCashback(ctx context.Context, userID int, orderTotal float64, orderRef string) (int, error) {
	settings, err := s.settings.ShopSettings(ctx)
	if err != nil {
		return 0, err
	}

	points := int(orderTotal * float64(settings.CashbackPercent) / 100)
	if points <= 0 {
		return 0, nil
	}

	expiresAt := s.now().AddDate(0, 0, settings.PointsLifetimeDays)
	if _, err := s.ledger.Earn(ctx, userID, points, domain.KindOrderEarn, &expiresAt, &orderRef); err != nil {
		zap.L().Error("failed to add cashback", zap.Error(err))
		return 0, err
	}

	zap.L().Info("cashback added",
		zap.Int("userID", userID),
		zap.Int("points", points),
		zap.String("orderRef", orderRef),
	)
	return points, nil
}

// WelcomeBonus credits the signup bonus. Users invited by referral get the
// referral variant, which takes precedence over the general one. Welcome
// points never expire; idempotency (one bonus per user) is the caller's
// responsibility.
func (s *Service) WelcomeBonus(ctx context.Context, userID int, viaReferral bool) (int, error) {
	settings, err := s.settings.ShopSettings(ctx)
	if err != nil {
		return 0, err
	}

	amount := settings.WelcomeBonus
	kind := domain.KindPromoWelcome
	if viaReferral && settings.ReferralWelcomeBonus > 0 {
		amount = settings.ReferralWelcomeBonus
		kind = domain.KindPromoReferralWelcome
	}
	if amount <= 0 {
		return 0, nil
	}

	if _, err := s.ledger.Earn(ctx, userID, amount, kind, nil, nil); err != nil {
		zap.L().Error("failed to grant welcome bonus", zap.Error(err))
		return 0, err
	}
	zap.L().Info("welcome bonus granted", zap.Int("userID", userID), zap.Int("points", amount))
	return amount, nil
}

// ReferralBonus rewards a referrer for the first completed purchase of an
// invited user. Referral earnings never expire.
func (s *Service) ReferralBonus(ctx context.Context, referrerID int) (int, error) {
	settings, err := s.settings.ShopSettings(ctx)
	if err != nil {
		return 0, err
	}
	if settings.ReferrerBonus <= 0 {
		return 0, nil
	}

	if _, err := s.ledger.Earn(ctx, referrerID, settings.ReferrerBonus, domain.KindReferralEarn, nil, nil); err != nil {
		zap.L().Error("failed to grant referral bonus", zap.Error(err))
		return 0, err
	}
	zap.L().Info("referral bonus granted", zap.Int("referrerID", referrerID), zap.Int("points", settings.ReferrerBonus))
	return settings.ReferrerBonus, nil
}

// BirthdayBonus credits the birthday gift.
func (s *Service) BirthdayBonus(ctx context.Context, userID int) (int, error) {
	settings, err := s.settings.ShopSettings(ctx)
	if err != nil {
		return 0, err
	}
	if settings.BirthdayBonus <= 0 {
		return 0, nil
	}

	if _, err := s.ledger.Earn(ctx, userID, settings.BirthdayBonus, domain.KindPromoBirthday, nil, nil); err != nil {
		zap.L().Error("failed to grant birthday bonus", zap.Error(err))
		return 0, err
	}
	zap.L().Info("birthday bonus granted", zap.Int("userID", userID), zap.Int("points", settings.BirthdayBonus))
	return settings.BirthdayBonus, nil
}

// AdminAdjust records a manual correction with a signed amount. Debits go
// through the same append primitive and are not overdraft-protected.
func (s *Service) AdminAdjust(ctx context.Context, userID, delta int) (*domain.LedgerEntry, error) {
	entry, err := s.ledger.Earn(ctx, userID, delta, domain.KindAdminAdjust, nil, nil)
	if err != nil {
		zap.L().Error("failed to apply admin adjustment", zap.Error(err))
		return nil, err
	}
	zap.L().Info("admin adjustment applied", zap.Int("userID", userID), zap.Int("delta", delta))
	return entry, nil
}
