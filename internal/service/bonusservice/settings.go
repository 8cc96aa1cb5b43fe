package bonusservice

import (
	"context"

	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/GlebRadaev/bonusledger/internal/domain"
)

// ConfigSettings serves the loyalty policy straight from service config. A
// storefront-backed provider can replace it without touching the issuers.
type ConfigSettings struct {
	cfg *config.Config
}

func NewConfigSettings(cfg *config.Config) *ConfigSettings {
	return &ConfigSettings{cfg: cfg}
}

func (s *ConfigSettings) ShopSettings(ctx context.Context) (domain.ShopSettings, error) {
	return domain.ShopSettings{
		CashbackPercent:      s.cfg.CashbackPercent,
		PointsLifetimeDays:   s.cfg.PointsLifetimeDays,
		WelcomeBonus:         s.cfg.WelcomeBonus,
		ReferralWelcomeBonus: s.cfg.ReferralWelcomeBonus,
		ReferrerBonus:        s.cfg.ReferrerBonus,
		BirthdayBonus:        s.cfg.BirthdayBonus,
	}, nil
}
