package service

import (
	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/GlebRadaev/bonusledger/internal/repo"
	"github.com/GlebRadaev/bonusledger/internal/service/bonusservice"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
)

type Services struct {
	LedgerService *ledgerservice.Service
	BonusService  *bonusservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	bonusService := bonusservice.New(ledgerService, bonusservice.NewConfigSettings(cfg))

	return &Services{
		LedgerService: ledgerService,
		BonusService:  bonusService,
	}
}
