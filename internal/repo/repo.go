package repo

import (
	"github.com/GlebRadaev/bonusledger/internal/pg"
	ledgerrepo "github.com/GlebRadaev/bonusledger/internal/repo/ledger-repo"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
)

type Repositories struct {
	LedgerRepo ledgerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	ledgerRepo := ledgerrepo.New(conn, txManager)

	return &Repositories{
		LedgerRepo: ledgerRepo,
	}
}
