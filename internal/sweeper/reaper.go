package sweeper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Refunder reverses a stale pending reservation.
type Refunder interface {
	Refund(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
}

var reapingEntries sync.Map

// Reaper periodically reverses pending reservations that outlived the
// liveness window without being confirmed, so reserved points always return
// to the user eventually.
type Reaper struct {
	repo       ledgerservice.Repo
	ledger     Refunder
	notifier   Notifier
	ttl        time.Duration
	interval   time.Duration
	workerPool WorkerPoolI
	now        func() time.Time
}

func NewReaper(cfg *config.Config, repo ledgerservice.Repo, ledger Refunder, notifier Notifier) *Reaper {
	return &Reaper{
		repo:       repo,
		ledger:     ledger,
		notifier:   notifier,
		ttl:        cfg.PendingSpendTTL,
		interval:   cfg.ReapInterval,
		workerPool: NewWorkerPool(10),
		now:        time.Now,
	}
}

func (s *Reaper) Start(ctx context.Context) {
	zap.L().Info("Stale-reservation reaper started",
		zap.Duration("interval", s.interval),
		zap.Duration("ttl", s.ttl),
	)
	go s.run(ctx)
}

func (s *Reaper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reaper")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep refunds every unconfirmed reservation older than the liveness
// window. Already-refunded entries carry a different kind and never match
// the query, so running the sweep twice cannot double-refund.
func (s *Reaper) Sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.ttl)
	stale, err := s.repo.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		zap.L().Error("Failed to fetch stale reservations", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}
	zap.L().Warn("Found stale pending reservations to refund", zap.Int("count", len(stale)))

	var g errgroup.Group
	for _, entry := range stale {
		entry := entry

		if _, loaded := reapingEntries.LoadOrStore(entry.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer reapingEntries.Delete(entry.ID)
				return s.reap(ctx, entry)
			})
			if err != nil {
				reapingEntries.Delete(entry.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error during reaper sweep", zap.Error(err))
	}
}

func (s *Reaper) reap(ctx context.Context, entry domain.LedgerEntry) error {
	refund, err := s.ledger.Refund(ctx, entry)
	if err != nil {
		// Confirmed or refunded between the query and now; nothing to do.
		if errors.Is(err, ledgerservice.ErrReservationNotFound) {
			return nil
		}
		zap.L().Error("Failed to refund stale reservation",
			zap.Int64("entryID", entry.ID),
			zap.Error(err),
		)
		return err
	}

	s.notifier.ReservationRefunded(ctx, entry.UserID, refund.Points)
	return nil
}
