package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Notifier relays ledger events to users after the corresponding entries are
// committed. Delivery failures never affect ledger correctness.
type Notifier interface {
	PointsExpired(ctx context.Context, userID, points int)
	PointsExpiringSoon(ctx context.Context, userID, points, daysLeft int)
	ReservationRefunded(ctx context.Context, userID, points int)
}

// Days before expiry on which advance warnings go out.
var notifyDaysBeforeExpiration = []int{7, 3, 1}

var sweepingUsers sync.Map

// Expiration periodically burns points whose lifetime has elapsed, matching
// spends against earn lots in FIFO order so only genuinely unspent points are
// forfeited.
type Expiration struct {
	repo       ledgerservice.Repo
	notifier   Notifier
	interval   time.Duration
	workerPool WorkerPoolI
	now        func() time.Time
}

func NewExpiration(cfg *config.Config, repo ledgerservice.Repo, notifier Notifier) *Expiration {
	return &Expiration{
		repo:       repo,
		notifier:   notifier,
		interval:   cfg.ExpireInterval,
		workerPool: NewWorkerPool(10),
		now:        time.Now,
	}
}

func (s *Expiration) Start(ctx context.Context) {
	zap.L().Info("Expiration sweep started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Expiration) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping expiration sweep")
			return
		case <-ticker.C:
			s.Sweep(ctx)
			s.NotifyExpiringSoon(ctx)
		}
	}
}

// Sweep processes every user with at least one past-expiry unprocessed earn
// lot. Users are swept in parallel; a failure for one user does not abort the
// others, and the whole pass is idempotent.
func (s *Expiration) Sweep(ctx context.Context) {
	userIDs, err := s.repo.UsersWithExpiredLots(ctx, s.now())
	if err != nil {
		zap.L().Error("Failed to fetch users with expired lots", zap.Error(err))
		return
	}
	if len(userIDs) == 0 {
		return
	}
	zap.L().Info("Expiration sweep pass", zap.Int("users", len(userIDs)))

	var g errgroup.Group
	for _, userID := range userIDs {
		userID := userID

		if _, loaded := sweepingUsers.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingUsers.Delete(userID)
				return s.sweepUser(ctx, userID)
			})
			if err != nil {
				sweepingUsers.Delete(userID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error during expiration sweep", zap.Error(err))
	}
}

// sweepUser computes and applies the FIFO-correct burn for one user. It runs
// inside the same per-user exclusive section as Reserve, because the burn
// entry changes the balance exactly like a spend.
func (s *Expiration) sweepUser(ctx context.Context, userID int) error {
	var burned int

	err := s.repo.Locked(ctx, userID, func(ctx context.Context) error {
		entries, err := s.repo.ListForUser(ctx, userID)
		if err != nil {
			return err
		}

		now := s.now()
		lots, pastExpiryIDs, pastExpiryTotal := walkLots(entries, now)

		candidate := 0
		for _, lot := range lots {
			if lot.ExpiresAt != nil && lot.ExpiresAt.Before(now) {
				candidate += lot.Remaining
			}
		}

		burn := candidate
		if burn > 0 {
			// Backstop against upstream data anomalies: the burn must never
			// leave the balance negative. Marking the expired lots processed
			// clears their expiry and returns them to the unexpired sum, so
			// the ceiling includes them.
			live, err := s.repo.SumUnexpired(ctx, userID, now)
			if err != nil {
				return err
			}
			ceiling := live + pastExpiryTotal
			if ceiling < 0 {
				ceiling = 0
			}
			if burn > ceiling {
				zap.L().Warn("Sweep integrity violation: clamping burn to live balance",
					zap.Int("userID", userID),
					zap.Int("candidate", burn),
					zap.Int("ceiling", ceiling),
				)
				burn = ceiling
			}
		}

		if burn > 0 {
			if _, err := s.repo.Append(ctx, &domain.LedgerEntry{
				UserID: userID,
				Points: -burn,
				Kind:   domain.KindExpired,
			}); err != nil {
				return err
			}
		}

		if err := s.repo.MarkProcessedForExpiry(ctx, pastExpiryIDs); err != nil {
			return err
		}

		burned = burn
		return nil
	})
	if err != nil {
		zap.L().Error("Failed to sweep user", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	if burned > 0 {
		zap.L().Info("Points burned", zap.Int("userID", userID), zap.Int("points", burned))
		s.notifier.PointsExpired(ctx, userID, burned)
	}
	return nil
}

// walkLots replays the user's history in chronological order: every earn
// pushes a lot, every negative entry (spends, refund reversals, prior burns)
// consumes from the oldest lot first. It returns the surviving lots plus the
// ids and total of all past-expiry earns the walk saw, so they can be marked
// processed whether or not anything remains of them.
func walkLots(entries []domain.LedgerEntry, now time.Time) ([]domain.Lot, []int64, int) {
	var lots []domain.Lot
	var pastExpiryIDs []int64
	pastExpiryTotal := 0

	for _, entry := range entries {
		switch {
		case entry.Points > 0:
			lots = append(lots, domain.Lot{
				EntryID:   entry.ID,
				Remaining: entry.Points,
				ExpiresAt: entry.ExpiresAt,
			})
			if !entry.ProcessedForExpiry && entry.ExpiresAt != nil && entry.ExpiresAt.Before(now) {
				pastExpiryIDs = append(pastExpiryIDs, entry.ID)
				pastExpiryTotal += entry.Points
			}
		case entry.Points < 0:
			toSpend := -entry.Points
			for toSpend > 0 && len(lots) > 0 {
				front := &lots[0]
				if front.Remaining <= toSpend {
					toSpend -= front.Remaining
					lots = lots[1:]
				} else {
					front.Remaining -= toSpend
					toSpend = 0
				}
			}
		}
	}
	return lots, pastExpiryIDs, pastExpiryTotal
}

// NotifyExpiringSoon sends advance warnings for points that will burn in a
// few days. The amounts are an upper bound; pending spends may reduce them.
func (s *Expiration) NotifyExpiringSoon(ctx context.Context) {
	for _, days := range notifyDaysBeforeExpiration {
		from := s.now().AddDate(0, 0, days).Truncate(24 * time.Hour)
		to := from.Add(24 * time.Hour)

		expiring, err := s.repo.ExpiringWithin(ctx, from, to)
		if err != nil {
			zap.L().Error("Failed to fetch expiring points", zap.Int("days", days), zap.Error(err))
			continue
		}
		for _, e := range expiring {
			s.notifier.PointsExpiringSoon(ctx, e.UserID, e.Points, days)
		}
	}
}
