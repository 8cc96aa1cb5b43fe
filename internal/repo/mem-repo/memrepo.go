package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/domain"
)

// Repository is an in-memory transaction store with the same contract as the
// postgres implementation. It backs single-process deployments and the
// algorithm tests, where spinning up postgres would add nothing.
type Repository struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
	nextID  int64

	locksMu sync.Mutex
	locks   map[int]*sync.Mutex
}

func New() *Repository {
	return &Repository{
		nextID: 1,
		locks:  make(map[int]*sync.Mutex),
	}
}

func (r *Repository) userLock(userID int) *sync.Mutex {
	r.locksMu.Lock()
	defer r.locksMu.Unlock()
	if _, ok := r.locks[userID]; !ok {
		r.locks[userID] = &sync.Mutex{}
	}
	return r.locks[userID]
}

// Locked serializes balance-check-then-append sections per user with a plain
// mutex, the single-process equivalent of the advisory transaction lock.
func (r *Repository) Locked(ctx context.Context, userID int, fn func(ctx context.Context) error) error {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *entry
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, stored)

	result := stored
	return &result, nil
}

func (r *Repository) ListForUser(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []domain.LedgerEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *Repository) ListForUserPage(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error) {
	entries, err := r.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if offset >= len(entries) {
		return nil, nil
	}
	entries = entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *Repository) SumUnexpired(ctx context.Context, userID int, now time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sum := 0
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		if e.ExpiresAt == nil || e.ExpiresAt.After(now) {
			sum += e.Points
		}
	}
	return sum, nil
}

func (r *Repository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stale []domain.LedgerEntry
	for _, e := range r.entries {
		if e.Kind == domain.KindOrderPendingSpend && e.CreatedAt.Before(cutoff) {
			stale = append(stale, e)
		}
	}
	return stale, nil
}

func (r *Repository) UsersWithExpiredLots(ctx context.Context, now time.Time) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]struct{})
	var userIDs []int
	for _, e := range r.entries {
		if e.Points > 0 && !e.ProcessedForExpiry && e.ExpiresAt != nil && e.ExpiresAt.Before(now) {
			if _, ok := seen[e.UserID]; !ok {
				seen[e.UserID] = struct{}{}
				userIDs = append(userIDs, e.UserID)
			}
		}
	}
	return userIDs, nil
}

func (r *Repository) ExpiringWithin(ctx context.Context, from, to time.Time) ([]domain.ExpiringSoon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[int]int)
	var order []int
	for _, e := range r.entries {
		if e.Points <= 0 || e.ProcessedForExpiry || e.ExpiresAt == nil {
			continue
		}
		if e.ExpiresAt.Before(from) || !e.ExpiresAt.Before(to) {
			continue
		}
		if _, ok := totals[e.UserID]; !ok {
			order = append(order, e.UserID)
		}
		totals[e.UserID] += e.Points
	}

	var result []domain.ExpiringSoon
	for _, userID := range order {
		result = append(result, domain.ExpiringSoon{UserID: userID, Points: totals[userID]})
	}
	return result, nil
}

func (r *Repository) MarkProcessedForExpiry(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idSet := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	for i := range r.entries {
		if _, ok := idSet[r.entries[i].ID]; ok && !r.entries[i].ProcessedForExpiry {
			r.entries[i].ProcessedForExpiry = true
			r.entries[i].ExpiresAt = nil
		}
	}
	return nil
}

func (r *Repository) ConfirmPending(ctx context.Context, provisionalRef, orderRef string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	best := -1
	for i, e := range r.entries {
		if e.Kind != domain.KindOrderPendingSpend || e.ExternalRef == nil || *e.ExternalRef != provisionalRef {
			continue
		}
		if best == -1 || e.CreatedAt.After(r.entries[best].CreatedAt) ||
			(e.CreatedAt.Equal(r.entries[best].CreatedAt) && e.ID > r.entries[best].ID) {
			best = i
		}
	}
	if best == -1 {
		return false, nil
	}

	ref := orderRef
	r.entries[best].Kind = domain.KindOrderSpend
	r.entries[best].ExternalRef = &ref
	return true, nil
}

func (r *Repository) MarkSpendFailed(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id && r.entries[i].Kind == domain.KindOrderPendingSpend {
			r.entries[i].Kind = domain.KindOrderSpendFailed
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) FindSpendByReference(ctx context.Context, userID int, ref string) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *domain.LedgerEntry
	for i, e := range r.entries {
		if e.UserID == userID && e.Kind == domain.KindOrderSpend && e.ExternalRef != nil && *e.ExternalRef == ref {
			entry := r.entries[i]
			found = &entry
		}
	}
	return found, nil
}

func (r *Repository) HasRefundForReference(ctx context.Context, userID int, ref string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.UserID == userID && e.Kind == domain.KindSpendRefund && e.ExternalRef != nil && *e.ExternalRef == ref {
			return true, nil
		}
	}
	return false, nil
}
