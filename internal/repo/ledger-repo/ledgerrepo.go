package ledgerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/pg"
	"go.uber.org/zap"
)

// lockClass namespaces the per-user advisory locks so they cannot collide
// with other advisory-lock users of the same database.
const lockClass = 7453

const entryColumns = `id, user_id, points, kind, external_reference, created_at, expires_at, processed_for_expiry`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.Points, &entry.Kind,
		&entry.ExternalRef, &entry.CreatedAt, &entry.ExpiresAt, &entry.ProcessedForExpiry,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func collectEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Append inserts a new immutable ledger entry and returns it with the
// assigned id and creation time.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO loyalty_transactions (user_id, points, kind, external_reference, expires_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Points, entry.Kind, entry.ExternalRef, entry.ExpiresAt,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// ListForUser returns the full history of a user in chronological order, the
// order the FIFO expiration walk depends on.
func (r *Repository) ListForUser(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM loyalty_transactions
        WHERE user_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	return collectEntries(rows)
}

// ListForUserPage returns a page of history, newest first.
func (r *Repository) ListForUserPage(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM loyalty_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't get ledger history page", zap.Error(err))
		return nil, err
	}
	return collectEntries(rows)
}

// SumUnexpired computes the spendable balance: the sum of all entries that
// either never expire or have not expired yet.
func (r *Repository) SumUnexpired(ctx context.Context, userID int, now time.Time) (int, error) {
	query := `
        SELECT COALESCE(SUM(points), 0)
        FROM loyalty_transactions
        WHERE user_id = $1 AND (expires_at IS NULL OR expires_at > $2)
    `
	var sum int
	if err := r.db.QueryRow(ctx, query, userID, now).Scan(&sum); err != nil {
		zap.L().Error("can't sum unexpired points", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// ListPendingOlderThan finds unconfirmed reservations created before cutoff.
// Confirmed and already-refunded reservations carry a different kind and are
// excluded by the predicate itself.
func (r *Repository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM loyalty_transactions
        WHERE kind = 'order_pending_spend' AND created_at < $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't get stale pending spends", zap.Error(err))
		return nil, err
	}
	return collectEntries(rows)
}

// UsersWithExpiredLots returns ids of users that have at least one earn entry
// past its expiry and not yet processed by the sweep.
func (r *Repository) UsersWithExpiredLots(ctx context.Context, now time.Time) ([]int, error) {
	query := `
        SELECT DISTINCT user_id
        FROM loyalty_transactions
        WHERE points > 0 AND expires_at IS NOT NULL AND expires_at < $1 AND processed_for_expiry = FALSE
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get users with expired lots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}

// ExpiringWithin aggregates per user the earn points whose expiry falls in
// [from, to), for advance warnings. It is an upper bound: spends matched by
// the next sweep may reduce what actually burns.
func (r *Repository) ExpiringWithin(ctx context.Context, from, to time.Time) ([]domain.ExpiringSoon, error) {
	query := `
        SELECT user_id, SUM(points)
        FROM loyalty_transactions
        WHERE points > 0 AND processed_for_expiry = FALSE
          AND expires_at >= $1 AND expires_at < $2
        GROUP BY user_id
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get expiring points", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.ExpiringSoon
	for rows.Next() {
		var e domain.ExpiringSoon
		if err := rows.Scan(&e.UserID, &e.Points); err != nil {
			zap.L().Error("can't scan expiring points row", zap.Error(err))
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// MarkProcessedForExpiry flags earn entries as fully accounted for by the
// expiration sweep and clears their expiry so future sweeps skip them.
func (r *Repository) MarkProcessedForExpiry(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
        UPDATE loyalty_transactions
        SET processed_for_expiry = TRUE, expires_at = NULL
        WHERE id = ANY($1) AND processed_for_expiry = FALSE
    `
	if _, err := r.db.Exec(ctx, query, ids); err != nil {
		zap.L().Error("can't mark entries processed for expiry", zap.Error(err))
		return err
	}
	return nil
}

// ConfirmPending promotes the most recent pending reservation matching the
// provisional reference to a confirmed spend carrying the real order id.
// Returns false when no live reservation matches.
func (r *Repository) ConfirmPending(ctx context.Context, provisionalRef, orderRef string) (bool, error) {
	query := `
        UPDATE loyalty_transactions
        SET kind = 'order_spend', external_reference = $2
        WHERE id = (
            SELECT id FROM loyalty_transactions
            WHERE external_reference = $1 AND kind = 'order_pending_spend'
            ORDER BY created_at DESC, id DESC
            LIMIT 1
        )
    `
	tag, err := r.db.Exec(ctx, query, provisionalRef, orderRef)
	if err != nil {
		zap.L().Error("can't confirm pending spend", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkSpendFailed flips a pending reservation to failed. The kind guard makes
// the transition single-shot: a second call affects no rows.
func (r *Repository) MarkSpendFailed(ctx context.Context, id int64) (bool, error) {
	query := `
        UPDATE loyalty_transactions
        SET kind = 'order_spend_failed'
        WHERE id = $1 AND kind = 'order_pending_spend'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark spend failed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindSpendByReference returns the confirmed spend recorded for an order.
func (r *Repository) FindSpendByReference(ctx context.Context, userID int, ref string) (*domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM loyalty_transactions
        WHERE user_id = $1 AND external_reference = $2 AND kind = 'order_spend'
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID, ref))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find spend by reference", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// HasRefundForReference reports whether a refund was already issued for the
// given order reference.
func (r *Repository) HasRefundForReference(ctx context.Context, userID int, ref string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM loyalty_transactions
            WHERE user_id = $1 AND external_reference = $2 AND kind = 'spend_refund'
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, ref).Scan(&exists); err != nil {
		zap.L().Error("can't check refund existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Locked runs fn inside a transaction holding an exclusive per-user advisory
// lock, so a balance check and the append that depends on it are atomic with
// respect to any other Locked section for the same user.
func (r *Repository) Locked(ctx context.Context, userID int, fn func(ctx context.Context) error) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, lockClass, userID); err != nil {
			zap.L().Error("can't acquire user ledger lock", zap.Error(err))
			return err
		}
		return fn(ctx)
	})
}
