package loyalty

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/pkg/auth"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int, error)
	GetHistory(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, int, error)
	Reserve(ctx context.Context, userID, amount int, externalRef string, pending bool) (*domain.LedgerEntry, error)
	Confirm(ctx context.Context, provisionalRef, orderRef string) error
}

type LoyaltyHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LoyaltyHandler {
	return &LoyaltyHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current spendable loyalty points balance for the authenticated user.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *LoyaltyHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// GetHistory godoc
//
//	@Summary		Get loyalty points history
//	@Description	Get a page of the user's point movements, newest first, together with the current balance.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Page size (default 50)"
//	@Param			offset	query		int						false	"Page offset"
//	@Success		200		{object}	dto.HistoryResponseDTO	"Points history"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/points/history [get]
func (h *LoyaltyHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := defaultHistoryLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= maxHistoryLimit {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}

	entries, balance, err := h.ledgerService.GetHistory(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.HistoryResponseDTO{
		Balance:      balance,
		Transactions: make([]dto.HistoryEntryDTO, len(entries)),
	}
	for i, entry := range entries {
		response.Transactions[i] = dto.HistoryEntryDTO{
			ID:          entry.ID,
			Points:      entry.Points,
			Kind:        string(entry.Kind),
			ExternalRef: entry.ExternalRef,
			CreatedAt:   entry.CreatedAt,
			ExpiresAt:   entry.ExpiresAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Spend godoc
//
//	@Summary		Reserve points for an order
//	@Description	Create a pending spend reservation ahead of order placement. The returned provisional reference must be confirmed once the order is created; unconfirmed reservations are refunded automatically after the liveness window.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendRequestDTO		true	"Points to reserve"
//	@Success		200		{object}	dto.SpendResponseDTO	"Reservation created"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/points/spend [post]
func (h *LoyaltyHandler) Spend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SpendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	provisionalRef := uuid.NewString()
	entry, err := h.ledgerService.Reserve(r.Context(), userID, req.Points, provisionalRef, true)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SpendResponseDTO{
		ProvisionalRef: provisionalRef,
		Points:         -entry.Points,
	})
}

// Confirm godoc
//
//	@Summary		Confirm a points reservation
//	@Description	Bind a pending reservation to the real order id after the storefront created the order. Confirming an already-terminal reservation is a no-op.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmRequestDTO	true	"Provisional reference and order id"
//	@Success		200		{string}	string					"Reservation confirmed"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/points/confirm [post]
func (h *LoyaltyHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProvisionalRef == "" || req.OrderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "provisional_ref and order_id are required")
		return
	}

	err := h.ledgerService.Confirm(r.Context(), req.ProvisionalRef, req.OrderID)
	if err != nil {
		// Duplicate confirmation is legitimate, report success.
		if errors.Is(err, ledgerservice.ErrReservationNotFound) {
			utils.RespondWithJSON(w, http.StatusOK, "no live reservation to confirm")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "reservation confirmed")
}
