package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
	"go.uber.org/zap"
)

type LedgerService interface {
	Confirm(ctx context.Context, provisionalRef, orderRef string) error
	RefundOrder(ctx context.Context, userID int, orderRef string) (*domain.LedgerEntry, error)
}

type BonusService interface {
	OrderCashback(ctx context.Context, userID int, orderTotal float64, orderRef string) (int, error)
	ReferralBonus(ctx context.Context, referrerID int) (int, error)
}

type WebhookHandler struct {
	ledgerService LedgerService
	bonusService  BonusService
}

func New(ledgerService LedgerService, bonusService BonusService) *WebhookHandler {
	return &WebhookHandler{
		ledgerService: ledgerService,
		bonusService:  bonusService,
	}
}

// OrderStatus godoc
//
//	@Summary		Order status webhook
//	@Description	Called by the commerce platform on order status changes. A completed order earns cashback (and a referrer bonus for a first purchase); a cancelled order refunds its spent points once.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OrderWebhookDTO	true	"Order status payload"
//	@Success		200		{string}	string				"Webhook processed"
//	@Failure		400		{object}	utils.Response		"Invalid payload"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/webhooks/order [post]
func (h *WebhookHandler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderWebhookDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == 0 || req.UserID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "order_id and user_id are required")
		return
	}

	orderRef := strconv.Itoa(req.OrderID)

	switch req.Status {
	case "completed":
		if req.ProvisionalRef != "" {
			if err := h.ledgerService.Confirm(r.Context(), req.ProvisionalRef, orderRef); err != nil &&
				!errors.Is(err, ledgerservice.ErrReservationNotFound) {
				utils.RespondWithError(w, http.StatusInternalServerError, "failed to confirm reservation")
				return
			}
		}

		if _, err := h.bonusService.OrderCashback(r.Context(), req.UserID, req.Total, orderRef); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to add cashback")
			return
		}

		if req.ReferrerID != nil {
			if _, err := h.bonusService.ReferralBonus(r.Context(), *req.ReferrerID); err != nil {
				// Referrer reward failure must not fail the whole webhook;
				// the storefront retries delivery and cashback is not idempotent.
				zap.L().Error("failed to reward referrer",
					zap.Int("referrerID", *req.ReferrerID),
					zap.Error(err),
				)
			}
		}

	case "cancelled":
		_, err := h.ledgerService.RefundOrder(r.Context(), req.UserID, orderRef)
		if err != nil && !errors.Is(err, ledgerservice.ErrReservationNotFound) {
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to refund order")
			return
		}

	default:
		zap.L().Info("ignoring order status", zap.String("status", req.Status), zap.Int("orderID", req.OrderID))
	}

	utils.RespondWithJSON(w, http.StatusOK, "webhook processed")
}
