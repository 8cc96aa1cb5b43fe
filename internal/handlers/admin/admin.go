package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
)

type BonusService interface {
	AdminAdjust(ctx context.Context, userID, delta int) (*domain.LedgerEntry, error)
	WelcomeBonus(ctx context.Context, userID int, viaReferral bool) (int, error)
	BirthdayBonus(ctx context.Context, userID int) (int, error)
}

type AdminHandler struct {
	bonusService BonusService
}

func New(bonusService BonusService) *AdminHandler {
	return &AdminHandler{
		bonusService: bonusService,
	}
}

// AdjustPoints godoc
//
//	@Summary		Manually adjust a user's points
//	@Description	Credit or debit points with a signed amount. Debits are manual corrections and are not overdraft-protected.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			X-Admin-Token	header		string					true	"Admin token"
//	@Param			request			body		dto.AdminAdjustRequestDTO	true	"Adjustment payload"
//	@Success		200				{object}	dto.AdminAdjustResponseDTO	"Adjustment recorded"
//	@Failure		400				{object}	utils.Response				"Invalid payload"
//	@Failure		403				{object}	utils.Response				"Forbidden"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/points/adjust [post]
func (h *AdminHandler) AdjustPoints(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.Points == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id and a non-zero points amount are required")
		return
	}

	entry, err := h.bonusService.AdminAdjust(r.Context(), req.UserID, req.Points)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminAdjustResponseDTO{
		EntryID: entry.ID,
		Points:  entry.Points,
	})
}

// GrantWelcome godoc
//
//	@Summary		Grant the signup bonus
//	@Description	Called by the storefront bot when a user completes registration. A referral signup gets the larger referral-welcome amount.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			X-Admin-Token	header		string						true	"Admin token"
//	@Param			request			body		dto.GrantWelcomeRequestDTO	true	"Signup payload"
//	@Success		200				{object}	dto.GrantBonusResponseDTO	"Bonus granted"
//	@Failure		400				{object}	utils.Response				"Invalid payload"
//	@Failure		403				{object}	utils.Response				"Forbidden"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/points/welcome [post]
func (h *AdminHandler) GrantWelcome(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantWelcomeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	points, err := h.bonusService.WelcomeBonus(r.Context(), req.UserID, req.ViaReferral)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GrantBonusResponseDTO{Points: points})
}

// GrantBirthday godoc
//
//	@Summary		Grant the birthday bonus
//	@Description	Called by the storefront bot on a user's birthday.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			X-Admin-Token	header		string						true	"Admin token"
//	@Param			request			body		dto.GrantBirthdayRequestDTO	true	"Birthday payload"
//	@Success		200				{object}	dto.GrantBonusResponseDTO	"Bonus granted"
//	@Failure		400				{object}	utils.Response				"Invalid payload"
//	@Failure		403				{object}	utils.Response				"Forbidden"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/points/birthday [post]
func (h *AdminHandler) GrantBirthday(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantBirthdayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	points, err := h.bonusService.BirthdayBonus(r.Context(), req.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GrantBonusResponseDTO{Points: points})
}
