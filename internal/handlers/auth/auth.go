package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	pkgauth "github.com/GlebRadaev/bonusledger/pkg/auth"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
)

const tokenLifetime = 24 * time.Hour

type telegramUser struct {
	ID int `json:"id"`
}

type AuthHandler struct {
	botToken   string
	jwtService pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, jwtService pkgauth.JWTServiceInterface) *AuthHandler {
	return &AuthHandler{
		botToken:   cfg.TelegramBotToken,
		jwtService: jwtService,
	}
}

// TelegramLogin godoc
//
//	@Summary		Authenticate a Telegram Mini App session
//	@Description	Verify the signed initData received from the Mini App and issue a bearer token for the loyalty endpoints.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TelegramAuthRequestDTO	true	"Signed initData"
//	@Success		200		{object}	dto.TelegramAuthResponseDTO	"Session token"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Invalid init data"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/auth/telegram [post]
func (h *AuthHandler) TelegramLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.TelegramAuthRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	values, err := pkgauth.VerifyInitData(req.InitData, h.botToken)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid init data")
		return
	}

	var user telegramUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid init data")
		return
	}

	token, err := h.jwtService.GenerateJWT(user.ID, time.Now().Add(tokenLifetime))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TelegramAuthResponseDTO{Token: token})
}
