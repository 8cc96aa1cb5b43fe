package notifier

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/bonusledger/internal/config"
	"go.uber.org/zap"
)

// HTTPClientI is the outbound client used to reach the bot gateway.
type HTTPClientI interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type event struct {
	UserID   int    `json:"user_id"`
	Type     string `json:"type"`
	Points   int    `json:"points"`
	DaysLeft int    `json:"days_left,omitempty"`
}

// Service relays ledger events to the chat-bot gateway. It is fire-and-forget
// by design: the entries are already committed when a notification goes out,
// and a delivery failure is only logged.
type Service struct {
	url    string
	client HTTPClientI
}

func New(cfg *config.Config, client HTTPClientI) *Service {
	return &Service{
		url:    cfg.BotGatewayAddress + "/api/notifications",
		client: client,
	}
}

func (s *Service) send(e event) {
	body, err := json.Marshal(e)
	if err != nil {
		zap.L().Error("failed to marshal notification", zap.Error(err))
		return
	}

	statusCode, _, err := s.client.Post(s.url, nil, body)
	if err != nil {
		zap.L().Warn("failed to deliver notification",
			zap.Int("userID", e.UserID),
			zap.String("type", e.Type),
			zap.Error(err),
		)
		return
	}
	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		zap.L().Warn("bot gateway rejected notification",
			zap.Int("userID", e.UserID),
			zap.String("type", e.Type),
			zap.Int("status", statusCode),
		)
	}
}

func (s *Service) PointsExpired(ctx context.Context, userID, points int) {
	s.send(event{UserID: userID, Type: "points_expired", Points: points})
}

func (s *Service) PointsExpiringSoon(ctx context.Context, userID, points, daysLeft int) {
	s.send(event{UserID: userID, Type: "points_expiring_soon", Points: points, DaysLeft: daysLeft})
}

func (s *Service) ReservationRefunded(ctx context.Context, userID, points int) {
	s.send(event{UserID: userID, Type: "points_refund", Points: points})
}
