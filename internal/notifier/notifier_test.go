package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	statusCode int
	err        error

	urls   []string
	bodies [][]byte
}

func (c *fakeClient) Post(url string, headers http.Header, body []byte) (int, []byte, error) {
	c.urls = append(c.urls, url)
	c.bodies = append(c.bodies, body)
	return c.statusCode, nil, c.err
}

func newTestService(client *fakeClient) *Service {
	return New(&config.Config{BotGatewayAddress: "http://localhost:8081"}, client)
}

func TestNotifierEvents(t *testing.T) {
	tests := []struct {
		name         string
		notify       func(s *Service)
		expectedType string
		expectedDays int
	}{
		{
			name:         "Points expired",
			notify:       func(s *Service) { s.PointsExpired(context.Background(), 1, 70) },
			expectedType: "points_expired",
		},
		{
			name:         "Points expiring soon",
			notify:       func(s *Service) { s.PointsExpiringSoon(context.Background(), 1, 70, 3) },
			expectedType: "points_expiring_soon",
			expectedDays: 3,
		},
		{
			name:         "Reservation refunded",
			notify:       func(s *Service) { s.ReservationRefunded(context.Background(), 1, 70) },
			expectedType: "points_refund",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{statusCode: http.StatusOK}
			service := newTestService(client)

			tt.notify(service)

			require.Len(t, client.bodies, 1)
			assert.Equal(t, "http://localhost:8081/api/notifications", client.urls[0])

			var payload event
			require.NoError(t, json.Unmarshal(client.bodies[0], &payload))
			assert.Equal(t, 1, payload.UserID)
			assert.Equal(t, 70, payload.Points)
			assert.Equal(t, tt.expectedType, payload.Type)
			assert.Equal(t, tt.expectedDays, payload.DaysLeft)
		})
	}
}

func TestNotifierDeliveryFailureIsSwallowed(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	service := newTestService(client)

	assert.NotPanics(t, func() {
		service.PointsExpired(context.Background(), 1, 70)
	})
	assert.Len(t, client.bodies, 1)
}

func TestNotifierRejectedStatusIsSwallowed(t *testing.T) {
	client := &fakeClient{statusCode: http.StatusBadGateway}
	service := newTestService(client)

	assert.NotPanics(t, func() {
		service.ReservationRefunded(context.Background(), 1, 70)
	})
}
