package transmitter

import (
	apperrors "PreTrip_Health_Sender/internal/health-sender/errors"
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type TransmissionClient interface {
	// Send posts record once as JSON. Whatever status the server answers with is returned as is;
	// a request that never got an answer has Error set.
	Send(ctx context.Context, record model.HealthRecord) model.TransmissionResult
}

type transmissionClient struct {
	client   *resty.Client
	endpoint string
	logger   *zap.Logger
}

func (t *transmissionClient) Send(ctx context.Context, record model.HealthRecord) model.TransmissionResult {
	start := time.Now()
	body, err := json.Marshal(record)
	if err != nil {
		return model.TransmissionResult{
			Error:  fmt.Errorf("TransmissionClient.Send marshal: %w", err),
			SentAt: start,
		}
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(t.endpoint)
	if err != nil {
		t.logger.Warn("health record transmission failed", zap.String("endpoint", t.endpoint), zap.Error(err))
		return model.TransmissionResult{
			Error:    fmt.Errorf("TransmissionClient.Send: %w: %w", apperrors.ErrTransportFailure, err),
			SentAt:   start,
			Duration: time.Since(start),
		}
	}

	t.logger.Info("health record transmitted",
		zap.String("endpoint", t.endpoint),
		zap.Int("status_code", resp.StatusCode()),
		zap.Duration("duration", resp.Time()),
	)
	return model.TransmissionResult{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
		SentAt:     start,
		Duration:   time.Since(start),
	}
}

// NewTransmissionClient posts to endpoint through client. Retries are left at the resty default of
// none, so every Send is a single attempt.
func NewTransmissionClient(client *resty.Client, endpoint string, logger *zap.Logger) TransmissionClient {
	return &transmissionClient{
		client:   client,
		endpoint: endpoint,
		logger:   logger,
	}
}
