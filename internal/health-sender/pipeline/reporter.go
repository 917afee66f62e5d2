package pipeline

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"PreTrip_Health_Sender/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// OutcomeReporter publishes the outcome of every run somewhere outside the process.
type OutcomeReporter interface {
	Report(ctx context.Context, outcome model.SyncOutcome) error
}

type outcomeEvent struct {
	RunID      string    `json:"run_id"`
	DeviceID   string    `json:"device_id"`
	Trigger    string    `json:"trigger"`
	Status     string    `json:"status"`
	StatusCode int       `json:"status_code"`
	Message    string    `json:"message"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

type kafkaOutcomeReporter struct {
	writer infra.KafkaWriter
}

// Report writes one event keyed by device id. Measurement values never leave the process this way.
func (r *kafkaOutcomeReporter) Report(ctx context.Context, outcome model.SyncOutcome) error {
	b, err := json.Marshal(outcomeEvent{
		RunID:      outcome.RunID,
		DeviceID:   outcome.DeviceID,
		Trigger:    outcome.Trigger,
		Status:     outcome.Status,
		StatusCode: outcome.StatusCode,
		Message:    outcome.Message,
		StartedAt:  outcome.StartedAt,
		FinishedAt: outcome.FinishedAt,
	})
	if err != nil {
		return fmt.Errorf("OutcomeReporter.Report: %w", err)
	}
	err = r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(outcome.DeviceID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("OutcomeReporter.Report: %w", err)
	}
	return nil
}

func NewKafkaOutcomeReporter(writer infra.KafkaWriter) OutcomeReporter {
	return &kafkaOutcomeReporter{
		writer: writer,
	}
}
