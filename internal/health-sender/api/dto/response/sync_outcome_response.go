package response

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"time"
)

type SyncOutcomeResponse struct {
	RunID      string              `json:"run_id"`
	Trigger    string              `json:"trigger"`
	Status     string              `json:"status"`
	Message    string              `json:"message"`
	StatusCode int                 `json:"status_code,omitempty"`
	DeviceID   string              `json:"device_id"`
	Record     *model.HealthRecord `json:"record,omitempty"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	DurationMs int64               `json:"duration_ms"`
}

func NewSyncOutcomeResponse(o model.SyncOutcome) SyncOutcomeResponse {
	return SyncOutcomeResponse{
		RunID:      o.RunID,
		Trigger:    o.Trigger,
		Status:     o.Status,
		Message:    o.Message,
		StatusCode: o.StatusCode,
		DeviceID:   o.DeviceID,
		Record:     o.Record,
		StartedAt:  o.StartedAt,
		FinishedAt: o.FinishedAt,
		DurationMs: o.FinishedAt.Sub(o.StartedAt).Milliseconds(),
	}
}
