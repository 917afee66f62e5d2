package model

import "time"

const (
	SyncStatusSent                = "sent"
	SyncStatusCollected           = "collected"
	SyncStatusServerError         = "server_error"
	SyncStatusTransportFailure    = "transport_failure"
	SyncStatusNotAvailable        = "not_available"
	SyncStatusAuthorizationDenied = "authorization_denied"
	SyncStatusAuthorizationError  = "authorization_error"
	SyncStatusCollectionError     = "collection_error"
	// SyncStatusBusy means the run never started because another run held the pipeline.
	SyncStatusBusy = "busy"
)

const (
	SyncTriggerAPI      = "api"
	SyncTriggerSchedule = "schedule"
	SyncTriggerCLI      = "cli"
)

// SyncOutcome is the end-to-end result of one authorize, collect, transmit run.
type SyncOutcome struct {
	RunID      string        `json:"run_id"`
	Trigger    string        `json:"trigger"`
	Status     string        `json:"status"`
	Message    string        `json:"message"`
	StatusCode int           `json:"status_code,omitempty"`
	DeviceID   string        `json:"device_id"`
	Record     *HealthRecord `json:"record,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Succeeded is true for runs that delivered the record, or collected it on a dry run.
func (o SyncOutcome) Succeeded() bool {
	return o.Status == SyncStatusSent || o.Status == SyncStatusCollected
}
