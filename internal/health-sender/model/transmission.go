package model

import (
	"fmt"
	"time"
)

// TransmissionResult carries either the server response or, in Error, the transport failure that
// prevented one.
type TransmissionResult struct {
	StatusCode int
	Status     string
	Body       []byte
	Error      error
	SentAt     time.Time
	Duration   time.Duration
}

func (r TransmissionResult) IsTransportFailure() bool {
	return r.Error != nil
}

func (r TransmissionResult) IsSuccess() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

func (r TransmissionResult) Message() string {
	if r.Error != nil {
		return r.Error.Error()
	}
	if r.Status != "" {
		return r.Status
	}
	return fmt.Sprintf("%d", r.StatusCode)
}
