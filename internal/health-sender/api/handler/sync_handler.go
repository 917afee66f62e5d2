package handler

import (
	"PreTrip_Health_Sender/internal/health-sender/api/dto/request"
	"PreTrip_Health_Sender/internal/health-sender/api/dto/response"
	"PreTrip_Health_Sender/internal/health-sender/model"
	"PreTrip_Health_Sender/internal/health-sender/pipeline"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const RunIDContextKey = "run_id"

type SyncHandler interface {
	TriggerSync() gin.HandlerFunc
	GetLastOutcome() gin.HandlerFunc
	GetAvailability() gin.HandlerFunc
}

type syncHandler struct {
	logger      Logger
	pipeline    pipeline.SyncPipeline
	syncTimeout time.Duration
}

// httpStatus maps an outcome status to the status of the API response.
func httpStatus(status string) int {
	switch status {
	case model.SyncStatusSent, model.SyncStatusCollected:
		return http.StatusOK
	case model.SyncStatusNotAvailable:
		return http.StatusServiceUnavailable
	case model.SyncStatusAuthorizationDenied:
		return http.StatusForbidden
	case model.SyncStatusBusy:
		return http.StatusConflict
	case model.SyncStatusServerError, model.SyncStatusTransportFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *syncHandler) TriggerSync() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SyncRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}

		// bounds the wait for a running sync only; a started run outlives the request
		ctx, cancel := context.WithTimeout(c.Request.Context(), s.syncTimeout)
		defer cancel()
		outcome := s.pipeline.Run(ctx, pipeline.RunOptions{
			Trigger: model.SyncTriggerAPI,
			DryRun:  req.DryRun,
		})
		c.Set(RunIDContextKey, outcome.RunID)

		code := httpStatus(outcome.Status)
		if code >= http.StatusInternalServerError {
			err := fmt.Errorf("SyncHandler.TriggerSync: %s", outcome.Message)
			s.logger.LoggingError(c, err, fmt.Sprintf("sync run ended with status %s", outcome.Status), zap.WarnLevel)
		}
		c.JSON(code, response.NewSyncOutcomeResponse(outcome))
	}
}

func (s *syncHandler) GetLastOutcome() gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome, ok := s.pipeline.LastOutcome()
		if !ok {
			c.JSON(http.StatusNotFound, response.Response{
				Message: "No sync has run yet",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewSyncOutcomeResponse(outcome))
	}
}

func (s *syncHandler) GetAvailability() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.AvailabilityResponse{
			Available: s.pipeline.IsAvailable(),
		})
	}
}

func NewSyncHandler(logger Logger, p pipeline.SyncPipeline, syncTimeout time.Duration) SyncHandler {
	return &syncHandler{
		logger:      logger,
		pipeline:    p,
		syncTimeout: syncTimeout,
	}
}
