package routes

import (
	"PreTrip_Health_Sender/internal/health-sender/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpSyncRoutes(r *gin.Engine, handler handler.SyncHandler) {
	v1 := r.Group("/api/v1")
	v1.POST("/sync", handler.TriggerSync())
	v1.GET("/sync/last", handler.GetLastOutcome())
	v1.GET("/health-data/availability", handler.GetAvailability())
}
