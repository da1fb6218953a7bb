package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status      string `json:"status"`
	Time        string `json:"time"`
	Version     string `json:"version,omitempty"`
	Records     int    `json:"records"`
	LastRefresh string `json:"last_refresh,omitempty"`
	NextRefresh string `json:"next_refresh,omitempty"`
	LastError   string `json:"last_error,omitempty"`
	Scheduler   string `json:"scheduler"`
}

type HealthController struct {
	snapshot  SnapshotReader
	scheduler RefreshScheduler
	version   string
}

func NewHealthController(snapshot SnapshotReader, scheduler RefreshScheduler, version string) *HealthController {
	return &HealthController{
		snapshot:  snapshot,
		scheduler: scheduler,
		version:   version,
	}
}

// Status reports "healthy" when the last refresh succeeded and "degraded"
// when it failed and older records are being served. Either way the
// service is up, so the status code is 200.
func (h *HealthController) Status(c *gin.Context) {
	health := HealthResponse{
		Status:    "healthy",
		Time:      time.Now().Format(time.RFC3339),
		Version:   h.version,
		Scheduler: "stopped",
	}

	if h.snapshot != nil {
		status := h.snapshot.Status()
		health.Records = status.Records
		if !status.RefreshedAt.IsZero() {
			health.LastRefresh = status.RefreshedAt.Format(time.RFC3339)
		}
		if status.LastError != nil {
			health.Status = "degraded"
			health.LastError = status.LastError.Error()
		}
	}

	if h.scheduler != nil && h.scheduler.IsRunning() {
		health.Scheduler = "running"
		if next := h.scheduler.GetNextRunTime(); next != nil {
			health.NextRefresh = next.Format(time.RFC3339)
		}
	}

	c.IndentedJSON(http.StatusOK, health)
}
