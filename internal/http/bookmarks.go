package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/exporters"
)

type BookmarksController struct {
	snapshot  SnapshotReader
	scheduler RefreshScheduler
}

func NewBookmarksController(snapshot SnapshotReader, scheduler RefreshScheduler) *BookmarksController {
	return &BookmarksController{snapshot: snapshot, scheduler: scheduler}
}

// List returns the current snapshot as a JSON array. With ?format=<spec>
// it returns the same lines the extract command prints.
func (b *BookmarksController) List(c *gin.Context) {
	records := []entities.Record{}
	if b.snapshot != nil {
		records = b.snapshot.Records()
	}

	format, ok := c.GetQuery("format")
	if !ok {
		c.JSON(http.StatusOK, records)
		return
	}

	spec, err := exporters.ParseFormatSpec(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	printer := exporters.NewPrinter(&buf, spec)
	for _, r := range records {
		if err := printer.Print(r); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// Refresh starts an out of schedule refresh and returns without waiting for
// it. Progress shows up in /health.
func (b *BookmarksController) Refresh(c *gin.Context) {
	if b.scheduler == nil || !b.scheduler.IsRunning() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "refresh scheduler is not running"})
		return
	}

	b.scheduler.RunNow()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
}
