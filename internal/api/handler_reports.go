package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"press-maintenance-backend/internal/report"
)

const textPlain = "text/plain; charset=utf-8"

// GetStatistics handles GET /api/statistics.
func (h *Handler) GetStatistics(c *gin.Context) {
	st, err := h.store.Statistics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// PrintMachines handles GET /api/reports/machines.
func (h *Handler) PrintMachines(c *gin.Context) {
	ctx := c.Request.Context()
	machines, err := h.store.ListMachines(ctx, "")
	if err != nil {
		writeError(c, err)
		return
	}
	st, err := h.store.Statistics(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.MachineList(&buf, h.reportOptions(), machines, st); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, textPlain, buf.Bytes())
}

// PrintMaintenance handles GET /api/reports/maintenance.
func (h *Handler) PrintMaintenance(c *gin.Context) {
	entries, err := h.store.ListMaintenance(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.MaintenanceList(&buf, h.reportOptions(), entries); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, textPlain, buf.Bytes())
}

// PrintStatistics handles GET /api/reports/statistics.
func (h *Handler) PrintStatistics(c *gin.Context) {
	st, err := h.store.Statistics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Statistics(&buf, h.reportOptions(), st); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, textPlain, buf.Bytes())
}
