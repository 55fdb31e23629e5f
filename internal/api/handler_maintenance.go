package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"press-maintenance-backend/internal/store"
)

// ListMaintenance handles GET /api/maintenance.
func (h *Handler) ListMaintenance(c *gin.Context) {
	entries, err := h.store.ListMaintenance(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetMaintenance handles GET /api/maintenance/:id.
func (h *Handler) GetMaintenance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.store.GetMaintenance(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateMaintenance handles POST /api/maintenance.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	var req store.MaintenanceFields
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.store.CreateMaintenance(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateMaintenance handles PUT /api/maintenance/:id.
func (h *Handler) UpdateMaintenance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req store.MaintenanceFields
	if !bindJSON(c, &req) {
		return
	}
	if err := h.store.UpdateMaintenance(c.Request.Context(), id, req); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMaintenance handles DELETE /api/maintenance/:id.
func (h *Handler) DeleteMaintenance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteMaintenance(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
