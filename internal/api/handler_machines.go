package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"press-maintenance-backend/internal/store"
)

// ListMachines handles GET /api/machines?q=<filter>.
func (h *Handler) ListMachines(c *gin.Context) {
	machines, err := h.store.ListMachines(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}

// GetMachine handles GET /api/machines/:id.
func (h *Handler) GetMachine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.store.GetMachine(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	filled, total := m.Specification.Completeness()
	c.JSON(http.StatusOK, gin.H{
		"machine":      m,
		"completeness": gin.H{"filled": filled, "total": total},
	})
}

// CreateMachine handles POST /api/machines.
func (h *Handler) CreateMachine(c *gin.Context) {
	var req store.MachineFields
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.store.CreateMachine(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateMachine handles PUT /api/machines/:id.
func (h *Handler) UpdateMachine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req store.MachineFields
	if !bindJSON(c, &req) {
		return
	}
	if err := h.store.UpdateMachine(c.Request.Context(), id, req); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMachine handles DELETE /api/machines/:id. The machine's maintenance
// records go with it.
func (h *Handler) DeleteMachine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteMachine(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
