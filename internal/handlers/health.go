package handlers

import (
	"net/http"

	"atelie-backend/internal/models"
	"atelie-backend/internal/services"
	"atelie-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	backend string
	store   *store.Store
	net     services.Connectivity
}

func NewHealthHandler(backend string, store *store.Store, net services.Connectivity) *HealthHandler {
	return &HealthHandler{backend: backend, store: store, net: net}
}

// Health godoc
// @Summary     Health check
// @Description Returns the health status of the API, the active store backend, whether the store is reachable and whether the live snapshots have loaded
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := models.HealthResponse{
		Status:  "ok",
		Backend: h.backend,
		Online:  true,
		Ready:   h.store != nil && h.store.Ready(),
	}
	if h.net != nil {
		response.Online = h.net.Online(c.Request.Context())
	}
	c.JSON(http.StatusOK, response)
}
