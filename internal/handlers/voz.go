package handlers

import (
	"net/http"

	"atelie-backend/internal/models"
	"atelie-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type VozHandler struct {
	service *services.VozService
}

func NewVozHandler(service *services.VozService) *VozHandler {
	return &VozHandler{service: service}
}

// Extract godoc
// @Summary     Fill the order form from a voice transcript
// @Description Sends the transcript to the language model and merges what it understood into the given form. Fields the model left empty keep their current value.
// @Description Size labels outside PP, P, M, G, GG and EXG are listed in tamanhos_nao_reconhecidos and left out of the grid.
// @Tags        voz
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.VozRequest true "Transcript and current form"
// @Success     200 {object} models.VozResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/voz/extrair [post]
func (h *VozHandler) Extract(c *gin.Context) {
	var req models.VozRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.Fill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
