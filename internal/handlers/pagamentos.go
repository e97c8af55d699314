package handlers

import (
	"net/http"
	"time"

	"atelie-backend/internal/dashboard"
	"atelie-backend/internal/dates"
	"atelie-backend/internal/models"
	"atelie-backend/internal/services"
	"atelie-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type PagamentosHandler struct {
	service *services.PagamentoService
	store   *store.Store
	refresh Refresher
	loc     *time.Location
}

func NewPagamentosHandler(service *services.PagamentoService, store *store.Store, refresh Refresher, loc *time.Location) *PagamentosHandler {
	return &PagamentosHandler{
		service: service,
		store:   store,
		refresh: refresherOrNoop(refresh),
		loc:     loc,
	}
}

// List godoc
// @Summary     List helper payments
// @Description Returns the live snapshot of payments, newest work day first. de/ate filter by work day, both inclusive.
// @Tags        pagamentos
// @Produce     json
// @Security    Bearer
// @Param       de  query string false "First day (YYYY-MM-DD)"
// @Param       ate query string false "Last day (YYYY-MM-DD)"
// @Success     200 {object} models.PagamentosResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/pagamentos [get]
func (h *PagamentosHandler) List(c *gin.Context) {
	r, err := dates.NewRange(c.Query("de"), c.Query("ate"), h.loc)
	if err != nil {
		respondError(c, err)
		return
	}

	list, ready := h.store.Pagamentos()
	if !ready {
		respondNotReady(c)
		return
	}

	filtered := dashboard.FilterPagamentos(list, r)
	views := make([]models.PagamentoView, len(filtered))
	for i, p := range filtered {
		views[i] = models.NewPagamentoView(p)
	}
	c.JSON(http.StatusOK, models.PagamentosResponse{Pagamentos: views})
}

// Create godoc
// @Summary     Register a helper payment
// @Description data_trabalho defaults to today. Status defaults to PENDENTE.
// @Tags        pagamentos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreatePagamentoRequest true "Payment"
// @Success     201 {object} models.PagamentoView
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/pagamentos [post]
func (h *PagamentosHandler) Create(c *gin.Context) {
	var req models.CreatePagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	pagamento, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.refresh.PagamentosChanged()
	c.JSON(http.StatusCreated, models.NewPagamentoView(*pagamento))
}

// Toggle godoc
// @Summary     Toggle a payment between PENDENTE and PAGO
// @Tags        pagamentos
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Payment ID"
// @Success     200 {object} models.PagamentoView
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/v1/pagamentos/{id}/alternar [post]
func (h *PagamentosHandler) Toggle(c *gin.Context) {
	pagamento, err := h.service.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.refresh.PagamentosChanged()
	c.JSON(http.StatusOK, models.NewPagamentoView(*pagamento))
}

// Delete godoc
// @Summary     Delete a helper payment
// @Tags        pagamentos
// @Security    Bearer
// @Param       id path string true "Payment ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/v1/pagamentos/{id} [delete]
func (h *PagamentosHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	h.refresh.PagamentosChanged()
	c.Status(http.StatusNoContent)
}
