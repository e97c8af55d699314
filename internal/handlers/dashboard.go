package handlers

import (
	"net/http"
	"time"

	"atelie-backend/internal/dashboard"
	"atelie-backend/internal/dates"
	"atelie-backend/internal/models"
	"atelie-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	store *store.Store
	loc   *time.Location
}

func NewDashboardHandler(store *store.Store, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{store: store, loc: loc}
}

// Summary godoc
// @Summary     Dashboard totals
// @Description Receivable (orders not yet CONCLUIDO), total production, helper expenses split by paid and pending, plus the three most recent orders.
// @Description de/ate restrict orders by entry day and payments by work day.
// @Tags        dashboard
// @Produce     json
// @Security    Bearer
// @Param       de  query string false "First day (YYYY-MM-DD)"
// @Param       ate query string false "Last day (YYYY-MM-DD)"
// @Success     200 {object} models.DashboardResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	r, err := dates.NewRange(c.Query("de"), c.Query("ate"), h.loc)
	if err != nil {
		respondError(c, err)
		return
	}

	servicos, servicosReady := h.store.Servicos()
	pagamentos, pagamentosReady := h.store.Pagamentos()
	if !servicosReady || !pagamentosReady {
		respondNotReady(c)
		return
	}

	servicos = dashboard.FilterServicos(servicos, r)
	pagamentos = dashboard.FilterPagamentos(pagamentos, r)
	totals := dashboard.Summarize(servicos, pagamentos)

	recent := dashboard.Recent(servicos, dashboard.RecentLimit)
	views := make([]models.ServicoView, len(recent))
	for i, s := range recent {
		views[i] = models.NewServicoView(s)
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		TotalAReceber:     models.NewAmount(totals.TotalAReceber),
		ProducaoTotal:     models.NewAmount(totals.ProducaoTotal),
		DespesasAjudantes: models.NewAmount(totals.DespesasAjudantes),
		DespesasPagas:     models.NewAmount(totals.DespesasPagas),
		DespesasPendentes: models.NewAmount(totals.DespesasPendentes),
		Recentes:          views,
	})
}
