package handlers

import "github.com/gin-gonic/gin"

// Handlers groups the API handlers mounted under /api/v1.
type Handlers struct {
	Servicos   *ServicosHandler
	Pagamentos *PagamentosHandler
	Dashboard  *DashboardHandler
	Voz        *VozHandler
}

func (h Handlers) Register(api *gin.RouterGroup) {
	// Service orders
	api.GET("/servicos", h.Servicos.List)
	api.POST("/servicos", h.Servicos.Create)
	api.GET("/servicos/:id", h.Servicos.Get)
	api.PATCH("/servicos/:id", h.Servicos.Update)
	api.DELETE("/servicos/:id", h.Servicos.Delete)
	api.POST("/servicos/:id/status", h.Servicos.SetStatus)
	api.POST("/servicos/:id/avancar", h.Servicos.Advance)
	api.POST("/servicos/:id/reabrir", h.Servicos.Reopen)

	// Helper payments
	api.GET("/pagamentos", h.Pagamentos.List)
	api.POST("/pagamentos", h.Pagamentos.Create)
	api.POST("/pagamentos/:id/alternar", h.Pagamentos.Toggle)
	api.DELETE("/pagamentos/:id", h.Pagamentos.Delete)

	api.GET("/dashboard", h.Dashboard.Summary)

	if h.Voz != nil {
		api.POST("/voz/extrair", h.Voz.Extract)
	}
}
