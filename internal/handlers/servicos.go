package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"atelie-backend/internal/dashboard"
	"atelie-backend/internal/dates"
	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"
	"atelie-backend/internal/services"
	"atelie-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type ServicosHandler struct {
	service *services.ServicoService
	store   *store.Store
	refresh Refresher
	loc     *time.Location
}

func NewServicosHandler(service *services.ServicoService, store *store.Store, refresh Refresher, loc *time.Location) *ServicosHandler {
	return &ServicosHandler{
		service: service,
		store:   store,
		refresh: refresherOrNoop(refresh),
		loc:     loc,
	}
}

// List godoc
// @Summary     List service orders
// @Description Returns the live snapshot of orders, newest data_entrada first. de/ate filter by entry day, both inclusive.
// @Tags        servicos
// @Produce     json
// @Security    Bearer
// @Param       de  query string false "First day (YYYY-MM-DD)"
// @Param       ate query string false "Last day (YYYY-MM-DD)"
// @Success     200 {object} models.ServicosResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/servicos [get]
func (h *ServicosHandler) List(c *gin.Context) {
	r, err := dates.NewRange(c.Query("de"), c.Query("ate"), h.loc)
	if err != nil {
		respondError(c, err)
		return
	}

	list, ready := h.store.Servicos()
	if !ready {
		respondNotReady(c)
		return
	}

	filtered := dashboard.FilterServicos(list, r)
	views := make([]models.ServicoView, len(filtered))
	for i, s := range filtered {
		views[i] = models.NewServicoView(s)
	}
	c.JSON(http.StatusOK, models.ServicosResponse{Servicos: views})
}

// Get godoc
// @Summary     Get a service order
// @Tags        servicos
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Order ID"
// @Success     200 {object} models.ServicoView
// @Failure     404 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/servicos/{id} [get]
func (h *ServicosHandler) Get(c *gin.Context) {
	if _, ready := h.store.Servicos(); !ready {
		respondNotReady(c)
		return
	}
	s, ok := h.store.Servico(c.Param("id"))
	if !ok {
		respondError(c, errs.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, models.NewServicoView(s))
}

// Create godoc
// @Summary     Register a service order
// @Description Accepts JSON, or multipart/form-data with the order as JSON in `dados` and an optional image in `foto` (max 10 MB).
// @Description The order starts as PENDENTE; quantidade_total and valor_total_lote are derived from the size grid.
// @Tags        servicos
// @Accept      json
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       request body     models.CreateServicoRequest false "Order (JSON requests)"
// @Param       dados   formData string false "Order as JSON (multipart requests)"
// @Param       foto    formData file   false "Photo of the paper order sheet"
// @Success     201 {object} models.ServicoView
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/servicos [post]
func (h *ServicosHandler) Create(c *gin.Context) {
	var req models.CreateServicoRequest
	var photo *services.Photo

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		dados := c.PostForm("dados")
		if dados == "" {
			respondBadRequest(c, fmt.Errorf("multipart field dados is required"))
			return
		}
		if err := json.Unmarshal([]byte(dados), &req); err != nil {
			respondBadRequest(c, fmt.Errorf("invalid dados: %w", err))
			return
		}

		header, err := c.FormFile("foto")
		switch {
		case err == nil:
			photo, err = readPhoto(header)
			if err != nil {
				respondError(c, err)
				return
			}
		case !errors.Is(err, http.ErrMissingFile):
			respondBadRequest(c, err)
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	servico, err := h.service.Register(c.Request.Context(), req, photo)
	if err != nil {
		respondError(c, err)
		return
	}
	h.refresh.ServicosChanged()
	c.JSON(http.StatusCreated, models.NewServicoView(*servico))
}

// Update godoc
// @Summary     Edit a service order
// @Description Only the given fields change. Totals are recomputed from the resulting grid and unit price.
// @Tags        servicos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                      true "Order ID"
// @Param       request body models.UpdateServicoRequest true "Fields to change"
// @Success     200 {object} models.ServicoView
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/v1/servicos/{id} [patch]
func (h *ServicosHandler) Update(c *gin.Context) {
	var req models.UpdateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	servico, err := h.service.Edit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.refresh.ServicosChanged()
	c.JSON(http.StatusOK, models.NewServicoView(*servico))
}

// SetStatus godoc
// @Summary     Move an order to a status
// @Description The target must be exactly one step after the current status (PENDENTE → EM_ANDAMENTO → CONCLUIDO). Anything else is rejected with 409 and nothing is written.
// @Tags        servicos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                true "Order ID"
// @Param       request body models.AdvanceRequest true "Target status"
// @Success     200 {object} models.ServicoView
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /api/v1/servicos/{id}/status [post]
func (h *ServicosHandler) SetStatus(c *gin.Context) {
	var req models.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	h.transition(c, func() (*models.Servico, error) {
		return h.service.Advance(c.Request.Context(), c.Param("id"), req.Status)
	})
}

// Advance godoc
// @Summary     Advance an order one step
// @Description PENDENTE becomes EM_ANDAMENTO and EM_ANDAMENTO becomes CONCLUIDO. A finished order is rejected with 409; reopen it instead.
// @Tags        servicos
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Order ID"
// @Success     200 {object} models.ServicoView
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /api/v1/servicos/{id}/avancar [post]
func (h *ServicosHandler) Advance(c *gin.Context) {
	h.transition(c, func() (*models.Servico, error) {
		return h.service.Next(c.Request.Context(), c.Param("id"))
	})
}

// Reopen godoc
// @Summary     Reopen an order
// @Description Puts the order back to PENDENTE and clears data_conclusao.
// @Tags        servicos
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Order ID"
// @Success     200 {object} models.ServicoView
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /api/v1/servicos/{id}/reabrir [post]
func (h *ServicosHandler) Reopen(c *gin.Context) {
	h.transition(c, func() (*models.Servico, error) {
		return h.service.Reopen(c.Request.Context(), c.Param("id"))
	})
}

// Delete godoc
// @Summary     Delete a service order
// @Description Hard delete. The order photo is removed on a best-effort basis.
// @Tags        servicos
// @Security    Bearer
// @Param       id path string true "Order ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/v1/servicos/{id} [delete]
func (h *ServicosHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	h.refresh.ServicosChanged()
	c.Status(http.StatusNoContent)
}

func (h *ServicosHandler) transition(c *gin.Context, run func() (*models.Servico, error)) {
	servico, err := run()
	if err != nil {
		respondError(c, err)
		return
	}
	h.refresh.ServicosChanged()
	c.JSON(http.StatusOK, models.NewServicoView(*servico))
}

func readPhoto(header *multipart.FileHeader) (*services.Photo, error) {
	if header.Size > services.MaxPhotoSize {
		return nil, errs.InvalidPhoto()
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open photo: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxPhotoSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	return &services.Photo{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
