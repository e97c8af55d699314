package handlers

import (
	"errors"
	"net/http"

	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var validationErr *errs.ValidationError
	var persistenceErr *errs.PersistenceError
	var extractionErr *errs.ExtractionError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &persistenceErr):
		if persistenceErr.Offline {
			return http.StatusServiceUnavailable
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), models.ErrorResponse{
		Error:   errs.UserMessage(err),
		Message: err.Error(),
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "Requisição inválida.",
		Message: err.Error(),
	})
}

func respondNotReady(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error:   "Carregando dados. Tente novamente em instantes.",
		Message: "snapshot not loaded yet",
	})
}

// Refresher pokes the live feeds after a successful write.
type Refresher interface {
	ServicosChanged()
	PagamentosChanged()
}

type noRefresh struct{}

func (noRefresh) ServicosChanged()   {}
func (noRefresh) PagamentosChanged() {}

func refresherOrNoop(r Refresher) Refresher {
	if r == nil {
		return noRefresh{}
	}
	return r
}
