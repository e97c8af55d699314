package services

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"atelie-backend/internal/extraction"
	"atelie-backend/internal/models"
)

// ServicoRepository persists orders. Update writes only the given fields;
// Get and Update return errs.ErrNotFound for unknown ids.
type ServicoRepository interface {
	Create(ctx context.Context, servico *models.Servico) (string, error)
	Get(ctx context.Context, id string) (*models.Servico, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Servico, error)
}

type PagamentoRepository interface {
	Create(ctx context.Context, pagamento *models.Pagamento) (string, error)
	Get(ctx context.Context, id string) (*models.Pagamento, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Pagamento, error)
}

// PhotoStorage keeps order photos and hands back public URLs.
type PhotoStorage interface {
	UploadOrderPhoto(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type Connectivity interface {
	Online(ctx context.Context) bool
}

type Extractor interface {
	Extract(ctx context.Context, transcript string) (*extraction.PartialServico, error)
}
