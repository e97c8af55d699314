package services

import (
	"context"
	"time"

	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"

	"go.uber.org/zap"
)

type PagamentoService struct {
	repo   PagamentoRepository
	net    Connectivity
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewPagamentoService(repo PagamentoRepository, net Connectivity, loc *time.Location, logger *zap.Logger) *PagamentoService {
	return &PagamentoService{
		repo:   repo,
		net:    net,
		loc:    loc,
		now:    time.Now,
		logger: logger.Named("pagamentos"),
	}
}

func (s *PagamentoService) WithClock(now func() time.Time) *PagamentoService {
	s.now = now
	return s
}

func (s *PagamentoService) Register(ctx context.Context, req models.CreatePagamentoRequest) (*models.Pagamento, error) {
	pagamento, err := req.Build(s.now().In(s.loc))
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, pagamento)
	if err != nil {
		return nil, failure(ctx, s.net, "create pagamento", err)
	}
	pagamento.ID = id

	s.logger.Info("pagamento registered",
		zap.String("id", id),
		zap.String("nome_ajudante", pagamento.NomeAjudante),
		zap.String("valor_pago", pagamento.ValorPago.String()),
	)
	return pagamento, nil
}

// Toggle flips the payment between PENDENTE and PAGO.
func (s *PagamentoService) Toggle(ctx context.Context, id string) (*models.Pagamento, error) {
	if id == "" {
		return nil, errs.Required("id")
	}
	pagamento, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, failure(ctx, s.net, "get pagamento", err)
	}

	next := pagamento.Status.Toggle()
	if err := s.repo.Update(ctx, id, map[string]any{"status": next}); err != nil {
		return nil, failure(ctx, s.net, "toggle pagamento", err)
	}
	pagamento.Status = next

	s.logger.Info("pagamento toggled", zap.String("id", id), zap.String("status", string(next)))
	return pagamento, nil
}

func (s *PagamentoService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errs.Required("id")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return failure(ctx, s.net, "delete pagamento", err)
	}
	s.logger.Info("pagamento deleted", zap.String("id", id))
	return nil
}

func (s *PagamentoService) List(ctx context.Context) ([]models.Pagamento, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, failure(ctx, s.net, "list pagamentos", err)
	}
	return list, nil
}
