package services

import (
	"context"
	"errors"
	"time"

	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"

	"go.uber.org/zap"
)

const probeTimeout = 3 * time.Second

type ServicoService struct {
	repo   ServicoRepository
	photos *StorageService
	net    Connectivity
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewServicoService(repo ServicoRepository, photos *StorageService, net Connectivity, loc *time.Location, logger *zap.Logger) *ServicoService {
	return &ServicoService{
		repo:   repo,
		photos: photos,
		net:    net,
		loc:    loc,
		now:    time.Now,
		logger: logger.Named("servicos"),
	}
}

// WithClock replaces the time source. Tests use it to pin timestamps.
func (s *ServicoService) WithClock(now func() time.Time) *ServicoService {
	s.now = now
	return s
}

func (s *ServicoService) clock() time.Time {
	return s.now().In(s.loc)
}

// Register validates the request, uploads the optional photo and creates the
// order as PENDENTE. A failed upload aborts the whole operation. Without photo
// storage the photo is checked and dropped, and the order is saved without it.
func (s *ServicoService) Register(ctx context.Context, req models.CreateServicoRequest, photo *Photo) (*models.Servico, error) {
	servico, err := req.Build(s.clock())
	if err != nil {
		return nil, err
	}

	if photo != nil {
		if _, err := s.photos.Validate(photo); err != nil {
			return nil, err
		}
	}

	switch {
	case photo == nil:
	case !s.photos.Enabled():
		s.logger.Warn("photo storage not configured; saving servico without photo",
			zap.String("fornecedor", servico.Fornecedor),
			zap.Int("size", len(photo.Data)),
		)
	default:
		url, err := s.photos.Upload(ctx, photo)
		if err != nil {
			var validationErr *errs.ValidationError
			if errors.As(err, &validationErr) {
				return nil, err
			}
			return nil, failure(ctx, s.net, "upload photo", err)
		}
		servico.FotoOPURL = url
	}

	id, err := s.repo.Create(ctx, servico)
	if err != nil {
		s.photos.Remove(ctx, servico.FotoOPURL)
		return nil, failure(ctx, s.net, "create servico", err)
	}
	servico.ID = id

	s.logger.Info("servico registered",
		zap.String("id", id),
		zap.String("fornecedor", servico.Fornecedor),
		zap.Int("quantidade_total", servico.QuantidadeTotal),
		zap.String("valor_total_lote", servico.ValorTotalLote.String()),
	)
	return servico, nil
}

// Edit applies field changes and rewrites the derived totals with them.
func (s *ServicoService) Edit(ctx context.Context, id string, req models.UpdateServicoRequest) (*models.Servico, error) {
	if err := req.Validate(s.loc); err != nil {
		return nil, err
	}

	servico, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	patch, err := req.Apply(servico, s.loc)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, failure(ctx, s.net, "update servico", err)
	}

	s.logger.Info("servico edited", zap.String("id", id), zap.Int("fields", len(patch)))
	return servico, nil
}

// Advance moves the order to target, which must be exactly one step ahead of
// its current status. Nothing is written when the guard rejects it.
func (s *ServicoService) Advance(ctx context.Context, id, target string) (*models.Servico, error) {
	status, ok := models.ParseStatus(target)
	if !ok {
		return nil, &errs.ValidationError{Field: "status", Message: errs.MsgUnknownStatus}
	}

	servico, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, servico, func(sv *models.Servico) (map[string]any, error) {
		return sv.AdvanceTo(status, s.clock())
	})
}

// Next advances one step. A finished order stays finished; use Reopen.
func (s *ServicoService) Next(ctx context.Context, id string) (*models.Servico, error) {
	servico, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, servico, func(sv *models.Servico) (map[string]any, error) {
		next, ok := sv.Status.Next()
		if !ok {
			return nil, &errs.TransitionError{From: string(models.NormalizeStatus(string(sv.Status))), To: "next"}
		}
		return sv.AdvanceTo(next, s.clock())
	})
}

func (s *ServicoService) Reopen(ctx context.Context, id string) (*models.Servico, error) {
	servico, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, servico, func(sv *models.Servico) (map[string]any, error) {
		return sv.Reopen()
	})
}

// Delete removes the order and then, best effort, its photo.
func (s *ServicoService) Delete(ctx context.Context, id string) error {
	servico, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return failure(ctx, s.net, "delete servico", err)
	}
	s.photos.Remove(ctx, servico.FotoOPURL)

	s.logger.Info("servico deleted", zap.String("id", id))
	return nil
}

// List loads every order newest first. It feeds the live snapshot.
func (s *ServicoService) List(ctx context.Context) ([]models.Servico, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, failure(ctx, s.net, "list servicos", err)
	}
	return list, nil
}

func (s *ServicoService) load(ctx context.Context, id string) (*models.Servico, error) {
	if id == "" {
		return nil, errs.Required("id")
	}
	servico, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, failure(ctx, s.net, "get servico", err)
	}
	return servico, nil
}

func (s *ServicoService) transition(ctx context.Context, servico *models.Servico, step func(*models.Servico) (map[string]any, error)) (*models.Servico, error) {
	from := models.NormalizeStatus(string(servico.Status))
	patch, err := step(servico)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, servico.ID, patch); err != nil {
		return nil, failure(ctx, s.net, "update servico status", err)
	}

	s.logger.Info("servico status changed",
		zap.String("id", servico.ID),
		zap.String("from", string(from)),
		zap.String("to", string(servico.Status)),
	)
	return servico, nil
}

// failure turns a store error into a PersistenceError, probing connectivity
// so callers can tell the offline case apart. Not-found passes through.
func failure(ctx context.Context, net Connectivity, op string, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return err
	}
	offline := false
	if net != nil {
		probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), probeTimeout)
		defer cancel()
		offline = !net.Online(probeCtx)
	}
	return &errs.PersistenceError{Op: op, Offline: offline, Err: err}
}
