package services

import (
	"context"

	"atelie-backend/internal/extraction"
	"atelie-backend/internal/models"

	"go.uber.org/zap"
)

// VozService fills the order form from a voice transcript.
type VozService struct {
	extractor Extractor
	logger    *zap.Logger
}

func NewVozService(extractor Extractor, logger *zap.Logger) *VozService {
	return &VozService{
		extractor: extractor,
		logger:    logger.Named("voz"),
	}
}

// Fill merges what the model understood into the current form. On failure the
// caller keeps its form unchanged.
func (s *VozService) Fill(ctx context.Context, req models.VozRequest) (*models.VozResponse, error) {
	partial, err := s.extractor.Extract(ctx, req.Transcricao)
	if err != nil {
		return nil, err
	}

	form, unmatched := extraction.Merge(req.Formulario, partial)
	if len(unmatched) > 0 {
		s.logger.Info("unrecognised size labels", zap.Strings("labels", unmatched))
	}
	return &models.VozResponse{Formulario: form, TamanhosNaoReconhecidos: unmatched}, nil
}
