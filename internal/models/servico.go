package models

import (
	"time"

	"atelie-backend/internal/errs"

	"github.com/shopspring/decimal"
)

// Servico is a production order: one batch of pieces from a supplier.
type Servico struct {
	ID              string          `json:"id,omitempty"`
	Fornecedor      string          `json:"fornecedor"`
	Cliente         string          `json:"cliente"`
	TipoPeca        string          `json:"tipo_peca"`
	TipoTecido      string          `json:"tipo_tecido"`
	Tamanhos        SizeGrid        `json:"tamanhos"`
	DetalheTamanhos string          `json:"detalhe_tamanhos,omitempty"`
	QuantidadeTotal int             `json:"quantidade_total"`
	ValorUnitario   decimal.Decimal `json:"valor_unitario" swaggertype:"string" example:"12.5"`
	ValorTotalLote  decimal.Decimal `json:"valor_total_lote" swaggertype:"string" example:"62.5"`
	DataEntrada     time.Time       `json:"data_entrada"`
	DataChegada     string          `json:"data_chegada,omitempty" example:"2024-03-05"`
	DataInicio      *time.Time      `json:"data_inicio"`
	DataConclusao   *time.Time      `json:"data_conclusao"`
	FotoOPURL       string          `json:"foto_op_url,omitempty"`
	NumeroOP        string          `json:"numero_op,omitempty"`
	Status          StatusServico   `json:"status" enums:"PENDENTE,EM_ANDAMENTO,CONCLUIDO"`
	Observacoes     string          `json:"observacoes,omitempty"`
}

// Recalculate derives the quantity and lot value. Legacy orders without a
// grid keep their stored quantity.
func (s *Servico) Recalculate() {
	if total := s.Tamanhos.Total(); total > 0 {
		s.QuantidadeTotal = total
	}
	if s.QuantidadeTotal < 0 {
		s.QuantidadeTotal = 0
	}
	s.ValorTotalLote = s.ValorUnitario.Mul(decimal.NewFromInt(int64(s.QuantidadeTotal)))
}

// SizeDisplay falls back to the legacy free-text description when the order
// has no grid.
func (s *Servico) SizeDisplay() string {
	if !s.Tamanhos.IsEmpty() {
		return s.Tamanhos.Display()
	}
	return s.DetalheTamanhos
}

// AdvanceTo moves the order exactly one step forward and returns the fields
// to write. data_inicio is only set the first time production starts.
func (s *Servico) AdvanceTo(target StatusServico, now time.Time) (map[string]any, error) {
	current := NormalizeStatus(string(s.Status))
	if !current.CanAdvanceTo(target) {
		return nil, &errs.TransitionError{From: string(current), To: string(target)}
	}

	patch := map[string]any{"status": target}
	switch target {
	case StatusEmAndamento:
		if s.DataInicio == nil {
			started := now
			s.DataInicio = &started
			patch["data_inicio"] = started
		}
	case StatusConcluido:
		done := now
		s.DataConclusao = &done
		patch["data_conclusao"] = done
	}
	s.Status = target
	return patch, nil
}

// Reopen sends a finished order back to PENDENTE. The original start time is
// kept so a second pass through production does not overwrite it.
func (s *Servico) Reopen() (map[string]any, error) {
	current := NormalizeStatus(string(s.Status))
	if current != StatusConcluido {
		return nil, &errs.TransitionError{From: string(current), To: string(StatusPendente)}
	}
	s.Status = StatusPendente
	s.DataConclusao = nil
	return map[string]any{"status": StatusPendente, "data_conclusao": nil}, nil
}

// Clone copies the order including its grid, so the copy can be edited
// without touching a shared snapshot.
func (s Servico) Clone() Servico {
	if s.Tamanhos != nil {
		grid := make(SizeGrid, len(s.Tamanhos))
		for k, v := range s.Tamanhos {
			grid[k] = v
		}
		s.Tamanhos = grid
	}
	return s
}
