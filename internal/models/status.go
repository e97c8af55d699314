package models

import (
	"encoding/json"
	"strings"
)

type StatusServico string

const (
	StatusPendente    StatusServico = "PENDENTE"
	StatusEmAndamento StatusServico = "EM_ANDAMENTO"
	StatusConcluido   StatusServico = "CONCLUIDO"
)

// Labels written by earlier versions of the app, keyed by lowercase text.
var legacyStatus = map[string]StatusServico{
	"pendente":          StatusPendente,
	"em_andamento":      StatusEmAndamento,
	"em andamento":      StatusEmAndamento,
	"em produção":       StatusEmAndamento,
	"em producao":       StatusEmAndamento,
	"em_producao":       StatusEmAndamento,
	"concluido":         StatusConcluido,
	"concluído":         StatusConcluido,
	"entregue/faturado": StatusConcluido,
	"entregue":          StatusConcluido,
	"faturado":          StatusConcluido,
}

// ParseStatus maps canonical and legacy labels to the enum. ok is false for
// anything it does not recognise.
func ParseStatus(raw string) (StatusServico, bool) {
	s, ok := legacyStatus[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

// NormalizeStatus is the only place raw status text is interpreted. Missing or
// unrecognised values are treated as PENDENTE.
func NormalizeStatus(raw string) StatusServico {
	if s, ok := ParseStatus(raw); ok {
		return s
	}
	return StatusPendente
}

func (s *StatusServico) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = StatusPendente
		return nil
	}
	*s = NormalizeStatus(*raw)
	return nil
}

func (s StatusServico) rank() int {
	switch NormalizeStatus(string(s)) {
	case StatusEmAndamento:
		return 1
	case StatusConcluido:
		return 2
	default:
		return 0
	}
}

// Next returns the state one step ahead. CONCLUIDO is terminal.
func (s StatusServico) Next() (StatusServico, bool) {
	switch s.rank() {
	case 0:
		return StatusEmAndamento, true
	case 1:
		return StatusConcluido, true
	default:
		return "", false
	}
}

// CanAdvanceTo reports whether target is exactly one step ahead of s.
func (s StatusServico) CanAdvanceTo(target StatusServico) bool {
	return target.rank() == s.rank()+1
}

func (s StatusServico) Label() string {
	switch NormalizeStatus(string(s)) {
	case StatusEmAndamento:
		return "Em Produção"
	case StatusConcluido:
		return "Concluído"
	default:
		return "Pendente"
	}
}

type StatusPagamento string

const (
	PagamentoPendente StatusPagamento = "PENDENTE"
	PagamentoPago     StatusPagamento = "PAGO"
)

func NormalizeStatusPagamento(raw string) StatusPagamento {
	if strings.EqualFold(strings.TrimSpace(raw), string(PagamentoPago)) {
		return PagamentoPago
	}
	return PagamentoPendente
}

func (s *StatusPagamento) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = PagamentoPendente
		return nil
	}
	*s = NormalizeStatusPagamento(*raw)
	return nil
}

// Toggle flips PENDENTE and PAGO.
func (s StatusPagamento) Toggle() StatusPagamento {
	if NormalizeStatusPagamento(string(s)) == PagamentoPago {
		return PagamentoPendente
	}
	return PagamentoPago
}
