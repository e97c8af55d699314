package models

import (
	"strings"
	"time"

	"atelie-backend/internal/dates"
	"atelie-backend/internal/errs"
	"atelie-backend/internal/money"
)

type CreateServicoRequest struct {
	Fornecedor    string                 `json:"fornecedor" example:"Confecções Silva"`
	Cliente       string                 `json:"cliente" example:"Loja Centro"`
	TipoPeca      string                 `json:"tipo_peca" example:"Camiseta"`
	TipoTecido    string                 `json:"tipo_tecido" example:"Malha"`
	Tamanhos      map[string]money.Input `json:"tamanhos" swaggertype:"object,string" example:"P:2,M:3"`
	ValorUnitario money.Input            `json:"valor_unitario" swaggertype:"string" example:"10,00"`
	DataChegada   string                 `json:"data_chegada" example:"2024-03-05"`
	NumeroOP      string                 `json:"numero_op" example:"OP-1042"`
	Observacoes   string                 `json:"observacoes"`
}

// Build validates the request and returns a PENDENTE order with derived totals.
// Nothing is written when it fails.
func (r CreateServicoRequest) Build(now time.Time) (*Servico, error) {
	if strings.TrimSpace(r.Fornecedor) == "" {
		return nil, errs.Required("fornecedor")
	}
	if strings.TrimSpace(r.TipoPeca) == "" {
		return nil, errs.Required("tipo_peca")
	}

	price := r.ValorUnitario.Decimal()
	if price.IsNegative() {
		return nil, errs.NonPositive("valor_unitario")
	}
	if price.IsZero() {
		return nil, errs.Required("valor_unitario")
	}

	grid, err := gridFromInput(r.Tamanhos)
	if err != nil {
		return nil, err
	}
	if grid.IsEmpty() {
		return nil, errs.EmptyGrid()
	}

	chegada, err := normalizeDay(r.DataChegada, "data_chegada", now.Location())
	if err != nil {
		return nil, err
	}

	s := &Servico{
		Fornecedor:    strings.TrimSpace(r.Fornecedor),
		Cliente:       strings.TrimSpace(r.Cliente),
		TipoPeca:      strings.TrimSpace(r.TipoPeca),
		TipoTecido:    strings.TrimSpace(r.TipoTecido),
		Tamanhos:      grid,
		ValorUnitario: price,
		DataEntrada:   now,
		DataChegada:   chegada,
		NumeroOP:      strings.TrimSpace(r.NumeroOP),
		Status:        StatusPendente,
		Observacoes:   strings.TrimSpace(r.Observacoes),
	}
	s.Recalculate()
	return s, nil
}

// UpdateServicoRequest edits order fields. Nil fields are left untouched.
// Status and timestamps change only through the lifecycle operations.
type UpdateServicoRequest struct {
	Fornecedor    *string                `json:"fornecedor,omitempty"`
	Cliente       *string                `json:"cliente,omitempty"`
	TipoPeca      *string                `json:"tipo_peca,omitempty"`
	TipoTecido    *string                `json:"tipo_tecido,omitempty"`
	Tamanhos      map[string]money.Input `json:"tamanhos,omitempty" swaggertype:"object,string"`
	ValorUnitario *money.Input           `json:"valor_unitario,omitempty" swaggertype:"string"`
	DataChegada   *string                `json:"data_chegada,omitempty"`
	NumeroOP      *string                `json:"numero_op,omitempty"`
	Observacoes   *string                `json:"observacoes,omitempty"`
}

// Validate runs every field check Apply makes. None of them depend on the
// stored order, so callers can reject a bad edit before loading it.
func (r UpdateServicoRequest) Validate(loc *time.Location) error {
	_, err := r.Apply(&Servico{}, loc)
	return err
}

// Apply edits s in place and returns the fields to persist. Quantity and lot
// value are always recomputed and included.
func (r UpdateServicoRequest) Apply(s *Servico, loc *time.Location) (map[string]any, error) {
	next := *s
	patch := map[string]any{}

	setRequired := func(field string, value *string, dst *string) error {
		if value == nil {
			return nil
		}
		v := strings.TrimSpace(*value)
		if v == "" {
			return errs.Required(field)
		}
		*dst = v
		patch[field] = v
		return nil
	}
	setOptional := func(field string, value *string, dst *string) {
		if value == nil {
			return
		}
		*dst = strings.TrimSpace(*value)
		patch[field] = *dst
	}

	if err := setRequired("fornecedor", r.Fornecedor, &next.Fornecedor); err != nil {
		return nil, err
	}
	if err := setRequired("tipo_peca", r.TipoPeca, &next.TipoPeca); err != nil {
		return nil, err
	}
	setOptional("cliente", r.Cliente, &next.Cliente)
	setOptional("tipo_tecido", r.TipoTecido, &next.TipoTecido)
	setOptional("numero_op", r.NumeroOP, &next.NumeroOP)
	setOptional("observacoes", r.Observacoes, &next.Observacoes)

	if r.ValorUnitario != nil {
		price := r.ValorUnitario.Decimal()
		if price.IsNegative() {
			return nil, errs.NonPositive("valor_unitario")
		}
		if price.IsZero() {
			return nil, errs.Required("valor_unitario")
		}
		next.ValorUnitario = price
		patch["valor_unitario"] = price
	}

	if r.Tamanhos != nil {
		grid, err := gridFromInput(r.Tamanhos)
		if err != nil {
			return nil, err
		}
		if grid.IsEmpty() {
			return nil, errs.EmptyGrid()
		}
		next.Tamanhos = grid
		patch["tamanhos"] = grid
	}

	if r.DataChegada != nil {
		chegada, err := normalizeDay(*r.DataChegada, "data_chegada", loc)
		if err != nil {
			return nil, err
		}
		next.DataChegada = chegada
		if chegada == "" {
			patch["data_chegada"] = nil
		} else {
			patch["data_chegada"] = chegada
		}
	}

	next.Recalculate()
	patch["quantidade_total"] = next.QuantidadeTotal
	patch["valor_total_lote"] = next.ValorTotalLote

	*s = next
	return patch, nil
}

type AdvanceRequest struct {
	Status string `json:"status" binding:"required" example:"EM_ANDAMENTO"`
}

type CreatePagamentoRequest struct {
	NomeAjudante string      `json:"nome_ajudante" example:"Maria"`
	DataTrabalho string      `json:"data_trabalho" example:"2024-03-05"`
	ValorPago    money.Input `json:"valor_pago" swaggertype:"string" example:"80,00"`
	Status       string      `json:"status,omitempty" enums:"PENDENTE,PAGO"`
}

// Build validates the request. The work day is stored at local noon so it
// reads back on the same calendar day in any zone near loc; an empty date
// means today.
func (r CreatePagamentoRequest) Build(now time.Time) (*Pagamento, error) {
	if strings.TrimSpace(r.NomeAjudante) == "" {
		return nil, errs.Required("nome_ajudante")
	}

	valor := r.ValorPago.Decimal()
	if r.ValorPago.IsBlank() || valor.IsZero() {
		return nil, errs.Required("valor_pago")
	}
	if valor.IsNegative() {
		return nil, errs.NonPositive("valor_pago")
	}

	day := now
	if strings.TrimSpace(r.DataTrabalho) != "" {
		parsed, err := dates.ParseDay(r.DataTrabalho, now.Location())
		if err != nil {
			return nil, errs.InvalidDate("data_trabalho")
		}
		day = parsed
	}

	return &Pagamento{
		NomeAjudante: strings.TrimSpace(r.NomeAjudante),
		DataTrabalho: dates.Noon(day),
		ValorPago:    valor,
		Status:       NormalizeStatusPagamento(r.Status),
	}, nil
}

// ServicoForm is the editable state of the new-order form.
type ServicoForm struct {
	Fornecedor    string         `json:"fornecedor"`
	Cliente       string         `json:"cliente"`
	TipoPeca      string         `json:"tipo_peca"`
	TipoTecido    string         `json:"tipo_tecido"`
	Tamanhos      map[string]int `json:"tamanhos"`
	Quantidade    int            `json:"quantidade,omitempty"`
	ValorUnitario string         `json:"valor_unitario" example:"10,00"`
	Observacoes   string         `json:"observacoes"`
}

type VozRequest struct {
	Transcricao string      `json:"transcricao" binding:"required" example:"fornecedor Acme, duas camisetas P"`
	Formulario  ServicoForm `json:"formulario"`
}

func gridFromInput(in map[string]money.Input) (SizeGrid, error) {
	raw := make(map[string]int, len(in))
	for label, q := range in {
		raw[label] = q.Quantity()
	}
	grid, unmatched := NormalizeGrid(raw)
	if len(unmatched) > 0 {
		return nil, errs.UnknownSize(unmatched[0])
	}
	return grid, nil
}

func normalizeDay(value, field string, loc *time.Location) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	day, err := dates.ParseDay(value, loc)
	if err != nil {
		return "", errs.InvalidDate(field)
	}
	return day.Format(dates.Layout), nil
}
