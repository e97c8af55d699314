package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pagamento is a daily payment owed or paid to a production helper.
type Pagamento struct {
	ID           string          `json:"id,omitempty"`
	NomeAjudante string          `json:"nome_ajudante"`
	DataTrabalho time.Time       `json:"data_trabalho"`
	ValorPago    decimal.Decimal `json:"valor_pago" swaggertype:"string" example:"80"`
	Status       StatusPagamento `json:"status" enums:"PENDENTE,PAGO"`
}

func (p *Pagamento) IsPaid() bool {
	return NormalizeStatusPagamento(string(p.Status)) == PagamentoPago
}
