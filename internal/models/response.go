package models

import (
	"atelie-backend/internal/money"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
	Online  bool   `json:"online"`
	Ready   bool   `json:"ready"`
}

// ServicoView adds display strings to an order.
type ServicoView struct {
	Servico
	StatusLabel         string `json:"status_label" example:"Em Produção"`
	TamanhosExibicao    string `json:"tamanhos_exibicao" example:"2 P, 3 M"`
	ValorUnitarioFmt    string `json:"valor_unitario_formatado" example:"R$ 10,00"`
	ValorTotalFormatado string `json:"valor_total_formatado" example:"R$ 50,00"`
}

func NewServicoView(s Servico) ServicoView {
	return ServicoView{
		Servico:             s,
		StatusLabel:         s.Status.Label(),
		TamanhosExibicao:    s.SizeDisplay(),
		ValorUnitarioFmt:    money.FormatBRL(s.ValorUnitario),
		ValorTotalFormatado: money.FormatBRL(s.ValorTotalLote),
	}
}

type ServicosResponse struct {
	Servicos []ServicoView `json:"servicos"`
}

type PagamentoView struct {
	Pagamento
	ValorFormatado string `json:"valor_formatado" example:"R$ 80,00"`
}

func NewPagamentoView(p Pagamento) PagamentoView {
	return PagamentoView{Pagamento: p, ValorFormatado: money.FormatBRL(p.ValorPago)}
}

type PagamentosResponse struct {
	Pagamentos []PagamentoView `json:"pagamentos"`
}

type Amount struct {
	Valor     decimal.Decimal `json:"valor" swaggertype:"string" example:"100"`
	Formatado string          `json:"formatado" example:"R$ 100,00"`
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Valor: d, Formatado: money.FormatBRL(d)}
}

type DashboardResponse struct {
	TotalAReceber     Amount        `json:"total_a_receber"`
	ProducaoTotal     Amount        `json:"producao_total"`
	DespesasAjudantes Amount        `json:"despesas_ajudantes"`
	DespesasPagas     Amount        `json:"despesas_pagas"`
	DespesasPendentes Amount        `json:"despesas_pendentes"`
	Recentes          []ServicoView `json:"recentes"`
}

type VozResponse struct {
	Formulario              ServicoForm `json:"formulario"`
	TamanhosNaoReconhecidos []string    `json:"tamanhos_nao_reconhecidos"`
}
