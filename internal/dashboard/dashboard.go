// Package dashboard holds the pure selectors behind the dashboard and list
// screens. Every figure is folded from the snapshot on each call.
package dashboard

import (
	"sort"

	"atelie-backend/internal/dates"
	"atelie-backend/internal/models"

	"github.com/shopspring/decimal"
)

const RecentLimit = 3

type Totals struct {
	TotalAReceber     decimal.Decimal
	ProducaoTotal     decimal.Decimal
	DespesasAjudantes decimal.Decimal
	DespesasPagas     decimal.Decimal
	DespesasPendentes decimal.Decimal
}

// FilterServicos keeps orders whose data_entrada falls inside r.
func FilterServicos(servicos []models.Servico, r dates.Range) []models.Servico {
	out := make([]models.Servico, 0, len(servicos))
	for _, s := range servicos {
		if r.Contains(s.DataEntrada) {
			out = append(out, s)
		}
	}
	return out
}

// FilterPagamentos keeps payments whose work day falls inside r.
func FilterPagamentos(pagamentos []models.Pagamento, r dates.Range) []models.Pagamento {
	out := make([]models.Pagamento, 0, len(pagamentos))
	for _, p := range pagamentos {
		if r.Contains(p.DataTrabalho) {
			out = append(out, p)
		}
	}
	return out
}

// Summarize aggregates already filtered collections. Receivable excludes
// finished orders; production includes every order.
func Summarize(servicos []models.Servico, pagamentos []models.Pagamento) Totals {
	t := Totals{
		TotalAReceber:     decimal.Zero,
		ProducaoTotal:     decimal.Zero,
		DespesasAjudantes: decimal.Zero,
		DespesasPagas:     decimal.Zero,
		DespesasPendentes: decimal.Zero,
	}

	for _, s := range servicos {
		t.ProducaoTotal = t.ProducaoTotal.Add(s.ValorTotalLote)
		if models.NormalizeStatus(string(s.Status)) != models.StatusConcluido {
			t.TotalAReceber = t.TotalAReceber.Add(s.ValorTotalLote)
		}
	}

	for _, p := range pagamentos {
		t.DespesasAjudantes = t.DespesasAjudantes.Add(p.ValorPago)
		if p.IsPaid() {
			t.DespesasPagas = t.DespesasPagas.Add(p.ValorPago)
		} else {
			t.DespesasPendentes = t.DespesasPendentes.Add(p.ValorPago)
		}
	}
	return t
}

// Recent returns up to n orders, newest data_entrada first.
func Recent(servicos []models.Servico, n int) []models.Servico {
	sorted := make([]models.Servico, len(servicos))
	copy(sorted, servicos)
	SortServicos(sorted)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortServicos orders by data_entrada, newest first.
func SortServicos(servicos []models.Servico) {
	sort.SliceStable(servicos, func(i, j int) bool {
		return servicos[i].DataEntrada.After(servicos[j].DataEntrada)
	})
}

// SortPagamentos orders by data_trabalho, newest first.
func SortPagamentos(pagamentos []models.Pagamento) {
	sort.SliceStable(pagamentos, func(i, j int) bool {
		return pagamentos[i].DataTrabalho.After(pagamentos[j].DataTrabalho)
	})
}
