// Package store keeps the latest snapshot of each collection as delivered by
// the live feeds. Readers always get copies.
package store

import (
	"sync"

	"atelie-backend/internal/dashboard"
	"atelie-backend/internal/models"
)

type Store struct {
	mu sync.RWMutex

	servicos      []models.Servico
	servicosReady bool

	pagamentos      []models.Pagamento
	pagamentosReady bool
}

func New() *Store {
	return &Store{}
}

// SetServicos replaces the order snapshot. Totals are re-derived on load so a
// record written with a stale total never reaches the selectors.
func (s *Store) SetServicos(list []models.Servico) {
	snapshot := make([]models.Servico, len(list))
	for i, item := range list {
		item = item.Clone()
		item.Status = models.NormalizeStatus(string(item.Status))
		item.Recalculate()
		snapshot[i] = item
	}
	dashboard.SortServicos(snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.servicos = snapshot
	s.servicosReady = true
}

func (s *Store) SetPagamentos(list []models.Pagamento) {
	snapshot := make([]models.Pagamento, len(list))
	for i, item := range list {
		item.Status = models.NormalizeStatusPagamento(string(item.Status))
		snapshot[i] = item
	}
	dashboard.SortPagamentos(snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagamentos = snapshot
	s.pagamentosReady = true
}

// Servicos returns the current orders, newest first. ok is false until the
// first snapshot has arrived.
func (s *Store) Servicos() ([]models.Servico, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Servico, len(s.servicos))
	for i, item := range s.servicos {
		out[i] = item.Clone()
	}
	return out, s.servicosReady
}

func (s *Store) Pagamentos() ([]models.Pagamento, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Pagamento, len(s.pagamentos))
	copy(out, s.pagamentos)
	return out, s.pagamentosReady
}

func (s *Store) Servico(id string) (models.Servico, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.servicos {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return models.Servico{}, false
}

func (s *Store) Pagamento(id string) (models.Pagamento, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.pagamentos {
		if item.ID == id {
			return item, true
		}
	}
	return models.Pagamento{}, false
}

// Ready reports whether both collections have received a snapshot.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.servicosReady && s.pagamentosReady
}
