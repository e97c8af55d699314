package supabase

import (
	"context"

	"atelie-backend/internal/models"

	"github.com/supabase-community/supabase-go"
)

type ServicoRepository struct {
	table table[models.Servico]
}

func NewServicoRepository(client *supabase.Client, name string) *ServicoRepository {
	return &ServicoRepository{table: table[models.Servico]{client: client, name: name, orderBy: "data_entrada"}}
}

func (r *ServicoRepository) Create(ctx context.Context, servico *models.Servico) (string, error) {
	return r.table.insert(ctx, servico)
}

func (r *ServicoRepository) Get(ctx context.Context, id string) (*models.Servico, error) {
	return r.table.get(ctx, id)
}

func (r *ServicoRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.table.update(ctx, id, fields)
}

func (r *ServicoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func (r *ServicoRepository) List(ctx context.Context) ([]models.Servico, error) {
	return r.table.list(ctx)
}

type PagamentoRepository struct {
	table table[models.Pagamento]
}

func NewPagamentoRepository(client *supabase.Client, name string) *PagamentoRepository {
	return &PagamentoRepository{table: table[models.Pagamento]{client: client, name: name, orderBy: "data_trabalho"}}
}

func (r *PagamentoRepository) Create(ctx context.Context, pagamento *models.Pagamento) (string, error) {
	return r.table.insert(ctx, pagamento)
}

func (r *PagamentoRepository) Get(ctx context.Context, id string) (*models.Pagamento, error) {
	return r.table.get(ctx, id)
}

func (r *PagamentoRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.table.update(ctx, id, fields)
}

func (r *PagamentoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func (r *PagamentoRepository) List(ctx context.Context) ([]models.Pagamento, error) {
	return r.table.list(ctx)
}
