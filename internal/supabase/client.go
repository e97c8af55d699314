package supabase

import (
	"atelie-backend/internal/config"

	"github.com/supabase-community/supabase-go"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

func (c *Client) Servicos() *ServicoRepository {
	return NewServicoRepository(c.Supabase, c.Config.ServicosTable)
}

func (c *Client) Pagamentos() *PagamentoRepository {
	return NewPagamentoRepository(c.Supabase, c.Config.PagamentosTable)
}
