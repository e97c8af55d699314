package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelie-backend/internal/errs"
	"atelie-backend/internal/extraction"
	"atelie-backend/internal/models"
	"atelie-backend/internal/services"
	"atelie-backend/internal/services/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPagamentoService(t *testing.T) (*services.PagamentoService, *mocks.MockPagamentoRepository, *mocks.MockConnectivity) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPagamentoRepository(ctrl)
	net := mocks.NewMockConnectivity(ctrl)
	svc := services.NewPagamentoService(repo, net, time.UTC, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return svc, repo, net
}

func TestPagamentoService_Register(t *testing.T) {
	svc, repo, _ := newPagamentoService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Pagamento) (string, error) {
			assert.Equal(t, "Maria", p.NomeAjudante)
			assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), p.DataTrabalho)
			assert.True(t, p.ValorPago.Equal(decimal.NewFromInt(80)))
			assert.Equal(t, models.PagamentoPendente, p.Status)
			return "pg-1", nil
		},
	)

	p, err := svc.Register(context.Background(), models.CreatePagamentoRequest{
		NomeAjudante: "Maria",
		DataTrabalho: "2024-03-01",
		ValorPago:    "80,00",
	})
	require.NoError(t, err)
	assert.Equal(t, "pg-1", p.ID)
}

func TestPagamentoService_RegisterRejectsZero(t *testing.T) {
	svc, _, _ := newPagamentoService(t)

	_, err := svc.Register(context.Background(), models.CreatePagamentoRequest{NomeAjudante: "Maria", ValorPago: "0"})
	var validationErr *errs.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPagamentoService_ToggleTwiceRestores(t *testing.T) {
	svc, repo, _ := newPagamentoService(t)

	stored := &models.Pagamento{ID: "pg-1", Status: models.PagamentoPendente}
	repo.EXPECT().Get(gomock.Any(), "pg-1").DoAndReturn(func(context.Context, string) (*models.Pagamento, error) {
		copied := *stored
		return &copied, nil
	}).Times(2)
	repo.EXPECT().Update(gomock.Any(), "pg-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
		stored.Status = fields["status"].(models.StatusPagamento)
		return nil
	}).Times(2)

	p, err := svc.Toggle(context.Background(), "pg-1")
	require.NoError(t, err)
	assert.Equal(t, models.PagamentoPago, p.Status)

	p, err = svc.Toggle(context.Background(), "pg-1")
	require.NoError(t, err)
	assert.Equal(t, models.PagamentoPendente, p.Status)
}

func TestPagamentoService_DeleteOffline(t *testing.T) {
	svc, repo, net := newPagamentoService(t)

	repo.EXPECT().Delete(gomock.Any(), "pg-1").Return(errors.New("dial tcp"))
	net.EXPECT().Online(gomock.Any()).Return(false)

	err := svc.Delete(context.Background(), "pg-1")
	assert.Equal(t, "Sem conexão com a internet. Verifique sua rede e tente novamente.", errs.UserMessage(err))
}

func TestVozService_Fill(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	svc := services.NewVozService(extractor, zap.NewNop())

	partial, err := extraction.ParseResponse(`{"fornecedor":"Acme","tamanhos":{"p":2,"XXL":1}}`)
	require.NoError(t, err)
	extractor.EXPECT().Extract(gomock.Any(), "fornecedor Acme").Return(partial, nil)

	resp, err := svc.Fill(context.Background(), models.VozRequest{
		Transcricao: "fornecedor Acme",
		Formulario:  models.ServicoForm{Cliente: "João"},
	})
	require.NoError(t, err)
	assert.Equal(t, "João", resp.Formulario.Cliente)
	assert.Equal(t, "Acme", resp.Formulario.Fornecedor)
	assert.Equal(t, map[string]int{"P": 2}, resp.Formulario.Tamanhos)
	assert.Equal(t, []string{"XXL"}, resp.TamanhosNaoReconhecidos)
}

func TestVozService_FillFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	svc := services.NewVozService(extractor, zap.NewNop())

	extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, &errs.ExtractionError{Reason: "malformed response"})

	resp, err := svc.Fill(context.Background(), models.VozRequest{Transcricao: "x"})
	assert.Nil(t, resp)
	assert.Equal(t, "Erro ao processar o áudio com IA.", errs.UserMessage(err))
}
