package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"
	"atelie-backend/internal/money"
	"atelie-backend/internal/services"
	"atelie-backend/internal/services/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

// A minimal PNG header is enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type servicoFixture struct {
	repo   *mocks.MockServicoRepository
	photos *mocks.MockPhotoStorage
	net    *mocks.MockConnectivity
	svc    *services.ServicoService
}

func newServicoFixture(t *testing.T) servicoFixture {
	ctrl := gomock.NewController(t)
	f := servicoFixture{
		repo:   mocks.NewMockServicoRepository(ctrl),
		photos: mocks.NewMockPhotoStorage(ctrl),
		net:    mocks.NewMockConnectivity(ctrl),
	}
	storage := services.NewStorageService(f.photos, zap.NewNop())
	f.svc = services.NewServicoService(f.repo, storage, f.net, time.UTC, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func createRequest() models.CreateServicoRequest {
	return models.CreateServicoRequest{
		Fornecedor:    "Acme",
		TipoPeca:      "Camiseta",
		Tamanhos:      map[string]money.Input{"P": "2", "M": "3"},
		ValorUnitario: "10,00",
	}
}

func TestServicoService_Register(t *testing.T) {
	f := newServicoFixture(t)

	f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&models.Servico{})).DoAndReturn(
		func(_ context.Context, s *models.Servico) (string, error) {
			assert.Equal(t, models.StatusPendente, s.Status)
			assert.Equal(t, 5, s.QuantidadeTotal)
			assert.True(t, s.ValorTotalLote.Equal(decimal.NewFromInt(50)))
			assert.Equal(t, fixedNow, s.DataEntrada)
			return "srv-1", nil
		},
	)

	s, err := f.svc.Register(context.Background(), createRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", s.ID)
}

func TestServicoService_RegisterValidationDoesNoIO(t *testing.T) {
	f := newServicoFixture(t)

	req := createRequest()
	req.Tamanhos = map[string]money.Input{"P": "0"}

	_, err := f.svc.Register(context.Background(), req, &services.Photo{Filename: "op.png", Data: pngBytes})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, errs.MsgEmptyGrid, validationErr.Message)
}

func TestServicoService_RegisterWithPhoto(t *testing.T) {
	f := newServicoFixture(t)
	url := "https://proj.supabase.co/storage/v1/object/public/fotos-op/servicos/2024/03/x.png"

	gomock.InOrder(
		f.photos.EXPECT().UploadOrderPhoto(gomock.Any(), "op.png", pngBytes, "image/png").Return(url, nil),
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *models.Servico) (string, error) {
				assert.Equal(t, url, s.FotoOPURL)
				return "srv-2", nil
			},
		),
	)

	s, err := f.svc.Register(context.Background(), createRequest(), &services.Photo{Filename: "../../op.png", Data: pngBytes})
	require.NoError(t, err)
	assert.Equal(t, url, s.FotoOPURL)
}

func TestServicoService_RegisterPhotoFailureAborts(t *testing.T) {
	f := newServicoFixture(t)

	f.photos.EXPECT().UploadOrderPhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unavailable"))
	f.net.EXPECT().Online(gomock.Any()).Return(true)

	_, err := f.svc.Register(context.Background(), createRequest(), &services.Photo{Filename: "op.png", Data: pngBytes})

	var persistenceErr *errs.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.False(t, persistenceErr.Offline)
	assert.Equal(t, "Erro ao salvar. Tente novamente.", errs.UserMessage(err))
}

func TestServicoService_RegisterWithoutPhotoStorageSavesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockServicoRepository(ctrl)
	net := mocks.NewMockConnectivity(ctrl)
	svc := services.NewServicoService(repo, services.NewStorageService(nil, zap.NewNop()), net, time.UTC, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *models.Servico) (string, error) {
			assert.Empty(t, s.FotoOPURL)
			return "srv-3", nil
		},
	)

	s, err := svc.Register(context.Background(), createRequest(), &services.Photo{Filename: "op.png", Data: pngBytes})
	require.NoError(t, err)
	assert.Equal(t, "srv-3", s.ID)
	assert.Empty(t, s.FotoOPURL)
}

func TestServicoService_RegisterWithoutPhotoStorageStillChecksPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockServicoRepository(ctrl)
	svc := services.NewServicoService(repo, services.NewStorageService(nil, zap.NewNop()), mocks.NewMockConnectivity(ctrl), time.UTC, zap.NewNop())

	_, err := svc.Register(context.Background(), createRequest(), &services.Photo{Filename: "op.txt", Data: []byte("plain text")})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "foto", validationErr.Field)
}

func TestServicoService_RegisterRejectsNonImage(t *testing.T) {
	f := newServicoFixture(t)

	_, err := f.svc.Register(context.Background(), createRequest(), &services.Photo{Filename: "op.txt", Data: []byte("plain text")})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "foto", validationErr.Field)
}

func TestServicoService_RegisterOfflineRemovesUploadedPhoto(t *testing.T) {
	f := newServicoFixture(t)
	url := "https://x/storage/v1/object/public/fotos-op/servicos/a.png"

	f.photos.EXPECT().UploadOrderPhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(url, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("dial tcp: no route to host"))
	f.photos.EXPECT().DeleteByPublicURL(gomock.Any(), url).Return(nil)
	f.net.EXPECT().Online(gomock.Any()).Return(false)

	_, err := f.svc.Register(context.Background(), createRequest(), &services.Photo{Filename: "a.png", Data: pngBytes})

	var persistenceErr *errs.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.True(t, persistenceErr.Offline)
	assert.Equal(t, "create servico", persistenceErr.Op)
}

func TestServicoService_AdvanceSetsTimestamps(t *testing.T) {
	f := newServicoFixture(t)

	stored := &models.Servico{ID: "srv-1", Status: models.StatusPendente}
	f.repo.EXPECT().Get(gomock.Any(), "srv-1").Return(stored, nil)
	f.repo.EXPECT().Update(gomock.Any(), "srv-1", map[string]any{
		"status":      models.StatusEmAndamento,
		"data_inicio": fixedNow,
	}).Return(nil)

	s, err := f.svc.Advance(context.Background(), "srv-1", "EM_ANDAMENTO")
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmAndamento, s.Status)
	require.NotNil(t, s.DataInicio)
}

func TestServicoService_AdvanceRejectsSkip(t *testing.T) {
	f := newServicoFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), "srv-1").Return(&models.Servico{ID: "srv-1", Status: models.StatusPendente}, nil)

	_, err := f.svc.Advance(context.Background(), "srv-1", "CONCLUIDO")
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestServicoService_AdvanceUnknownStatus(t *testing.T) {
	f := newServicoFixture(t)

	_, err := f.svc.Advance(context.Background(), "srv-1", "ARQUIVADO")

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, errs.MsgUnknownStatus, validationErr.Message)
}

func TestServicoService_NextAndReopen(t *testing.T) {
	f := newServicoFixture(t)

	done := fixedNow.Add(-time.Hour)
	f.repo.EXPECT().Get(gomock.Any(), "srv-1").Return(&models.Servico{ID: "srv-1", Status: "Entregue/Faturado", DataConclusao: &done}, nil).Times(2)

	_, err := f.svc.Next(context.Background(), "srv-1")
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	f.repo.EXPECT().Update(gomock.Any(), "srv-1", map[string]any{"status": models.StatusPendente, "data_conclusao": nil}).Return(nil)
	s, err := f.svc.Reopen(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendente, s.Status)
	assert.Nil(t, s.DataConclusao)
}

func TestServicoService_NotFound(t *testing.T) {
	f := newServicoFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), "missing").Return(nil, errs.ErrNotFound)

	_, err := f.svc.Next(context.Background(), "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestServicoService_Edit(t *testing.T) {
	f := newServicoFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), "srv-1").Return(&models.Servico{
		ID:            "srv-1",
		Fornecedor:    "Acme",
		TipoPeca:      "Camiseta",
		Tamanhos:      models.SizeGrid{"P": 2},
		ValorUnitario: decimal.NewFromInt(10),
	}, nil)
	f.repo.EXPECT().Update(gomock.Any(), "srv-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fields map[string]any) error {
			assert.Equal(t, 6, fields["quantidade_total"])
			assert.True(t, fields["valor_total_lote"].(decimal.Decimal).Equal(decimal.NewFromInt(60)))
			return nil
		},
	)

	s, err := f.svc.Edit(context.Background(), "srv-1", models.UpdateServicoRequest{
		Tamanhos: map[string]money.Input{"P": "2", "G": "4"},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, s.QuantidadeTotal)
}

func TestServicoService_EditValidationDoesNoIO(t *testing.T) {
	f := newServicoFixture(t)
	blank := "  "

	cases := map[string]models.UpdateServicoRequest{
		"blank fornecedor": {Fornecedor: &blank},
		"zero price":       {ValorUnitario: inputPtr("0")},
		"empty grid":       {Tamanhos: map[string]money.Input{"P": "0"}},
		"bad date":         {DataChegada: strPtr("31/02/2024")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Edit(context.Background(), "srv-1", req)

			var validationErr *errs.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func inputPtr(v string) *money.Input {
	in := money.Input(v)
	return &in
}

func strPtr(v string) *string {
	return &v
}

func TestServicoService_DeleteRemovesPhotoBestEffort(t *testing.T) {
	f := newServicoFixture(t)
	url := "https://x/storage/v1/object/public/fotos-op/servicos/a.png"

	f.repo.EXPECT().Get(gomock.Any(), "srv-1").Return(&models.Servico{ID: "srv-1", FotoOPURL: url}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), "srv-1").Return(nil)
	f.photos.EXPECT().DeleteByPublicURL(gomock.Any(), url).Return(errors.New("403"))

	assert.NoError(t, f.svc.Delete(context.Background(), "srv-1"))
}

func TestServicoService_List(t *testing.T) {
	f := newServicoFixture(t)

	f.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))
	f.net.EXPECT().Online(gomock.Any()).Return(true)

	_, err := f.svc.List(context.Background())
	var persistenceErr *errs.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}
