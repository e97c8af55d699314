package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := map[string]models.StatusServico{
		"PENDENTE":          models.StatusPendente,
		"Pendente":          models.StatusPendente,
		"EM_ANDAMENTO":      models.StatusEmAndamento,
		"Em Produção":       models.StatusEmAndamento,
		"em producao":       models.StatusEmAndamento,
		"CONCLUIDO":         models.StatusConcluido,
		"Entregue/Faturado": models.StatusConcluido,
		"  concluído ":      models.StatusConcluido,
		"":                  models.StatusPendente,
		"arquivado":         models.StatusPendente,
	}

	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, models.NormalizeStatus(raw))
		})
	}
}

func TestStatusServico_UnmarshalNull(t *testing.T) {
	var payload struct {
		Status models.StatusServico `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":null}`), &payload))
	assert.Equal(t, models.StatusPendente, payload.Status)
}

func TestLifecycle_ForwardPath(t *testing.T) {
	s := &models.Servico{Status: models.StatusPendente}
	t1 := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	patch, err := s.AdvanceTo(models.StatusEmAndamento, t1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmAndamento, patch["status"])
	assert.Equal(t, t1, patch["data_inicio"])

	patch, err = s.AdvanceTo(models.StatusConcluido, t2)
	require.NoError(t, err)
	assert.Equal(t, t2, patch["data_conclusao"])
	assert.NotContains(t, patch, "data_inicio")

	require.NotNil(t, s.DataInicio)
	require.NotNil(t, s.DataConclusao)
	assert.Equal(t, t1, *s.DataInicio)
	assert.Equal(t, t2, *s.DataConclusao)
	assert.Equal(t, models.StatusConcluido, s.Status)
}

func TestLifecycle_RejectsNonAdjacent(t *testing.T) {
	tests := []struct {
		from   models.StatusServico
		target models.StatusServico
	}{
		{models.StatusPendente, models.StatusConcluido},
		{models.StatusPendente, models.StatusPendente},
		{models.StatusEmAndamento, models.StatusPendente},
		{models.StatusEmAndamento, models.StatusEmAndamento},
		{models.StatusConcluido, models.StatusPendente},
		{models.StatusConcluido, models.StatusEmAndamento},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.target), func(t *testing.T) {
			s := &models.Servico{Status: tt.from}
			patch, err := s.AdvanceTo(tt.target, time.Now())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Nil(t, patch)
			assert.Equal(t, tt.from, s.Status)
		})
	}
}

func TestLifecycle_LegacyStatusAdvances(t *testing.T) {
	s := &models.Servico{Status: "Em Produção"}
	_, err := s.AdvanceTo(models.StatusConcluido, time.Now())
	assert.NoError(t, err)
}

func TestLifecycle_NextStopsAtDone(t *testing.T) {
	next, ok := models.StatusPendente.Next()
	assert.True(t, ok)
	assert.Equal(t, models.StatusEmAndamento, next)

	next, ok = models.StatusEmAndamento.Next()
	assert.True(t, ok)
	assert.Equal(t, models.StatusConcluido, next)

	_, ok = models.StatusConcluido.Next()
	assert.False(t, ok)
}

func TestLifecycle_ReopenKeepsStart(t *testing.T) {
	started := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	done := started.Add(24 * time.Hour)
	s := &models.Servico{Status: models.StatusConcluido, DataInicio: &started, DataConclusao: &done}

	patch, err := s.Reopen()
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendente, patch["status"])
	assert.Nil(t, patch["data_conclusao"])
	assert.Nil(t, s.DataConclusao)
	assert.Equal(t, &started, s.DataInicio)

	// Starting production again does not overwrite the first start time.
	patch, err = s.AdvanceTo(models.StatusEmAndamento, done.Add(time.Hour))
	require.NoError(t, err)
	assert.NotContains(t, patch, "data_inicio")
	assert.Equal(t, started, *s.DataInicio)
}

func TestLifecycle_ReopenOnlyFromDone(t *testing.T) {
	s := &models.Servico{Status: models.StatusEmAndamento}
	_, err := s.Reopen()
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestPaymentToggle_Involutive(t *testing.T) {
	for _, s := range []models.StatusPagamento{models.PagamentoPendente, models.PagamentoPago} {
		assert.Equal(t, s, s.Toggle().Toggle())
		assert.NotEqual(t, s, s.Toggle())
	}
	assert.Equal(t, models.PagamentoPago, models.StatusPagamento("").Toggle())
}

func TestStatusPagamento_DefaultsToPending(t *testing.T) {
	var p models.Pagamento
	require.NoError(t, json.Unmarshal([]byte(`{"nome_ajudante":"Ana","valor_pago":"80"}`), &p))
	assert.Equal(t, models.StatusPagamento(""), p.Status)
	assert.False(t, p.IsPaid())

	require.NoError(t, json.Unmarshal([]byte(`{"status":"pago"}`), &p))
	assert.Equal(t, models.PagamentoPago, p.Status)
	assert.True(t, p.IsPaid())
}
