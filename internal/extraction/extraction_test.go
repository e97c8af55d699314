package extraction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"atelie-backend/internal/config"
	"atelie-backend/internal/errs"
	"atelie-backend/internal/extraction"
	"atelie-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseResponse_StripsWrapping(t *testing.T) {
	inputs := []string{
		`{"fornecedor":"Acme"}`,
		"```json\n{\"fornecedor\":\"Acme\"}\n```",
		"Claro! Aqui está:\n{\"fornecedor\": \"Acme\"}\nQualquer dúvida, avise.",
	}

	for _, in := range inputs {
		partial, err := extraction.ParseResponse(in)
		require.NoError(t, err, in)
		require.NotNil(t, partial.Fornecedor)
		assert.Equal(t, "Acme", *partial.Fornecedor)
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	for _, in := range []string{"", "sem json aqui", "{fornecedor: Acme", `{"tamanhos": [1,2]}`} {
		_, err := extraction.ParseResponse(in)

		var extractionErr *errs.ExtractionError
		assert.ErrorAs(t, err, &extractionErr, in)
	}
}

func TestParseResponse_SizesAsText(t *testing.T) {
	partial, err := extraction.ParseResponse(`{"tamanhos":"2 P, 3 m, muitos", "quantidade":"5", "preco_unitario":"12,50"}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"P": 2, "m": 3}, partial.Tamanhos.Counts)
	assert.Equal(t, []string{"muitos"}, partial.Tamanhos.Rejects)
	assert.Equal(t, 5, partial.Quantidade.Quantity())
}

func TestMerge_KeepsExistingAndNormalizesSizes(t *testing.T) {
	partial, err := extraction.ParseResponse(`{"fornecedor":"Acme","cliente":null,"tamanhos":{"p":2}}`)
	require.NoError(t, err)

	form := models.ServicoForm{Cliente: "João"}
	merged, unmatched := extraction.Merge(form, partial)

	assert.Equal(t, "João", merged.Cliente)
	assert.Equal(t, "Acme", merged.Fornecedor)
	assert.Equal(t, map[string]int{"P": 2}, merged.Tamanhos)
	assert.Empty(t, unmatched)
	assert.NotNil(t, unmatched)
}

func TestMerge_NeverClearsPopulatedFields(t *testing.T) {
	partial, err := extraction.ParseResponse(`{
		"fornecedor": "  ",
		"tipo_peca": "",
		"preco_unitario": 0,
		"quantidade": null,
		"tamanhos": {"M": 0, "XL": 4, "g": 1}
	}`)
	require.NoError(t, err)

	form := models.ServicoForm{
		Fornecedor:    "Confecções Silva",
		TipoPeca:      "Calça",
		ValorUnitario: "15,00",
		Quantidade:    7,
		Tamanhos:      map[string]int{"M": 5},
	}
	merged, unmatched := extraction.Merge(form, partial)

	assert.Equal(t, "Confecções Silva", merged.Fornecedor)
	assert.Equal(t, "Calça", merged.TipoPeca)
	assert.Equal(t, "15,00", merged.ValorUnitario)
	assert.Equal(t, 7, merged.Quantidade)
	assert.Equal(t, map[string]int{"M": 5, "G": 1}, merged.Tamanhos)
	assert.Equal(t, []string{"XL"}, unmatched)

	assert.Equal(t, map[string]int{"M": 5}, form.Tamanhos, "input form must not be modified")
}

func TestMerge_FormatsPrice(t *testing.T) {
	partial, err := extraction.ParseResponse(`{"preco_unitario": 1234.5}`)
	require.NoError(t, err)

	merged, _ := extraction.Merge(models.ServicoForm{}, partial)
	assert.Equal(t, "1.234,50", merged.ValorUnitario)
}

func TestOpenRouterExtractor_NotConfigured(t *testing.T) {
	ex := extraction.NewOpenRouterExtractor(&config.Config{LLMModel: "m"}, zap.NewNop())
	assert.False(t, ex.Enabled())

	_, err := ex.Extract(context.Background(), "qualquer coisa")
	assert.ErrorIs(t, err, errs.ErrNotConfigured)
}

func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "test-model", req.Model)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","code":500}}`))
			return
		}
		body, _ := json.Marshal(map[string]any{
			"id":      "gen-1",
			"model":   "test-model",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": content}}},
		})
		_, _ = w.Write(body)
	}))
}

func testConfig(url string) *config.Config {
	return &config.Config{LLMAPIKey: "test-key", LLMModel: "test-model", LLMBaseURL: url, LLMTimeout: 5 * time.Second}
}

func TestOpenRouterExtractor_Extract(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "```json\n{\"fornecedor\":\"Acme\",\"tamanhos\":{\"gg\":3}}\n```")
	defer srv.Close()

	ex := extraction.NewOpenRouterExtractor(testConfig(srv.URL), zap.NewNop())
	require.True(t, ex.Enabled())

	partial, err := ex.Extract(context.Background(), "fornecedor Acme, três GG")
	require.NoError(t, err)
	require.NotNil(t, partial.Fornecedor)
	assert.Equal(t, "Acme", *partial.Fornecedor)
	assert.Equal(t, 3, partial.Tamanhos.Counts["gg"])
}

func TestOpenRouterExtractor_MalformedAnswer(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "desculpe, não entendi")
	defer srv.Close()

	ex := extraction.NewOpenRouterExtractor(testConfig(srv.URL), zap.NewNop())
	_, err := ex.Extract(context.Background(), "algo")

	var extractionErr *errs.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "malformed response", extractionErr.Reason)
}

func TestOpenRouterExtractor_UpstreamFailure(t *testing.T) {
	srv := chatServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	ex := extraction.NewOpenRouterExtractor(testConfig(srv.URL), zap.NewNop()).WithBackoff(time.Millisecond)
	_, err := ex.Extract(context.Background(), "algo")

	var extractionErr *errs.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "upstream failure", extractionErr.Reason)
}

func TestOpenRouterExtractor_RetriesTransientFailure(t *testing.T) {
	ok := chatServer(t, http.StatusOK, `{"cliente":"Loja"}`)
	defer ok.Close()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		ok.Config.Handler.ServeHTTP(w, r)
	}))
	defer srv.Close()

	ex := extraction.NewOpenRouterExtractor(testConfig(srv.URL), zap.NewNop()).WithBackoff(time.Millisecond)
	partial, err := ex.Extract(context.Background(), "cliente Loja")
	require.NoError(t, err)
	require.NotNil(t, partial.Cliente)
	assert.Equal(t, "Loja", *partial.Cliente)
	assert.Equal(t, 2, calls)
}

func TestOpenRouterExtractor_EmptyTranscript(t *testing.T) {
	ex := extraction.NewOpenRouterExtractor(testConfig("http://127.0.0.1:1"), zap.NewNop())
	_, err := ex.Extract(context.Background(), "   ")

	var validationErr *errs.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
