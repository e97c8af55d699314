// Package extraction turns a spoken description of an order into form
// fields. Everything the model returns is treated as optional and untrusted.
package extraction

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"
	"atelie-backend/internal/money"
)

// PartialServico is what the model may fill in. Nil means "not mentioned".
type PartialServico struct {
	Fornecedor    *string      `json:"fornecedor"`
	Cliente       *string      `json:"cliente"`
	TipoPeca      *string      `json:"tipo_peca"`
	TipoTecido    *string      `json:"tipo_tecido"`
	Observacoes   *string      `json:"observacoes"`
	Tamanhos      Sizes        `json:"tamanhos"`
	Quantidade    *money.Input `json:"quantidade"`
	PrecoUnitario *money.Input `json:"preco_unitario"`
}

// Sizes accepts either an object ({"p": 2}) or text ("2 P, 3 M").
type Sizes struct {
	Counts  map[string]int
	Rejects []string
}

func (s *Sizes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		s.Counts, s.Rejects = models.ParseSizeText(text)
		return nil
	default:
		var raw map[string]money.Input
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s.Counts = make(map[string]int, len(raw))
		for label, q := range raw {
			s.Counts[label] = q.Quantity()
		}
		return nil
	}
}

// ParseResponse reads the model output. Code fences or prose around the
// JSON object are ignored.
func ParseResponse(text string) (*PartialServico, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, &errs.ExtractionError{Reason: "malformed response"}
	}

	var partial PartialServico
	if err := json.Unmarshal([]byte(text[start:end+1]), &partial); err != nil {
		return nil, &errs.ExtractionError{Reason: "malformed response", Err: err}
	}
	return &partial, nil
}

// Merge copies the non-empty extracted values into form. Existing values are
// never cleared. Size labels outside the canonical set are returned instead
// of being applied.
func Merge(form models.ServicoForm, partial *PartialServico) (models.ServicoForm, []string) {
	merged := form
	merged.Tamanhos = make(map[string]int, len(form.Tamanhos))
	for label, q := range form.Tamanhos {
		merged.Tamanhos[label] = q
	}
	if partial == nil {
		return merged, []string{}
	}

	setText(&merged.Fornecedor, partial.Fornecedor)
	setText(&merged.Cliente, partial.Cliente)
	setText(&merged.TipoPeca, partial.TipoPeca)
	setText(&merged.TipoTecido, partial.TipoTecido)
	setText(&merged.Observacoes, partial.Observacoes)

	if partial.PrecoUnitario != nil {
		if price := partial.PrecoUnitario.Decimal(); price.IsPositive() {
			merged.ValorUnitario = money.FormatInput(price)
		}
	}
	if partial.Quantidade != nil {
		if q := partial.Quantidade.Quantity(); q > 0 {
			merged.Quantidade = q
		}
	}

	grid, unmatched := models.NormalizeGrid(partial.Tamanhos.Counts)
	for label, q := range grid {
		if q > 0 {
			merged.Tamanhos[label] = q
		}
	}

	unmatched = append(unmatched, partial.Tamanhos.Rejects...)
	sort.Strings(unmatched)
	if unmatched == nil {
		unmatched = []string{}
	}
	return merged, unmatched
}

func setText(dst *string, value *string) {
	if value == nil {
		return
	}
	if v := strings.TrimSpace(*value); v != "" {
		*dst = v
	}
}
