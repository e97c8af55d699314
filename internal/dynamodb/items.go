package dynamodb

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"atelie-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Decimals and timestamps are stored as strings so no precision is lost and
// the sort order of RFC 3339 UTC text matches time order.
type servicoItem struct {
	ID              string         `dynamodbav:"id"`
	Fornecedor      string         `dynamodbav:"fornecedor"`
	Cliente         string         `dynamodbav:"cliente,omitempty"`
	TipoPeca        string         `dynamodbav:"tipo_peca"`
	TipoTecido      string         `dynamodbav:"tipo_tecido,omitempty"`
	Tamanhos        map[string]int `dynamodbav:"tamanhos,omitempty"`
	DetalheTamanhos string         `dynamodbav:"detalhe_tamanhos,omitempty"`
	QuantidadeTotal int            `dynamodbav:"quantidade_total"`
	ValorUnitario   string         `dynamodbav:"valor_unitario"`
	ValorTotalLote  string         `dynamodbav:"valor_total_lote"`
	DataEntrada     string         `dynamodbav:"data_entrada"`
	DataChegada     string         `dynamodbav:"data_chegada,omitempty"`
	DataInicio      string         `dynamodbav:"data_inicio,omitempty"`
	DataConclusao   string         `dynamodbav:"data_conclusao,omitempty"`
	FotoOPURL       string         `dynamodbav:"foto_op_url,omitempty"`
	NumeroOP        string         `dynamodbav:"numero_op,omitempty"`
	Status          string         `dynamodbav:"status"`
	Observacoes     string         `dynamodbav:"observacoes,omitempty"`
}

type pagamentoItem struct {
	ID           string `dynamodbav:"id"`
	NomeAjudante string `dynamodbav:"nome_ajudante"`
	DataTrabalho string `dynamodbav:"data_trabalho"`
	ValorPago    string `dynamodbav:"valor_pago"`
	Status       string `dynamodbav:"status,omitempty"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func encodeServico(s *models.Servico, id string) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(servicoItem{
		ID:              id,
		Fornecedor:      s.Fornecedor,
		Cliente:         s.Cliente,
		TipoPeca:        s.TipoPeca,
		TipoTecido:      s.TipoTecido,
		Tamanhos:        s.Tamanhos,
		DetalheTamanhos: s.DetalheTamanhos,
		QuantidadeTotal: s.QuantidadeTotal,
		ValorUnitario:   s.ValorUnitario.String(),
		ValorTotalLote:  s.ValorTotalLote.String(),
		DataEntrada:     formatTime(s.DataEntrada),
		DataChegada:     s.DataChegada,
		DataInicio:      formatTimePtr(s.DataInicio),
		DataConclusao:   formatTimePtr(s.DataConclusao),
		FotoOPURL:       s.FotoOPURL,
		NumeroOP:        s.NumeroOP,
		Status:          string(s.Status),
		Observacoes:     s.Observacoes,
	})
}

func decodeServico(av map[string]types.AttributeValue) (models.Servico, error) {
	var it servicoItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return models.Servico{}, err
	}
	return models.Servico{
		ID:              it.ID,
		Fornecedor:      it.Fornecedor,
		Cliente:         it.Cliente,
		TipoPeca:        it.TipoPeca,
		TipoTecido:      it.TipoTecido,
		Tamanhos:        it.Tamanhos,
		DetalheTamanhos: it.DetalheTamanhos,
		QuantidadeTotal: it.QuantidadeTotal,
		ValorUnitario:   parseDecimal(it.ValorUnitario),
		ValorTotalLote:  parseDecimal(it.ValorTotalLote),
		DataEntrada:     parseTime(it.DataEntrada),
		DataChegada:     it.DataChegada,
		DataInicio:      parseTimePtr(it.DataInicio),
		DataConclusao:   parseTimePtr(it.DataConclusao),
		FotoOPURL:       it.FotoOPURL,
		NumeroOP:        it.NumeroOP,
		Status:          models.NormalizeStatus(it.Status),
		Observacoes:     it.Observacoes,
	}, nil
}

func encodePagamento(p *models.Pagamento, id string) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(pagamentoItem{
		ID:           id,
		NomeAjudante: p.NomeAjudante,
		DataTrabalho: formatTime(p.DataTrabalho),
		ValorPago:    p.ValorPago.String(),
		Status:       string(p.Status),
	})
}

func decodePagamento(av map[string]types.AttributeValue) (models.Pagamento, error) {
	var it pagamentoItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return models.Pagamento{}, err
	}
	return models.Pagamento{
		ID:           it.ID,
		NomeAjudante: it.NomeAjudante,
		DataTrabalho: parseTime(it.DataTrabalho),
		ValorPago:    parseDecimal(it.ValorPago),
		Status:       models.NormalizeStatusPagamento(it.Status),
	}, nil
}

// attributeFor converts a patch value into the stored representation. A nil
// result means the attribute should be removed.
func attributeFor(value any) (types.AttributeValue, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return &types.AttributeValueMemberS{Value: v}, nil
	case models.StatusServico:
		return &types.AttributeValueMemberS{Value: string(v)}, nil
	case models.StatusPagamento:
		return &types.AttributeValueMemberS{Value: string(v)}, nil
	case decimal.Decimal:
		return &types.AttributeValueMemberS{Value: v.String()}, nil
	case time.Time:
		return &types.AttributeValueMemberS{Value: formatTime(v)}, nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return &types.AttributeValueMemberS{Value: formatTime(*v)}, nil
	case models.SizeGrid:
		return attributevalue.Marshal(map[string]int(v))
	default:
		return attributevalue.Marshal(v)
	}
}

// buildUpdate renders a SET/REMOVE expression for the given fields. Keys are
// processed in sorted order so the expression is deterministic.
func buildUpdate(fields map[string]any) (string, map[string]string, map[string]types.AttributeValue, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "id" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := map[string]string{"#id": "id"}
	values := map[string]types.AttributeValue{}
	var sets, removes []string

	for i, key := range keys {
		av, err := attributeFor(fields[key])
		if err != nil {
			return "", nil, nil, fmt.Errorf("field %s: %w", key, err)
		}
		name := fmt.Sprintf("#f%d", i)
		names[name] = key
		if av == nil {
			removes = append(removes, name)
			continue
		}
		value := fmt.Sprintf(":v%d", i)
		values[value] = av
		sets = append(sets, name+" = "+value)
	}

	var expr []string
	if len(sets) > 0 {
		expr = append(expr, "SET "+strings.Join(sets, ", "))
	}
	if len(removes) > 0 {
		expr = append(expr, "REMOVE "+strings.Join(removes, ", "))
	}
	if len(expr) == 0 {
		return "", nil, nil, fmt.Errorf("nothing to update")
	}
	if len(values) == 0 {
		values = nil
	}
	return strings.Join(expr, " "), names, values, nil
}
