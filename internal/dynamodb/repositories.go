package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"atelie-backend/internal/dashboard"
	"atelie-backend/internal/errs"
	"atelie-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type table[T any] struct {
	api    API
	name   string
	encode func(*T, string) (map[string]types.AttributeValue, error)
	decode func(map[string]types.AttributeValue) (T, error)
	sort   func([]T)
	newID  func() string
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func (t *table[T]) put(ctx context.Context, record *T) (string, error) {
	id := t.newID()
	item, err := t.encode(record, id)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s item: %w", t.name, err)
	}

	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to put %s item: %w", t.name, err)
	}
	return id, nil
}

func (t *table[T]) get(ctx context.Context, id string) (*T, error) {
	out, err := t.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s item: %w", t.name, err)
	}
	if len(out.Item) == 0 {
		return nil, errs.ErrNotFound
	}

	record, err := t.decode(out.Item)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s item: %w", t.name, err)
	}
	return &record, nil
}

func (t *table[T]) update(ctx context.Context, id string, fields map[string]any) error {
	expr, names, values, err := buildUpdate(fields)
	if err != nil {
		return fmt.Errorf("failed to build %s update: %w", t.name, err)
	}

	_, err = t.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       key(id),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if isConditionFailed(err) {
		return errs.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update %s item: %w", t.name, err)
	}
	return nil
}

func (t *table[T]) delete(ctx context.Context, id string) error {
	_, err := t.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(t.name),
		Key:                      key(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if isConditionFailed(err) {
		return errs.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s item: %w", t.name, err)
	}
	return nil
}

// list scans the whole table. The data set is a single workshop's orders, so
// a scan plus an in-memory sort is cheaper than maintaining an index.
func (t *table[T]) list(ctx context.Context) ([]T, error) {
	paginator := dynamodb.NewScanPaginator(t.api, &dynamodb.ScanInput{
		TableName:      aws.String(t.name),
		ConsistentRead: aws.Bool(true),
	})

	records := []T{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		for _, item := range page.Items {
			record, err := t.decode(item)
			if err != nil {
				return nil, fmt.Errorf("failed to unmarshal %s item: %w", t.name, err)
			}
			records = append(records, record)
		}
	}
	t.sort(records)
	return records, nil
}

func newUUID() string {
	return uuid.New().String()
}

type ServicoRepository struct {
	table table[models.Servico]
}

func NewServicoRepository(api API, name string) *ServicoRepository {
	return &ServicoRepository{table: table[models.Servico]{
		api:    api,
		name:   name,
		encode: encodeServico,
		decode: decodeServico,
		sort:   dashboard.SortServicos,
		newID:  newUUID,
	}}
}

func (r *ServicoRepository) Create(ctx context.Context, servico *models.Servico) (string, error) {
	return r.table.put(ctx, servico)
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

func NewPagamentoRepository(api API, name string) *PagamentoRepository {
	return &PagamentoRepository{table: table[models.Pagamento]{
		api:    api,
		name:   name,
		encode: encodePagamento,
		decode: decodePagamento,
		sort:   dashboard.SortPagamentos,
		newID:  newUUID,
	}}
}

func (r *PagamentoRepository) Create(ctx context.Context, pagamento *models.Pagamento) (string, error) {
	return r.table.put(ctx, pagamento)
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
