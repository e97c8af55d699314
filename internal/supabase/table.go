package supabase

import (
	"context"
	"fmt"

	"atelie-backend/internal/errs"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// table wraps one PostgREST collection. The HTTP client underneath takes no
// context, so cancellation is only checked before each request.
type table[T any] struct {
	client  *supabase.Client
	name    string
	orderBy string
}

type idRow struct {
	ID string `json:"id"`
}

func (t *table[T]) insert(ctx context.Context, record any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var rows []idRow
	if _, err := t.client.From(t.name).Insert(record, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}
	if len(rows) == 0 || rows[0].ID == "" {
		return "", fmt.Errorf("insert into %s returned no id", t.name)
	}
	return rows[0].ID, nil
}

func (t *table[T]) get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []T
	if _, err := t.client.From(t.name).Select("*", "", false).Eq("id", id).ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", t.name, id, err)
	}
	if len(rows) == 0 {
		return nil, errs.ErrNotFound
	}
	return &rows[0], nil
}

func (t *table[T]) update(ctx context.Context, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var rows []idRow
	if _, err := t.client.From(t.name).Update(fields, "representation", "").Eq("id", id).ExecuteTo(&rows); err != nil {
		return fmt.Errorf("failed to update %s %s: %w", t.name, id, err)
	}
	if len(rows) == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (t *table[T]) delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var rows []idRow
	if _, err := t.client.From(t.name).Delete("representation", "").Eq("id", id).ExecuteTo(&rows); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", t.name, id, err)
	}
	if len(rows) == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (t *table[T]) list(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []T
	_, err := t.client.From(t.name).
		Select("*", "", false).
		Order(t.orderBy, &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	return rows, nil
}
