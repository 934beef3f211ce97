package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/pkg/querier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Collection string

const (
	Parcels  Collection = "parcels"
	Payments Collection = "payments"
	Users    Collection = "users"
	Riders   Collection = "riders"
)

func (c Collection) String() string {
	return string(c)
}

// Store единый адаптер над коллекциями. Все операции идут через querier,
// поэтому попадают в транзакцию из ctx, если она открыта.
type Store struct {
	querier Querier
}

func New(querier Querier) *Store {
	return &Store{
		querier: querier,
	}
}

// Aggregation группировка с подсчетом и суммой. Пустой GroupBy дает одну строку.
type Aggregation struct {
	Match   sq.Sqlizer
	GroupBy string
	Sum     string
}

type AggregateRow struct {
	Key   string  `db:"key"`
	Count int64   `db:"count"`
	Sum   float64 `db:"sum"`
}

// Find возвращает все строки коллекции по фильтру. Пустой результат не ошибка.
func Find[T any](ctx context.Context, s *Store, collection Collection, filter sq.Sqlizer, orderBy ...string) ([]T, error) {
	builder := where(qb.Select("*").From(collection.String()), filter).
		OrderBy(orderBy...)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find %s: %w", collection, err)
	}

	items, err := querier.Collect[T](ctx, s.querier, query, args...)
	if err != nil {
		return nil, wrapError("find", collection, err)
	}
	return items, nil
}

// FindOne отсутствие строки возвращает (nil, nil).
func FindOne[T any](ctx context.Context, s *Store, collection Collection, filter sq.Sqlizer) (*T, error) {
	builder := where(qb.Select("*").From(collection.String()), filter).
		Limit(1)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find one %s: %w", collection, err)
	}

	rows, err := s.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("find one", collection, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapError("find one", collection, err)
	}
	return item, nil
}

// Insert вставляет строку, id генерируется если не передан.
func (s *Store) Insert(ctx context.Context, collection Collection, values map[string]any) (string, error) {
	row := make(map[string]any, len(values)+1)
	for k, v := range values {
		row[k] = v
	}
	if _, ok := row["id"]; !ok {
		row["id"] = uuid.NewString()
	}

	query, args, err := qb.Insert(collection.String()).
		SetMap(row).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert %s: %w", collection, err)
	}

	var id string
	if err := s.querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", wrapError("insert", collection, err)
	}
	return id, nil
}

// UpdateOne обновляет первую строку по фильтру. Modified считает только строки,
// значения которых реально изменились.
func (s *Store) UpdateOne(ctx context.Context, collection Collection, filter sq.Sqlizer, patch map[string]any) (entities.UpdateResult, error) {
	query, args, err := where(qb.Select("id").From(collection.String()), filter).
		Limit(1).
		ToSql()
	if err != nil {
		return entities.UpdateResult{}, fmt.Errorf("build update one %s: %w", collection, err)
	}

	var id string
	err = s.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.UpdateResult{}, nil
		}
		return entities.UpdateResult{}, wrapError("update one", collection, err)
	}

	target := sq.And{sq.Eq{"id": id}}
	if filter != nil {
		target = append(target, filter)
	}

	modified, err := s.update(ctx, collection, target, patch)
	if err != nil {
		return entities.UpdateResult{}, wrapError("update one", collection, err)
	}
	return entities.UpdateResult{Matched: 1, Modified: modified}, nil
}

func (s *Store) UpdateMany(ctx context.Context, collection Collection, filter sq.Sqlizer, patch map[string]any) (entities.UpdateResult, error) {
	matched, err := s.Count(ctx, collection, filter)
	if err != nil {
		return entities.UpdateResult{}, err
	}
	if matched == 0 {
		return entities.UpdateResult{}, nil
	}

	modified, err := s.update(ctx, collection, filter, patch)
	if err != nil {
		return entities.UpdateResult{}, wrapError("update many", collection, err)
	}
	return entities.UpdateResult{Matched: matched, Modified: modified}, nil
}

func (s *Store) update(ctx context.Context, collection Collection, filter sq.Sqlizer, patch map[string]any) (int64, error) {
	if len(patch) == 0 {
		return 0, nil
	}

	columns := make([]string, 0, len(patch))
	for column := range patch {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	// строки, где все значения уже совпадают, не трогаем
	changed := make(sq.Or, 0, len(columns))
	for _, column := range columns {
		changed = append(changed, sq.Expr(column+" IS DISTINCT FROM ?", patch[column]))
	}

	builder := qb.Update(collection.String()).
		SetMap(patch).
		Where(changed)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	tag, err := s.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Delete(ctx context.Context, collection Collection, filter sq.Sqlizer) (int64, error) {
	builder := qb.Delete(collection.String())
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s: %w", collection, err)
	}

	tag, err := s.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, wrapError("delete", collection, err)
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Count(ctx context.Context, collection Collection, filter sq.Sqlizer) (int64, error) {
	query, args, err := where(qb.Select("COUNT(*)").From(collection.String()), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", collection, err)
	}

	var count int64
	if err := s.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapError("count", collection, err)
	}
	return count, nil
}

func (s *Store) Aggregate(ctx context.Context, collection Collection, agg Aggregation) ([]AggregateRow, error) {
	key := "''"
	if agg.GroupBy != "" {
		key = fmt.Sprintf("COALESCE(%s::text, '')", agg.GroupBy)
	}
	sum := "0"
	if agg.Sum != "" {
		sum = fmt.Sprintf("COALESCE(SUM(%s), 0)", agg.Sum)
	}

	builder := where(
		qb.Select(
			key+" AS key",
			"COUNT(*) AS count",
			sum+"::float8 AS sum",
		).From(collection.String()),
		agg.Match,
	)
	if agg.GroupBy != "" {
		builder = builder.GroupBy(agg.GroupBy).OrderBy(agg.GroupBy)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aggregate %s: %w", collection, err)
	}

	rows, err := querier.Collect[AggregateRow](ctx, s.querier, query, args...)
	if err != nil {
		return nil, wrapError("aggregate", collection, err)
	}
	return rows, nil
}

func where(builder sq.SelectBuilder, filter sq.Sqlizer) sq.SelectBuilder {
	if filter == nil {
		return builder
	}
	return builder.Where(filter)
}
