package capacity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const tableName = "offer_capacity_config"

var columns = []string{
	"id",
	"offer_id",
	"default_capacity",
	"mode",
	"day_limit",
	"hour_limit",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации ёмкости офферов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByOfferID получает конфигурацию оффера; offerID == nil означает глобальную конфигурацию
func (r *Repository) GetByOfferID(ctx context.Context, offerID *int64) (*domain.OfferCapacityConfig, error) {
	query, args, err := selectByOfferQuery(offerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOfferID - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanConfig(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOfferID - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Конфигурация конкретного оффера
// 2. Глобальная конфигурация (offer_id IS NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, offerID int64) (*domain.OfferCapacityConfig, error) {
	// 1. Конфигурация оффера
	config, err := r.GetByOfferID(ctx, &offerID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (offer): %v", ErrExecQuery, err)
	}

	// 2. Глобальная конфигурация
	config, err = r.GetByOfferID(ctx, nil)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (global): %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// Upsert обновляет конфигурацию оффера или создает её, если записи ещё нет
func (r *Repository) Upsert(ctx context.Context, config *domain.OfferCapacityConfig) (*domain.OfferCapacityConfig, error) {
	return upsert(ctx, config, func(ctx context.Context, query string, args ...interface{}) rowScanner {
		return r.db.QueryRowContext(ctx, query, args...)
	})
}

type queryRowFunc func(ctx context.Context, query string, args ...interface{}) rowScanner

func upsert(ctx context.Context, config *domain.OfferCapacityConfig, queryRow queryRowFunc) (*domain.OfferCapacityConfig, error) {
	updateSQL, updateArgs, err := updateQuery(config).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build update query: %v", ErrBuildQuery, err)
	}

	// 1. Пробуем обновить существующую запись
	updated, err := scanConfig(queryRow(ctx, updateSQL, updateArgs...))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: Upsert - execute update: %v", ErrExecQuery, err)
	}

	// 2. Записи нет - создаём
	insertSQL, insertArgs, err := insertQuery(config).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	created, err := scanConfig(queryRow(ctx, insertSQL, insertArgs...))
	if err == nil {
		return created, nil
	}
	if !isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	// 3. Запись успел создать параллельный запрос - обновляем её
	updated, err = scanConfig(queryRow(ctx, updateSQL, updateArgs...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute update after conflict: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// isUniqueViolation нарушение уникального индекса offer_id
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}

// Delete удаляет конфигурацию оффера (nil - глобальную)
func (r *Repository) Delete(ctx context.Context, offerID *int64) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(offerFilter(offerID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

func selectByOfferQuery(offerID *int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(tableName).
		Where(offerFilter(offerID)).
		Limit(1)
}

func updateQuery(config *domain.OfferCapacityConfig) squirrel.UpdateBuilder {
	return psqlbuilder.Update(tableName).
		Set("default_capacity", config.DefaultCapacity).
		Set("mode", string(config.Mode)).
		Set("day_limit", config.DayLimit).
		Set("hour_limit", config.HourLimit).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(offerFilter(config.OfferID)).
		Suffix(returningClause())
}

func insertQuery(config *domain.OfferCapacityConfig) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableName).
		Columns("offer_id", "default_capacity", "mode", "day_limit", "hour_limit").
		Values(config.OfferID, config.DefaultCapacity, string(config.Mode), config.DayLimit, config.HourLimit).
		Suffix(returningClause())
}

// offerFilter offer_id = ? или offer_id IS NULL для глобальной конфигурации
func offerFilter(offerID *int64) squirrel.Eq {
	if offerID == nil {
		return squirrel.Eq{"offer_id": nil}
	}
	return squirrel.Eq{"offer_id": *offerID}
}

func returningClause() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfig(row rowScanner) (*domain.OfferCapacityConfig, error) {
	var (
		config               domain.OfferCapacityConfig
		offerID              sql.NullInt64
		mode                 string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&config.ID,
		&offerID,
		&config.DefaultCapacity,
		&mode,
		&config.DayLimit,
		&config.HourLimit,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if offerID.Valid {
		config.OfferID = ptr.Ptr(offerID.Int64)
	}
	config.Mode = domain.ParseCapacityMode(mode)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
