package field

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	"github.com/fieldbook/FieldBooking-Service/pkg/dbmetrics"
	"github.com/fieldbook/FieldBooking-Service/pkg/psqlbuilder"
)

// pgForeignKeyViolation SQLSTATE 23503
const pgForeignKeyViolation = "23503"

var fieldColumns = []string{
	"id",
	"name",
	"description",
	"location",
	"image_url",
	"price_per_hour",
	"size",
	"amenities",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с полями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория полей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое поле
func (r *Repository) Create(ctx context.Context, f *domain.Field) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("fields").
		Columns(
			"name",
			"description",
			"location",
			"image_url",
			"price_per_hour",
			"size",
			"amenities",
			"is_available",
		).
		Values(
			f.Name,
			f.Description,
			f.Location,
			f.ImageURL,
			f.PricePerHour,
			f.Size,
			pq.Array(f.Amenities),
			f.IsAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time
	return f, nil
}

// GetByID получает поле по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	f, err := scanField(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan field: %w", ErrScanRow, err)
	}

	return f, nil
}

// List получает все поля каталога.
// onlyAvailable оставляет только поля с включённым ручным флагом доступности.
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(fieldColumns...).
		From("fields").
		OrderBy("id ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	fields := make([]*domain.Field, 0)
	for rows.Next() {
		f, err := scanField(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return fields, nil
}

// Update обновляет поле целиком
func (r *Repository) Update(ctx context.Context, f *domain.Field) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("fields").
		Set("name", f.Name).
		Set("description", f.Description).
		Set("location", f.Location).
		Set("image_url", f.ImageURL).
		Set("price_per_hour", f.PricePerHour).
		Set("size", f.Size).
		Set("amenities", pq.Array(f.Amenities)).
		Set("is_available", f.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": f.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	f.UpdatedAt = updatedAt.Time
	return f, nil
}

// Delete удаляет поле.
// FK bookings.field_id объявлен с ON DELETE RESTRICT: пока на поле
// ссылаются бронирования, Postgres отклонит удаление, и репозиторий
// вернёт ErrFieldHasBookings.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return ErrFieldHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

// scanField сканирует одну строку в модель поля
func scanField(scan func(dest ...interface{}) error) (*domain.Field, error) {
	var f domain.Field
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&f.ID,
		&f.Name,
		&f.Description,
		&f.Location,
		&f.ImageURL,
		&f.PricePerHour,
		&f.Size,
		pq.Array(&f.Amenities),
		&f.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time
	return &f, nil
}
