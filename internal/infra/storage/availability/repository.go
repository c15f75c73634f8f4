package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписаниями вендоров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByVendorID получает расписание вендора
func (r *Repository) GetByVendorID(ctx context.Context, vendorID int64) (*domain.VendorAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"vendor_id",
		"monday",
		"tuesday",
		"wednesday",
		"thursday",
		"friday",
		"saturday",
		"sunday",
		"work_start",
		"work_end",
		"response_time_minutes",
		"created_at",
		"updated_at",
	).
		From("vendor_availability").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorID - build select query: %v", ErrBuildQuery, err)
	}

	var avail domain.VendorAvailability
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&avail.VendorID,
		&avail.Monday,
		&avail.Tuesday,
		&avail.Wednesday,
		&avail.Thursday,
		&avail.Friday,
		&avail.Saturday,
		&avail.Sunday,
		&avail.WorkStart,
		&avail.WorkEnd,
		&avail.ResponseTimeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorID - scan availability: %v", ErrScanRow, err)
	}

	avail.CreatedAt = createdAt.Time
	avail.UpdatedAt = updatedAt.Time

	return &avail, nil
}

// Upsert создает или обновляет расписание вендора.
// Изменение расписания не трогает существующие бронирования: их валидность
// фиксируется на момент создания.
func (r *Repository) Upsert(ctx context.Context, avail *domain.VendorAvailability) (*domain.VendorAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vendor_availability").
		Columns(
			"vendor_id",
			"monday",
			"tuesday",
			"wednesday",
			"thursday",
			"friday",
			"saturday",
			"sunday",
			"work_start",
			"work_end",
			"response_time_minutes",
		).
		Values(
			avail.VendorID,
			avail.Monday,
			avail.Tuesday,
			avail.Wednesday,
			avail.Thursday,
			avail.Friday,
			avail.Saturday,
			avail.Sunday,
			avail.WorkStart,
			avail.WorkEnd,
			avail.ResponseTimeMinutes,
		).
		Suffix(`ON CONFLICT (vendor_id) DO UPDATE SET
			monday = EXCLUDED.monday,
			tuesday = EXCLUDED.tuesday,
			wednesday = EXCLUDED.wednesday,
			thursday = EXCLUDED.thursday,
			friday = EXCLUDED.friday,
			saturday = EXCLUDED.saturday,
			sunday = EXCLUDED.sunday,
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			response_time_minutes = EXCLUDED.response_time_minutes,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	avail.CreatedAt = createdAt.Time
	avail.UpdatedAt = updatedAt.Time

	return avail, nil
}
