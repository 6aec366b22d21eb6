package offer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository читает таймслоты и бронирования офферов из собственной БД сервиса.
// Записи отдаются движку как есть: фильтрация по active и status выполняется при нормализации.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTimeslots получает все таймслоты оффера (включая неактивные).
// Если у оффера нет таймслотов, возвращает ErrOfferNotFound.
func (r *Repository) GetTimeslots(ctx context.Context, offerID int64) ([]availability.TimeslotInput, error) {
	query, args, err := timeslotsQuery(offerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeslots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeslots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	timeslots := make([]availability.TimeslotInput, 0)
	for rows.Next() {
		var (
			id               int64
			active           bool
			capacity         sql.NullInt64
			capacityOverride sql.NullInt64
			startTime        sql.Null[types.TimeString]
		)

		if err := rows.Scan(&id, &active, &capacity, &capacityOverride, &startTime); err != nil {
			return nil, fmt.Errorf("%w: GetTimeslots - scan row: %v", ErrScanRow, err)
		}

		ts := availability.TimeslotInput{
			TimeslotID: id,
			Active:     active,
		}
		if capacity.Valid {
			ts.Capacity = capacity.Int64
		}
		if capacityOverride.Valid {
			ts.CapacityOverride = capacityOverride.Int64
		}
		if startTime.Valid {
			ts.StartTime = startTime.V.String()
		}

		timeslots = append(timeslots, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTimeslots - rows error: %v", ErrScanRow, err)
	}

	if len(timeslots) == 0 {
		return nil, ErrOfferNotFound
	}

	return timeslots, nil
}

// GetBookings получает бронирования оффера в полуинтервале [from, to)
func (r *Repository) GetBookings(ctx context.Context, offerID int64, from, to time.Time) ([]availability.BookingInput, error) {
	query, args, err := bookingsQuery(offerID, from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]availability.BookingInput, 0)
	for rows.Next() {
		var (
			timeslotID int64
			status     string
			bookedAt   time.Time
		)

		if err := rows.Scan(&timeslotID, &status, &bookedAt); err != nil {
			return nil, fmt.Errorf("%w: GetBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, availability.BookingInput{
			TimeslotID: timeslotID,
			Status:     status,
			Timestamp:  bookedAt.UTC(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func timeslotsQuery(offerID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"active",
		"capacity",
		"capacity_override",
		"start_time",
	).
		From("offer_timeslots").
		Where(squirrel.Eq{"offer_id": offerID}).
		OrderBy("id ASC")
}

func bookingsQuery(offerID int64, from, to time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"timeslot_id",
		"status",
		"booked_at",
	).
		From("bookings").
		Where(squirrel.Eq{"offer_id": offerID}).
		Where(squirrel.GtOrEq{"booked_at": from}).
		Where(squirrel.Lt{"booked_at": to}).
		OrderBy("booked_at ASC")
}
