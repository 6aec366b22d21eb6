package capacity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestSelectByOfferQuery(t *testing.T) {
	query, args, err := selectByOfferQuery(ptr.Ptr(int64(42))).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, offer_id, default_capacity, mode, day_limit, hour_limit, created_at, updated_at "+
			"FROM offer_capacity_config WHERE offer_id = $1 LIMIT 1",
		query)
	assert.Equal(t, []interface{}{int64(42)}, args)

	query, args, err = selectByOfferQuery(nil).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE offer_id IS NULL")
	assert.Empty(t, args)
}

func TestUpdateQuery(t *testing.T) {
	query, args, err := updateQuery(&domain.OfferCapacityConfig{
		OfferID:         ptr.Ptr(int64(7)),
		DefaultCapacity: 3,
		Mode:            domain.ModeHourLevelLimit,
		HourLimit:       2,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE offer_capacity_config SET default_capacity = $1, mode = $2, day_limit = $3, hour_limit = $4, updated_at = NOW()")
	assert.Contains(t, query, "WHERE offer_id = $5")
	assert.Contains(t, query, "RETURNING id, offer_id, default_capacity")
	assert.Equal(t, []interface{}{3, "hour_level_limit", 0, 2, int64(7)}, args)
}

func TestInsertQuery_GlobalConfig(t *testing.T) {
	query, args, err := insertQuery(&domain.OfferCapacityConfig{
		DefaultCapacity: 1,
		Mode:            domain.ModePerTimeslotCapacity,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO offer_capacity_config")
	assert.Contains(t, query, "RETURNING id")
	require.Len(t, args, 5)
	assert.Nil(t, args[0].(*int64))
}

type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *int:
			*p = r.values[i].(int)
		case *string:
			*p = r.values[i].(string)
		case *sql.NullInt64:
			if r.values[i] == nil {
				*p = sql.NullInt64{}
			} else {
				*p = sql.NullInt64{Int64: r.values[i].(int64), Valid: true}
			}
		case *sql.NullTime:
			*p = sql.NullTime{Time: r.values[i].(time.Time), Valid: true}
		}
	}
	return nil
}

func TestScanConfig(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	config, err := scanConfig(fakeRow{values: []interface{}{
		int64(1), nil, 4, "day_level_limit", 10, 0, now, now,
	}})
	require.NoError(t, err)
	assert.True(t, config.IsGlobalConfig())
	assert.Equal(t, domain.CapacityPolicy{
		DefaultCapacity: 4,
		Mode:            domain.ModeDayLevelLimit,
		DayLimit:        10,
	}, config.Policy())
	assert.Equal(t, now, config.CreatedAt)

	config, err = scanConfig(fakeRow{values: []interface{}{
		int64(2), int64(99), 1, "something_else", 0, 0, now, now,
	}})
	require.NoError(t, err)
	require.NotNil(t, config.OfferID)
	assert.Equal(t, int64(99), *config.OfferID)
	assert.Equal(t, domain.ModePerTimeslotCapacity, config.Mode)

	_, err = scanConfig(fakeRow{err: sql.ErrNoRows})
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

// rowSequence отдаёт заранее заданные строки по очереди и запоминает запросы
type rowSequence struct {
	rows    []fakeRow
	queries []string
}

func (s *rowSequence) queryRow(_ context.Context, query string, _ ...interface{}) rowScanner {
	s.queries = append(s.queries, strings.Fields(query)[0])
	row := s.rows[0]
	s.rows = s.rows[1:]
	return row
}

func TestUpsert(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	stored := fakeRow{values: []interface{}{int64(7), int64(42), 3, "per_timeslot_capacity", 0, 0, now, now}}
	config := &domain.OfferCapacityConfig{
		OfferID:         ptr.Ptr(int64(42)),
		DefaultCapacity: 3,
		Mode:            domain.ModePerTimeslotCapacity,
	}

	tests := []struct {
		name        string
		rows        []fakeRow
		wantQueries []string
		wantErr     error
	}{
		{
			name:        "existing row is updated",
			rows:        []fakeRow{stored},
			wantQueries: []string{"UPDATE"},
		},
		{
			name:        "missing row is inserted",
			rows:        []fakeRow{{err: sql.ErrNoRows}, stored},
			wantQueries: []string{"UPDATE", "INSERT"},
		},
		{
			name:        "concurrent insert falls back to update",
			rows:        []fakeRow{{err: sql.ErrNoRows}, {err: &pq.Error{Code: "23505"}}, stored},
			wantQueries: []string{"UPDATE", "INSERT", "UPDATE"},
		},
		{
			name:        "other insert errors are returned",
			rows:        []fakeRow{{err: sql.ErrNoRows}, {err: &pq.Error{Code: "23502"}}},
			wantQueries: []string{"UPDATE", "INSERT"},
			wantErr:     ErrExecQuery,
		},
		{
			name:        "update errors are returned",
			rows:        []fakeRow{{err: errors.New("connection reset")}},
			wantQueries: []string{"UPDATE"},
			wantErr:     ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := &rowSequence{rows: tt.rows}
			got, err := upsert(context.Background(), config, seq.queryRow)

			assert.Equal(t, tt.wantQueries, seq.queries)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
			require.NotNil(t, got.OfferID)
			assert.Equal(t, int64(42), *got.OfferID)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(sql.ErrNoRows))
	assert.False(t, isUniqueViolation(nil))
}
