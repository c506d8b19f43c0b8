//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/infra/repository"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"
	"showroom-scheduler/tests/common/builder"
	repositorymock "showroom-scheduler/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Appointment Tests
// =============================================================================

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAppointmentWriteQueries, *appointment.Appointment, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row carries the derived end and status",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, appt *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAppointmentParams) error {
						assert.Equal(t, appt.ID(), arg.ID)
						assert.Equal(t, "requested", arg.Status)
						assert.Equal(t, int32(60), arg.DurationMinutes)
						assert.True(t, arg.EndAt.Time.Equal(appt.End()))
						assert.False(t, arg.AgentID.Valid)
						return nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: exclusion constraint rejects an overlapping interval",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(excl)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown customer violates the foreign key",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: duplicate id",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, mockDB)

			appt, err := builder.NewAppointmentBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, appt, mockDB)

			actualError := repo.Create(ctx, appt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "unexpected kind: %v", actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Update Appointment Tests
// =============================================================================

func TestAppointmentRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAppointmentWriteQueries, *appointment.Appointment, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: writes the mutable columns",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, appt *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointment(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (int64, error) {
						assert.Equal(t, appt.ID(), arg.ID)
						assert.Equal(t, "confirmed", arg.Status)
						assert.True(t, arg.ConfirmedAt.Valid)
						return 1, nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: no row matched",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointment(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: moved onto an occupied interval",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: "23P01"}
				mock.EXPECT().UpdateAppointment(ctx, tx, gomock.Any()).Return(int64(0), excl)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointment(ctx, tx, gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, mockDB)

			appt := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed).MustBuildDomain()
			tc.setupMock(mockQueries, appt, mockDB)

			actualError := repo.Update(ctx, appt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "unexpected kind: %v", actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
