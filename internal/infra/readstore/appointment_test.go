//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/infra/readstore"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"
	"showroom-scheduler/internal/pkg/pgconv"
	"showroom-scheduler/tests/common/builder"
	readstoremock "showroom-scheduler/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestAppointmentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewAppointmentBuilder().WithLocation(appointment.LocationCustomerAddress, "1 Main St").BuildViewRow()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockAppointmentViewQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment found",
			setupMock: func(mock *readstoremock.MockAppointmentViewQueries) {
				mock.EXPECT().GetAppointmentViewByID(ctx, gomock.Any(), row.ID).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: appointment not found",
			setupMock: func(mock *readstoremock.MockAppointmentViewQueries) {
				mock.EXPECT().GetAppointmentViewByID(ctx, gomock.Any(), row.ID).Return(sqlc.GetAppointmentViewByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database connection lost",
			setupMock: func(mock *readstoremock.MockAppointmentViewQueries) {
				mock.EXPECT().GetAppointmentViewByID(ctx, gomock.Any(), row.ID).Return(sqlc.GetAppointmentViewByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})

			view, err := store.FindByID(ctx, row.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "unexpected kind: %v", err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, view.ID)
			assert.Equal(t, "Test Customer", view.CustomerName)
			assert.Equal(t, "customer_address", view.Location)
			require.NotNil(t, view.Address)
			assert.Equal(t, "1 Main St", *view.Address)
			assert.Nil(t, view.CarLabel)
			assert.Nil(t, view.ConfirmedAt)
			assert.True(t, view.End.Equal(builder.At(11, 0)))
		})
	}
}

// =============================================================================
// Listing Tests
// =============================================================================

func TestAppointmentReadStore_FindByCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	status := "requested"

	t.Run("first page passes the status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})

		row := sqlc.ListAppointmentsByCustomerFirstPageRow(builder.NewAppointmentBuilder().WithCustomer(customerID).BuildViewRow())
		mockQueries.EXPECT().ListAppointmentsByCustomerFirstPage(ctx, gomock.Any(), sqlc.ListAppointmentsByCustomerFirstPageParams{
			CustomerID: customerID,
			Status:     pgconv.StringPtrToPgtype(&status),
			RowLimit:   21,
		}).Return([]sqlc.ListAppointmentsByCustomerFirstPageRow{row}, nil)

		views, err := store.FindByCustomerFirstPage(ctx, customerID, &status, 21)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, customerID, views[0].CustomerID)
	})

	t.Run("keyset continues after the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})
		lastID := uuid.New()

		mockQueries.EXPECT().ListAppointmentsByCustomerKeyset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListAppointmentsByCustomerKeysetParams) ([]sqlc.ListAppointmentsByCustomerKeysetRow, error) {
				assert.Equal(t, customerID, arg.CustomerID)
				assert.False(t, arg.Status.Valid)
				assert.Equal(t, lastID, arg.LastID)
				assert.True(t, arg.LastCreatedAt.Time.Equal(builder.Now))
				return nil, nil
			})

		views, err := store.FindByCustomerKeyset(ctx, customerID, nil, builder.Now, lastID, 11)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("errors are wrapped as db failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListAppointmentsByCustomerFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.FindByCustomerFirstPage(ctx, customerID, nil, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, errDBConnectionLost)
	})
}

// =============================================================================
// Write-side Reads Tests
// =============================================================================

func TestAppointmentReadStore_ActiveIntervals(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
	store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})

	id := uuid.New()
	from, to := builder.At(9, 0), builder.At(18, 0)
	mockQueries.EXPECT().ListActiveIntervals(ctx, gomock.Any(), sqlc.ListActiveIntervalsParams{
		RangeEnd:   pgconv.TimeToPgtype(to),
		RangeStart: pgconv.TimeToPgtype(from),
	}).Return([]sqlc.ListActiveIntervalsRow{{
		ID:      id,
		StartAt: pgconv.TimeToPgtype(builder.At(10, 0)),
		EndAt:   pgconv.TimeToPgtype(builder.At(11, 30)),
	}}, nil)

	intervals, err := store.ActiveIntervals(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, id, intervals[0].ID)
	assert.True(t, intervals[0].End.Equal(builder.At(11, 30)))
}

func TestAppointmentReadStore_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("rebuilds the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})

		row := builder.NewAppointmentBuilder().WithDuration(90).BuildInfra()
		mockQueries.EXPECT().GetAppointmentForUpdate(ctx, gomock.Any(), row.ID).Return(row, nil)

		appt, err := store.FindForUpdate(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, appt.ID())
		assert.Equal(t, appointment.StatusRequested, appt.Status())
		assert.Equal(t, 90, appt.DurationMinutes())
		assert.True(t, appt.End().Equal(builder.At(11, 30)))
	})

	t.Run("missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})
		id := uuid.New()

		mockQueries.EXPECT().GetAppointmentForUpdate(ctx, gomock.Any(), id).Return(sqlc.Appointment{}, pgx.ErrNoRows)

		_, err := store.FindForUpdate(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Lookup Tests
// =============================================================================

func TestLookupReadStore(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockLookupQueries(ctrl)
	store := readstore.NewLookupReadStore(mockQueries, &mockDBTX{})
	id := uuid.New()

	mockQueries.EXPECT().UserExists(ctx, gomock.Any(), id).Return(true, nil)
	mockQueries.EXPECT().CarExists(ctx, gomock.Any(), id).Return(false, errDBConnectionLost)
	mockQueries.EXPECT().StaffExists(ctx, gomock.Any(), id).Return(false, nil)

	ok, err := store.CustomerExists(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CarExists(ctx, id)
	assert.False(t, ok)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	ok, err = store.AgentExists(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
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
	return nil
}
