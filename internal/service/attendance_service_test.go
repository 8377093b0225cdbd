package service_test

import (
	"context"
	"testing"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository/postgres"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"github.com/kerem/fitness-tracker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDay string
		wantErr bool
	}{
		{name: "bare ISO day", input: "2026-03-15", wantDay: "2026-03-15"},
		{name: "full timestamp truncates to day", input: "2026-03-15T18:45:00Z", wantDay: "2026-03-15"},
		{name: "offset timestamp uses the UTC day", input: "2026-05-01T23:30:00-05:00", wantDay: "2026-05-02"},
		{name: "offset timestamp crossing back a day", input: "2026-05-01T01:30:00+05:00", wantDay: "2026-04-30"},
		{name: "garbage", input: "15/03/2026", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := service.ParseDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			record := domain.AttendanceRecord{Date: day}
			assert.Equal(t, tt.wantDay, record.Day())
		})
	}
}

func TestAttendanceService_Append(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	attendanceService := service.NewAttendanceService(repos.Attendance)
	ctx := context.Background()

	t.Run("first record for a day succeeds", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, err := service.ParseDay("2026-01-10")
		require.NoError(t, err)

		err = attendanceService.Append(ctx, user.ID, day, domain.AttendancePresent)
		require.NoError(t, err)

		records, err := attendanceService.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "2026-01-10", records[0].Day())
		assert.Equal(t, domain.AttendancePresent, records[0].Status)
	})

	t.Run("second record for the same day is rejected and nothing is written", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, err := service.ParseDay("2026-01-10")
		require.NoError(t, err)

		require.NoError(t, attendanceService.Append(ctx, user.ID, day, domain.AttendancePresent))

		err = attendanceService.Append(ctx, user.ID, day, domain.AttendanceAbsent)
		assert.ErrorIs(t, err, service.ErrDuplicateAttendance)

		records, err := attendanceService.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.AttendancePresent, records[0].Status, "the rejected append must not overwrite the existing record")
	})

	t.Run("same day for a different user is independent", func(t *testing.T) {
		testDB.Truncate(t)
		alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, err := service.ParseDay("2026-01-10")
		require.NoError(t, err)

		require.NoError(t, attendanceService.Append(ctx, alice.ID, day, domain.AttendancePresent))
		require.NoError(t, attendanceService.Append(ctx, bob.ID, day, domain.AttendanceAbsent))

		records, err := attendanceService.List(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.AttendanceAbsent, records[0].Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, err := service.ParseDay("2026-01-10")
		require.NoError(t, err)

		err = attendanceService.Append(ctx, user.ID, day, domain.AttendanceStatus("late"))
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})
}

func TestAttendanceService_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	attendanceService := service.NewAttendanceService(repos.Attendance)
	ctx := context.Background()

	testDB.Truncate(t)
	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// Listing preserves append order, not calendar order.
	for _, dayStr := range []string{"2026-02-03", "2026-02-01", "2026-02-02"} {
		day, err := service.ParseDay(dayStr)
		require.NoError(t, err)
		require.NoError(t, attendanceService.Append(ctx, user.ID, day, domain.AttendancePresent))
	}

	records, err := attendanceService.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2026-02-03", records[0].Day())
	assert.Equal(t, "2026-02-01", records[1].Day())
	assert.Equal(t, "2026-02-02", records[2].Day())
}

func TestAttendanceService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	attendanceService := service.NewAttendanceService(repos.Attendance)
	ctx := context.Background()

	t.Run("existing record", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, _ := service.ParseDay("2026-01-10")
		require.NoError(t, attendanceService.Append(ctx, user.ID, day, domain.AttendancePresent))

		err := attendanceService.Update(ctx, user.ID, day, domain.AttendanceAbsent)
		require.NoError(t, err)

		records, err := attendanceService.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.AttendanceAbsent, records[0].Status)
	})

	t.Run("missing record", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, _ := service.ParseDay("2026-01-10")

		err := attendanceService.Update(ctx, user.ID, day, domain.AttendanceAbsent)
		assert.ErrorIs(t, err, service.ErrAttendanceNotFound)
	})
}

func TestAttendanceService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	attendanceService := service.NewAttendanceService(repos.Attendance)
	ctx := context.Background()

	t.Run("existing record", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, _ := service.ParseDay("2026-01-10")
		require.NoError(t, attendanceService.Append(ctx, user.ID, day, domain.AttendancePresent))

		require.NoError(t, attendanceService.Delete(ctx, user.ID, day))

		records, err := attendanceService.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, records)

		// The day is free again after deletion.
		require.NoError(t, attendanceService.Append(ctx, user.ID, day, domain.AttendanceAbsent))
	})

	t.Run("missing record", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		day, _ := service.ParseDay("2026-01-10")

		err := attendanceService.Delete(ctx, user.ID, day)
		assert.ErrorIs(t, err, service.ErrAttendanceNotFound)
	})
}
