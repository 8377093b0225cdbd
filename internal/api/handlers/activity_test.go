package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLogBatch(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("valid batch", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		token, _ := ts.Login(t, user.Email, password)
		testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)
		testutil.CreateWorkout(t, ts.DB.DB, "Deadlift", "back", 250)

		resp := ts.PostJSON(t, "/activity", token, map[string]any{
			"activities": []map[string]any{
				{"name": "Squat", "duration": 30, "date": "2026-06-01"},
				{"name": "Deadlift", "duration": 20, "date": "2026-06-01", "calories_burned": 300},
			},
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusCreated, "Activities logged successfully!")

		list := ts.Request(t, http.MethodGet, "/activity", token, nil)
		defer list.Body.Close()
		var activities []domain.Activity
		testutil.AssertJSONResponse(t, list, &activities)
		require.Len(t, activities, 2)

		// Calories default from the catalog when the entry omits them.
		byName := map[string]float64{}
		for _, a := range activities {
			byName[a.Name] = a.CaloriesBurned
		}
		assert.Equal(t, float64(200), byName["Squat"])
		assert.Equal(t, float64(300), byName["Deadlift"])
	})

	t.Run("unknown workout rejects the whole batch", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		token, _ := ts.Login(t, user.Email, password)
		testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)

		resp := ts.PostJSON(t, "/activity", token, map[string]any{
			"activities": []map[string]any{
				{"name": "Squat", "duration": 30, "date": "2026-06-01"},
				{"name": "Underwater Basket Weaving", "duration": 60, "date": "2026-06-01"},
			},
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest,
			"No matching workout found for \"Underwater Basket Weaving\".")

		list := ts.Request(t, http.MethodGet, "/activity", token, nil)
		defer list.Body.Close()
		var activities []domain.Activity
		testutil.AssertJSONResponse(t, list, &activities)
		assert.Empty(t, activities, "a rejected batch must write nothing")
	})

	t.Run("empty batch", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		token, _ := ts.Login(t, user.Email, password)

		resp := ts.PostJSON(t, "/activity", token, map[string]any{"activities": []map[string]any{}})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Activities array is required and cannot be empty.")
	})

	t.Run("entry missing fields", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		token, _ := ts.Login(t, user.Email, password)

		resp := ts.PostJSON(t, "/activity", token, map[string]any{
			"activities": []map[string]any{{"name": "Squat"}},
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Name, duration, and date are required for each activity.")
	})
}

func TestActivityOwnership(t *testing.T) {
	ts := testutil.NewTestServer(t)

	ts.DB.Truncate(t)
	alice, alicePassword := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	bob, bobPassword := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	aliceToken, _ := ts.Login(t, alice.Email, alicePassword)
	bobToken, _ := ts.Login(t, bob.Email, bobPassword)
	testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)

	resp := ts.PostJSON(t, "/activity", aliceToken, map[string]any{
		"activities": []map[string]any{{"name": "Squat", "duration": 30, "date": "2026-06-01"}},
	})
	resp.Body.Close()

	list := ts.Request(t, http.MethodGet, "/activity", aliceToken, nil)
	defer list.Body.Close()
	var activities []domain.Activity
	testutil.AssertJSONResponse(t, list, &activities)
	require.Len(t, activities, 1)
	activityID := activities[0].ID

	t.Run("another user cannot read it", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, fmt.Sprintf("/activity/%d", activityID), bobToken, nil)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Activity not found")
	})

	t.Run("another user cannot delete it", func(t *testing.T) {
		resp := ts.Request(t, http.MethodDelete, fmt.Sprintf("/activity/%d", activityID), bobToken, nil)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Activity not found")
	})

	t.Run("another user's list is empty", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/activity", bobToken, nil)
		defer resp.Body.Close()

		var bobActivities []domain.Activity
		testutil.AssertJSONResponse(t, resp, &bobActivities)
		assert.Empty(t, bobActivities)
	})

	t.Run("owner updates and deletes", func(t *testing.T) {
		update := ts.Request(t, http.MethodPut, fmt.Sprintf("/activity/%d", activityID), aliceToken, map[string]any{
			"name": "Squat", "duration": 45, "date": "2026-06-02", "calories_burned": 220,
		})
		defer update.Body.Close()
		testutil.AssertErrorResponse(t, update, http.StatusOK, "Activity updated successfully!")

		del := ts.Request(t, http.MethodDelete, fmt.Sprintf("/activity/%d", activityID), aliceToken, nil)
		defer del.Body.Close()
		testutil.AssertStatusCode(t, del, http.StatusNoContent)
	})
}

func TestUserStats(t *testing.T) {
	ts := testutil.NewTestServer(t)

	ts.DB.Truncate(t)
	user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token, _ := ts.Login(t, user.Email, password)
	testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)

	t.Run("no activities", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/user/stats", token, nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var stats map[string]any
		testutil.AssertJSONResponse(t, resp, &stats)
		assert.EqualValues(t, 0, stats["total_calories"])
		assert.EqualValues(t, 0, stats["avg_duration"])
		assert.Equal(t, "lifetime", stats["timeframe"])
	})

	t.Run("aggregates logged activities", func(t *testing.T) {
		resp := ts.PostJSON(t, "/activity", token, map[string]any{
			"activities": []map[string]any{
				{"name": "Squat", "duration": 30, "date": "2026-06-01", "calories_burned": 100},
				{"name": "Squat", "duration": 60, "date": "2026-06-02", "calories_burned": 200},
			},
		})
		resp.Body.Close()

		stats := ts.Request(t, http.MethodGet, "/user/stats", token, nil)
		defer stats.Body.Close()

		var body map[string]any
		testutil.AssertJSONResponse(t, stats, &body)
		assert.EqualValues(t, 300, body["total_calories"])
		assert.EqualValues(t, 45, body["avg_duration"])
	})

	t.Run("named timeframe is echoed", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/user/stats?timeframe=weekly", token, nil)
		defer resp.Body.Close()

		var body map[string]any
		testutil.AssertJSONResponse(t, resp, &body)
		assert.Equal(t, "weekly", body["timeframe"])
	})
}
