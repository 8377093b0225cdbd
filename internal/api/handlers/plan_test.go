package handlers_test

import (
	"net/http"
	"testing"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planGroupResponse struct {
	PlanName string               `json:"planname"`
	Workouts []domain.PlanWorkout `json:"workouts"`
}

func TestPlanAdd(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("valid plan", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, password := testutil.NewUserBuilder().WithName("Planner").Build(t, ts.DB.DB)
		token, _ := ts.Login(t, user.Email, password)
		squat := testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)
		deadlift := testutil.CreateWorkout(t, ts.DB.DB, "Deadlift", "back", 250)

		resp := ts.PostJSON(t, "/workout-plan/add", token, map[string]any{
			"planname":    "Leg Day",
			"workout_ids": []uint{squat.ID, deadlift.ID},
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusCreated, "Workouts added to plan successfully.")

		list := ts.Request(t, http.MethodGet, "/workout-plan", token, nil)
		defer list.Body.Close()
		var groups []planGroupResponse
		testutil.AssertJSONResponse(t, list, &groups)
		require.Len(t, groups, 1)
		assert.Equal(t, "Leg Day", groups[0].PlanName)
		require.Len(t, groups[0].Workouts, 2)
		assert.Equal(t, "Planner", groups[0].Workouts[0].CreatedBy)
	})

	t.Run("re-adding a workout to the plan is a no-op", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		token, _ := ts.Login(t, user.Email, password)
		squat := testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)

		for i := 0; i < 2; i++ {
			resp := ts.PostJSON(t, "/workout-plan/add", token, map[string]any{
				"planname":    "Repeat",
				"workout_ids": []uint{squat.ID},
			})
			testutil.AssertStatusCode(t, resp, http.StatusCreated)
			resp.Body.Close()
		}

		list := ts.Request(t, http.MethodGet, "/workout-plan/Repeat", token, nil)
		defer list.Body.Close()
		var workouts []domain.Workout
		testutil.AssertJSONResponse(t, list, &workouts)
		assert.Len(t, workouts, 1)
	})

	t.Run("missing fields", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		token, _ := ts.Login(t, user.Email, password)

		resp := ts.PostJSON(t, "/workout-plan/add", token, map[string]any{"planname": "Empty"})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Plan name and an array of workout IDs are required.")
	})
}

func TestPlanVisibility(t *testing.T) {
	ts := testutil.NewTestServer(t)

	ts.DB.Truncate(t)
	admin, adminPassword := testutil.NewUserBuilder().WithName("Coach").AsAdmin().Build(t, ts.DB.DB)
	member, memberPassword := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	other, otherPassword := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	adminToken, _ := ts.Login(t, admin.Email, adminPassword)
	memberToken, _ := ts.Login(t, member.Email, memberPassword)
	otherToken, _ := ts.Login(t, other.Email, otherPassword)

	squat := testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)

	ts.PostJSON(t, "/workout-plan/add", adminToken, map[string]any{
		"planname": "Starter", "workout_ids": []uint{squat.ID},
	}).Body.Close()
	ts.PostJSON(t, "/workout-plan/add", memberToken, map[string]any{
		"planname": "My Plan", "workout_ids": []uint{squat.ID},
	}).Body.Close()

	t.Run("member sees own plans plus admin plans", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/workout-plan", memberToken, nil)
		defer resp.Body.Close()

		var groups []planGroupResponse
		testutil.AssertJSONResponse(t, resp, &groups)
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			names = append(names, g.PlanName)
		}
		assert.ElementsMatch(t, []string{"Starter", "My Plan"}, names)
	})

	t.Run("unrelated member sees only admin plans", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/workout-plan", otherToken, nil)
		defer resp.Body.Close()

		var groups []planGroupResponse
		testutil.AssertJSONResponse(t, resp, &groups)
		require.Len(t, groups, 1)
		assert.Equal(t, "Starter", groups[0].PlanName)
	})
}

func TestPlanUpdate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	ts.DB.Truncate(t)
	user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token, _ := ts.Login(t, user.Email, password)
	squat := testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)
	deadlift := testutil.CreateWorkout(t, ts.DB.DB, "Deadlift", "back", 250)

	ts.PostJSON(t, "/workout-plan/add", token, map[string]any{
		"planname": "Old Name", "workout_ids": []uint{squat.ID},
	}).Body.Close()

	t.Run("rename and swap workouts", func(t *testing.T) {
		resp := ts.Request(t, http.MethodPut, "/workout-plan/Old Name", token, map[string]any{
			"planname":    "New Name",
			"workout_ids": []uint{deadlift.ID},
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusOK, "Plan updated successfully.")

		old := ts.Request(t, http.MethodGet, "/workout-plan/Old Name", token, nil)
		defer old.Body.Close()
		var oldWorkouts []domain.Workout
		testutil.AssertJSONResponse(t, old, &oldWorkouts)
		assert.Empty(t, oldWorkouts)

		renamed := ts.Request(t, http.MethodGet, "/workout-plan/New Name", token, nil)
		defer renamed.Body.Close()
		var newWorkouts []domain.Workout
		testutil.AssertJSONResponse(t, renamed, &newWorkouts)
		require.Len(t, newWorkouts, 1)
		assert.Equal(t, "Deadlift", newWorkouts[0].Name)
	})

	t.Run("missing body fields", func(t *testing.T) {
		resp := ts.Request(t, http.MethodPut, "/workout-plan/New Name", token, map[string]any{
			"planname": "Whatever",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Plan name, new plan name, and an array of workout IDs are required.")
	})
}

func TestPlanDelete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	ts.DB.Truncate(t)
	user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token, _ := ts.Login(t, user.Email, password)
	squat := testutil.CreateWorkout(t, ts.DB.DB, "Squat", "legs", 200)

	ts.PostJSON(t, "/workout-plan/add", token, map[string]any{
		"planname": "Doomed", "workout_ids": []uint{squat.ID},
	}).Body.Close()

	resp := ts.Request(t, http.MethodDelete, "/workout-plan/Doomed", token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)

	again := ts.Request(t, http.MethodDelete, "/workout-plan/Doomed", token, nil)
	defer again.Body.Close()
	testutil.AssertErrorResponse(t, again, http.StatusNotFound, "Plan not found.")
}
