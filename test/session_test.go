//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/gymquest/internal/api"
	"github.com/2beens/gymquest/internal/controller"
	"github.com/2beens/gymquest/internal/game"
	"github.com/2beens/gymquest/internal/progress"
	"github.com/2beens/gymquest/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestExerciseSession() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	require.Equal(t, http.StatusNoContent, s.doJSON(ctx, "POST", "/progress/reset", nil, nil))

	var status controller.Status
	code := s.doJSON(ctx, "POST", "/session/exercise", api.StartExerciseRequest{PlanID: "jumping_jacks"}, &status)
	require.Equal(t, http.StatusCreated, code)
	require.NotNil(t, status.Exercise)
	assert.Equal(t, session.PhasePreparing, status.Exercise.State.Phase)

	var res game.ActionResult
	// pause only applies to a running set
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "POST", "/session/pause", nil, &res))
	assert.False(t, res.Applied)

	// jumping_jacks: two sets
	for range 2 {
		require.Equal(t, http.StatusOK, s.doJSON(ctx, "POST", "/session/skip", nil, &res))
		assert.True(t, res.Applied)
		require.Equal(t, http.StatusOK, s.doJSON(ctx, "POST", "/session/done", nil, &res))
		assert.True(t, res.Applied)
	}
	require.NotNil(t, res.Status.Exercise)
	assert.Equal(t, session.PhaseCompleted, res.Status.Exercise.State.Phase)
	require.NotNil(t, res.Status.LastOutcome)
	assert.Equal(t, 1, res.Status.LastOutcome.TotalWorkouts)

	var state progress.State
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "GET", "/progress", nil, &state))
	assert.Equal(t, 1, state.TotalWorkouts)
	assert.Equal(t, 1, state.Streak.Count)
	assert.Len(t, state.Quests.Daily, 3)
	assert.Len(t, state.Quests.Weekly, 3)

	require.Equal(t, http.StatusNoContent, s.doJSON(ctx, "POST", "/session/exit", nil, nil))
	assert.Equal(t, http.StatusConflict, s.doJSON(ctx, "POST", "/session/exit", nil, nil))
}

func (s *IntegrationTestSuite) TestWorkoutSessionIsRecorded() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	var countBefore int
	require.NoError(t, s.DB.QueryRow(ctx, `SELECT COUNT(*) FROM workout_history`).Scan(&countBefore))

	var status controller.Status
	code := s.doJSON(ctx, "POST", "/session/workout", api.StartWorkoutRequest{PlanIDs: []string{"plank", "wall_sit"}}, &status)
	require.Equal(t, http.StatusCreated, code)
	require.NotNil(t, status.Workout)
	require.Len(t, status.Workout.Plans, 2)

	assert.Equal(t, http.StatusConflict, s.doJSON(ctx, "POST", "/session/done", nil, nil))

	var setRes game.SetResult
	// plank: 3 sets, wall_sit: 2 sets
	for range 3 {
		require.Equal(t, http.StatusOK, s.doJSON(ctx, "POST", "/session/set", api.CompleteSetRequest{ExerciseIndex: 0, DurationSeconds: 45}, &setRes))
	}
	assert.Nil(t, setRes.Summary)
	assert.Equal(t, http.StatusConflict, s.doJSON(ctx, "POST", "/session/set", api.CompleteSetRequest{ExerciseIndex: 0, DurationSeconds: 45}, nil))

	for range 2 {
		require.Equal(t, http.StatusOK, s.doJSON(ctx, "POST", "/session/set", api.CompleteSetRequest{ExerciseIndex: 1, DurationSeconds: 50}, &setRes))
	}
	require.NotNil(t, setRes.Summary)
	assert.Equal(t, 5, setRes.Summary.TotalCompletedSets)
	assert.Equal(t, 100.0, setRes.Summary.CompletionPercentage)
	assert.Equal(t, 3, setRes.Summary.PerfectSets)

	var countAfter int
	require.NoError(t, s.DB.QueryRow(ctx, `SELECT COUNT(*) FROM workout_history`).Scan(&countAfter))
	assert.Equal(t, countBefore+1, countAfter)

	var historyResp api.HistoryResponse
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "GET", "/history/page/0/size/10", nil, &historyResp))
	assert.Equal(t, countAfter, historyResp.Total)
	require.NotEmpty(t, historyResp.Records)
	assert.Equal(t, session.KindWorkout, historyResp.Records[0].Kind)
	assert.Equal(t, []string{"plank", "wall_sit"}, historyResp.Records[0].PlanIDs)
}

func (s *IntegrationTestSuite) TestCatalogAndSelection() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	var plans api.PlansResponse
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "GET", "/catalog/plans", nil, &plans))
	assert.NotEmpty(t, plans.Plans)

	var next api.NextLevelResponse
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "GET", "/catalog/paths/beginner/next/squats", nil, &next))
	require.NotNil(t, next.Next)
	assert.Equal(t, "pushups", next.Next.ID)

	assert.Equal(t, http.StatusNotFound, s.doJSON(ctx, "POST", "/progress/select", api.SelectRequest{PlanID: "hula_hoop"}, nil))
	require.Equal(t, http.StatusNoContent, s.doJSON(ctx, "POST", "/progress/select", api.SelectRequest{PlanID: "pushups", PathID: "beginner"}, nil))

	var state progress.State
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "GET", "/progress", nil, &state))
	assert.Equal(t, "pushups", state.SelectedPlanID)
	assert.Equal(t, "beginner", state.SelectedPathID)

	var notifications api.NotificationsResponse
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "GET", "/notifications?drain=true", nil, &notifications))
	require.Equal(t, http.StatusOK, s.doJSON(ctx, "GET", "/notifications", nil, &notifications))
	assert.Empty(t, notifications.Notifications)
}
