package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/2beens/gymquest/internal/kvstore"
	"github.com/2beens/gymquest/internal/quests"
	"github.com/2beens/gymquest/internal/telemetry/metrics"
	"github.com/2beens/gymquest/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

const (
	KeyStreakCount    = "streak_count"
	KeyStreakLastDate = "streak_last_date"
	KeyDailyQuests    = "daily_quests"
	KeyWeeklyQuests   = "weekly_quests"
	KeyLastQuestReset = "last_quest_reset"
	KeyDiamonds       = "diamonds"
	KeyTotalWorkouts  = "total_workouts"
	KeySelectedPlan   = "selected_plan"
	KeySelectedPath   = "selected_path"
)

// Repo maps State onto flat keys of a kvstore.Store.
type Repo struct {
	store          kvstore.Store
	metricsManager *metrics.Manager
}

func NewRepo(store kvstore.Store, metricsManager *metrics.Manager) *Repo {
	return &Repo{
		store:          store,
		metricsManager: metricsManager,
	}
}

// Load reads every key. Missing keys, read failures and malformed values fall
// back to defaults; the returned state is always usable, and err only reports
// what went wrong. Inconsistent quests are repaired.
func (r *Repo) Load(ctx context.Context) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.load")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var state State
	state.Streak.Count = r.getInt(ctx, KeyStreakCount, &err)
	state.Streak.LastCompletedDate = r.getString(ctx, KeyStreakLastDate, &err)
	state.Quests.Daily = r.getQuests(ctx, KeyDailyQuests, &err)
	state.Quests.Weekly = r.getQuests(ctx, KeyWeeklyQuests, &err)
	state.Quests.LastReset = r.getString(ctx, KeyLastQuestReset, &err)
	state.Diamonds = r.getInt(ctx, KeyDiamonds, &err)
	state.TotalWorkouts = r.getInt(ctx, KeyTotalWorkouts, &err)
	state.SelectedPlanID = r.getString(ctx, KeySelectedPlan, &err)
	state.SelectedPathID = r.getString(ctx, KeySelectedPath, &err)

	if repaired := state.Quests.Repair(); repaired > 0 {
		log.Warnf("progress: repaired %d completed quests with inconsistent progress", repaired)
		span.SetAttributes(attribute.Int("repaired_quests", repaired))
	}

	return state, err
}

// Save writes every key. It attempts all writes even if some fail and
// returns the combined error.
func (r *Repo) Save(ctx context.Context, state State) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	daily, jsonErr := json.Marshal(nonNilQuests(state.Quests.Daily))
	if jsonErr != nil {
		return fmt.Errorf("marshal daily quests: %w", jsonErr)
	}
	weekly, jsonErr := json.Marshal(nonNilQuests(state.Quests.Weekly))
	if jsonErr != nil {
		return fmt.Errorf("marshal weekly quests: %w", jsonErr)
	}

	values := []struct {
		key, value string
	}{
		{KeyStreakCount, strconv.Itoa(state.Streak.Count)},
		{KeyStreakLastDate, state.Streak.LastCompletedDate},
		{KeyDailyQuests, string(daily)},
		{KeyWeeklyQuests, string(weekly)},
		{KeyLastQuestReset, state.Quests.LastReset},
		{KeyDiamonds, strconv.Itoa(state.Diamonds)},
		{KeyTotalWorkouts, strconv.Itoa(state.TotalWorkouts)},
		{KeySelectedPlan, state.SelectedPlanID},
		{KeySelectedPath, state.SelectedPathID},
	}
	for _, v := range values {
		if setErr := r.store.Set(ctx, v.key, v.value); setErr != nil {
			r.countError("set")
			err = multierr.Append(err, fmt.Errorf("save %s: %w", v.key, setErr))
		}
	}

	return err
}

func (r *Repo) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err = r.store.Clear(ctx); err != nil {
		r.countError("clear")
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

func (r *Repo) getString(ctx context.Context, key string, errs *error) string {
	val, found, err := r.store.Get(ctx, key)
	if err != nil {
		r.countError("get")
		*errs = multierr.Append(*errs, fmt.Errorf("load %s: %w", key, err))
		return ""
	}
	if !found {
		return ""
	}
	return val
}

func (r *Repo) getInt(ctx context.Context, key string, errs *error) int {
	val := r.getString(ctx, key, errs)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("parse %s [%s]: %w", key, val, err))
		return 0
	}
	return n
}

func (r *Repo) getQuests(ctx context.Context, key string, errs *error) []quests.Quest {
	val := r.getString(ctx, key, errs)
	if val == "" {
		return nil
	}
	var list []quests.Quest
	if err := json.Unmarshal([]byte(val), &list); err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("parse %s: %w", key, err))
		return nil
	}
	return list
}

func (r *Repo) countError(op string) {
	if r.metricsManager != nil {
		r.metricsManager.CounterPersistenceErrors.WithLabelValues(op).Inc()
	}
}

func nonNilQuests(list []quests.Quest) []quests.Quest {
	if list == nil {
		return []quests.Quest{}
	}
	return list
}
