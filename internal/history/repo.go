package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymquest/internal/session"
	"github.com/2beens/gymquest/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("history record not found")

const Schema = `
CREATE TABLE IF NOT EXISTS workout_history
(
    id                       SERIAL PRIMARY KEY,
    session_id               VARCHAR     NOT NULL UNIQUE,
    kind                     VARCHAR     NOT NULL,
    plan_ids                 TEXT[]      NOT NULL,
    title                    VARCHAR     NOT NULL,
    sets_completed           INTEGER     NOT NULL,
    sets_planned             INTEGER     NOT NULL,
    perfect_sets             INTEGER     NOT NULL DEFAULT 0,
    actual_duration_seconds  INTEGER     NOT NULL,
    planned_duration_seconds INTEGER     NOT NULL,
    set_durations            INTEGER[]   NOT NULL,
    started_at               TIMESTAMPTZ NOT NULL,
    completed_at             TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_workout_history_completed_at ON workout_history USING btree (completed_at);
`

type Record struct {
	ID                     int          `json:"id"`
	SessionID              string       `json:"sessionId"`
	Kind                   session.Kind `json:"kind"`
	PlanIDs                []string     `json:"planIds"`
	Title                  string       `json:"title"`
	SetsCompleted          int          `json:"setsCompleted"`
	SetsPlanned            int          `json:"setsPlanned"`
	PerfectSets            int          `json:"perfectSets"`
	ActualDurationSeconds  int          `json:"actualDurationSeconds"`
	PlannedDurationSeconds int          `json:"plannedDurationSeconds"`
	SetDurations           []int        `json:"setDurations"`
	StartedAt              time.Time    `json:"startedAt"`
	CompletedAt            time.Time    `json:"completedAt"`
}

type ListParams struct {
	From *time.Time
	To   *time.Time
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Migrate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.migrate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err = r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create workout history schema: %w", err)
	}
	return nil
}

// Record stores a completion event. Recording the same session twice is a no-op.
func (r *Repo) Record(ctx context.Context, event session.CompletionEvent) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.record")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("session_id", event.SessionID))
	span.SetAttributes(attribute.String("kind", string(event.Kind)))

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_history (
			session_id, kind, plan_ids, title,
			sets_completed, sets_planned, perfect_sets,
			actual_duration_seconds, planned_duration_seconds, set_durations,
			started_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (session_id) DO NOTHING
	`,
		event.SessionID, string(event.Kind), event.PlanIDs, event.Title,
		event.SetsCompleted, event.SetsPlanned, event.PerfectSets,
		event.ActualDurationSeconds, event.PlannedDurationSeconds, event.SetDurations,
		event.StartedAt, event.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, sessionID string) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, selectRecords+` WHERE session_id = $1`, sessionID)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}
	return &records[0], nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	rows, err := r.db.Query(ctx, selectRecords+`
		WHERE ($1::timestamptz IS NULL OR completed_at >= $1)
		  AND ($2::timestamptz IS NULL OR completed_at <= $2)
		ORDER BY completed_at DESC
		LIMIT $3 OFFSET $4
	`,
		params.From, params.To,
		params.Size, params.Size*params.Page,
	)
	if err != nil {
		return nil, err
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout_history`).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

const selectRecords = `
	SELECT id, session_id, kind, plan_ids, title,
		sets_completed, sets_planned, perfect_sets,
		actual_duration_seconds, planned_duration_seconds, set_durations,
		started_at, completed_at
	FROM workout_history`

func scanRecord(row pgx.CollectableRow) (Record, error) {
	var rec Record
	var kind string
	err := row.Scan(
		&rec.ID, &rec.SessionID, &kind, &rec.PlanIDs, &rec.Title,
		&rec.SetsCompleted, &rec.SetsPlanned, &rec.PerfectSets,
		&rec.ActualDurationSeconds, &rec.PlannedDurationSeconds, &rec.SetDurations,
		&rec.StartedAt, &rec.CompletedAt,
	)
	rec.Kind = session.Kind(kind)
	return rec, err
}
