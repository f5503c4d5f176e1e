package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lexportal_backend/platform/apperr"
)

// EntityCounts holds the current total for a table and the total as of one
// month ago, used to compute month-over-month growth.
type EntityCounts struct {
	Current  int
	Previous int
}

// TaskBreakdown partitions tasks by workflow state. Overdue overlaps the
// other buckets since it is derived from the due date, not the status.
type TaskBreakdown struct {
	Total      int
	ToDo       int
	InProgress int
	Completed  int
	Overdue    int
}

// Reader provides the aggregate queries behind the dashboard.
type Reader interface {
	CountAgents(ctx context.Context, asOf time.Time) (EntityCounts, error)
	CountClients(ctx context.Context, asOf time.Time) (EntityCounts, error)
	CountTasks(ctx context.Context, asOf time.Time) (EntityCounts, error)
	TasksBreakdown(ctx context.Context, now time.Time) (TaskBreakdown, error)
}

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) CountAgents(ctx context.Context, asOf time.Time) (EntityCounts, error) {
	return r.countTable(ctx, "agents", asOf, "dashboard.repository.CountAgents")
}

func (r *Repo) CountClients(ctx context.Context, asOf time.Time) (EntityCounts, error) {
	return r.countTable(ctx, "clients", asOf, "dashboard.repository.CountClients")
}

func (r *Repo) CountTasks(ctx context.Context, asOf time.Time) (EntityCounts, error) {
	return r.countTable(ctx, "tasks", asOf, "dashboard.repository.CountTasks")
}

func (r *Repo) countTable(ctx context.Context, table string, asOf time.Time, op string) (EntityCounts, error) {
	// table is one of three fixed names, never caller input.
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at <= $1) FROM ` + table

	var counts EntityCounts
	cutoff := asOf.AddDate(0, -1, 0)
	if err := r.pool.QueryRow(ctx, query, cutoff).Scan(&counts.Current, &counts.Previous); err != nil {
		return EntityCounts{}, apperr.Wrap(apperr.KindInternal, "could not count "+table, err).WithOp(op)
	}
	return counts, nil
}

func (r *Repo) TasksBreakdown(ctx context.Context, now time.Time) (TaskBreakdown, error) {
	const op = "dashboard.repository.TasksBreakdown"

	var b TaskBreakdown
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'To Do'),
			COUNT(*) FILTER (WHERE status = 'In Progress'),
			COUNT(*) FILTER (WHERE status = 'Completed'),
			COUNT(*) FILTER (WHERE status <> 'Completed' AND due_date IS NOT NULL AND due_date < $1)
		FROM tasks`, now,
	).Scan(&b.Total, &b.ToDo, &b.InProgress, &b.Completed, &b.Overdue)
	if err != nil {
		return TaskBreakdown{}, apperr.Wrap(apperr.KindInternal, "could not aggregate tasks", err).WithOp(op)
	}
	return b, nil
}
