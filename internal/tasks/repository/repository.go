package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lexportal_backend/platform/apperr"
)

// taskSelect joins the display names the UI shows on task cards so list and
// detail views need no follow-up queries.
const taskSelect = `
	SELECT t.id, t.title, t.description, t.status, t.priority, t.due_date,
		t.client_id, t.created_by, t.assigned_to, t.created_at, t.updated_at,
		CASE
			WHEN c.id IS NULL THEN NULL
			WHEN c.client_type = 'organization' THEN c.organization_name
			ELSE trim(coalesce(c.first_name, '') || ' ' || coalesce(c.last_name, ''))
		END AS client_name,
		CASE WHEN asg.id IS NULL THEN NULL ELSE asg.first_name || ' ' || asg.last_name END AS assignee_name,
		cr.first_name || ' ' || cr.last_name AS creator_name
	FROM tasks t
	LEFT JOIN clients c ON c.id = t.client_id
	LEFT JOIN agents asg ON asg.id = t.assigned_to
	JOIN agents cr ON cr.id = t.created_by`

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Task, error) {
	const op = "tasks.repository.GetByID"

	query := taskSelect + ` WHERE t.id = $1`

	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Task{}, apperr.NotFound("task not found").WithOp(op)
		}
		return Task{}, apperr.Wrap(apperr.KindInternal, "could not fetch task", err).WithOp(op)
	}
	return task, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) ([]Task, int, error) {
	const op = "tasks.repository.List"

	search := nullIfEmpty(params.Search)
	status := nullIfEmpty(params.Status)

	filter := `
		($1::text IS NULL OR t.title ILIKE '%' || $1 || '%' OR coalesce(t.description, '') ILIKE '%' || $1 || '%')
		AND ($2::text IS NULL OR t.status = $2)
		AND ($3::uuid IS NULL OR t.assigned_to = $3)
		AND ($4::uuid IS NULL OR t.client_id = $4)`

	var total int
	countQuery := `SELECT COUNT(*) FROM tasks t WHERE` + filter
	if err := r.pool.QueryRow(ctx, countQuery, search, status, params.AssignedTo, params.ClientID).Scan(&total); err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "could not count tasks", err).WithOp(op)
	}

	query := fmt.Sprintf(`%s WHERE%s
		ORDER BY t.created_at DESC
		LIMIT $5 OFFSET $6`, taskSelect, filter)

	rows, err := r.pool.Query(ctx, query, search, status, params.AssignedTo, params.ClientID, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "could not list tasks", err).WithOp(op)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "could not scan tasks", err).WithOp(op)
	}
	return tasks, total, nil
}

func (r *Repo) ListDueSoon(ctx context.Context, params DueSoonParams) ([]Task, error) {
	const op = "tasks.repository.ListDueSoon"

	query := taskSelect + `
		WHERE t.status <> 'Completed'
			AND t.assigned_to IS NOT NULL
			AND t.due_date >= $1 AND t.due_date < $2
		ORDER BY t.due_date ASC`

	rows, err := r.pool.Query(ctx, query, params.From, params.To)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "could not list due tasks", err).WithOp(op)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "could not scan due tasks", err).WithOp(op)
	}
	return tasks, nil
}

func (r *Repo) Create(ctx context.Context, params CreateParams) (Task, error) {
	const op = "tasks.repository.Create"

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, status, priority, due_date, client_id, created_by, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		params.Title, params.Description, params.Status, params.Priority,
		params.DueDate, params.ClientID, params.CreatedBy, params.AssignedTo,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Task{}, apperr.Validation("referenced client or agent does not exist").WithOp(op)
		}
		return Task{}, apperr.Wrap(apperr.KindInternal, "could not create task", err).WithOp(op)
	}
	return r.GetByID(ctx, id)
}

func (r *Repo) Update(ctx context.Context, params UpdateParams) (Task, error) {
	const op = "tasks.repository.Update"

	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			status = COALESCE($4, status),
			priority = COALESCE($5, priority),
			due_date = CASE WHEN $6::boolean THEN $7 ELSE due_date END,
			client_id = CASE WHEN $8::boolean THEN $9 ELSE client_id END,
			assigned_to = CASE WHEN $10::boolean THEN $11 ELSE assigned_to END,
			updated_at = now()
		WHERE id = $1`,
		params.ID, params.Title, params.Description, params.Status, params.Priority,
		params.DueDateSet, params.DueDate,
		params.ClientSet, params.ClientID,
		params.AssignedSet, params.AssignedTo,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Task{}, apperr.Validation("referenced client or agent does not exist").WithOp(op)
		}
		return Task{}, apperr.Wrap(apperr.KindInternal, "could not update task", err).WithOp(op)
	}
	if tag.RowsAffected() == 0 {
		return Task{}, apperr.NotFound("task not found").WithOp(op)
	}
	return r.GetByID(ctx, params.ID)
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "tasks.repository.Delete"

	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "could not delete task", err).WithOp(op)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("task not found").WithOp(op)
	}
	return nil
}

const commentSelect = `
	SELECT cm.id, cm.task_id, cm.author_id, cm.body,
		cm.attachment_file_key, cm.attachment_file_name, cm.attachment_content_type, cm.attachment_size_bytes,
		cm.created_at,
		a.first_name || ' ' || a.last_name AS author_name
	FROM task_comments cm
	JOIN agents a ON a.id = cm.author_id`

func (r *Repo) ListComments(ctx context.Context, taskID uuid.UUID) ([]Comment, error) {
	const op = "tasks.repository.ListComments"

	query := commentSelect + ` WHERE cm.task_id = $1 ORDER BY cm.created_at DESC`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "could not list comments", err).WithOp(op)
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "could not scan comments", err).WithOp(op)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *Repo) GetComment(ctx context.Context, id uuid.UUID) (Comment, error) {
	const op = "tasks.repository.GetComment"

	c, err := scanComment(r.pool.QueryRow(ctx, commentSelect+` WHERE cm.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Comment{}, apperr.NotFound("comment not found").WithOp(op)
		}
		return Comment{}, apperr.Wrap(apperr.KindInternal, "could not fetch comment", err).WithOp(op)
	}
	return c, nil
}

func (r *Repo) CreateComment(ctx context.Context, params CreateCommentParams) (Comment, error) {
	const op = "tasks.repository.CreateComment"

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO task_comments (task_id, author_id, body, attachment_file_key, attachment_file_name, attachment_content_type, attachment_size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		params.TaskID, params.AuthorID, params.Body,
		params.AttachmentFileKey, params.AttachmentFileName, params.AttachmentContentType, params.AttachmentSizeBytes,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Comment{}, apperr.NotFound("task not found").WithOp(op)
		}
		return Comment{}, apperr.Wrap(apperr.KindInternal, "could not create comment", err).WithOp(op)
	}
	return r.GetComment(ctx, id)
}

func (r *Repo) DeleteComment(ctx context.Context, id uuid.UUID) error {
	const op = "tasks.repository.DeleteComment"

	tag, err := r.pool.Exec(ctx, `DELETE FROM task_comments WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "could not delete comment", err).WithOp(op)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("comment not found").WithOp(op)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var t Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate,
		&t.ClientID, &t.CreatedBy, &t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
		&t.ClientName, &t.AssigneeName, &t.CreatorName,
	)
	return t, err
}

func scanTasks(rows pgx.Rows) ([]Task, error) {
	tasks := make([]Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanComment(row rowScanner) (Comment, error) {
	var c Comment
	err := row.Scan(
		&c.ID, &c.TaskID, &c.AuthorID, &c.Body,
		&c.AttachmentFileKey, &c.AttachmentFileName, &c.AttachmentContentType, &c.AttachmentSizeBytes,
		&c.CreatedAt, &c.AuthorName,
	)
	return c, err
}
