package repository

import (
	"context"
	"errors"
	"fmt"

	"lexportal_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const agentNotFoundMessage = "agent not found"
const agentEmailConflictMessage = "email already in use"

const agentColumns = `id, first_name, last_name, email, phone_number, agent_type, jurisdiction,
		specializations, superior_id, password_hash, is_active, created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new agents repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves an agent by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE id = $1`

	agent, err := scanAgent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Agent{}, apperr.NotFound(agentNotFoundMessage)
		}
		return Agent{}, fmt.Errorf("get agent by id: %w", err)
	}

	return agent, nil
}

// GetByEmail retrieves an agent by email, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE lower(email) = lower($1)`

	agent, err := scanAgent(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Agent{}, apperr.NotFound(agentNotFoundMessage)
		}
		return Agent{}, fmt.Errorf("get agent by email: %w", err)
	}

	return agent, nil
}

// List retrieves agents with search, filters, sorting, and pagination.
// Filtering happens at the query level rather than in memory.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Agent, int, error) {
	var searchParam interface{}
	if params.Search != "" {
		searchParam = "%" + params.Search + "%"
	}
	var typeParam interface{}
	if params.AgentType != "" {
		typeParam = params.AgentType
	}
	var jurisdictionParam interface{}
	if params.Jurisdiction != "" {
		jurisdictionParam = params.Jurisdiction
	}

	filter := `
		WHERE ($1::text IS NULL
				OR first_name ILIKE $1
				OR last_name ILIKE $1
				OR (first_name || ' ' || last_name) ILIKE $1
				OR email ILIKE $1
				OR array_to_string(specializations, ' ') ILIKE $1)
			AND ($2::text IS NULL OR agent_type = $2)
			AND ($3::text IS NULL OR jurisdiction = $3)`

	var total int
	countQuery := `SELECT COUNT(*) FROM agents` + filter
	if err := r.pool.QueryRow(ctx, countQuery, searchParam, typeParam, jurisdictionParam).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count agents: %w", err)
	}

	query := `SELECT ` + agentColumns + ` FROM agents` + filter + `
		ORDER BY
			CASE WHEN $4 = 'desc' THEN lower(first_name || ' ' || last_name) END DESC,
			CASE WHEN $4 <> 'desc' THEN lower(first_name || ' ' || last_name) END ASC
		LIMIT $5 OFFSET $6`

	rows, err := r.pool.Query(ctx, query, searchParam, typeParam, jurisdictionParam, params.SortOrder, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()

	agents, err := scanAgents(rows)
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// ListSubordinates retrieves the agents directly reporting to a superior.
func (r *Repo) ListSubordinates(ctx context.Context, superiorID uuid.UUID) ([]Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents
		WHERE superior_id = $1
		ORDER BY lower(first_name || ' ' || last_name) ASC`

	rows, err := r.pool.Query(ctx, query, superiorID)
	if err != nil {
		return nil, fmt.Errorf("list subordinates: %w", err)
	}
	defer rows.Close()

	return scanAgents(rows)
}

// Count returns the total number of agents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agents`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count agents: %w", err)
	}
	return total, nil
}

// Create inserts a new agent.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Agent, error) {
	query := `
		INSERT INTO agents (first_name, last_name, email, phone_number, agent_type, jurisdiction, specializations, superior_id, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + agentColumns

	agent, err := scanAgent(r.pool.QueryRow(ctx, query,
		params.FirstName, params.LastName, params.Email, params.PhoneNumber,
		params.AgentType, params.Jurisdiction, params.Specializations,
		params.SuperiorID, params.PasswordHash,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return Agent{}, apperr.Conflict(agentEmailConflictMessage)
		}
		if isForeignKeyViolation(err) {
			return Agent{}, apperr.Validation("superior does not exist")
		}
		return Agent{}, fmt.Errorf("create agent: %w", err)
	}

	return agent, nil
}

// Update applies a partial update. Nil parameters keep the stored value;
// the superior link is only touched when SuperiorSet is true.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Agent, error) {
	query := `
		UPDATE agents SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			email = COALESCE($4, email),
			phone_number = COALESCE($5, phone_number),
			agent_type = COALESCE($6, agent_type),
			jurisdiction = COALESCE($7, jurisdiction),
			specializations = COALESCE($8, specializations),
			superior_id = CASE WHEN $9::boolean THEN $10 ELSE superior_id END,
			is_active = COALESCE($11, is_active),
			password_hash = COALESCE($12, password_hash),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + agentColumns

	agent, err := scanAgent(r.pool.QueryRow(ctx, query,
		params.ID, params.FirstName, params.LastName, params.Email, params.PhoneNumber,
		params.AgentType, params.Jurisdiction, params.Specializations,
		params.SuperiorSet, params.SuperiorID, params.IsActive, params.PasswordHash,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Agent{}, apperr.NotFound(agentNotFoundMessage)
		}
		if isUniqueViolation(err) {
			return Agent{}, apperr.Conflict(agentEmailConflictMessage)
		}
		if isForeignKeyViolation(err) {
			return Agent{}, apperr.Validation("superior does not exist")
		}
		return Agent{}, fmt.Errorf("update agent: %w", err)
	}

	return agent, nil
}

// Delete removes an agent by ID. Subordinates keep existing but lose their
// superior link (FK is ON DELETE SET NULL); agents referenced as a task
// creator cannot be removed and surface as a generic failure.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperr.Wrap(apperr.KindInternal, "could not delete agent", err)
		}
		return fmt.Errorf("delete agent: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(agentNotFoundMessage)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgent(row rowScanner) (Agent, error) {
	var a Agent
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PhoneNumber, &a.AgentType,
		&a.Jurisdiction, &a.Specializations, &a.SuperiorID, &a.PasswordHash,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func scanAgents(rows pgx.Rows) ([]Agent, error) {
	var results []Agent

	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		results = append(results, agent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agents: %w", err)
	}

	return results, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
