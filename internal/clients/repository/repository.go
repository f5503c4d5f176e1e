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

const clientColumns = `id, client_type, email, phone_number, address, communication_preference, notes,
	first_name, last_name, gender, date_of_birth, id_proof,
	organization_name, registration_number, incorporation_date, authorized_person,
	created_at, updated_at`

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Client, error) {
	const op = "clients.repository.GetByID"

	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1`, clientColumns)

	c, err := scanClient(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, apperr.NotFound("client not found").WithOp(op)
		}
		return Client{}, apperr.Wrap(apperr.KindInternal, "could not fetch client", err).WithOp(op)
	}
	return c, nil
}

func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const op = "clients.repository.Exists"

	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, apperr.Wrap(apperr.KindInternal, "could not check client", err).WithOp(op)
	}
	return exists, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) ([]Client, int, error) {
	const op = "clients.repository.List"

	search := nullIfEmpty(params.Search)
	clientType := nullIfEmpty(params.ClientType)

	filter := `
		($1::text IS NULL OR
			coalesce(first_name, '') || ' ' || coalesce(last_name, '') ILIKE '%' || $1 || '%' OR
			coalesce(organization_name, '') ILIKE '%' || $1 || '%' OR
			email ILIKE '%' || $1 || '%' OR
			coalesce(phone_number, '') ILIKE '%' || $1 || '%' OR
			coalesce(address, '') ILIKE '%' || $1 || '%')
		AND ($2::text IS NULL OR client_type = $2)`

	var total int
	countQuery := `SELECT COUNT(*) FROM clients WHERE` + filter
	if err := r.pool.QueryRow(ctx, countQuery, search, clientType).Scan(&total); err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "could not count clients", err).WithOp(op)
	}

	query := fmt.Sprintf(`SELECT %s FROM clients WHERE%s
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`, clientColumns, filter)

	rows, err := r.pool.Query(ctx, query, search, clientType, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "could not list clients", err).WithOp(op)
	}
	defer rows.Close()

	clients, err := scanClients(rows)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "could not scan clients", err).WithOp(op)
	}
	return clients, total, nil
}

func (r *Repo) CountOpenTasks(ctx context.Context, clientID uuid.UUID) (int, error) {
	const op = "clients.repository.CountOpenTasks"

	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE client_id = $1 AND status <> 'Completed'`,
		clientID).Scan(&count)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "could not count open tasks", err).WithOp(op)
	}
	return count, nil
}

func (r *Repo) Create(ctx context.Context, params CreateParams) (Client, error) {
	const op = "clients.repository.Create"

	query := fmt.Sprintf(`
		INSERT INTO clients (
			client_type, email, phone_number, address, communication_preference, notes,
			first_name, last_name, gender, date_of_birth, id_proof,
			organization_name, registration_number, incorporation_date, authorized_person
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s`, clientColumns)

	c, err := scanClient(r.pool.QueryRow(ctx, query,
		params.ClientType, params.Email, params.PhoneNumber, params.Address,
		params.CommunicationPreference, params.Notes,
		params.FirstName, params.LastName, params.Gender, params.DateOfBirth, params.IDProof,
		params.OrganizationName, params.RegistrationNumber, params.IncorporationDate, params.AuthorizedPerson,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return Client{}, apperr.Conflict("a client with this email already exists").WithOp(op)
		}
		return Client{}, apperr.Wrap(apperr.KindInternal, "could not create client", err).WithOp(op)
	}
	return c, nil
}

func (r *Repo) Update(ctx context.Context, params UpdateParams) (Client, error) {
	const op = "clients.repository.Update"

	query := fmt.Sprintf(`
		UPDATE clients SET
			email = COALESCE($2, email),
			phone_number = COALESCE($3, phone_number),
			address = COALESCE($4, address),
			communication_preference = COALESCE($5, communication_preference),
			notes = COALESCE($6, notes),
			first_name = COALESCE($7, first_name),
			last_name = COALESCE($8, last_name),
			gender = COALESCE($9, gender),
			date_of_birth = COALESCE($10, date_of_birth),
			id_proof = COALESCE($11, id_proof),
			organization_name = COALESCE($12, organization_name),
			registration_number = COALESCE($13, registration_number),
			incorporation_date = COALESCE($14, incorporation_date),
			authorized_person = COALESCE($15, authorized_person),
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, clientColumns)

	c, err := scanClient(r.pool.QueryRow(ctx, query,
		params.ID, params.Email, params.PhoneNumber, params.Address,
		params.CommunicationPreference, params.Notes,
		params.FirstName, params.LastName, params.Gender, params.DateOfBirth, params.IDProof,
		params.OrganizationName, params.RegistrationNumber, params.IncorporationDate, params.AuthorizedPerson,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, apperr.NotFound("client not found").WithOp(op)
		}
		if isUniqueViolation(err) {
			return Client{}, apperr.Conflict("a client with this email already exists").WithOp(op)
		}
		return Client{}, apperr.Wrap(apperr.KindInternal, "could not update client", err).WithOp(op)
	}
	return c, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "clients.repository.Delete"

	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "could not delete client", err).WithOp(op)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("client not found").WithOp(op)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (Client, error) {
	var c Client
	err := row.Scan(
		&c.ID, &c.ClientType, &c.Email, &c.PhoneNumber, &c.Address,
		&c.CommunicationPreference, &c.Notes,
		&c.FirstName, &c.LastName, &c.Gender, &c.DateOfBirth, &c.IDProof,
		&c.OrganizationName, &c.RegistrationNumber, &c.IncorporationDate, &c.AuthorizedPerson,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func scanClients(rows pgx.Rows) ([]Client, error) {
	clients := make([]Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
