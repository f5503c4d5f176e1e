package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Client types for the tagged union.
const (
	TypeIndividual   = "individual"
	TypeOrganization = "organization"
)

// Client represents a party the practice works for: either an individual or
// an organization, distinguished by ClientType. Per-type fields are nullable
// and only populated for the matching type.
type Client struct {
	ID                      uuid.UUID
	ClientType              string
	Email                   string
	PhoneNumber             *string
	Address                 *string
	CommunicationPreference *string
	Notes                   *string

	// individual
	FirstName   *string
	LastName    *string
	Gender      *string
	DateOfBirth *time.Time
	IDProof     *string

	// organization
	OrganizationName   *string
	RegistrationNumber *string
	IncorporationDate  *time.Time
	AuthorizedPerson   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams contains parameters for creating a client.
type CreateParams struct {
	ClientType              string
	Email                   string
	PhoneNumber             *string
	Address                 *string
	CommunicationPreference *string
	Notes                   *string
	FirstName               *string
	LastName                *string
	Gender                  *string
	DateOfBirth             *time.Time
	IDProof                 *string
	OrganizationName        *string
	RegistrationNumber      *string
	IncorporationDate       *time.Time
	AuthorizedPerson        *string
}

// UpdateParams contains parameters for a partial client update.
type UpdateParams struct {
	ID                      uuid.UUID
	Email                   *string
	PhoneNumber             *string
	Address                 *string
	CommunicationPreference *string
	Notes                   *string
	FirstName               *string
	LastName                *string
	Gender                  *string
	DateOfBirth             *time.Time
	IDProof                 *string
	OrganizationName        *string
	RegistrationNumber      *string
	IncorporationDate       *time.Time
	AuthorizedPerson        *string
}

// ListParams contains filters for the client list query.
type ListParams struct {
	Search     string
	ClientType string
	Offset     int
	Limit      int
}

// ClientReader provides read operations for clients.
type ClientReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Client, error)
	List(ctx context.Context, params ListParams) ([]Client, int, error)
	CountOpenTasks(ctx context.Context, clientID uuid.UUID) (int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ClientWriter provides write operations for clients.
type ClientWriter interface {
	Create(ctx context.Context, params CreateParams) (Client, error)
	Update(ctx context.Context, params UpdateParams) (Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository combines all client repository operations.
type Repository interface {
	ClientReader
	ClientWriter
}
