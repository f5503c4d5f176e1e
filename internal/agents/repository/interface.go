package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Agent represents a staff member in the practice hierarchy.
type Agent struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     *string
	AgentType       string
	Jurisdiction    *string
	Specializations []string
	SuperiorID      *uuid.UUID
	PasswordHash    *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateParams contains parameters for creating an agent.
type CreateParams struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     *string
	AgentType       string
	Jurisdiction    *string
	Specializations []string
	SuperiorID      *uuid.UUID
	PasswordHash    *string
}

// UpdateParams contains parameters for a partial agent update. Nil fields are
// left untouched; SuperiorSet distinguishes "clear the superior" from "leave
// it alone".
type UpdateParams struct {
	ID              uuid.UUID
	FirstName       *string
	LastName        *string
	Email           *string
	PhoneNumber     *string
	AgentType       *string
	Jurisdiction    *string
	Specializations []string
	SuperiorID      *uuid.UUID
	SuperiorSet     bool
	IsActive        *bool
	PasswordHash    *string
}

// ListParams contains filters for the agent list query.
type ListParams struct {
	Search       string
	AgentType    string
	Jurisdiction string
	SortOrder    string // asc|desc on display name
	Offset       int
	Limit        int
}

// AgentReader provides read operations for agents.
type AgentReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Agent, error)
	GetByEmail(ctx context.Context, email string) (Agent, error)
	List(ctx context.Context, params ListParams) ([]Agent, int, error)
	ListSubordinates(ctx context.Context, superiorID uuid.UUID) ([]Agent, error)
	Count(ctx context.Context) (int, error)
}

// AgentWriter provides write operations for agents.
type AgentWriter interface {
	Create(ctx context.Context, params CreateParams) (Agent, error)
	Update(ctx context.Context, params UpdateParams) (Agent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository combines all agent repository operations.
type Repository interface {
	AgentReader
	AgentWriter
}
