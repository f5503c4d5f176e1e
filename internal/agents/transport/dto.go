package transport

import "github.com/google/uuid"

// CreateAgentRequest contains data for creating a new agent.
type CreateAgentRequest struct {
	FirstName       string     `json:"firstName" validate:"required,min=1,max=100"`
	LastName        string     `json:"lastName" validate:"required,min=1,max=100"`
	Email           string     `json:"email" validate:"required,email,max=254"`
	PhoneNumber     *string    `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	AgentType       string     `json:"agentType" validate:"required"`
	Jurisdiction    *string    `json:"jurisdiction,omitempty" validate:"omitempty,max=100"`
	Specializations []string   `json:"specializations,omitempty" validate:"omitempty,dive,min=1,max=100"`
	SuperiorID      *uuid.UUID `json:"superiorId,omitempty"`
	Password        *string    `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
}

// UpdateAgentRequest contains data for a partial agent update. The superior
// link uses OptionalUUID so "set to null" and "leave unchanged" stay distinct.
type UpdateAgentRequest struct {
	FirstName       *string      `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName        *string      `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Email           *string      `json:"email,omitempty" validate:"omitempty,email,max=254"`
	PhoneNumber     *string      `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	AgentType       *string      `json:"agentType,omitempty"`
	Jurisdiction    *string      `json:"jurisdiction,omitempty" validate:"omitempty,max=100"`
	Specializations []string     `json:"specializations,omitempty" validate:"omitempty,dive,min=1,max=100"`
	SuperiorID      OptionalUUID `json:"superiorId,omitzero"`
	IsActive        *bool        `json:"isActive,omitempty"`
	Password        *string      `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
}

// ListAgentsRequest contains query parameters for the agent list.
type ListAgentsRequest struct {
	Search       string `form:"search"`
	AgentType    string `form:"agentType"`
	Jurisdiction string `form:"jurisdiction"`
	SortOrder    string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page         int    `form:"page"`
	PageSize     int    `form:"pageSize"`
}

// AgentResponse represents an agent in API responses.
type AgentResponse struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	PhoneNumber     *string    `json:"phoneNumber,omitempty"`
	AgentType       string     `json:"agentType"`
	Jurisdiction    *string    `json:"jurisdiction,omitempty"`
	Specializations []string   `json:"specializations"`
	SuperiorID      *uuid.UUID `json:"superiorId,omitempty"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
}

// AgentDetailResponse is an agent with its direct hierarchy attached.
type AgentDetailResponse struct {
	AgentResponse
	Superior     *AgentResponse  `json:"superior,omitempty"`
	Subordinates []AgentResponse `json:"subordinates"`
}

// AgentListResponse wraps a paginated list of agents.
type AgentListResponse struct {
	Items      []AgentResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// AgentTypesResponse lists the rank hierarchy, highest first.
type AgentTypesResponse struct {
	Types []string `json:"types"`
}

// EligibleSubordinatesResponse lists the agent types allowed to report to the
// given type.
type EligibleSubordinatesResponse struct {
	AgentType string   `json:"agentType"`
	Eligible  []string `json:"eligible"`
}
