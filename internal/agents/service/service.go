package service

import (
	"context"
	"strings"
	"time"

	"lexportal_backend/internal/agents/domain"
	"lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/agents/transport"
	"lexportal_backend/platform/apperr"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/phone"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Service provides business logic for agents and the staff hierarchy.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new agents service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create validates and persists a new agent. The hierarchy rule is enforced
// here, not just in the UI: a superior must outrank the new agent.
func (s *Service) Create(ctx context.Context, req transport.CreateAgentRequest) (transport.AgentResponse, error) {
	agentType := domain.AgentType(req.AgentType)
	if !domain.IsValidType(agentType) {
		return transport.AgentResponse{}, apperr.Validation("unknown agent type")
	}

	if req.SuperiorID != nil {
		if err := s.checkSuperior(ctx, *req.SuperiorID, agentType); err != nil {
			return transport.AgentResponse{}, err
		}
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return transport.AgentResponse{}, apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
		}
		passwordHash = &hash
	}

	params := repository.CreateParams{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           normalizeEmail(req.Email),
		PhoneNumber:     normalizePhonePtr(req.PhoneNumber),
		AgentType:       string(agentType),
		Jurisdiction:    req.Jurisdiction,
		Specializations: normalizeSpecializations(req.Specializations),
		SuperiorID:      req.SuperiorID,
		PasswordHash:    passwordHash,
	}

	agent, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.AgentResponse{}, err
	}

	s.log.Info("agent created", "id", agent.ID, "email", agent.Email, "agentType", agent.AgentType)
	return toResponse(agent), nil
}

// GetByID retrieves an agent with its superior and subordinates attached.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.AgentDetailResponse, error) {
	agent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.AgentDetailResponse{}, err
	}

	detail := transport.AgentDetailResponse{
		AgentResponse: toResponse(agent),
		Subordinates:  []transport.AgentResponse{},
	}

	if agent.SuperiorID != nil {
		superior, err := s.repo.GetByID(ctx, *agent.SuperiorID)
		if err == nil {
			resp := toResponse(superior)
			detail.Superior = &resp
		} else if !apperr.Is(err, apperr.KindNotFound) {
			return transport.AgentDetailResponse{}, err
		}
	}

	subordinates, err := s.repo.ListSubordinates(ctx, id)
	if err != nil {
		return transport.AgentDetailResponse{}, err
	}
	for _, sub := range subordinates {
		detail.Subordinates = append(detail.Subordinates, toResponse(sub))
	}

	return detail, nil
}

// List retrieves agents with query-level search, filters, and pagination.
func (s *Service) List(ctx context.Context, req transport.ListAgentsRequest) (transport.AgentListResponse, error) {
	page, pageSize := normalizePaging(req.Page, req.PageSize)

	sortOrder := req.SortOrder
	if sortOrder == "" {
		sortOrder = "asc"
	}

	params := repository.ListParams{
		Search:       strings.TrimSpace(req.Search),
		AgentType:    filterValue(req.AgentType),
		Jurisdiction: filterValue(req.Jurisdiction),
		SortOrder:    sortOrder,
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
	}

	agents, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.AgentListResponse{}, err
	}

	return toListResponse(agents, total, page, pageSize), nil
}

// Update applies a partial update, re-validating the hierarchy rule against
// the effective agent type and superior.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateAgentRequest) (transport.AgentResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.AgentResponse{}, err
	}

	effectiveType := domain.AgentType(current.AgentType)
	if req.AgentType != nil {
		effectiveType = domain.AgentType(*req.AgentType)
		if !domain.IsValidType(effectiveType) {
			return transport.AgentResponse{}, apperr.Validation("unknown agent type")
		}
	}

	effectiveSuperior := current.SuperiorID
	if req.SuperiorID.Set {
		effectiveSuperior = req.SuperiorID.Value
	}
	if effectiveSuperior != nil {
		if *effectiveSuperior == id {
			return transport.AgentResponse{}, apperr.Validation("agent cannot be its own superior")
		}
		if err := s.checkSuperior(ctx, *effectiveSuperior, effectiveType); err != nil {
			return transport.AgentResponse{}, err
		}
	}
	if req.AgentType != nil && string(effectiveType) != current.AgentType {
		subordinates, err := s.repo.ListSubordinates(ctx, id)
		if err != nil {
			return transport.AgentResponse{}, err
		}
		if err := checkSubordinates(effectiveType, subordinates); err != nil {
			return transport.AgentResponse{}, err
		}
	}

	params := repository.UpdateParams{
		ID:              id,
		FirstName:       trimPtr(req.FirstName),
		LastName:        trimPtr(req.LastName),
		PhoneNumber:     normalizePhonePtr(req.PhoneNumber),
		Jurisdiction:    req.Jurisdiction,
		Specializations: normalizeSpecializations(req.Specializations),
		SuperiorID:      req.SuperiorID.Value,
		SuperiorSet:     req.SuperiorID.Set,
		IsActive:        req.IsActive,
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		params.Email = &email
	}
	if req.AgentType != nil {
		agentType := string(effectiveType)
		params.AgentType = &agentType
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return transport.AgentResponse{}, apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
		}
		params.PasswordHash = &hash
	}

	agent, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.AgentResponse{}, err
	}

	s.log.Info("agent updated", "id", agent.ID)
	return toResponse(agent), nil
}

// Delete removes an agent by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("agent deleted", "id", id)
	return nil
}

// Types returns the full rank list, highest first.
func (s *Service) Types() transport.AgentTypesResponse {
	types := domain.AllTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return transport.AgentTypesResponse{Types: out}
}

// EligibleSubordinates returns the agent types allowed to report to the
// given type.
func (s *Service) EligibleSubordinates(agentType string) (transport.EligibleSubordinatesResponse, error) {
	t := domain.AgentType(agentType)
	if !domain.IsValidType(t) {
		return transport.EligibleSubordinatesResponse{}, apperr.NotFound("unknown agent type")
	}

	eligible := domain.EligibleSubordinates(t)
	out := make([]string, len(eligible))
	for i, e := range eligible {
		out[i] = string(e)
	}

	return transport.EligibleSubordinatesResponse{
		AgentType: string(t),
		Eligible:  out,
	}, nil
}

// checkSuperior verifies the candidate superior exists and outranks the
// subordinate type.
func (s *Service) checkSuperior(ctx context.Context, superiorID uuid.UUID, subordinateType domain.AgentType) error {
	superior, err := s.repo.GetByID(ctx, superiorID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return apperr.Validation("superior does not exist")
		}
		return err
	}

	if !domain.CanSupervise(domain.AgentType(superior.AgentType), subordinateType) {
		return apperr.Validation("superior must hold a higher rank than the agent")
	}

	return nil
}

// checkSubordinates verifies that a new agent type still outranks every
// existing subordinate, so a demotion cannot invert the hierarchy.
func checkSubordinates(newType domain.AgentType, subordinates []repository.Agent) error {
	for _, sub := range subordinates {
		if !domain.CanSupervise(newType, domain.AgentType(sub.AgentType)) {
			return apperr.Validation("agent type must outrank existing subordinates")
		}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizePhonePtr(number *string) *string {
	if number == nil {
		return nil
	}
	normalized := phone.NormalizeE164(*number)
	return &normalized
}

func normalizeSpecializations(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// filterValue treats "All" the same as no filter, matching the list screens.
func filterValue(value string) string {
	if strings.EqualFold(value, "All") {
		return ""
	}
	return strings.TrimSpace(value)
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func toResponse(a repository.Agent) transport.AgentResponse {
	specializations := a.Specializations
	if specializations == nil {
		specializations = []string{}
	}
	return transport.AgentResponse{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		PhoneNumber:     a.PhoneNumber,
		AgentType:       a.AgentType,
		Jurisdiction:    a.Jurisdiction,
		Specializations: specializations,
		SuperiorID:      a.SuperiorID,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}

func toListResponse(agents []repository.Agent, total, page, pageSize int) transport.AgentListResponse {
	items := make([]transport.AgentResponse, len(agents))
	for i, agent := range agents {
		items[i] = toResponse(agent)
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return transport.AgentListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
