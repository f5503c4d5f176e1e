package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexportal_backend/internal/clients/repository"
	"lexportal_backend/internal/clients/transport"
	"lexportal_backend/platform/apperr"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/phone"
	"lexportal_backend/platform/sanitize"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

func NewService(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Create(ctx context.Context, req transport.CreateClientRequest) (transport.ClientResponse, error) {
	const op = "clients.service.Create"

	if err := validateByType(req.ClientType, req.FirstName, req.LastName, req.OrganizationName); err != nil {
		return transport.ClientResponse{}, err
	}

	dob, err := parseDatePtr(req.DateOfBirth)
	if err != nil {
		return transport.ClientResponse{}, apperr.Validation("dateOfBirth must be formatted as YYYY-MM-DD").WithOp(op)
	}
	incDate, err := parseDatePtr(req.IncorporationDate)
	if err != nil {
		return transport.ClientResponse{}, apperr.Validation("incorporationDate must be formatted as YYYY-MM-DD").WithOp(op)
	}

	client, err := s.repo.Create(ctx, repository.CreateParams{
		ClientType:              req.ClientType,
		Email:                   normalizeEmail(req.Email),
		PhoneNumber:             normalizePhonePtr(req.PhoneNumber),
		Address:                 sanitize.TextPtr(req.Address),
		CommunicationPreference: req.CommunicationPreference,
		Notes:                   sanitize.TextPtr(req.Notes),
		FirstName:               sanitize.TextPtr(req.FirstName),
		LastName:                sanitize.TextPtr(req.LastName),
		Gender:                  req.Gender,
		DateOfBirth:             dob,
		IDProof:                 req.IDProof,
		OrganizationName:        sanitize.TextPtr(req.OrganizationName),
		RegistrationNumber:      req.RegistrationNumber,
		IncorporationDate:       incDate,
		AuthorizedPerson:        sanitize.TextPtr(req.AuthorizedPerson),
	})
	if err != nil {
		return transport.ClientResponse{}, err
	}

	s.log.InfoContext(ctx, "client created", "client_id", client.ID, "client_type", client.ClientType)
	return toResponse(client), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.ClientDetailResponse, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ClientDetailResponse{}, err
	}

	openTasks, err := s.repo.CountOpenTasks(ctx, id)
	if err != nil {
		return transport.ClientDetailResponse{}, err
	}

	return transport.ClientDetailResponse{
		ClientResponse: toResponse(client),
		OpenTaskCount:  openTasks,
	}, nil
}

func (s *Service) List(ctx context.Context, req transport.ListClientsRequest) (transport.ClientListResponse, error) {
	page, pageSize := normalizePaging(req.Page, req.PageSize)

	clients, total, err := s.repo.List(ctx, repository.ListParams{
		Search:     strings.TrimSpace(req.Search),
		ClientType: filterValue(req.ClientType),
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	})
	if err != nil {
		return transport.ClientListResponse{}, err
	}
	return toListResponse(clients, total, page, pageSize), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateClientRequest) (transport.ClientResponse, error) {
	const op = "clients.service.Update"

	dob, err := parseDatePtr(req.DateOfBirth)
	if err != nil {
		return transport.ClientResponse{}, apperr.Validation("dateOfBirth must be formatted as YYYY-MM-DD").WithOp(op)
	}
	incDate, err := parseDatePtr(req.IncorporationDate)
	if err != nil {
		return transport.ClientResponse{}, apperr.Validation("incorporationDate must be formatted as YYYY-MM-DD").WithOp(op)
	}

	var email *string
	if req.Email != nil {
		e := normalizeEmail(*req.Email)
		email = &e
	}

	client, err := s.repo.Update(ctx, repository.UpdateParams{
		ID:                      id,
		Email:                   email,
		PhoneNumber:             normalizePhonePtr(req.PhoneNumber),
		Address:                 sanitize.TextPtr(req.Address),
		CommunicationPreference: req.CommunicationPreference,
		Notes:                   sanitize.TextPtr(req.Notes),
		FirstName:               sanitize.TextPtr(req.FirstName),
		LastName:                sanitize.TextPtr(req.LastName),
		Gender:                  req.Gender,
		DateOfBirth:             dob,
		IDProof:                 req.IDProof,
		OrganizationName:        sanitize.TextPtr(req.OrganizationName),
		RegistrationNumber:      req.RegistrationNumber,
		IncorporationDate:       incDate,
		AuthorizedPerson:        sanitize.TextPtr(req.AuthorizedPerson),
	})
	if err != nil {
		return transport.ClientResponse{}, err
	}

	s.log.InfoContext(ctx, "client updated", "client_id", client.ID)
	return toResponse(client), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "client deleted", "client_id", id)
	return nil
}

// validateByType enforces the per-type required fields the struct tags
// cannot express: individuals need a first and last name, organizations need
// an organization name.
func validateByType(clientType string, firstName, lastName, orgName *string) error {
	const op = "clients.service.validateByType"

	switch clientType {
	case repository.TypeIndividual:
		if isBlank(firstName) || isBlank(lastName) {
			return apperr.Validation("firstName and lastName are required for individual clients").WithOp(op)
		}
	case repository.TypeOrganization:
		if isBlank(orgName) {
			return apperr.Validation("organizationName is required for organization clients").WithOp(op)
		}
	default:
		return apperr.Validation("clientType must be individual or organization").WithOp(op)
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
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

func filterValue(v string) string {
	if v == "All" {
		return ""
	}
	return v
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// displayName derives the human readable name used in list views.
func displayName(c repository.Client) string {
	if c.ClientType == repository.TypeOrganization {
		if c.OrganizationName != nil {
			return *c.OrganizationName
		}
		return ""
	}
	var parts []string
	if c.FirstName != nil && *c.FirstName != "" {
		parts = append(parts, *c.FirstName)
	}
	if c.LastName != nil && *c.LastName != "" {
		parts = append(parts, *c.LastName)
	}
	return strings.Join(parts, " ")
}

func toResponse(c repository.Client) transport.ClientResponse {
	return transport.ClientResponse{
		ID:                      c.ID.String(),
		ClientType:              c.ClientType,
		DisplayName:             displayName(c),
		Email:                   c.Email,
		PhoneNumber:             c.PhoneNumber,
		Address:                 c.Address,
		CommunicationPreference: c.CommunicationPreference,
		Notes:                   c.Notes,
		FirstName:               c.FirstName,
		LastName:                c.LastName,
		Gender:                  c.Gender,
		DateOfBirth:             formatDatePtr(c.DateOfBirth),
		IDProof:                 c.IDProof,
		OrganizationName:        c.OrganizationName,
		RegistrationNumber:      c.RegistrationNumber,
		IncorporationDate:       formatDatePtr(c.IncorporationDate),
		AuthorizedPerson:        c.AuthorizedPerson,
		CreatedAt:               c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               c.UpdatedAt.Format(time.RFC3339),
	}
}

func toListResponse(clients []repository.Client, total, page, pageSize int) transport.ClientListResponse {
	items := make([]transport.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, toResponse(c))
	}
	totalPages := (total + pageSize - 1) / pageSize
	return transport.ClientListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
