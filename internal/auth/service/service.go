package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	agentsdomain "lexportal_backend/internal/agents/domain"
	agentsrepo "lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/auth/transport"
	"lexportal_backend/platform/apperr"
	"lexportal_backend/platform/config"
	"lexportal_backend/platform/logger"
)

type Service struct {
	agents agentsrepo.Repository
	cfg    config.AuthServiceConfig
	log    *logger.Logger
}

func NewService(agents agentsrepo.Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{agents: agents, cfg: cfg, log: log}
}

// Login verifies credentials and issues a signed access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	const op = "auth.service.Login"

	email := strings.ToLower(strings.TrimSpace(req.Email))

	agent, err := s.agents.GetByEmail(ctx, email)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return transport.LoginResponse{}, apperr.Unauthorized("invalid email or password").WithOp(op)
		}
		return transport.LoginResponse{}, err
	}

	if !agent.IsActive || agent.PasswordHash == nil {
		return transport.LoginResponse{}, apperr.Unauthorized("invalid email or password").WithOp(op)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*agent.PasswordHash), []byte(req.Password)); err != nil {
		s.log.WarnContext(ctx, "failed login attempt", "email", email)
		return transport.LoginResponse{}, apperr.Unauthorized("invalid email or password").WithOp(op)
	}

	roles := rolesFor(agent.AgentType)
	expiresAt := time.Now().Add(s.cfg.GetAccessTokenTTL())

	token, err := s.signToken(agent.ID, roles, expiresAt)
	if err != nil {
		return transport.LoginResponse{}, apperr.Wrap(apperr.KindInternal, "could not issue token", err).WithOp(op)
	}

	s.log.InfoContext(ctx, "agent logged in", "agent_id", agent.ID)
	return transport.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Format(time.RFC3339),
		User:        toAuthUser(agent, roles),
	}, nil
}

// Me returns the profile of the authenticated agent.
func (s *Service) Me(ctx context.Context, agentID uuid.UUID) (transport.AuthUser, error) {
	agent, err := s.agents.GetByID(ctx, agentID)
	if err != nil {
		return transport.AuthUser{}, err
	}
	return toAuthUser(agent, rolesFor(agent.AgentType)), nil
}

// BootstrapOwner seeds the initial owner account when the agents table is
// empty and bootstrap credentials are configured. Safe to call on every
// startup.
func (s *Service) BootstrapOwner(ctx context.Context, cfg config.BootstrapConfig) error {
	const op = "auth.service.BootstrapOwner"

	email := strings.ToLower(strings.TrimSpace(cfg.GetBootstrapAdminEmail()))
	password := cfg.GetBootstrapAdminPassword()
	if email == "" || password == "" {
		return nil
	}

	count, err := s.agents.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "could not hash bootstrap password", err).WithOp(op)
	}
	hashStr := string(hash)

	agent, err := s.agents.Create(ctx, agentsrepo.CreateParams{
		FirstName:       "Portal",
		LastName:        "Owner",
		Email:           email,
		AgentType:       string(agentsdomain.Owner),
		Specializations: []string{},
		PasswordHash:    &hashStr,
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "bootstrap owner created", "agent_id", agent.ID, "email", email)
	return nil
}

func (s *Service) signToken(agentID uuid.UUID, roles []string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   agentID.String(),
		"type":  "access",
		"roles": roles,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}

func rolesFor(agentType string) []string {
	roles := []string{"agent"}
	if agentsdomain.RoleFor(agentsdomain.AgentType(agentType)) == "admin" {
		roles = append(roles, "admin")
	}
	return roles
}

func toAuthUser(agent agentsrepo.Agent, roles []string) transport.AuthUser {
	return transport.AuthUser{
		ID:        agent.ID.String(),
		FirstName: agent.FirstName,
		LastName:  agent.LastName,
		Email:     agent.Email,
		AgentType: agent.AgentType,
		Roles:     roles,
	}
}
