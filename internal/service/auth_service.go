package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
)

// AuthService is the access gate: it validates access codes against the
// fixed allowlist, enforces the one-code-per-email binding, and owns the
// single authenticated session for the process lifetime.
type AuthService interface {
	// ValidateAccessCode reports whether the code, uppercased, exactly
	// matches an allowlist entry. No partial matching.
	ValidateAccessCode(code string) bool
	// Login runs the full gate: allowlist check, binding conflict check,
	// binding record, session synthesis and persistence. The password is
	// accepted but never verified; the portal is access-code gated only.
	Login(email, username, password, code string) (*model.User, error)
	Logout() error
	// RestoreSession reloads the persisted session at startup and returns
	// it, or nil when none is stored.
	RestoreSession() (*model.User, error)
	CurrentSession() *model.User
	IsAuthenticated() bool
}

type authService struct {
	allowlist []string
	codeRepo  repository.AccessCodeRepository
	sessions  repository.SessionRepository

	mu      sync.RWMutex
	current *model.User
}

func NewAuthService(allowlist []string, codeRepo repository.AccessCodeRepository, sessions repository.SessionRepository) AuthService {
	normalized := make([]string, len(allowlist))
	for i, code := range allowlist {
		normalized[i] = strings.ToUpper(code)
	}
	return &authService{
		allowlist: normalized,
		codeRepo:  codeRepo,
		sessions:  sessions,
	}
}

func (s *authService) ValidateAccessCode(code string) bool {
	normalized := strings.ToUpper(code)
	for _, valid := range s.allowlist {
		if valid == normalized {
			return true
		}
	}
	return false
}

// usedByDifferentEmail reports a conflict when the code is already bound to
// another email. First stored match wins; duplicates are never consulted.
func (s *authService) usedByDifferentEmail(code, email string) (bool, error) {
	existing, err := s.codeRepo.FindByCode(code)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.Email != email, nil
}

func (s *authService) Login(email, username, password, code string) (*model.User, error) {
	_ = password

	if !s.ValidateAccessCode(code) {
		log.Info().Str("email", email).Msg("Login rejected: invalid access code")
		return nil, model.ErrInvalidAccessCode
	}

	conflict, err := s.usedByDifferentEmail(code, email)
	if err != nil {
		return nil, fmt.Errorf("checking access code binding: %w", err)
	}
	if conflict {
		log.Info().Str("email", email).Msg("Login rejected: access code bound to another email")
		return nil, model.ErrAccessCodeConflict
	}

	if err := s.codeRepo.Append(code, email); err != nil {
		return nil, fmt.Errorf("recording access code binding: %w", err)
	}

	user := &model.User{
		ID:         fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Username:   username,
		Email:      email,
		AccessCode: code,
		Role:       model.RoleUser,
	}

	if err := s.sessions.Save(user); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	log.Info().Str("user_id", user.ID).Str("email", email).Msg("Login successful")
	return user, nil
}

func (s *authService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	log.Info().Msg("Logged out")
	return nil
}

func (s *authService) RestoreSession() (*model.User, error) {
	user, err := s.sessions.Load()
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	if user != nil {
		log.Info().Str("user_id", user.ID).Msg("Session restored")
	}
	return user, nil
}

func (s *authService) CurrentSession() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *authService) IsAuthenticated() bool {
	return s.CurrentSession() != nil
}
