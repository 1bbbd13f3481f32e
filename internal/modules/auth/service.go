package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
	jwtsvc "fitsphere/internal/pkg/jwt"
)

type Service struct {
	users    UserRepository
	jwt      *jwtsvc.Service
	notifier Notifier
}

func NewService(users UserRepository, jwt *jwtsvc.Service, notifier Notifier) *Service {
	return &Service{users: users, jwt: jwt, notifier: notifier}
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.notifier.Notify(ctx, domain.NotifNewUser, fmt.Sprintf("New user registered: %s", u.Email))

	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	return s.login(ctx, req, "")
}

// AdminLogin authenticates like Login but rejects non-admin accounts, so the
// admin panel cannot be entered with a customer token by accident.
func (s *Service) AdminLogin(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	return s.login(ctx, req, domain.RoleAdmin)
}

func (s *Service) login(ctx context.Context, req LoginRequest, requiredRole domain.Role) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrUserDisabled
	}
	if requiredRole != "" && u.Role != requiredRole {
		return nil, ErrNotAdmin
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID); err != nil {
		log.Printf("auth: last_login update failed for %s: %v", u.ID, err)
	}

	return s.issue(u)
}

func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) issue(u *domain.User) (*TokenResponse, error) {
	token, err := s.jwt.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        u,
	}, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account on first start so a
// fresh deployment is administrable. No-op when the email already exists.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.users.GetByEmail(ctx, strings.ToLower(email)); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(email),
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil && !isDuplicate(err) {
		return err
	}
	return nil
}
