package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"prospecttrack/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string) (string, error)
}

// Service contains all business logic for authentication. User IDs are
// opaque UUID strings shared with the document store.
type Service struct {
	users       UserRepositoryInterface
	jwt         jwtService
	provisioner Provisioner
}

func NewService(users UserRepositoryInterface, jwt jwtService, provisioner Provisioner) *Service {
	return &Service{users: users, jwt: jwt, provisioner: provisioner}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Seed the favorites document up front. Failure is tolerated: the
	// toggle path lazily initializes the document anyway.
	if s.provisioner != nil {
		if err := s.provisioner.ProvisionUser(ctx, user.ID, user.Email); err != nil {
			log.Printf("provision_user_failed user_id=%s error=%q", user.ID, err.Error())
		}
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &SessionResponse{
		User:        UserPublic{ID: user.ID, Name: user.Name, Email: user.Email},
		AccessToken: token,
	}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &SessionResponse{
		User:        UserPublic{ID: user.ID, Name: user.Name, Email: user.Email},
		AccessToken: token,
	}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*UserPublic, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserPublic{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// HandleWebhookEvent applies an identity provider notification to the
// document store. Unknown event types are logged and acknowledged so the
// provider does not retry them forever.
func (s *Service) HandleWebhookEvent(ctx context.Context, event WebhookEvent) error {
	switch event.Type {
	case "user.created":
		return s.provisioner.ProvisionUser(ctx, event.Data.ID, normalizeEmail(event.Data.Email))
	case "user.deleted":
		return s.provisioner.RemoveUser(ctx, event.Data.ID)
	default:
		log.Printf("webhook_event_ignored type=%s", event.Type)
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
