package auth

import (
	"context"

	"prospecttrack/internal/domain"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Provisioner seeds or removes the per-user favorites document when an
// identity appears or disappears.
type Provisioner interface {
	ProvisionUser(ctx context.Context, userID, email string) error
	RemoveUser(ctx context.Context, userID string) error
}
