package ports

import (
	"context"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetSeller(ctx context.Context, id string) (*domain.User, error)
	ListSellers(ctx context.Context) ([]*domain.User, error)
	HasAdmin(ctx context.Context) (bool, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id, hashed string) error
	SetApproved(ctx context.Context, id string, approved bool) error
	SetSuspended(ctx context.Context, id string, suspended bool) error
	SetTicketLimit(ctx context.Context, id string, limit int) error
	DeleteSellerCascade(ctx context.Context, id string) error
}
