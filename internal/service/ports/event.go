package ports

import (
	"context"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	SetActive(ctx context.Context, id string, active bool) error
	DeleteCascade(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*domain.Event, error)
}
