package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports"
)

type EventService struct {
	events ports.EventRepo
	audit  ports.AuditRepo
	logger logger.Logger
}

func NewEventService(events ports.EventRepo, audit ports.AuditRepo, logger logger.Logger) *EventService {
	return &EventService{
		events: events,
		audit:  audit,
		logger: logger,
	}
}

func validateEventInput(input domain.EventInput) error {
	if input.Name == "" || input.Date == "" || input.Time == "" || input.Venue == "" {
		return fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, actorID string, input domain.EventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Date:      input.Date,
		Time:      input.Time,
		Venue:     input.Venue,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.appendAudit(ctx, actorID, domain.AuditEventCreated, event.ID, event.Name)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, actorID, id string, input domain.EventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	event.Name = input.Name
	event.Date = input.Date
	event.Time = input.Time
	event.Venue = input.Venue

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.appendAudit(ctx, actorID, domain.AuditEventUpdated, event.ID, event.Name)

	return event, nil
}

func (s *EventService) Activate(ctx context.Context, actorID, id string) error {
	if err := s.events.SetActive(ctx, id, true); err != nil {
		return fmt.Errorf("activate event: %w", err)
	}
	s.appendAudit(ctx, actorID, domain.AuditEventActivated, id, "")
	return nil
}

// Deactivate closes the issuance gate; tickets already issued stay valid.
func (s *EventService) Deactivate(ctx context.Context, actorID, id string) error {
	if err := s.events.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("deactivate event: %w", err)
	}
	s.appendAudit(ctx, actorID, domain.AuditEventDeactivated, id, "")
	return nil
}

func (s *EventService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.events.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.appendAudit(ctx, actorID, domain.AuditEventDeleted, id, "")

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("actor_id", actorID),
	)

	return nil
}

func (s *EventService) List(ctx context.Context, activeOnly bool) ([]*domain.Event, error) {
	return s.events.List(ctx, activeOnly)
}

func (s *EventService) appendAudit(ctx context.Context, actorID, action, targetID, details string) {
	entry := &domain.AuditLog{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		Action:     action,
		TargetType: "event",
		TargetID:   targetID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.logger.Error("audit append failed",
			logger.String("action", action),
			logger.String("error", err.Error()),
		)
	}
}
