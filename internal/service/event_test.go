package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports/mocks"
)

func newEventService(t *testing.T) (*mocks.MockEventRepo, *mocks.MockAuditRepo, *EventService) {
	t.Helper()
	events := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditRepo(t)
	return events, audit, NewEventService(events, audit, newTestLogger(t))
}

func eventInput() domain.EventInput {
	return domain.EventInput{
		Name:  "Summer Party",
		Date:  "2026-09-01",
		Time:  "21:00",
		Venue: "Warehouse 12",
	}
}

func TestEventService_Create_Success(t *testing.T) {
	events, audit, svc := newEventService(t)

	events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	audit.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "admin", eventInput())

	require.NoError(t, err)
	assert.True(t, event.Active, "new events start active")
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Summer Party", event.Name)
}

func TestEventService_Create_MissingFields(t *testing.T) {
	_, _, svc := newEventService(t)

	input := eventInput()
	input.Venue = ""

	_, err := svc.Create(context.Background(), "admin", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_NotFound(t *testing.T) {
	events, _, svc := newEventService(t)

	events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), "admin", "missing", eventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_StillActive(t *testing.T) {
	events, _, svc := newEventService(t)

	events.EXPECT().DeleteCascade(mock.Anything, "e1").Return(domain.ErrEventStillActive)

	err := svc.Delete(context.Background(), "admin", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventStillActive)
}

func TestEventService_Deactivate_Success(t *testing.T) {
	events, audit, svc := newEventService(t)

	events.EXPECT().SetActive(mock.Anything, "e1", false).Return(nil)
	audit.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	err := svc.Deactivate(context.Background(), "admin", "e1")

	require.NoError(t, err)
}

func TestEventService_List_Error(t *testing.T) {
	events, _, svc := newEventService(t)

	events.EXPECT().List(mock.Anything, true).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), true)

	require.Error(t, err)
}
