package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/repos"
	"github.com/gatherle/gatherle-backend/internal/types"
)

type fakeEventStore struct {
	repos.EventRepo
	events      []*types.Event
	updated     []*types.Event
	rsvpDeltas  []int
	savedDeltas []int
}

func (f *fakeEventStore) IncrementRSVPCount(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, delta int) error {
	f.rsvpDeltas = append(f.rsvpDeltas, delta)
	return nil
}

func (f *fakeEventStore) IncrementSavedByCount(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, delta int) error {
	f.savedDeltas = append(f.savedDeltas, delta)
	return nil
}

func (f *fakeEventStore) GetByIDs(ctx context.Context, tx *gorm.DB, eventIDs []uuid.UUID) ([]*types.Event, error) {
	want := make(map[uuid.UUID]bool, len(eventIDs))
	for _, id := range eventIDs {
		want[id] = true
	}
	var out []*types.Event
	for _, e := range f.events {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeParticipantStore struct {
	repos.EventParticipantRepo
	existing *types.EventParticipant
	upserts  []*types.EventParticipant
}

func (f *fakeParticipantStore) GetByEventAndUser(ctx context.Context, tx *gorm.DB, eventID, userID uuid.UUID) (*types.EventParticipant, error) {
	return f.existing, nil
}

func (f *fakeParticipantStore) Upsert(ctx context.Context, tx *gorm.DB, participant *types.EventParticipant) (*types.EventParticipant, error) {
	f.upserts = append(f.upserts, participant)
	return participant, nil
}

func TestRsvpRejectsInvalidInput(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	svc := NewParticipationService(
		nil,
		logger.NewNop(),
		&fakeParticipantStore{},
		&fakeEventStore{},
		&fakeFeedRepo{},
		&fakeRecService{},
	)

	if _, err := svc.Rsvp(context.Background(), eventID, types.ParticipantGoing); err == nil {
		t.Fatalf("expected error without authentication")
	}
	if _, err := svc.Rsvp(authedCtx(userID), eventID, "Maybe"); err == nil {
		t.Fatalf("expected error for unknown rsvp status")
	}
	// CheckedIn is set at the door, not by the attendee.
	if _, err := svc.Rsvp(authedCtx(userID), eventID, types.ParticipantCheckedIn); err == nil {
		t.Fatalf("expected error for checked-in status")
	}
	if _, err := svc.Rsvp(authedCtx(userID), eventID, types.ParticipantGoing); err == nil {
		t.Fatalf("expected error for unknown event")
	}
}

func TestRsvpNewBumpsCount(t *testing.T) {
	userID := uuid.New()
	event := &types.Event{ID: uuid.New()}
	events := &fakeEventStore{events: []*types.Event{event}}
	rec := &fakeRecService{}
	svc := NewParticipationService(
		nil,
		logger.NewNop(),
		&fakeParticipantStore{},
		events,
		&fakeFeedRepo{},
		rec,
	)

	if _, err := svc.Rsvp(authedCtx(userID), event.ID, types.ParticipantGoing); err != nil {
		t.Fatalf("Rsvp: %v", err)
	}
	if len(events.rsvpDeltas) != 1 || events.rsvpDeltas[0] != 1 {
		t.Fatalf("rsvp count deltas: %v", events.rsvpDeltas)
	}
	if len(rec.rsvpd) != 1 || rec.rsvpd[0] != userID {
		t.Fatalf("recompute trigger: %v", rec.rsvpd)
	}
}

func TestRsvpExistingActiveDoesNotBumpCount(t *testing.T) {
	userID := uuid.New()
	event := &types.Event{ID: uuid.New()}
	events := &fakeEventStore{events: []*types.Event{event}}
	participants := &fakeParticipantStore{existing: &types.EventParticipant{
		ID:      uuid.New(),
		EventID: event.ID,
		UserID:  userID,
		Status:  types.ParticipantGoing,
	}}
	svc := NewParticipationService(
		nil,
		logger.NewNop(),
		participants,
		events,
		&fakeFeedRepo{},
		&fakeRecService{},
	)

	// Switching Going to Interested updates the row, not the counter.
	if _, err := svc.Rsvp(authedCtx(userID), event.ID, types.ParticipantInterested); err != nil {
		t.Fatalf("Rsvp: %v", err)
	}
	if len(events.rsvpDeltas) != 0 {
		t.Fatalf("rsvp count deltas: %v", events.rsvpDeltas)
	}
	if len(participants.upserts) != 1 {
		t.Fatalf("upserts: want=1 got=%d", len(participants.upserts))
	}
}

func TestCancelRsvpWithoutExistingIsANoOp(t *testing.T) {
	userID := uuid.New()
	rec := &fakeRecService{}
	svc := NewParticipationService(
		nil,
		logger.NewNop(),
		&fakeParticipantStore{},
		&fakeEventStore{},
		&fakeFeedRepo{},
		rec,
	)

	if err := svc.CancelRsvp(authedCtx(userID), uuid.New()); err != nil {
		t.Fatalf("CancelRsvp: %v", err)
	}
	if len(rec.rsvpd) != 0 {
		t.Fatalf("no recompute expected, got %v", rec.rsvpd)
	}
}
