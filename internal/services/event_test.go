package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/types"
)

func (f *fakeEventStore) Create(ctx context.Context, tx *gorm.DB, events []*types.Event) ([]*types.Event, error) {
	f.events = append(f.events, events...)
	return events, nil
}

func (f *fakeEventStore) Update(ctx context.Context, tx *gorm.DB, event *types.Event) error {
	f.updated = append(f.updated, event)
	return nil
}

func newEventFixture(store *fakeEventStore) EventService {
	return NewEventService(nil, logger.NewNop(), store, &fakeRecService{})
}

func TestCreateEventStartsAsDraft(t *testing.T) {
	userID := uuid.New()
	store := &fakeEventStore{}
	svc := newEventFixture(store)

	event, err := svc.CreateEvent(authedCtx(userID), CreateEventInput{
		Title:      "Rooftop jazz night",
		Categories: []string{"music", "music", "nightlife"},
		StartAt:    time.Now().Add(10 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.LifecycleStatus != types.EventLifecycleDraft {
		t.Fatalf("lifecycle: want=%s got=%s", types.EventLifecycleDraft, event.LifecycleStatus)
	}
	if event.Visibility != types.EventVisibilityPublic {
		t.Fatalf("visibility default: want=%s got=%s", types.EventVisibilityPublic, event.Visibility)
	}
	if event.CreatedByUserID != userID {
		t.Fatalf("creator: want=%s got=%s", userID, event.CreatedByUserID)
	}
	if got := []string(event.Categories); len(got) != 2 {
		t.Fatalf("categories should dedupe: %v", got)
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := newEventFixture(&fakeEventStore{})
	start := time.Now().Add(24 * time.Hour)

	cases := []struct {
		name  string
		ctx   context.Context
		input CreateEventInput
	}{
		{name: "unauthenticated", ctx: context.Background(), input: CreateEventInput{Title: "x", StartAt: start}},
		{name: "missing title", ctx: authedCtx(uuid.New()), input: CreateEventInput{StartAt: start}},
		{name: "missing start", ctx: authedCtx(uuid.New()), input: CreateEventInput{Title: "x"}},
		{name: "bad visibility", ctx: authedCtx(uuid.New()), input: CreateEventInput{Title: "x", StartAt: start, Visibility: "Secret"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateEvent(tc.ctx, tc.input); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestPublishEventOwnerOnlyAndIdempotent(t *testing.T) {
	ownerID := uuid.New()
	event := &types.Event{
		ID:              uuid.New(),
		Title:           "Boardgame meetup",
		CreatedByUserID: ownerID,
		LifecycleStatus: types.EventLifecycleDraft,
		StartAt:         time.Now().Add(48 * time.Hour),
	}
	store := &fakeEventStore{events: []*types.Event{event}}
	svc := newEventFixture(store)

	if _, err := svc.PublishEvent(authedCtx(uuid.New()), event.ID); err == nil {
		t.Fatalf("non-owner publish should fail")
	}

	published, err := svc.PublishEvent(authedCtx(ownerID), event.ID)
	if err != nil {
		t.Fatalf("PublishEvent: %v", err)
	}
	if published.LifecycleStatus != types.EventLifecyclePublished {
		t.Fatalf("lifecycle: want=%s got=%s", types.EventLifecyclePublished, published.LifecycleStatus)
	}
	if len(store.updated) != 1 {
		t.Fatalf("updates: want=1 got=%d", len(store.updated))
	}

	// Publishing again is a no-op, not an error.
	if _, err := svc.PublishEvent(authedCtx(ownerID), event.ID); err != nil {
		t.Fatalf("republish: %v", err)
	}
	if len(store.updated) != 1 {
		t.Fatalf("republish should not rewrite, updates=%d", len(store.updated))
	}
}
