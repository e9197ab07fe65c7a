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

type fakeVenueStore struct {
	repos.VenueRepo
	created []*types.Venue
	byID    []*types.Venue
}

func (f *fakeVenueStore) Create(ctx context.Context, tx *gorm.DB, venues []*types.Venue) ([]*types.Venue, error) {
	f.created = append(f.created, venues...)
	return venues, nil
}

func (f *fakeVenueStore) GetByIDs(ctx context.Context, tx *gorm.DB, venueIDs []uuid.UUID) ([]*types.Venue, error) {
	return f.byID, nil
}

func TestCreateVenue(t *testing.T) {
	store := &fakeVenueStore{}
	svc := NewVenueService(nil, logger.NewNop(), store)

	venue, err := svc.CreateVenue(authedCtx(uuid.New()), CreateVenueInput{
		Name:     "Warehouse 9",
		City:     "Berlin",
		Capacity: 400,
	})
	if err != nil {
		t.Fatalf("CreateVenue: %v", err)
	}
	if venue.Name != "Warehouse 9" || venue.Capacity != 400 {
		t.Fatalf("venue fields: %+v", venue)
	}
	if len(store.created) != 1 {
		t.Fatalf("persisted venues: want=1 got=%d", len(store.created))
	}
}

func TestCreateVenueValidation(t *testing.T) {
	svc := NewVenueService(nil, logger.NewNop(), &fakeVenueStore{})

	if _, err := svc.CreateVenue(context.Background(), CreateVenueInput{Name: "x"}); err == nil {
		t.Fatalf("expected error without authentication")
	}
	if _, err := svc.CreateVenue(authedCtx(uuid.New()), CreateVenueInput{}); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if _, err := svc.CreateVenue(authedCtx(uuid.New()), CreateVenueInput{Name: "x", Capacity: -1}); err == nil {
		t.Fatalf("expected error for negative capacity")
	}
}

func TestGetVenueNotFound(t *testing.T) {
	svc := NewVenueService(nil, logger.NewNop(), &fakeVenueStore{})

	if _, err := svc.GetVenue(context.Background(), uuid.New()); err == nil {
		t.Fatalf("expected error for unknown venue")
	}
}
