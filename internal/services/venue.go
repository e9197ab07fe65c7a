package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type CreateVenueInput struct {
  Name        string    `json:"name"`
  Address     string    `json:"address,omitempty"`
  City        string    `json:"city,omitempty"`
  Country     string    `json:"country,omitempty"`
  Capacity    int       `json:"capacity,omitempty"`
}

type VenueService interface {
  CreateVenue(ctx context.Context, input CreateVenueInput) (*types.Venue, error)
  GetVenue(ctx context.Context, venueID uuid.UUID) (*types.Venue, error)
}

type venueService struct {
  db        *gorm.DB
  log       *logger.Logger
  venueRepo repos.VenueRepo
}

func NewVenueService(db *gorm.DB, baseLog *logger.Logger, venueRepo repos.VenueRepo) VenueService {
  return &venueService{
    db:        db,
    log:       baseLog.With("service", "VenueService"),
    venueRepo: venueRepo,
  }
}

func (vs *venueService) CreateVenue(ctx context.Context, input CreateVenueInput) (*types.Venue, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  if input.Name == "" {
    return nil, fmt.Errorf("missing name")
  }
  if input.Capacity < 0 {
    return nil, fmt.Errorf("invalid capacity %d", input.Capacity)
  }

  venue := &types.Venue{
    ID:       uuid.New(),
    Name:     input.Name,
    Address:  input.Address,
    City:     input.City,
    Country:  input.Country,
    Capacity: input.Capacity,
  }

  if _, err := vs.venueRepo.Create(ctx, nil, []*types.Venue{venue}); err != nil {
    return nil, fmt.Errorf("Failed to create venue: %w", err)
  }
  return venue, nil
}

func (vs *venueService) GetVenue(ctx context.Context, venueID uuid.UUID) (*types.Venue, error) {
  venues, err := vs.venueRepo.GetByIDs(ctx, nil, []uuid.UUID{venueID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load venue: %w", err)
  }
  if len(venues) == 0 {
    return nil, fmt.Errorf("venue not found")
  }
  return venues[0], nil
}
