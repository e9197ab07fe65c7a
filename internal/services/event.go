package services

import (
  "context"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type CreateEventInput struct {
  Title         string        `json:"title"`
  Description   string        `json:"description,omitempty"`
  OrgID         *uuid.UUID    `json:"org_id,omitempty"`
  VenueID       *uuid.UUID    `json:"venue_id,omitempty"`
  Visibility    string        `json:"visibility,omitempty"`
  Categories    []string      `json:"categories,omitempty"`
  StartAt       time.Time     `json:"start_at"`
  EndAt         *time.Time    `json:"end_at,omitempty"`
}

type EventService interface {
  CreateEvent(ctx context.Context, input CreateEventInput) (*types.Event, error)
  GetEvent(ctx context.Context, eventID uuid.UUID) (*types.Event, error)
  // PublishEvent makes a draft event visible to candidate queries. Feeds pick it
  // up lazily on their next recompute.
  PublishEvent(ctx context.Context, eventID uuid.UUID) (*types.Event, error)
  ReadUpcoming(ctx context.Context, limit int) ([]*types.Event, error)
}

type eventService struct {
  db        *gorm.DB
  log       *logger.Logger
  eventRepo repos.EventRepo
  recSvc    RecommendationService
}

func NewEventService(db *gorm.DB, baseLog *logger.Logger, eventRepo repos.EventRepo, recSvc RecommendationService) EventService {
  return &eventService{
    db:        db,
    log:       baseLog.With("service", "EventService"),
    eventRepo: eventRepo,
    recSvc:    recSvc,
  }
}

func (es *eventService) CreateEvent(ctx context.Context, input CreateEventInput) (*types.Event, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  if input.Title == "" {
    return nil, fmt.Errorf("missing title")
  }
  if input.StartAt.IsZero() {
    return nil, fmt.Errorf("missing start_at")
  }

  visibility := types.EventVisibility(input.Visibility)
  switch visibility {
  case types.EventVisibilityPublic, types.EventVisibilityUnlisted, types.EventVisibilityPrivate:
  case "":
    visibility = types.EventVisibilityPublic
  default:
    return nil, fmt.Errorf("invalid visibility %q", input.Visibility)
  }

  event := &types.Event{
    ID:              uuid.New(),
    Title:           input.Title,
    Description:     input.Description,
    CreatedByUserID: rd.UserID,
    OrgID:           input.OrgID,
    VenueID:         input.VenueID,
    LifecycleStatus: types.EventLifecycleDraft,
    Status:          types.EventStatusUpcoming,
    Visibility:      visibility,
    Categories:      datatypes.NewJSONSlice(dedupe(input.Categories)),
    StartAt:         input.StartAt,
    EndAt:           input.EndAt,
  }

  if _, err := es.eventRepo.Create(ctx, nil, []*types.Event{event}); err != nil {
    return nil, fmt.Errorf("Failed to create event: %w", err)
  }
  return event, nil
}

func (es *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*types.Event, error) {
  events, err := es.eventRepo.GetByIDs(ctx, nil, []uuid.UUID{eventID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load event: %w", err)
  }
  if len(events) == 0 {
    return nil, fmt.Errorf("event not found")
  }
  return events[0], nil
}

func (es *eventService) PublishEvent(ctx context.Context, eventID uuid.UUID) (*types.Event, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }

  event, err := es.GetEvent(ctx, eventID)
  if err != nil {
    return nil, err
  }
  if event.CreatedByUserID != rd.UserID {
    return nil, fmt.Errorf("not authorized to publish this event")
  }
  if event.LifecycleStatus == types.EventLifecyclePublished {
    return event, nil
  }

  event.LifecycleStatus = types.EventLifecyclePublished
  if uErr := es.eventRepo.Update(ctx, nil, event); uErr != nil {
    return nil, fmt.Errorf("Failed to publish event: %w", uErr)
  }

  es.recSvc.OnEventPublished(event.ID)
  return event, nil
}

func (es *eventService) ReadUpcoming(ctx context.Context, limit int) ([]*types.Event, error) {
  events, err := es.eventRepo.ReadUpcomingPublished(ctx, nil, limit)
  if err != nil {
    return nil, fmt.Errorf("Failed to read upcoming events: %w", err)
  }
  return events, nil
}
