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

type ParticipationService interface {
  // Rsvp records the authenticated user's RSVP. The event leaves the user's own
  // feed immediately; the full recompute runs in the background.
  Rsvp(ctx context.Context, eventID uuid.UUID, status types.ParticipantStatus) (*types.EventParticipant, error)
  CancelRsvp(ctx context.Context, eventID uuid.UUID) error
  ReadMine(ctx context.Context) ([]*types.EventParticipant, error)
}

type participationService struct {
  db              *gorm.DB
  log             *logger.Logger
  participantRepo repos.EventParticipantRepo
  eventRepo       repos.EventRepo
  feedRepo        repos.UserFeedRepo
  recSvc          RecommendationService
}

func NewParticipationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  participantRepo repos.EventParticipantRepo,
  eventRepo repos.EventRepo,
  feedRepo repos.UserFeedRepo,
  recSvc RecommendationService,
) ParticipationService {
  return &participationService{
    db:              db,
    log:             baseLog.With("service", "ParticipationService"),
    participantRepo: participantRepo,
    eventRepo:       eventRepo,
    feedRepo:        feedRepo,
    recSvc:          recSvc,
  }
}

func (ps *participationService) transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
  if ps.db == nil {
    return fn(nil)
  }
  return ps.db.WithContext(ctx).Transaction(fn)
}

func (ps *participationService) Rsvp(ctx context.Context, eventID uuid.UUID, status types.ParticipantStatus) (*types.EventParticipant, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }

  switch status {
  case "":
    status = types.ParticipantGoing
  case types.ParticipantInterested, types.ParticipantGoing, types.ParticipantWaitlisted:
  default:
    return nil, fmt.Errorf("invalid rsvp status %q", status)
  }

  events, eErr := ps.eventRepo.GetByIDs(ctx, nil, []uuid.UUID{eventID})
  if eErr != nil {
    return nil, fmt.Errorf("Failed to load event: %w", eErr)
  }
  if len(events) == 0 {
    return nil, fmt.Errorf("event not found")
  }

  existing, gErr := ps.participantRepo.GetByEventAndUser(ctx, nil, eventID, rd.UserID)
  if gErr != nil {
    return nil, fmt.Errorf("Failed to check existing rsvp: %w", gErr)
  }

  participant := &types.EventParticipant{
    ID:       uuid.New(),
    EventID:  eventID,
    UserID:   rd.UserID,
    Status:   status,
    Quantity: 1,
  }

  err := ps.transact(ctx, func(tx *gorm.DB) error {
    if _, uErr := ps.participantRepo.Upsert(ctx, tx, participant); uErr != nil {
      return fmt.Errorf("Failed to upsert rsvp: %w", uErr)
    }
    // The counter only moves on a new active RSVP or a revived cancelled one.
    if existing == nil || existing.Status == types.ParticipantCancelled {
      if iErr := ps.eventRepo.IncrementRSVPCount(ctx, tx, eventID, 1); iErr != nil {
        return fmt.Errorf("Failed to bump rsvp count: %w", iErr)
      }
    }
    return nil
  })
  if err != nil {
    return nil, err
  }

  // RSVPd events no longer need recommending.
  if rfErr := ps.feedRepo.RemoveEventFromFeed(ctx, nil, rd.UserID, eventID); rfErr != nil {
    ps.log.Warn("Failed to drop rsvpd event from feed", "user_id", rd.UserID, "event_id", eventID, "error", rfErr)
  }
  ps.recSvc.OnRsvpUpdated(rd.UserID)

  return participant, nil
}

func (ps *participationService) CancelRsvp(ctx context.Context, eventID uuid.UUID) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("not authenticated")
  }

  existing, gErr := ps.participantRepo.GetByEventAndUser(ctx, nil, eventID, rd.UserID)
  if gErr != nil {
    return fmt.Errorf("Failed to check existing rsvp: %w", gErr)
  }
  if existing == nil || existing.Status == types.ParticipantCancelled {
    return nil
  }

  existing.Status = types.ParticipantCancelled
  err := ps.transact(ctx, func(tx *gorm.DB) error {
    if _, uErr := ps.participantRepo.Upsert(ctx, tx, existing); uErr != nil {
      return fmt.Errorf("Failed to cancel rsvp: %w", uErr)
    }
    if iErr := ps.eventRepo.IncrementRSVPCount(ctx, tx, eventID, -1); iErr != nil {
      return fmt.Errorf("Failed to drop rsvp count: %w", iErr)
    }
    return nil
  })
  if err != nil {
    return err
  }

  ps.recSvc.OnRsvpUpdated(rd.UserID)
  return nil
}

func (ps *participationService) ReadMine(ctx context.Context) ([]*types.EventParticipant, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  return ps.participantRepo.ReadByUser(ctx, nil, rd.UserID, true)
}
