package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type EventRepo interface {
  Create(ctx context.Context, tx *gorm.DB, events []*types.Event) ([]*types.Event, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, eventIDs []uuid.UUID) ([]*types.Event, error)
  Update(ctx context.Context, tx *gorm.DB, event *types.Event) error
  // ReadUpcomingPublished returns public, published events that have not started yet,
  // soonest first, capped at limit. These are the candidates the feed scorer sees.
  ReadUpcomingPublished(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Event, error)
  IncrementRSVPCount(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, delta int) error
  IncrementSavedByCount(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, delta int) error
}

type eventRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
  repoLog := baseLog.With("repo", "EventRepo")
  return &eventRepo{db: db, log: repoLog}
}

func (er *eventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.Event) ([]*types.Event, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  if len(events) == 0 {
    return []*types.Event{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&events).Error; err != nil {
    return nil, err
  }
  return events, nil
}

func (er *eventRepo) GetByIDs(ctx context.Context, tx *gorm.DB, eventIDs []uuid.UUID) ([]*types.Event, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var results []*types.Event
  if len(eventIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", eventIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (er *eventRepo) Update(ctx context.Context, tx *gorm.DB, event *types.Event) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  if event == nil || event.ID == uuid.Nil {
    return gorm.ErrRecordNotFound
  }

  return transaction.WithContext(ctx).Save(event).Error
}

func (er *eventRepo) ReadUpcomingPublished(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Event, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  if limit <= 0 {
    limit = 500
  }

  var results []*types.Event
  if err := transaction.WithContext(ctx).
    Where("lifecycle_status = ?", types.EventLifecyclePublished).
    Where("status = ?", types.EventStatusUpcoming).
    Where("visibility = ?", types.EventVisibilityPublic).
    Where("start_at > ?", time.Now()).
    Order("start_at ASC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (er *eventRepo) IncrementRSVPCount(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, delta int) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Event{}).
    Where("id = ?", eventID).
    UpdateColumn("rsvp_count", gorm.Expr("GREATEST(rsvp_count + ?, 0)", delta)).Error
}

func (er *eventRepo) IncrementSavedByCount(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, delta int) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Event{}).
    Where("id = ?", eventID).
    UpdateColumn("saved_by_count", gorm.Expr("GREATEST(saved_by_count + ?, 0)", delta)).Error
}
