package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type EventParticipantRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, participant *types.EventParticipant) (*types.EventParticipant, error)
  GetByEventAndUser(ctx context.Context, tx *gorm.DB, eventID, userID uuid.UUID) (*types.EventParticipant, error)
  // ReadByUser returns a user's RSVPs across all events. With activeOnly set,
  // Cancelled rows are excluded.
  ReadByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, activeOnly bool) ([]*types.EventParticipant, error)
  // ReadGoingByUserIDs returns Going participations for a batch of users.
  ReadGoingByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.EventParticipant, error)
}

type eventParticipantRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewEventParticipantRepo(db *gorm.DB, baseLog *logger.Logger) EventParticipantRepo {
  repoLog := baseLog.With("repo", "EventParticipantRepo")
  return &eventParticipantRepo{db: db, log: repoLog}
}

func (pr *eventParticipantRepo) Upsert(ctx context.Context, tx *gorm.DB, participant *types.EventParticipant) (*types.EventParticipant, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if participant == nil {
    return nil, gorm.ErrRecordNotFound
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"status", "quantity", "updated_at"}),
    }).
    Create(participant).Error; err != nil {
    return nil, err
  }
  return participant, nil
}

func (pr *eventParticipantRepo) GetByEventAndUser(ctx context.Context, tx *gorm.DB, eventID, userID uuid.UUID) (*types.EventParticipant, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.EventParticipant
  err := transaction.WithContext(ctx).
    Where("event_id = ? AND user_id = ?", eventID, userID).
    First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (pr *eventParticipantRepo) ReadByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, activeOnly bool) ([]*types.EventParticipant, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  query := transaction.WithContext(ctx).Where("user_id = ?", userID)
  if activeOnly {
    query = query.Where("status <> ?", types.ParticipantCancelled)
  }

  var results []*types.EventParticipant
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *eventParticipantRepo) ReadGoingByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.EventParticipant, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.EventParticipant
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id IN ?", userIDs).
    Where("status = ?", types.ParticipantGoing).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
