package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type UserFeedRepo interface {
  // ReadFeedForUser returns a user's cached feed items, highest score first.
  ReadFeedForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit, skip int) ([]*types.UserFeedItem, error)
  // BulkUpsertFeedItems writes scored items, refreshing rows for events that were
  // already in the feed in place.
  BulkUpsertFeedItems(ctx context.Context, tx *gorm.DB, items []*types.UserFeedItem) error
  // ClearFeedForUser removes all feed items for a user. Called before a full
  // recomputation so stale scores never mix with new ones.
  ClearFeedForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
  // RemoveEventFromFeed drops a single event from a user's feed. Called after the
  // user RSVPs, since the event no longer needs recommending.
  RemoveEventFromFeed(ctx context.Context, tx *gorm.DB, userID, eventID uuid.UUID) error
}

type userFeedRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserFeedRepo(db *gorm.DB, baseLog *logger.Logger) UserFeedRepo {
  repoLog := baseLog.With("repo", "UserFeedRepo")
  return &userFeedRepo{db: db, log: repoLog}
}

func (fr *userFeedRepo) ReadFeedForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit, skip int) ([]*types.UserFeedItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  if limit <= 0 {
    limit = 50
  }
  if skip < 0 {
    skip = 0
  }

  var results []*types.UserFeedItem
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("score DESC").
    Offset(skip).
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (fr *userFeedRepo) BulkUpsertFeedItems(ctx context.Context, tx *gorm.DB, items []*types.UserFeedItem) error {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  if len(items) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"score", "reasons", "computed_at", "expires_at"}),
    }).
    Create(&items).Error
}

func (fr *userFeedRepo) ClearFeedForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  return transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Delete(&types.UserFeedItem{}).Error
}

func (fr *userFeedRepo) RemoveEventFromFeed(ctx context.Context, tx *gorm.DB, userID, eventID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  return transaction.WithContext(ctx).
    Where("user_id = ? AND event_id = ?", userID, eventID).
    Delete(&types.UserFeedItem{}).Error
}
