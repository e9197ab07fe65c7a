package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type NotificationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, notifications []*types.Notification) ([]*types.Notification, error)
  // ReadByUser returns a user's notifications, newest first. With unreadOnly set,
  // read rows are excluded.
  ReadByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, unreadOnly bool, limit int) ([]*types.Notification, error)
  CountUnread(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
  // MarkRead marks a single notification read. The recipient filter keeps users
  // from acking each other's notifications.
  MarkRead(ctx context.Context, tx *gorm.DB, userID, notificationID uuid.UUID) error
  // MarkFollowRequestsRead marks the unread follow-request notifications a given
  // actor produced for a recipient. Used when the recipient responds to the
  // request.
  MarkFollowRequestsRead(ctx context.Context, tx *gorm.DB, recipientUserID, actorUserID uuid.UUID) error
}

type notificationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
  repoLog := baseLog.With("repo", "NotificationRepo")
  return &notificationRepo{db: db, log: repoLog}
}

func (nr *notificationRepo) Create(ctx context.Context, tx *gorm.DB, notifications []*types.Notification) ([]*types.Notification, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  if len(notifications) == 0 {
    return []*types.Notification{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&notifications).Error; err != nil {
    return nil, err
  }
  return notifications, nil
}

func (nr *notificationRepo) ReadByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, unreadOnly bool, limit int) ([]*types.Notification, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  if limit <= 0 {
    limit = 50
  }

  query := transaction.WithContext(ctx).Where("recipient_user_id = ?", userID)
  if unreadOnly {
    query = query.Where("is_read = ?", false)
  }

  var results []*types.Notification
  if err := query.
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (nr *notificationRepo) CountUnread(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("recipient_user_id = ?", userID).
    Where("is_read = ?", false).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (nr *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, userID, notificationID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  now := time.Now()
  return transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("id = ? AND recipient_user_id = ?", notificationID, userID).
    Updates(map[string]any{"is_read": true, "read_at": now}).Error
}

func (nr *notificationRepo) MarkFollowRequestsRead(ctx context.Context, tx *gorm.DB, recipientUserID, actorUserID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  now := time.Now()
  return transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("recipient_user_id = ? AND actor_user_id = ?", recipientUserID, actorUserID).
    Where("type = ?", types.NotificationFollowRequest).
    Where("is_read = ?", false).
    Updates(map[string]any{"is_read": true, "read_at": now}).Error
}
