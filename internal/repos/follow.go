package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type FollowRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, follow *types.Follow) (*types.Follow, error)
  GetByID(ctx context.Context, tx *gorm.DB, followID uuid.UUID) (*types.Follow, error)
  // GetByEdge looks up a follow by its unique (follower, target type, target)
  // key. Returns nil without error when no edge exists.
  GetByEdge(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID, targetType types.FollowTargetType, targetID uuid.UUID) (*types.Follow, error)
  UpdateApprovalStatus(ctx context.Context, tx *gorm.DB, followID uuid.UUID, status types.FollowApprovalStatus) error
  // ReadFollowingForUser returns every outgoing follow edge for a user, all target
  // types and approval states included. Callers filter what they need.
  ReadFollowingForUser(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID) ([]*types.Follow, error)
  // ReadSavedEventsByUserIDs returns accepted Event-target follows ("saves") for a
  // batch of users.
  ReadSavedEventsByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Follow, error)
  DeleteEdge(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID, targetType types.FollowTargetType, targetID uuid.UUID) error
}

type followRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewFollowRepo(db *gorm.DB, baseLog *logger.Logger) FollowRepo {
  repoLog := baseLog.With("repo", "FollowRepo")
  return &followRepo{db: db, log: repoLog}
}

func (fr *followRepo) Upsert(ctx context.Context, tx *gorm.DB, follow *types.Follow) (*types.Follow, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  if follow == nil {
    return nil, gorm.ErrRecordNotFound
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "follower_user_id"}, {Name: "target_type"}, {Name: "target_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"approval_status", "updated_at"}),
    }).
    Create(follow).Error; err != nil {
    return nil, err
  }
  return follow, nil
}

func (fr *followRepo) GetByID(ctx context.Context, tx *gorm.DB, followID uuid.UUID) (*types.Follow, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  var result types.Follow
  err := transaction.WithContext(ctx).
    Where("id = ?", followID).
    First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (fr *followRepo) GetByEdge(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID, targetType types.FollowTargetType, targetID uuid.UUID) (*types.Follow, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  var result types.Follow
  err := transaction.WithContext(ctx).
    Where("follower_user_id = ? AND target_type = ? AND target_id = ?", followerUserID, targetType, targetID).
    First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (fr *followRepo) UpdateApprovalStatus(ctx context.Context, tx *gorm.DB, followID uuid.UUID, status types.FollowApprovalStatus) error {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Follow{}).
    Where("id = ?", followID).
    Update("approval_status", status).Error
}

func (fr *followRepo) ReadFollowingForUser(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID) ([]*types.Follow, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  var results []*types.Follow
  if err := transaction.WithContext(ctx).
    Where("follower_user_id = ?", followerUserID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (fr *followRepo) ReadSavedEventsByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Follow, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  var results []*types.Follow
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("follower_user_id IN ?", userIDs).
    Where("target_type = ?", types.FollowTargetEvent).
    Where("approval_status = ?", types.FollowApprovalAccepted).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (fr *followRepo) DeleteEdge(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID, targetType types.FollowTargetType, targetID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  return transaction.WithContext(ctx).
    Where("follower_user_id = ? AND target_type = ? AND target_id = ?", followerUserID, targetType, targetID).
    Delete(&types.Follow{}).Error
}
