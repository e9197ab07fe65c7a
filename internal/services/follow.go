package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/realtime"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type FollowService interface {
  // FollowTarget creates or revives a follow edge. User targets start Pending
  // and need the target's approval; organization and event targets are accepted
  // immediately.
  FollowTarget(ctx context.Context, targetType types.FollowTargetType, targetID uuid.UUID) (*types.Follow, error)
  Unfollow(ctx context.Context, targetType types.FollowTargetType, targetID uuid.UUID) error
  // RespondToFollow lets the target of a pending user follow accept or reject it.
  RespondToFollow(ctx context.Context, followID uuid.UUID, accept bool) (*types.Follow, error)
  ReadFollowing(ctx context.Context) ([]*types.Follow, error)
}

type followService struct {
  db        *gorm.DB
  log       *logger.Logger
  followRepo repos.FollowRepo
  eventRepo  repos.EventRepo
  recSvc     RecommendationService
  notifSvc   NotificationService
  bus        realtime.Bus
}

func NewFollowService(
  db *gorm.DB,
  baseLog *logger.Logger,
  followRepo repos.FollowRepo,
  eventRepo repos.EventRepo,
  recSvc RecommendationService,
  notifSvc NotificationService,
  bus realtime.Bus,
) FollowService {
  return &followService{
    db:         db,
    log:        baseLog.With("service", "FollowService"),
    followRepo: followRepo,
    eventRepo:  eventRepo,
    recSvc:     recSvc,
    notifSvc:   notifSvc,
    bus:        bus,
  }
}

// transact runs fn inside a transaction when a db handle is present; repos fall
// back to their own handle on a nil tx.
func (fs *followService) transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
  if fs.db == nil {
    return fn(nil)
  }
  return fs.db.WithContext(ctx).Transaction(fn)
}

func (fs *followService) FollowTarget(ctx context.Context, targetType types.FollowTargetType, targetID uuid.UUID) (*types.Follow, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  if targetID == uuid.Nil {
    return nil, fmt.Errorf("missing target id")
  }

  approval := types.FollowApprovalAccepted
  switch targetType {
  case types.FollowTargetUser:
    if targetID == rd.UserID {
      return nil, fmt.Errorf("cannot follow yourself")
    }
    approval = types.FollowApprovalPending
  case types.FollowTargetOrganization:
  case types.FollowTargetEvent:
  default:
    return nil, fmt.Errorf("invalid follow target type %q", targetType)
  }

  existing, gErr := fs.followRepo.GetByEdge(ctx, nil, rd.UserID, targetType, targetID)
  if gErr != nil {
    return nil, fmt.Errorf("Failed to check existing follow: %w", gErr)
  }

  follow := &types.Follow{
    ID:             uuid.New(),
    FollowerUserID: rd.UserID,
    TargetType:     targetType,
    TargetID:       targetID,
    ApprovalStatus: approval,
  }

  err := fs.transact(ctx, func(tx *gorm.DB) error {
    if _, uErr := fs.followRepo.Upsert(ctx, tx, follow); uErr != nil {
      return fmt.Errorf("Failed to upsert follow: %w", uErr)
    }
    // The counter only moves when the save edge is new; re-saving an already
    // saved event upserts in place.
    if targetType == types.FollowTargetEvent && existing == nil {
      if iErr := fs.eventRepo.IncrementSavedByCount(ctx, tx, targetID, 1); iErr != nil {
        return fmt.Errorf("Failed to bump saved count: %w", iErr)
      }
    }
    return nil
  })
  if err != nil {
    return nil, err
  }

  // Recompute fires for the follower: it is their feed whose signals changed.
  fs.recSvc.OnUserFollowed(rd.UserID)

  if targetType == types.FollowTargetUser {
    fs.notifSvc.NotifyFollowRequest(ctx, targetID, rd.UserID)
  }

  if fs.bus != nil && targetType == types.FollowTargetUser {
    msg := realtime.SSEMessage{
      Channel: realtime.UserChannel(targetID),
      Event:   realtime.SSEEventFollowRequested,
      Data:    map[string]any{"follower_user_id": rd.UserID.String()},
    }
    if pErr := fs.bus.Publish(ctx, msg); pErr != nil {
      fs.log.Warn("Failed to publish follow request", "error", pErr)
    }
  }

  return follow, nil
}

func (fs *followService) Unfollow(ctx context.Context, targetType types.FollowTargetType, targetID uuid.UUID) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("not authenticated")
  }

  existing, gErr := fs.followRepo.GetByEdge(ctx, nil, rd.UserID, targetType, targetID)
  if gErr != nil {
    return fmt.Errorf("Failed to check existing follow: %w", gErr)
  }
  if existing == nil {
    // Nothing to remove, and no counter to touch.
    return nil
  }

  err := fs.transact(ctx, func(tx *gorm.DB) error {
    if dErr := fs.followRepo.DeleteEdge(ctx, tx, rd.UserID, targetType, targetID); dErr != nil {
      return fmt.Errorf("Failed to delete follow: %w", dErr)
    }
    if targetType == types.FollowTargetEvent {
      if iErr := fs.eventRepo.IncrementSavedByCount(ctx, tx, targetID, -1); iErr != nil {
        return fmt.Errorf("Failed to drop saved count: %w", iErr)
      }
    }
    return nil
  })
  if err != nil {
    return err
  }

  fs.recSvc.OnUserFollowed(rd.UserID)
  return nil
}

func (fs *followService) RespondToFollow(ctx context.Context, followID uuid.UUID, accept bool) (*types.Follow, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }

  follow, gErr := fs.followRepo.GetByID(ctx, nil, followID)
  if gErr != nil {
    return nil, fmt.Errorf("Failed to load follow: %w", gErr)
  }
  if follow == nil {
    return nil, fmt.Errorf("follow request not found")
  }
  if follow.TargetType != types.FollowTargetUser || follow.TargetID != rd.UserID {
    return nil, fmt.Errorf("not authorized to respond to this follow request")
  }

  status := types.FollowApprovalRejected
  if accept {
    status = types.FollowApprovalAccepted
  }
  if uErr := fs.followRepo.UpdateApprovalStatus(ctx, nil, followID, status); uErr != nil {
    return nil, fmt.Errorf("Failed to update follow approval: %w", uErr)
  }
  follow.ApprovalStatus = status

  // The pending request notification is answered either way; rejections stay
  // silent beyond that.
  fs.notifSvc.MarkFollowRequestRead(ctx, rd.UserID, follow.FollowerUserID)

  if accept {
    fs.notifSvc.NotifyFollowAccepted(ctx, follow.FollowerUserID, rd.UserID)

    // The follower gains a friend signal, so their feed goes stale now.
    fs.recSvc.OnUserFollowed(follow.FollowerUserID)

    if fs.bus != nil {
      msg := realtime.SSEMessage{
        Channel: realtime.UserChannel(follow.FollowerUserID),
        Event:   realtime.SSEEventFollowAccepted,
        Data:    map[string]any{"target_user_id": rd.UserID.String()},
      }
      if pErr := fs.bus.Publish(ctx, msg); pErr != nil {
        fs.log.Warn("Failed to publish follow acceptance", "error", pErr)
      }
    }
  }

  return follow, nil
}

func (fs *followService) ReadFollowing(ctx context.Context) ([]*types.Follow, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  return fs.followRepo.ReadFollowingForUser(ctx, nil, rd.UserID)
}
