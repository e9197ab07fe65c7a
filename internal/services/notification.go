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

type NotificationService interface {
  // NotifyFollowRequest records a follow-request notification for the target of
  // a pending user follow. Best effort: failures are logged, never returned.
  NotifyFollowRequest(ctx context.Context, recipientUserID, actorUserID uuid.UUID)
  // NotifyFollowAccepted tells a follower their request was accepted.
  NotifyFollowAccepted(ctx context.Context, recipientUserID, actorUserID uuid.UUID)
  // MarkFollowRequestRead retires the follow-request notification once the
  // recipient has responded, accept or reject alike.
  MarkFollowRequestRead(ctx context.Context, recipientUserID, actorUserID uuid.UUID)
  ReadMine(ctx context.Context, unreadOnly bool, limit int) ([]*types.Notification, error)
  UnreadCount(ctx context.Context) (int64, error)
  MarkRead(ctx context.Context, notificationID uuid.UUID) error
}

type notificationService struct {
  db        *gorm.DB
  log       *logger.Logger
  notifRepo repos.NotificationRepo
  userRepo  repos.UserRepo
  bus       realtime.Bus
}

func NewNotificationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  notifRepo repos.NotificationRepo,
  userRepo repos.UserRepo,
  bus realtime.Bus,
) NotificationService {
  return &notificationService{
    db:        db,
    log:       baseLog.With("service", "NotificationService"),
    notifRepo: notifRepo,
    userRepo:  userRepo,
    bus:       bus,
  }
}

func (ns *notificationService) NotifyFollowRequest(ctx context.Context, recipientUserID, actorUserID uuid.UUID) {
  ns.notify(ctx, recipientUserID, actorUserID, types.NotificationFollowRequest,
    "Follow Request", "%s requested to follow you")
}

func (ns *notificationService) NotifyFollowAccepted(ctx context.Context, recipientUserID, actorUserID uuid.UUID) {
  ns.notify(ctx, recipientUserID, actorUserID, types.NotificationFollowAccepted,
    "Follow Request Accepted", "%s accepted your follow request")
}

func (ns *notificationService) notify(ctx context.Context, recipientUserID, actorUserID uuid.UUID, notifType types.NotificationType, title, messageFormat string) {
  // Never notify yourself.
  if recipientUserID == actorUserID {
    return
  }

  notification := &types.Notification{
    ID:              uuid.New(),
    RecipientUserID: recipientUserID,
    ActorUserID:     actorUserID,
    Type:            notifType,
    Title:           title,
    Message:         fmt.Sprintf(messageFormat, ns.actorName(ctx, actorUserID)),
  }

  if _, err := ns.notifRepo.Create(ctx, nil, []*types.Notification{notification}); err != nil {
    ns.log.Warn("Failed to create notification",
      "type", notifType, "recipient_user_id", recipientUserID, "error", err)
    return
  }

  if ns.bus != nil {
    msg := realtime.SSEMessage{
      Channel: realtime.UserChannel(recipientUserID),
      Event:   realtime.SSEEventNotificationCreated,
      Data:    notification,
    }
    if err := ns.bus.Publish(ctx, msg); err != nil {
      ns.log.Warn("Failed to publish notification", "notification_id", notification.ID, "error", err)
    }
  }
}

// actorName resolves the actor's display name for the notification message,
// falling back to "Someone" when the lookup fails.
func (ns *notificationService) actorName(ctx context.Context, actorUserID uuid.UUID) string {
  actors, err := ns.userRepo.GetByIDs(ctx, nil, []uuid.UUID{actorUserID})
  if err != nil || len(actors) == 0 {
    ns.log.Warn("Could not fetch actor for notification", "actor_user_id", actorUserID, "error", err)
    return "Someone"
  }
  return actors[0].FirstName + " " + actors[0].LastName
}

func (ns *notificationService) MarkFollowRequestRead(ctx context.Context, recipientUserID, actorUserID uuid.UUID) {
  if err := ns.notifRepo.MarkFollowRequestsRead(ctx, nil, recipientUserID, actorUserID); err != nil {
    ns.log.Warn("Failed to mark follow request notifications read",
      "recipient_user_id", recipientUserID, "actor_user_id", actorUserID, "error", err)
  }
}

func (ns *notificationService) ReadMine(ctx context.Context, unreadOnly bool, limit int) ([]*types.Notification, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  return ns.notifRepo.ReadByUser(ctx, nil, rd.UserID, unreadOnly, limit)
}

func (ns *notificationService) UnreadCount(ctx context.Context) (int64, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return 0, fmt.Errorf("not authenticated")
  }
  return ns.notifRepo.CountUnread(ctx, nil, rd.UserID)
}

func (ns *notificationService) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("not authenticated")
  }
  if err := ns.notifRepo.MarkRead(ctx, nil, rd.UserID, notificationID); err != nil {
    return fmt.Errorf("Failed to mark notification read: %w", err)
  }
  return nil
}
