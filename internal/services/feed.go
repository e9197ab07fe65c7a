package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type FeedService interface {
  // ReadFeed serves the cached feed. An empty cache triggers one synchronous
  // compute before re-reading; a stale cache is served as-is while a refresh
  // runs in the background, so staleness never adds read latency.
  ReadFeed(ctx context.Context, userID uuid.UUID, limit, skip int) ([]*types.UserFeedItem, error)
  // Refresh recomputes the user's feed synchronously.
  Refresh(ctx context.Context, userID uuid.UUID) error
}

type feedService struct {
  db        *gorm.DB
  log       *logger.Logger
  feedRepo  repos.UserFeedRepo
  recSvc    RecommendationService
  scheduler TaskScheduler
}

func NewFeedService(
  db *gorm.DB,
  baseLog *logger.Logger,
  feedRepo repos.UserFeedRepo,
  recSvc RecommendationService,
  scheduler TaskScheduler,
) FeedService {
  return &feedService{
    db:        db,
    log:       baseLog.With("service", "FeedService"),
    feedRepo:  feedRepo,
    recSvc:    recSvc,
    scheduler: scheduler,
  }
}

func (s *feedService) ReadFeed(ctx context.Context, userID uuid.UUID, limit, skip int) ([]*types.UserFeedItem, error) {
  if userID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }

  existing, err := s.feedRepo.ReadFeedForUser(ctx, nil, userID, limit, skip)
  if err != nil {
    return nil, fmt.Errorf("Failed to read feed: %w", err)
  }

  if len(existing) == 0 {
    s.recSvc.ComputeFeedForUser(ctx, userID)
    return s.feedRepo.ReadFeedForUser(ctx, nil, userID, limit, skip)
  }

  if s.recSvc.IsFeedStale(existing) {
    s.scheduler.Enqueue("feed.recompute.stale", func(taskCtx context.Context) {
      s.recSvc.ComputeFeedForUser(taskCtx, userID)
    })
  }

  return existing, nil
}

func (s *feedService) Refresh(ctx context.Context, userID uuid.UUID) error {
  if userID == uuid.Nil {
    return fmt.Errorf("not authenticated")
  }
  s.recSvc.ComputeFeedForUser(ctx, userID)
  return nil
}
