package services

import (
  "context"
  "time"
  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/realtime"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/types"
)

// Scoring weights for the rule-based feed scorer. FriendAttending and
// NetworkSaved accumulate per friend but are capped; the rest are flat
// bonuses attached when their condition holds.
const (
  scoreCategoryMatch        = 30
  scoreFriendAttendingPer   = 25
  scoreFriendAttendingMax   = 50
  scoreFollowedOrg          = 20
  scoreNetworkSavedPer      = 10
  scoreNetworkSavedMax      = 20
  scoreTimeUrgency7d        = 15
  scoreTimeUrgency14d       = 10
  scoreTimeUrgency30d       = 5
  scorePopularityHigh       = 10
  scorePopularityLow        = 5
  scoreFreshness            = 5
)

const (
  feedTTL             = 7 * 24 * time.Hour
  feedStaleAfter      = 24 * time.Hour
  maxCandidateEvents  = 500
)

type RecommendationService interface {
  // ComputeFeedForUser recomputes and replaces the user's cached feed. It is a
  // best-effort background operation: every failure is logged and swallowed, and
  // a failed recompute leaves the existing feed untouched.
  ComputeFeedForUser(ctx context.Context, userID uuid.UUID)
  // IsFeedStale reports whether a cached feed needs recomputing. A feed is only
  // as fresh as its oldest item.
  IsFeedStale(items []*types.UserFeedItem) bool
  // OnUserFollowed schedules a recompute for the follower, without waiting.
  OnUserFollowed(followerUserID uuid.UUID)
  // OnRsvpUpdated schedules a recompute for the user whose RSVP changed.
  OnRsvpUpdated(userID uuid.UUID)
  // OnEventPublished is intentionally lazy: new events reach feeds on the next
  // per-user recompute rather than being pushed to every follower at once.
  OnEventPublished(eventID uuid.UUID)
}

type recommendationService struct {
  db               *gorm.DB
  log              *logger.Logger
  userRepo         repos.UserRepo
  eventRepo        repos.EventRepo
  participantRepo  repos.EventParticipantRepo
  followRepo       repos.FollowRepo
  feedRepo         repos.UserFeedRepo
  scheduler        TaskScheduler
  bus              realtime.Bus
}

func NewRecommendationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  eventRepo repos.EventRepo,
  participantRepo repos.EventParticipantRepo,
  followRepo repos.FollowRepo,
  feedRepo repos.UserFeedRepo,
  scheduler TaskScheduler,
  bus realtime.Bus,
) RecommendationService {
  return &recommendationService{
    db:              db,
    log:             baseLog.With("service", "RecommendationService"),
    userRepo:        userRepo,
    eventRepo:       eventRepo,
    participantRepo: participantRepo,
    followRepo:      followRepo,
    feedRepo:        feedRepo,
    scheduler:       scheduler,
    bus:             bus,
  }
}

func (s *recommendationService) ComputeFeedForUser(ctx context.Context, userID uuid.UUID) {
  s.log.Debug("Computing feed", "user_id", userID)

  users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    s.log.Warn("Feed compute aborted, user lookup failed", "user_id", userID, "error", err)
    return
  }
  if len(users) == 0 {
    s.log.Warn("Feed compute aborted, user not found", "user_id", userID)
    return
  }
  user := users[0]

  userInterests := toSet(user.Interests)
  mutedOrgIDs := toSet(user.MutedOrgIDs)
  mutedUserIDs := toSet(user.MutedUserIDs)

  var (
    candidateEvents     []*types.Event
    ownParticipations   []*types.EventParticipant
    following           []*types.Follow
  )

  // The candidate, participation and follow reads have no ordering dependency on
  // each other.
  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    var gErr error
    candidateEvents, gErr = s.eventRepo.ReadUpcomingPublished(gctx, nil, maxCandidateEvents)
    return gErr
  })
  g.Go(func() error {
    var gErr error
    ownParticipations, gErr = s.participantRepo.ReadByUser(gctx, nil, userID, true)
    return gErr
  })
  g.Go(func() error {
    var gErr error
    following, gErr = s.followRepo.ReadFollowingForUser(gctx, nil, userID)
    return gErr
  })
  if err := g.Wait(); err != nil {
    s.log.Warn("Feed compute aborted, candidate reads failed", "user_id", userID, "error", err)
    return
  }

  rsvpdEventIDs := make(map[uuid.UUID]bool, len(ownParticipations))
  for _, p := range ownParticipations {
    rsvpdEventIDs[p.EventID] = true
  }

  var followedUserIDs []uuid.UUID
  followedOrgIDs := make(map[string]bool)
  savedEventIDs := make(map[uuid.UUID]bool)
  for _, f := range following {
    if f.ApprovalStatus != types.FollowApprovalAccepted {
      continue
    }
    switch f.TargetType {
    case types.FollowTargetUser:
      if !mutedUserIDs[f.TargetID.String()] {
        followedUserIDs = append(followedUserIDs, f.TargetID)
      }
    case types.FollowTargetOrganization:
      followedOrgIDs[f.TargetID.String()] = true
    case types.FollowTargetEvent:
      savedEventIDs[f.TargetID] = true
    }
  }

  if len(candidateEvents) == 0 {
    // An empty candidate set means an empty feed, not a stale one.
    if err := s.feedRepo.ClearFeedForUser(ctx, nil, userID); err != nil {
      s.log.Warn("Failed to clear feed", "user_id", userID, "error", err)
    }
    return
  }

  friendIntentCount := make(map[uuid.UUID]int)
  friendSavedCount := make(map[uuid.UUID]int)

  // An empty friend set produces no FriendAttending or NetworkSaved matches, so
  // the batch lookups are skipped entirely.
  if len(followedUserIDs) > 0 {
    var (
      friendParticipations  []*types.EventParticipant
      friendSaves           []*types.Follow
    )
    fg, fctx := errgroup.WithContext(ctx)
    fg.Go(func() error {
      var gErr error
      friendParticipations, gErr = s.participantRepo.ReadGoingByUserIDs(fctx, nil, followedUserIDs)
      return gErr
    })
    fg.Go(func() error {
      var gErr error
      friendSaves, gErr = s.followRepo.ReadSavedEventsByUserIDs(fctx, nil, followedUserIDs)
      return gErr
    })
    if err := fg.Wait(); err != nil {
      s.log.Warn("Feed compute aborted, friend signal reads failed", "user_id", userID, "error", err)
      return
    }

    for _, p := range friendParticipations {
      friendIntentCount[p.EventID]++
    }
    for _, f := range friendSaves {
      friendSavedCount[f.TargetID]++
    }
  }

  now := time.Now()
  expiresAt := now.Add(feedTTL)
  var scoredItems []*types.UserFeedItem

  for _, event := range candidateEvents {
    if rsvpdEventIDs[event.ID] {
      continue
    }
    if event.OrgID != nil && mutedOrgIDs[event.OrgID.String()] {
      continue
    }
    if savedEventIDs[event.ID] {
      continue
    }

    score := 0
    var reasons []string

    if anyInSet(event.Categories, userInterests) {
      score += scoreCategoryMatch
      reasons = append(reasons, string(types.FeedReasonCategoryMatch))
    }

    if friendCount := friendIntentCount[event.ID]; friendCount > 0 {
      score += minInt(friendCount*scoreFriendAttendingPer, scoreFriendAttendingMax)
      reasons = append(reasons, string(types.FeedReasonFriendAttending))
    }

    if event.OrgID != nil && followedOrgIDs[event.OrgID.String()] {
      score += scoreFollowedOrg
      reasons = append(reasons, string(types.FeedReasonFollowedOrgHosting))
    }

    if savedCount := friendSavedCount[event.ID]; savedCount > 0 {
      score += minInt(savedCount*scoreNetworkSavedPer, scoreNetworkSavedMax)
      reasons = append(reasons, string(types.FeedReasonNetworkSaved))
    }

    daysUntil := event.StartAt.Sub(now).Hours() / 24
    if daysUntil >= 0 && daysUntil <= 7 {
      score += scoreTimeUrgency7d
      reasons = append(reasons, string(types.FeedReasonTimeUrgency))
    } else if daysUntil > 7 && daysUntil <= 14 {
      score += scoreTimeUrgency14d
      reasons = append(reasons, string(types.FeedReasonTimeUrgency))
    } else if daysUntil > 14 && daysUntil <= 30 {
      score += scoreTimeUrgency30d
      reasons = append(reasons, string(types.FeedReasonTimeUrgency))
    }

    popularity := event.RSVPCount + event.SavedByCount
    if popularity >= 20 {
      score += scorePopularityHigh
      reasons = append(reasons, string(types.FeedReasonPopularity))
    } else if popularity >= 5 {
      score += scorePopularityLow
      reasons = append(reasons, string(types.FeedReasonPopularity))
    }

    if now.Sub(event.CreatedAt).Hours()/24 <= 7 {
      score += scoreFreshness
      reasons = append(reasons, string(types.FeedReasonFreshness))
    }

    // Zero-score events are never persisted, not even as placeholders.
    if score == 0 {
      continue
    }

    scoredItems = append(scoredItems, &types.UserFeedItem{
      ID:         uuid.New(),
      UserID:     userID,
      EventID:    event.ID,
      Score:      score,
      Reasons:    datatypes.NewJSONSlice(reasons),
      ComputedAt: now,
      ExpiresAt:  expiresAt,
    })
  }

  // Clear before write, so a crash mid-recompute cannot leave stale items mixed
  // in with new ones.
  if err := s.feedRepo.ClearFeedForUser(ctx, nil, userID); err != nil {
    s.log.Warn("Failed to clear feed before rewrite", "user_id", userID, "error", err)
    return
  }
  if err := s.feedRepo.BulkUpsertFeedItems(ctx, nil, scoredItems); err != nil {
    s.log.Warn("Failed to store feed items", "user_id", userID, "error", err)
    return
  }

  if s.bus != nil {
    msg := realtime.SSEMessage{
      Channel: realtime.UserChannel(userID),
      Event:   realtime.SSEEventFeedRefreshed,
      Data:    map[string]any{"item_count": len(scoredItems)},
    }
    if err := s.bus.Publish(ctx, msg); err != nil {
      s.log.Warn("Failed to publish feed refresh", "user_id", userID, "error", err)
    }
  }

  s.log.Debug("Feed computed",
    "user_id", userID,
    "candidate_count", len(candidateEvents),
    "surfaced_count", len(scoredItems),
  )
}

func (s *recommendationService) IsFeedStale(items []*types.UserFeedItem) bool {
  if len(items) == 0 {
    return true
  }
  oldest := items[0].ComputedAt
  for _, item := range items[1:] {
    if item.ComputedAt.Before(oldest) {
      oldest = item.ComputedAt
    }
  }
  return time.Since(oldest) >= feedStaleAfter
}

func (s *recommendationService) OnUserFollowed(followerUserID uuid.UUID) {
  s.scheduler.Enqueue("feed.recompute.followed", func(ctx context.Context) {
    s.ComputeFeedForUser(ctx, followerUserID)
  })
}

func (s *recommendationService) OnRsvpUpdated(userID uuid.UUID) {
  s.scheduler.Enqueue("feed.recompute.rsvp", func(ctx context.Context) {
    s.ComputeFeedForUser(ctx, userID)
  })
}

func (s *recommendationService) OnEventPublished(eventID uuid.UUID) {
  s.log.Debug("Event published, feeds will refresh lazily", "event_id", eventID)
}

func toSet(values []string) map[string]bool {
  set := make(map[string]bool, len(values))
  for _, v := range values {
    set[v] = true
  }
  return set
}

func anyInSet(values []string, set map[string]bool) bool {
  for _, v := range values {
    if set[v] {
      return true
    }
  }
  return false
}

func minInt(a, b int) int {
  if a < b {
    return a
  }
  return b
}
