package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// FeedReason identifies which scoring signal surfaced an event in a user's feed.
type FeedReason string

const (
  FeedReasonCategoryMatch        FeedReason = "CategoryMatch"
  FeedReasonFriendAttending      FeedReason = "FriendAttending"
  FeedReasonFollowedOrgHosting   FeedReason = "FollowedOrgHosting"
  FeedReasonNetworkSaved         FeedReason = "NetworkSaved"
  FeedReasonTimeUrgency          FeedReason = "TimeUrgency"
  FeedReasonPopularity           FeedReason = "Popularity"
  FeedReasonFreshness            FeedReason = "Freshness"
)

type UserFeedItem struct {
  ID            uuid.UUID                     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID        uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex:idx_feed_user_event;index:idx_feed_user_score" json:"user_id"`
  EventID       uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex:idx_feed_user_event" json:"event_id"`
  Event         *Event                        `gorm:"constraint:OnDelete:CASCADE;foreignKey:EventID;references:ID" json:"event,omitempty"`
  Score         int                           `gorm:"not null;index:idx_feed_user_score,sort:desc" json:"score"`
  Reasons       datatypes.JSONSlice[string]   `gorm:"column:reasons" json:"reasons"`
  ComputedAt    time.Time                     `gorm:"not null;column:computed_at" json:"computed_at"`
  ExpiresAt     time.Time                     `gorm:"not null;column:expires_at" json:"expires_at"`
}

func (UserFeedItem) TableName() string {
  return "user_feed_item"
}
