package types

import (
  "time"
  "github.com/google/uuid"
)

type FollowTargetType string

const (
  FollowTargetUser           FollowTargetType = "User"
  FollowTargetOrganization   FollowTargetType = "Organization"
  // FollowTargetEvent marks a saved event ("bookmark" in the UI).
  FollowTargetEvent          FollowTargetType = "Event"
)

type FollowApprovalStatus string

const (
  FollowApprovalPending    FollowApprovalStatus = "Pending"
  FollowApprovalAccepted   FollowApprovalStatus = "Accepted"
  FollowApprovalRejected   FollowApprovalStatus = "Rejected"
)

type Follow struct {
  ID                uuid.UUID              `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  FollowerUserID    uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge;index" json:"follower_user_id"`
  FollowerUser      *User                  `gorm:"constraint:OnDelete:CASCADE;foreignKey:FollowerUserID;references:ID" json:"follower_user,omitempty"`
  TargetType        FollowTargetType       `gorm:"type:text;not null;uniqueIndex:idx_follow_edge" json:"target_type"`
  TargetID          uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge;index" json:"target_id"`
  ApprovalStatus    FollowApprovalStatus   `gorm:"type:text;not null;default:'Pending';index" json:"approval_status"`
  CreatedAt         time.Time              `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt         time.Time              `gorm:"not null;default:now()" json:"updated_at"`
}

func (Follow) TableName() string {
  return "follow"
}
