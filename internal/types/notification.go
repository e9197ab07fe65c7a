package types

import (
  "time"
  "github.com/google/uuid"
)

type NotificationType string

const (
  NotificationFollowRequest    NotificationType = "FOLLOW_REQUEST"
  NotificationFollowAccepted   NotificationType = "FOLLOW_ACCEPTED"
)

type Notification struct {
  ID                 uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  RecipientUserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"recipient_user_id"`
  RecipientUser      *User              `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecipientUserID;references:ID" json:"recipient_user,omitempty"`
  ActorUserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"actor_user_id"`
  Type               NotificationType   `gorm:"type:text;not null;index" json:"type"`
  Title              string             `gorm:"not null;column:title" json:"title"`
  Message            string             `gorm:"not null;column:message" json:"message"`
  IsRead             bool               `gorm:"not null;default:false;index" json:"is_read"`
  ReadAt             *time.Time         `gorm:"column:read_at" json:"read_at,omitempty"`
  CreatedAt          time.Time          `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt          time.Time          `gorm:"not null;default:now()" json:"updated_at"`
}

func (Notification) TableName() string {
  return "notification"
}
