package types

import (
  "time"
  "github.com/google/uuid"
)

type EventCategory struct {
  ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name        string      `gorm:"uniqueIndex;not null;column:name" json:"name"`
  Description string      `gorm:"column:description" json:"description,omitempty"`
  CreatedAt   time.Time   `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (EventCategory) TableName() string {
  return "event_category"
}
