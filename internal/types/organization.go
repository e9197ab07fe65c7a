package types

import (
  "time"
  "github.com/google/uuid"
)

type Organization struct {
  ID            uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name          string      `gorm:"not null;column:name" json:"name"`
  Description   string      `gorm:"column:description" json:"description,omitempty"`
  OwnerUserID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"owner_user_id"`
  OwnerUser     *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:OwnerUserID;references:ID" json:"owner_user,omitempty"`
  CreatedAt     time.Time   `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Organization) TableName() string {
  return "organization"
}
