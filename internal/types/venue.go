package types

import (
  "time"
  "github.com/google/uuid"
)

type Venue struct {
  ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name        string      `gorm:"not null;column:name" json:"name"`
  Address     string      `gorm:"column:address" json:"address,omitempty"`
  City        string      `gorm:"column:city" json:"city,omitempty"`
  Country     string      `gorm:"column:country" json:"country,omitempty"`
  Capacity    int         `gorm:"column:capacity" json:"capacity,omitempty"`
  CreatedAt   time.Time   `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Venue) TableName() string {
  return "venue"
}
