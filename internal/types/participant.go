package types

import (
  "time"
  "github.com/google/uuid"
)

type ParticipantStatus string

const (
  ParticipantInterested   ParticipantStatus = "Interested"
  ParticipantGoing        ParticipantStatus = "Going"
  ParticipantWaitlisted   ParticipantStatus = "Waitlisted"
  ParticipantCancelled    ParticipantStatus = "Cancelled"
  ParticipantCheckedIn    ParticipantStatus = "CheckedIn"
)

type EventParticipant struct {
  ID          uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  EventID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_participant_event_user" json:"event_id"`
  Event       *Event              `gorm:"constraint:OnDelete:CASCADE;foreignKey:EventID;references:ID" json:"event,omitempty"`
  UserID      uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_participant_event_user;index" json:"user_id"`
  User        *User               `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Status      ParticipantStatus   `gorm:"type:text;not null;default:'Going';index" json:"status"`
  Quantity    int                 `gorm:"not null;default:1" json:"quantity"`
  CreatedAt   time.Time           `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt   time.Time           `gorm:"not null;default:now()" json:"updated_at"`
}

func (EventParticipant) TableName() string {
  return "event_participant"
}
