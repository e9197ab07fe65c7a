package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

type EventLifecycleStatus string

const (
  EventLifecycleDraft       EventLifecycleStatus = "Draft"
  EventLifecyclePublished   EventLifecycleStatus = "Published"
  EventLifecycleArchived    EventLifecycleStatus = "Archived"
)

type EventStatus string

const (
  EventStatusUpcoming   EventStatus = "Upcoming"
  EventStatusOngoing    EventStatus = "Ongoing"
  EventStatusPast       EventStatus = "Past"
  EventStatusCancelled  EventStatus = "Cancelled"
)

type EventVisibility string

const (
  EventVisibilityPublic     EventVisibility = "Public"
  EventVisibilityUnlisted   EventVisibility = "Unlisted"
  EventVisibilityPrivate    EventVisibility = "Private"
)

type Event struct {
  ID                uuid.UUID                     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Title             string                        `gorm:"not null;column:title" json:"title"`
  Description       string                        `gorm:"column:description" json:"description,omitempty"`
  CreatedByUserID   uuid.UUID                     `gorm:"type:uuid;not null;index" json:"created_by_user_id"`
  CreatedByUser     *User                         `gorm:"constraint:OnDelete:CASCADE;foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`
  OrgID             *uuid.UUID                    `gorm:"type:uuid;index" json:"org_id,omitempty"`
  Org               *Organization                 `gorm:"constraint:OnDelete:SET NULL;foreignKey:OrgID;references:ID" json:"org,omitempty"`
  VenueID           *uuid.UUID                    `gorm:"type:uuid;index" json:"venue_id,omitempty"`
  Venue             *Venue                        `gorm:"constraint:OnDelete:SET NULL;foreignKey:VenueID;references:ID" json:"venue,omitempty"`
  LifecycleStatus   EventLifecycleStatus          `gorm:"type:text;not null;default:'Draft';index" json:"lifecycle_status"`
  Status            EventStatus                   `gorm:"type:text;not null;default:'Upcoming';index" json:"status"`
  Visibility        EventVisibility               `gorm:"type:text;not null;default:'Public'" json:"visibility"`
  Categories        datatypes.JSONSlice[string]   `gorm:"column:categories" json:"categories"`
  RSVPCount         int                           `gorm:"not null;default:0;column:rsvp_count" json:"rsvp_count"`
  SavedByCount      int                           `gorm:"not null;default:0;column:saved_by_count" json:"saved_by_count"`
  StartAt           time.Time                     `gorm:"not null;index;column:start_at" json:"start_at"`
  EndAt             *time.Time                    `gorm:"column:end_at" json:"end_at,omitempty"`
  CreatedAt         time.Time                     `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt         time.Time                     `gorm:"not null;default:now()" json:"updated_at"`
}

func (Event) TableName() string {
  return "event"
}
