package models

import (
	"time"
)

type SchedulingType string

const (
	SchedulingTypeCollective SchedulingType = "COLLECTIVE"
	SchedulingTypeRoundRobin SchedulingType = "ROUND_ROBIN"
	SchedulingTypeManaged    SchedulingType = "MANAGED"
)

// EventType is a bookable meeting template. Individual event types belong to
// a user; team event types belong to a team and assign hosts.
type EventType struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	Title                string          `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Slug                 string          `gorm:"type:varchar(191);not null" json:"slug" validate:"required"`
	Length               int             `gorm:"not null;default:30" json:"length"`
	SchedulingType       *SchedulingType `gorm:"type:varchar(20)" json:"scheduling_type"`
	Price                int             `gorm:"default:0" json:"price"`
	Currency             string          `gorm:"type:varchar(10);default:'usd'" json:"currency"`
	RequiresConfirmation bool            `gorm:"default:false" json:"requires_confirmation"`
	SeatsPerTimeSlot     *int            `json:"seats_per_time_slot"`
	UserID               *uint           `gorm:"index" json:"user_id"`
	TeamID               *uint           `gorm:"index" json:"team_id"`
	ProfileID            *uint           `gorm:"index" json:"profile_id"`
	CreatedAt            time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Owner   *User    `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Team    *Team    `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Profile *Profile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Users   []User   `gorm:"many2many:event_type_users" json:"users,omitempty"`
	Hosts   []Host   `gorm:"foreignKey:EventTypeID" json:"hosts,omitempty"`
}

func (e *EventType) TableName() string {
	return "event_types"
}

// Host assigns a user to staff an event type. For COLLECTIVE scheduling all
// hosts are fixed; otherwise hosts are non-fixed by default.
type Host struct {
	UserID      uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	EventTypeID uint `gorm:"primaryKey;autoIncrement:false" json:"event_type_id"`
	IsFixed     bool `gorm:"default:false" json:"is_fixed"`

	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EventType *EventType `gorm:"foreignKey:EventTypeID" json:"event_type,omitempty"`
}

func (h *Host) TableName() string {
	return "hosts"
}
