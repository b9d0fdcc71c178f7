package models

import (
	"time"
)

// Schedule is a named weekly-availability template attached to a user.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TimeZone  string    `gorm:"type:varchar(64)" json:"time_zone"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Availability []Availability `gorm:"foreignKey:ScheduleID" json:"availability,omitempty"`
}

func (s *Schedule) TableName() string {
	return "schedules"
}

// Availability is one rule of a schedule: a set of weekdays (0=Sunday) and a
// start/end time of day. Times are stored on the zero date, UTC.
type Availability struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ScheduleID uint      `gorm:"not null;index" json:"schedule_id"`
	Days       Int64List `gorm:"type:json" json:"days"`
	StartTime  time.Time `gorm:"not null" json:"start_time"`
	EndTime    time.Time `gorm:"not null" json:"end_time"`

	Schedule *Schedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}

func (a *Availability) TableName() string {
	return "availability"
}
