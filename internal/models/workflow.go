package models

import (
	"time"
)

type WorkflowTrigger string

const (
	WorkflowTriggerNewEvent       WorkflowTrigger = "NEW_EVENT"
	WorkflowTriggerEventCancelled WorkflowTrigger = "EVENT_CANCELLED"
	WorkflowTriggerBeforeEvent    WorkflowTrigger = "BEFORE_EVENT"
)

type WorkflowTimeUnit string

const (
	WorkflowTimeUnitMinute WorkflowTimeUnit = "MINUTE"
	WorkflowTimeUnitHour   WorkflowTimeUnit = "HOUR"
	WorkflowTimeUnitDay    WorkflowTimeUnit = "DAY"
)

type Workflow struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Trigger   WorkflowTrigger   `gorm:"type:varchar(30);not null" json:"trigger"`
	Time      *int              `json:"time"`
	TimeUnit  *WorkflowTimeUnit `gorm:"type:varchar(10)" json:"time_unit"`
	UserID    *uint             `gorm:"index" json:"user_id"`
	TeamID    *uint             `gorm:"index" json:"team_id"`
	CreatedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (w *Workflow) TableName() string {
	return "workflows"
}
