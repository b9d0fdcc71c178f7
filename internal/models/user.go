package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	Username             string     `gorm:"type:varchar(191);uniqueIndex;not null" json:"username"`
	Email                string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash         string     `gorm:"type:varchar(255)" json:"-"`
	Name                 string     `gorm:"type:varchar(255)" json:"name"`
	TimeZone             string     `gorm:"type:varchar(64);not null;default:'Europe/London'" json:"time_zone"`
	Locale               string     `gorm:"type:varchar(16);not null;default:'en'" json:"locale"`
	Role                 UserRole   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	EmailVerified        *time.Time `json:"email_verified"`
	CompletedOnboarding  bool       `gorm:"default:false" json:"completed_onboarding"`
	TwoFactorEnabled     bool       `gorm:"default:false" json:"two_factor_enabled"`
	DisableImpersonation bool       `gorm:"default:false" json:"disable_impersonation"`
	OrganizationID       *uint      `gorm:"index" json:"organization_id"`
	CreatedAt            time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	Organization *Team         `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	EventTypes   []EventType   `gorm:"foreignKey:UserID" json:"event_types,omitempty"`
	Workflows    []Workflow    `gorm:"foreignKey:UserID" json:"workflows,omitempty"`
	Schedules    []Schedule    `gorm:"foreignKey:UserID" json:"schedules,omitempty"`
	Profiles     []Profile     `gorm:"foreignKey:UserID" json:"profiles,omitempty"`
	Memberships  []Membership  `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
	Credentials  []Credential  `gorm:"foreignKey:UserID" json:"credentials,omitempty"`
	RoutingForms []RoutingForm `gorm:"foreignKey:UserID" json:"routing_forms,omitempty"`
}

func (u *User) TableName() string {
	return "users"
}
