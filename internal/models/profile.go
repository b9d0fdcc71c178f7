package models

import (
	"time"
)

// Profile scopes a user's identity to one organization. A user has at most
// one profile per organization, enforced by the composite unique index.
type Profile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UID            string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"uid"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_profiles_user_org" json:"user_id"`
	OrganizationID uint      `gorm:"not null;uniqueIndex:idx_profiles_user_org" json:"organization_id"`
	Username       string    `gorm:"type:varchar(191);not null" json:"username"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User         *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Organization *Team `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (p *Profile) TableName() string {
	return "profiles"
}
