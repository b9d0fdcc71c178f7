package models

import (
	"time"
)

// Credential is an installed-app credential attached to a user. The factory
// never creates credentials itself; the model exists so scenario re-fetches
// can expand the relation for suites that install apps on top of seeded users.
type Credential struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(100);not null" json:"type"`
	Key       JSON      `gorm:"type:json" json:"key"`
	AppID     *string   `gorm:"type:varchar(100)" json:"app_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (c *Credential) TableName() string {
	return "credentials"
}
