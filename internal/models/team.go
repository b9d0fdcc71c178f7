package models

import (
	"time"

	"gorm.io/gorm"
)

type MembershipRole string

const (
	MembershipRoleOwner  MembershipRole = "OWNER"
	MembershipRoleAdmin  MembershipRole = "ADMIN"
	MembershipRoleMember MembershipRole = "MEMBER"
)

// Team is also the organization entity: an organization is a team with
// IsOrganization set and an OrganizationSettings sub-record. Unpublished
// teams have no slug; the intended slug is parked in Metadata under
// "requestedSlug" until the team is published.
type Team struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Slug           *string   `gorm:"type:varchar(191);uniqueIndex" json:"slug"`
	IsOrganization bool      `gorm:"default:false" json:"is_organization"`
	ParentID       *uint     `gorm:"index" json:"parent_id"`
	Metadata       JSON      `gorm:"type:json" json:"metadata"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Parent               *Team                 `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children             []Team                `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	OrganizationSettings *OrganizationSettings `gorm:"foreignKey:TeamID" json:"organization_settings,omitempty"`
	Members              []Membership          `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	OrgProfiles          []Profile             `gorm:"foreignKey:OrganizationID" json:"org_profiles,omitempty"`
	EventTypes           []EventType           `gorm:"foreignKey:TeamID" json:"event_types,omitempty"`
	Workflows            []Workflow            `gorm:"foreignKey:TeamID" json:"workflows,omitempty"`
}

func (t *Team) TableName() string {
	return "teams"
}

type OrganizationSettings struct {
	ID                       uint   `gorm:"primaryKey" json:"id"`
	TeamID                   uint   `gorm:"uniqueIndex;not null" json:"team_id"`
	IsOrganizationVerified   bool   `gorm:"default:false" json:"is_organization_verified"`
	OrgAutoAcceptEmail       string `gorm:"type:varchar(255)" json:"org_auto_accept_email"`
	IsOrganizationConfigured bool   `gorm:"default:false" json:"is_organization_configured"`
}

func (s *OrganizationSettings) TableName() string {
	return "organization_settings"
}

// Membership joins a user to a team. Every team gets exactly one OWNER
// membership at creation time.
type Membership struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	TeamID   uint           `gorm:"not null;uniqueIndex:idx_memberships_team_user" json:"team_id"`
	UserID   uint           `gorm:"not null;uniqueIndex:idx_memberships_team_user" json:"user_id"`
	Role     MembershipRole `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	Accepted bool           `gorm:"default:false" json:"accepted"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (m *Membership) TableName() string {
	return "memberships"
}
