package fixtures

import (
	"github.com/click-ai/cal.com/internal/models"
)

// UserOptions parameterizes a single synthetic user. The zero value yields a
// fully defaulted user.
type UserOptions struct {
	// Username is a base token for the generated username, or, when
	// UseExactUsername is set, the literal username (no disambiguation —
	// a second identical call fails on the unique constraint).
	Username         string
	UseExactUsername bool

	Email       string
	EmailDomain string
	Password    string
	Name        string
	TimeZone    string
	Locale      string

	Role          models.UserRole
	EmailVerified *bool

	// CompletedOnboarding defaults to true. When explicitly false the user
	// gets no default schedule, even if WeeklySchedule is supplied.
	CompletedOnboarding *bool

	TwoFactorEnabled     bool
	DisableImpersonation bool

	WeeklySchedule []WeeklySlot

	// OrganizationID attaches the user to an existing organization. When set,
	// OrganizationRole is mandatory.
	OrganizationID   *uint
	OrganizationRole models.MembershipRole

	// EventTypes and Workflows are appended after the defaults.
	EventTypes []EventTypeOptions
	Workflows  []WorkflowOptions
}

type EventTypeOptions struct {
	Title                string
	Slug                 string
	Length               int
	Price                int
	RequiresConfirmation bool
	SeatsPerTimeSlot     *int
	SchedulingType       *models.SchedulingType
}

type WorkflowOptions struct {
	Name     string
	Trigger  models.WorkflowTrigger
	Time     *int
	TimeUnit *models.WorkflowTimeUnit
}

// ScenarioOptions shapes the larger scenario built around the user: team and
// organization structure, teammates, and optional routing-form seeding.
type ScenarioOptions struct {
	HasTeam   bool
	TeamRole  models.MembershipRole
	Teammates []UserOptions

	SchedulingType  models.SchedulingType
	TeamEventTitle  string
	TeamEventSlug   string
	TeamEventLength int

	IsOrg         bool
	IsOrgVerified bool
	HasSubteam    bool
	IsUnpublished bool

	SeedRoutingForms bool
}
