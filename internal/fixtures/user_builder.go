package fixtures

import (
	"errors"
	"fmt"
	"time"

	"github.com/click-ai/cal.com/internal/models"

	"github.com/google/uuid"
)

// ErrMissingRole is returned when an organization id is supplied without a
// membership role for the user in that organization.
var ErrMissingRole = errors.New("missing role for user in organization")

// buildUser assembles a complete user-creation payload: credentials, locale
// and timezone defaults, the optional default weekly schedule, and the
// optional organization attachment (profile + ADMIN membership).
func buildUser(workerName string, opts UserOptions) (*models.User, error) {
	username := opts.Username
	if !opts.UseExactUsername || opts.Username == "" {
		base := opts.Username
		if base == "" {
			base = "user"
		}
		username = uniqueString(base, workerName)
	}

	domain := opts.EmailDomain
	if domain == "" {
		domain = defaultEmailDomain
	}
	email := opts.Email
	if email == "" {
		email = fmt.Sprintf("%s@%s", username, domain)
	}

	password := opts.Password
	if password == "" {
		password = username
	}
	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = username
	}
	timeZone := opts.TimeZone
	if timeZone == "" {
		timeZone = defaultTimeZone
	}
	locale := opts.Locale
	if locale == "" {
		locale = defaultLocale
	}
	role := opts.Role
	if role == "" {
		role = models.UserRoleUser
	}

	completedOnboarding := true
	if opts.CompletedOnboarding != nil {
		completedOnboarding = *opts.CompletedOnboarding
	}

	user := &models.User{
		Username:             username,
		Email:                email,
		PasswordHash:         passwordHash,
		Name:                 name,
		TimeZone:             timeZone,
		Locale:               locale,
		Role:                 role,
		CompletedOnboarding:  completedOnboarding,
		TwoFactorEnabled:     opts.TwoFactorEnabled,
		DisableImpersonation: opts.DisableImpersonation,
	}

	emailVerified := true
	if opts.EmailVerified != nil {
		emailVerified = *opts.EmailVerified
	}
	if emailVerified {
		now := time.Now().UTC()
		user.EmailVerified = &now
	}

	// Users who finished onboarding get a default "Working Hours" schedule.
	// Users mid-onboarding have no schedule yet, so none is attached.
	if completedOnboarding {
		schedule := opts.WeeklySchedule
		if len(schedule) == 0 {
			schedule = DefaultWeeklySchedule
		}
		user.Schedules = []models.Schedule{
			{
				Name:         "Working Hours",
				TimeZone:     timeZone,
				Availability: availabilityFromSchedule(schedule),
			},
		}
	}

	if opts.OrganizationID != nil {
		if opts.OrganizationRole == "" {
			return nil, ErrMissingRole
		}
		user.OrganizationID = opts.OrganizationID
		user.Profiles = []models.Profile{
			{
				UID:            uuid.NewString(),
				OrganizationID: *opts.OrganizationID,
				Username:       username,
			},
		}
		user.Memberships = []models.Membership{
			{
				TeamID:   *opts.OrganizationID,
				Role:     models.MembershipRoleAdmin,
				Accepted: true,
			},
		}
	}

	return user, nil
}
