package fixtures

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/click-ai/cal.com/internal/models"
)

func TestBuildUserDefaults(t *testing.T) {
	user, err := buildUser("7", UserOptions{})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^user-7-\d+$`), user.Username)
	assert.Equal(t, user.Username+"@example.com", user.Email)
	assert.Equal(t, user.Username, user.Name)
	assert.Equal(t, "Europe/London", user.TimeZone)
	assert.Equal(t, "en", user.Locale)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.True(t, user.CompletedOnboarding)
	assert.NotNil(t, user.EmailVerified)
	assert.NotEmpty(t, user.PasswordHash)

	require.Len(t, user.Schedules, 1)
	assert.Equal(t, "Working Hours", user.Schedules[0].Name)
	assert.Equal(t, "Europe/London", user.Schedules[0].TimeZone)
}

func TestBuildUserExactUsername(t *testing.T) {
	user, err := buildUser("7", UserOptions{Username: "fixed-name", UseExactUsername: true})
	require.NoError(t, err)
	assert.Equal(t, "fixed-name", user.Username)
}

func TestBuildUserEmailDerivedFromUsername(t *testing.T) {
	user, err := buildUser("7", UserOptions{Username: "alpha", EmailDomain: "test.invalid"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^alpha-7-\d+@test\.invalid$`), user.Email)
}

func TestBuildUserEmailVerifiedOptOut(t *testing.T) {
	unverified := false
	user, err := buildUser("7", UserOptions{EmailVerified: &unverified})
	require.NoError(t, err)
	assert.Nil(t, user.EmailVerified)
}

func TestBuildUserOnboardingIncompleteSkipsSchedule(t *testing.T) {
	notOnboarded := false
	user, err := buildUser("7", UserOptions{
		CompletedOnboarding: &notOnboarded,
		WeeklySchedule:      DefaultWeeklySchedule,
	})
	require.NoError(t, err)
	assert.False(t, user.CompletedOnboarding)
	assert.Empty(t, user.Schedules)
}

func TestBuildUserOrganizationRequiresRole(t *testing.T) {
	orgID := uint(42)
	_, err := buildUser("7", UserOptions{OrganizationID: &orgID})
	require.ErrorIs(t, err, ErrMissingRole)
}

func TestBuildUserOrganizationAttachment(t *testing.T) {
	orgID := uint(42)
	user, err := buildUser("7", UserOptions{
		OrganizationID:   &orgID,
		OrganizationRole: models.MembershipRoleOwner,
	})
	require.NoError(t, err)

	require.NotNil(t, user.OrganizationID)
	assert.Equal(t, orgID, *user.OrganizationID)

	require.Len(t, user.Profiles, 1)
	assert.Equal(t, orgID, user.Profiles[0].OrganizationID)
	assert.Equal(t, user.Username, user.Profiles[0].Username)
	assert.NotEmpty(t, user.Profiles[0].UID)

	// Organization memberships are always created as ADMIN, regardless of
	// the role option. The role is still required so callers stay explicit
	// about organization attachment.
	require.Len(t, user.Memberships, 1)
	assert.Equal(t, orgID, user.Memberships[0].TeamID)
	assert.Equal(t, models.MembershipRoleAdmin, user.Memberships[0].Role)
	assert.True(t, user.Memberships[0].Accepted)
}

func TestBuildUserRoleWithoutOrganizationIgnored(t *testing.T) {
	user, err := buildUser("7", UserOptions{OrganizationRole: models.MembershipRoleOwner})
	require.NoError(t, err)
	assert.Empty(t, user.Memberships)
	assert.Nil(t, user.OrganizationID)
}
