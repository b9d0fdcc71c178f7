package fixtures

import (
	"context"
	"fmt"

	"github.com/click-ai/cal.com/internal/models"
	"github.com/click-ai/cal.com/pkg/utils"

	"github.com/google/uuid"
)

// teamFlags shape a single team/organization creation.
type teamFlags struct {
	IsOrg         bool
	IsOrgVerified bool
	HasSubteam    bool
	IsUnpublished bool
	Role          models.MembershipRole
}

// createTeamAndAddUser creates a team (or organization) and an owning
// membership for the given user.
//
// Unpublished teams are not publicly addressable yet: the slug is withheld
// from the record and parked under "requestedSlug" in metadata.
//
// Sub-team creation is single-level by construction: the recursive call
// clears HasSubteam, so a child never creates children of its own. The child
// team is created first, gets one team event type and one team workflow, and
// is linked as the parent's sole child after the parent exists.
func (f *Factory) createTeamAndAddUser(ctx context.Context, user *models.User, flags teamFlags) (*models.Team, error) {
	prefix := "team"
	if flags.IsOrg {
		prefix = "org"
	}
	slug := uniqueString(prefix, f.workerName)

	team := &models.Team{
		Name:           slug,
		IsOrganization: flags.IsOrg,
		Metadata:       models.JSON{},
	}
	if flags.IsUnpublished {
		team.Metadata["requestedSlug"] = slug
	} else {
		team.Slug = &slug
	}

	if flags.IsOrg {
		team.OrganizationSettings = &models.OrganizationSettings{
			IsOrganizationVerified:   flags.IsOrgVerified,
			OrgAutoAcceptEmail:       emailDomain(user.Email),
			IsOrganizationConfigured: false,
		}
		team.OrgProfiles = []models.Profile{
			{
				UID:      uuid.NewString(),
				UserID:   user.ID,
				Username: profileUsername(user),
			},
		}
	}

	var child *models.Team
	if flags.IsOrg && flags.HasSubteam {
		childFlags := flags
		childFlags.HasSubteam = false
		var err error
		child, err = f.createTeamAndAddUser(ctx, user, childFlags)
		if err != nil {
			return nil, fmt.Errorf("failed to create sub-team: %w", err)
		}
		if _, err := f.createTeamEventType(ctx, user, child, ScenarioOptions{}); err != nil {
			return nil, err
		}
		if err := f.createTeamWorkflow(ctx, user, child); err != nil {
			return nil, err
		}
	}

	role := flags.Role
	if role == "" {
		role = models.MembershipRoleOwner
	}
	team.Members = []models.Membership{
		{UserID: user.ID, Role: role, Accepted: true},
	}

	if err := f.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if child != nil {
		err := f.db.WithContext(ctx).
			Model(&models.Team{ID: child.ID}).
			Update("parent_id", team.ID).Error
		if err != nil {
			return nil, fmt.Errorf("failed to link sub-team: %w", err)
		}
	}

	f.log.Info("created team", utils.LogFields{
		"team_id":         team.ID,
		"is_organization": flags.IsOrg,
		"unpublished":     flags.IsUnpublished,
	})
	return team, nil
}
