package fixtures

import (
	"context"
	"errors"
	"fmt"

	"github.com/click-ai/cal.com/internal/config"
	"github.com/click-ai/cal.com/internal/models"
	"github.com/click-ai/cal.com/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory creates synthetic users, teams, organizations, event types,
// workflows and routing forms for integration and end-to-end suites.
//
// Every generated username, email and slug is namespaced by the worker name,
// so independent processes can seed the same database concurrently without
// colliding. Nothing is retried or wrapped in a transaction: a failure aborts
// the remaining steps and partially created records are left for the test
// harness to tear down.
type Factory struct {
	db          *gorm.DB
	log         utils.Logger
	workerName  string
	emailDomain string
}

func NewFactory(db *gorm.DB, cfg config.SeedConfig) *Factory {
	workerName := cfg.WorkerName
	if workerName == "" {
		workerName = DefaultWorkerName
	}
	emailDomain := cfg.EmailDomain
	if emailDomain == "" {
		emailDomain = defaultEmailDomain
	}
	return &Factory{
		db:          db,
		log:         utils.GetLogger(),
		workerName:  workerName,
		emailDomain: emailDomain,
	}
}

// CreateTestUser is the top-level entry point. It creates a user with default
// event types and workflows, optionally seeds the fixed routing form,
// optionally builds a team or organization scenario around the user, and
// returns the user re-fetched with its relations expanded.
//
// A nil opts means all defaults; the zero ScenarioOptions means no team.
func (f *Factory) CreateTestUser(ctx context.Context, opts *UserOptions, scenario ScenarioOptions) (*models.User, error) {
	if opts == nil {
		opts = &UserOptions{}
	}
	if opts.EmailDomain == "" {
		opts.EmailDomain = f.emailDomain
	}

	payload, err := buildUser(f.workerName, *opts)
	if err != nil {
		return nil, err
	}
	if err := f.db.WithContext(ctx).Create(payload).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	f.log.Info("created test user", utils.LogFields{
		"user_id":  payload.ID,
		"username": payload.Username,
	})

	if err := f.createEventTypes(ctx, payload, opts.EventTypes); err != nil {
		return nil, err
	}
	if err := f.createWorkflows(ctx, payload, opts.Workflows); err != nil {
		return nil, err
	}
	if scenario.SeedRoutingForms {
		if err := f.seedRoutingForm(ctx, payload); err != nil {
			return nil, err
		}
	}

	// The record returned by Create lacks the relations created above, so the
	// user is re-fetched with the expanded relation set before returning.
	user, err := f.refetchUser(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	if scenario.HasTeam {
		if err := f.buildTeamScenario(ctx, user, scenario); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// buildTeamScenario creates the team, its event type, and the requested
// teammates with their memberships and host assignments.
func (f *Factory) buildTeamScenario(ctx context.Context, user *models.User, scenario ScenarioOptions) error {
	team, err := f.createTeamAndAddUser(ctx, user, teamFlags{
		IsOrg:         scenario.IsOrg,
		IsOrgVerified: scenario.IsOrgVerified,
		HasSubteam:    scenario.HasSubteam,
		IsUnpublished: scenario.IsUnpublished,
		Role:          scenario.TeamRole,
	})
	if err != nil {
		return err
	}

	teamEvent, err := f.createTeamEventType(ctx, user, team, scenario)
	if err != nil {
		return err
	}

	schedulingType := scenario.SchedulingType
	if schedulingType == "" {
		schedulingType = DefaultSchedulingType
	}

	teammates := make([]*models.User, 0, len(scenario.Teammates))
	for i := range scenario.Teammates {
		mateOpts := scenario.Teammates[i]
		if mateOpts.Username == "" {
			mateOpts.Username = fmt.Sprintf("teammate-%d", i+1)
		}
		mate, err := f.CreateTestUser(ctx, &mateOpts, ScenarioOptions{})
		if err != nil {
			return fmt.Errorf("failed to create teammate %d: %w", i+1, err)
		}

		membership := models.Membership{
			TeamID:   team.ID,
			UserID:   mate.ID,
			Role:     models.MembershipRoleMember,
			Accepted: true,
		}
		if err := f.db.WithContext(ctx).Create(&membership).Error; err != nil {
			return fmt.Errorf("failed to add teammate membership: %w", err)
		}

		host := models.Host{
			UserID:      mate.ID,
			EventTypeID: teamEvent.ID,
			IsFixed:     schedulingType == models.SchedulingTypeCollective,
		}
		if err := f.db.WithContext(ctx).Create(&host).Error; err != nil {
			return fmt.Errorf("failed to add teammate host: %w", err)
		}

		teammates = append(teammates, mate)
	}

	// Organization members need a profile under the org. Some already have
	// one from user creation; the rest get theirs here.
	if scenario.IsOrg && len(teammates) > 0 {
		members := append([]*models.User{user}, teammates...)
		if err := f.reconcileOrgProfiles(ctx, team, members); err != nil {
			return err
		}
	}

	return nil
}

// reconcileOrgProfiles ensures every member has exactly one profile under the
// organization. (user_id, organization_id) is unique, so members who gained
// a profile during user creation are skipped by the conflict clause.
func (f *Factory) reconcileOrgProfiles(ctx context.Context, team *models.Team, members []*models.User) error {
	profiles := make([]models.Profile, 0, len(members))
	for _, member := range members {
		profiles = append(profiles, models.Profile{
			UID:            uuid.NewString(),
			UserID:         member.ID,
			OrganizationID: team.ID,
			Username:       profileUsername(member),
		})
	}

	err := f.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "organization_id"}},
			DoNothing: true,
		}).
		Create(&profiles).Error
	if err != nil {
		return fmt.Errorf("failed to reconcile organization profiles: %w", err)
	}
	return nil
}

// refetchUser loads a user with the expanded relation set scenarios depend
// on. Event types are ordered by id so the default four keep their creation
// order.
func (f *Factory) refetchUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := f.db.WithContext(ctx).
		Preload("EventTypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_types.id ASC")
		}).
		Preload("Workflows").
		Preload("Schedules.Availability").
		Preload("Profiles").
		Preload("Memberships").
		Preload("Credentials").
		Preload("RoutingForms").
		First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d not found after creation", userID)
		}
		return nil, err
	}
	return &user, nil
}
