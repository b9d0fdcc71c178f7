package fixtures

import (
	"context"
	"fmt"

	"github.com/click-ai/cal.com/internal/models"
	"github.com/click-ai/cal.com/pkg/utils"
)

// defaultEventTypes returns the four event types every user gets, in fixed
// order, followed by any caller-supplied extras.
func defaultEventTypes(extras []EventTypeOptions) []models.EventType {
	seats := 2
	eventTypes := []models.EventType{
		{Title: "30 min", Slug: "30-min", Length: 30},
		{Title: "Paid", Slug: "paid", Length: 30, Price: 1000},
		{Title: "Opt in", Slug: "opt-in", Length: 30, RequiresConfirmation: true},
		{Title: "Seated", Slug: "seated", Length: 30, SeatsPerTimeSlot: &seats},
	}
	for _, opts := range extras {
		eventTypes = append(eventTypes, eventTypeFromOptions(opts))
	}
	return eventTypes
}

func eventTypeFromOptions(opts EventTypeOptions) models.EventType {
	length := opts.Length
	if length == 0 {
		length = 30
	}
	return models.EventType{
		Title:                opts.Title,
		Slug:                 opts.Slug,
		Length:               length,
		Price:                opts.Price,
		RequiresConfirmation: opts.RequiresConfirmation,
		SeatsPerTimeSlot:     opts.SeatsPerTimeSlot,
		SchedulingType:       opts.SchedulingType,
	}
}

// createEventTypes persists the default and extra individual event types for
// a user, connecting each to the user as owner and generic user association,
// and to the user's primary profile when one exists.
func (f *Factory) createEventTypes(ctx context.Context, user *models.User, extras []EventTypeOptions) error {
	var profileID *uint
	if len(user.Profiles) > 0 {
		profileID = &user.Profiles[0].ID
	}

	for _, eventType := range defaultEventTypes(extras) {
		eventType.UserID = &user.ID
		eventType.ProfileID = profileID
		if err := f.db.WithContext(ctx).Create(&eventType).Error; err != nil {
			return fmt.Errorf("failed to create event type %q: %w", eventType.Slug, err)
		}
		if err := f.connectEventTypeUser(ctx, &eventType, user.ID); err != nil {
			return err
		}
	}
	return nil
}

// createTeamEventType persists the team event type with its host policy: one
// host record for the creating user, fixed iff the scheduling type is
// COLLECTIVE.
func (f *Factory) createTeamEventType(ctx context.Context, user *models.User, team *models.Team, scenario ScenarioOptions) (*models.EventType, error) {
	title := scenario.TeamEventTitle
	if title == "" {
		title = fmt.Sprintf("Team Event - %d", team.ID)
	}
	slug := scenario.TeamEventSlug
	if slug == "" {
		slug = fmt.Sprintf("team-event-%d", team.ID)
	}
	length := scenario.TeamEventLength
	if length == 0 {
		length = 30
	}
	schedulingType := scenario.SchedulingType
	if schedulingType == "" {
		schedulingType = DefaultSchedulingType
	}

	eventType := &models.EventType{
		Title:          title,
		Slug:           slug,
		Length:         length,
		SchedulingType: &schedulingType,
		UserID:         &user.ID,
		TeamID:         &team.ID,
	}
	if err := f.db.WithContext(ctx).Create(eventType).Error; err != nil {
		return nil, fmt.Errorf("failed to create team event type: %w", err)
	}
	if err := f.connectEventTypeUser(ctx, eventType, user.ID); err != nil {
		return nil, err
	}

	host := models.Host{
		UserID:      user.ID,
		EventTypeID: eventType.ID,
		IsFixed:     schedulingType == models.SchedulingTypeCollective,
	}
	if err := f.db.WithContext(ctx).Create(&host).Error; err != nil {
		return nil, fmt.Errorf("failed to create host: %w", err)
	}

	f.log.Debug("created team event type", utils.LogFields{
		"event_type_id":   eventType.ID,
		"team_id":         team.ID,
		"scheduling_type": schedulingType,
	})
	return eventType, nil
}

// connectEventTypeUser adds the generic user association on an event type.
// Only the primary key is appended so the join row is created without
// touching the user record.
func (f *Factory) connectEventTypeUser(ctx context.Context, eventType *models.EventType, userID uint) error {
	err := f.db.WithContext(ctx).
		Model(eventType).
		Association("Users").
		Append(&models.User{ID: userID})
	if err != nil {
		return fmt.Errorf("failed to connect user to event type: %w", err)
	}
	return nil
}
