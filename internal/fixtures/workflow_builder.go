package fixtures

import (
	"context"
	"fmt"

	"github.com/click-ai/cal.com/internal/models"
)

// defaultWorkflows returns the two workflows every user gets, followed by
// any caller-supplied extras.
func defaultWorkflows(extras []WorkflowOptions) []models.Workflow {
	workflows := []models.Workflow{
		{Name: "Default Workflow", Trigger: models.WorkflowTriggerNewEvent},
		{Name: "Test Workflow", Trigger: models.WorkflowTriggerEventCancelled},
	}
	for _, opts := range extras {
		workflows = append(workflows, models.Workflow{
			Name:     opts.Name,
			Trigger:  opts.Trigger,
			Time:     opts.Time,
			TimeUnit: opts.TimeUnit,
		})
	}
	return workflows
}

func (f *Factory) createWorkflows(ctx context.Context, user *models.User, extras []WorkflowOptions) error {
	for _, workflow := range defaultWorkflows(extras) {
		workflow.UserID = &user.ID
		if err := f.db.WithContext(ctx).Create(&workflow).Error; err != nil {
			return fmt.Errorf("failed to create workflow %q: %w", workflow.Name, err)
		}
	}
	return nil
}

// createTeamWorkflow attaches the fixed reminder workflow a team gets:
// 24 hours before the event.
func (f *Factory) createTeamWorkflow(ctx context.Context, user *models.User, team *models.Team) error {
	offset := 24
	unit := models.WorkflowTimeUnitHour
	workflow := models.Workflow{
		Name:     "Team Workflow",
		Trigger:  models.WorkflowTriggerBeforeEvent,
		Time:     &offset,
		TimeUnit: &unit,
		UserID:   &user.ID,
		TeamID:   &team.ID,
	}
	if err := f.db.WithContext(ctx).Create(&workflow).Error; err != nil {
		return fmt.Errorf("failed to create team workflow: %w", err)
	}
	return nil
}
