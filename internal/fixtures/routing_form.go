package fixtures

import (
	"context"
	"fmt"

	"github.com/click-ai/cal.com/internal/models"
)

// The seeded routing form is static fixture data used by routing suites.
// Identifiers are fixed so tests can address the form and its fields.
const (
	seededFormUID = "948ae412-d995-4865-885a-48302588de03"

	seededFormTextFieldID        = "c4296635-9f12-47b1-8153-c3a854649182"
	seededFormMultiSelectFieldID = "d4292635-9f12-17b1-9153-c3a854649182"
)

// seededRoutingForm returns the one hard-coded routing form: two fields and
// five routes evaluated top to bottom, the last being the unconditional
// fallback.
func seededRoutingForm(userID uint) *models.RoutingForm {
	return &models.RoutingForm{
		UID:         seededFormUID,
		Name:        "Seeded Form - Pro",
		Description: "Seeded form for routing tests",
		UserID:      userID,
		Fields: models.FieldList{
			{
				ID:       seededFormTextFieldID,
				Label:    "Test field",
				Type:     models.FormFieldTypeText,
				Required: true,
			},
			{
				ID:       seededFormMultiSelectFieldID,
				Label:    "Multi Select",
				Type:     models.FormFieldTypeMultiSelect,
				Required: false,
				Options:  []string{"Option-1", "Option-2"},
			},
		},
		Routes: models.RouteList{
			{
				ID: "8a898988-89ab-4cde-b012-31823f708642",
				Action: models.RouteAction{
					Type:  models.RouteActionEventTypeRedirect,
					Value: "pro/30-min",
				},
				QueryValue: fieldEqualsQuery(seededFormTextFieldID, "event-routing"),
			},
			{
				ID: "aaba9988-89ab-4cde-b012-31823f708643",
				Action: models.RouteAction{
					Type:  models.RouteActionExternalRedirect,
					Value: "https://cal.com",
				},
				QueryValue: fieldEqualsQuery(seededFormTextFieldID, "external-redirect"),
			},
			{
				ID: "aaba9948-89ab-4cde-b012-31823f708643",
				Action: models.RouteAction{
					Type:  models.RouteActionCustomPageMessage,
					Value: "Custom Page Result",
				},
				QueryValue: fieldEqualsQuery(seededFormTextFieldID, "custom-page"),
			},
			{
				ID: "aaba9949-89ab-4cde-b012-31823f708643",
				Action: models.RouteAction{
					Type:  models.RouteActionCustomPageMessage,
					Value: "Multiselect chosen",
				},
				QueryValue: fieldSelectQuery(seededFormMultiSelectFieldID, "Option-2"),
			},
			{
				ID: "898899aa-4567-489a-bcde-f1823f708646",
				Action: models.RouteAction{
					Type:  models.RouteActionCustomPageMessage,
					Value: "Fallback Message",
				},
				IsFallback: true,
			},
		},
	}
}

// fieldEqualsQuery builds the rule tree matching a text field against an
// exact value.
func fieldEqualsQuery(fieldID, value string) models.JSON {
	return models.JSON{
		"type": "group",
		"children1": map[string]interface{}{
			"rule": map[string]interface{}{
				"type": "rule",
				"properties": map[string]interface{}{
					"field":    fieldID,
					"operator": "equal",
					"value":    []interface{}{value},
				},
			},
		},
	}
}

// fieldSelectQuery builds the rule tree matching a multiselect field
// containing a given option.
func fieldSelectQuery(fieldID, option string) models.JSON {
	return models.JSON{
		"type": "group",
		"children1": map[string]interface{}{
			"rule": map[string]interface{}{
				"type": "rule",
				"properties": map[string]interface{}{
					"field":    fieldID,
					"operator": "multiselect_equals",
					"value":    []interface{}{[]interface{}{option}},
				},
			},
		},
	}
}

func (f *Factory) seedRoutingForm(ctx context.Context, user *models.User) error {
	form := seededRoutingForm(user.ID)
	if err := f.db.WithContext(ctx).Create(form).Error; err != nil {
		return fmt.Errorf("failed to seed routing form: %w", err)
	}
	return nil
}
