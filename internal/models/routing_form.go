package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type FormFieldType string

const (
	FormFieldTypeText        FormFieldType = "text"
	FormFieldTypeMultiSelect FormFieldType = "multiselect"
)

type RouteActionType string

const (
	RouteActionEventTypeRedirect RouteActionType = "eventTypeRedirectUrl"
	RouteActionExternalRedirect  RouteActionType = "externalRedirectUrl"
	RouteActionCustomPageMessage RouteActionType = "customPageMessage"
)

// RouteAction is what happens when a route's rule tree matches.
type RouteAction struct {
	Type  RouteActionType `json:"type"`
	Value string          `json:"value"`
}

// Route is one routing rule: a rule tree over form fields and the resulting
// action. Routes are evaluated top to bottom; the fallback route carries no
// query and always matches.
type Route struct {
	ID         string      `json:"id"`
	Action     RouteAction `json:"action"`
	QueryValue JSON        `json:"queryValue,omitempty"`
	IsFallback bool        `json:"isFallback,omitempty"`
}

// FormField is a typed input of a routing form.
type FormField struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Type     FormFieldType `json:"type"`
	Required bool          `json:"required"`
	Options  []string      `json:"options,omitempty"`
}

// RouteList and FieldList serialize as JSON columns.
type RouteList []Route

func (r RouteList) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal([]Route(r))
}

func (r *RouteList) Scan(value interface{}) error {
	return scanJSONColumn(value, (*[]Route)(r))
}

type FieldList []FormField

func (f FieldList) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal([]FormField(f))
}

func (f *FieldList) Scan(value interface{}) error {
	return scanJSONColumn(value, (*[]FormField)(f))
}

func scanJSONColumn(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSON column: %v", value)
	}

	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// RoutingForm redirects submitters based on field values.
type RoutingForm struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UID         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"uid"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Routes      RouteList `gorm:"type:json" json:"routes"`
	Fields      FieldList `gorm:"type:json" json:"fields"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (f *RoutingForm) TableName() string {
	return "routing_forms"
}
