package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/click-ai/cal.com/internal/models"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultWorkerName namespaces generated values when the caller does not
	// supply a worker name of its own.
	DefaultWorkerName = "69"

	defaultEmailDomain = "example.com"
	defaultTimeZone    = "Europe/London"
	defaultLocale      = "en"

	passwordHashCost = 12
)

// DefaultSchedulingType applies to team event types with no explicit policy.
const DefaultSchedulingType = models.SchedulingTypeCollective

// uniqueString builds a value that is unique within a process run and across
// parallel test workers: base token, worker name, high-resolution timestamp.
func uniqueString(base, workerName string) string {
	return fmt.Sprintf("%s-%s-%d", base, workerName, time.Now().UnixNano())
}

// WeeklySlot is one block of a weekly schedule template: a set of weekdays
// (0=Sunday) and a start/end time of day.
type WeeklySlot struct {
	Days  []int64
	Start time.Time
	End   time.Time
}

// DefaultWeeklySchedule is Monday through Friday, 09:00 to 17:00.
var DefaultWeeklySchedule = []WeeklySlot{
	{
		Days:  []int64{1, 2, 3, 4, 5},
		Start: TimeOfDay(9, 0),
		End:   TimeOfDay(17, 0),
	},
}

// TimeOfDay returns a wall-clock time on the zero date, UTC, the form
// availability rows store their start and end times in.
func TimeOfDay(hour, minute int) time.Time {
	return time.Date(1970, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// availabilityFromSchedule expands a weekly schedule template into
// availability rule records.
func availabilityFromSchedule(slots []WeeklySlot) []models.Availability {
	rules := make([]models.Availability, 0, len(slots))
	for _, slot := range slots {
		rules = append(rules, models.Availability{
			Days:      models.Int64List(slot.Days),
			StartTime: slot.Start,
			EndTime:   slot.End,
		})
	}
	return rules
}

func hashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// emailDomain returns the part after "@", or the default domain when the
// address has none.
func emailDomain(email string) string {
	if idx := strings.LastIndex(email, "@"); idx >= 0 && idx < len(email)-1 {
		return email[idx+1:]
	}
	return defaultEmailDomain
}

// emailLocalPart returns the part before "@".
func emailLocalPart(email string) string {
	if idx := strings.Index(email, "@"); idx >= 0 {
		return email[:idx]
	}
	return email
}

// profileUsername picks the per-organization username for a user: their
// global username, falling back to the email local part.
func profileUsername(user *models.User) string {
	if user.Username != "" {
		return user.Username
	}
	return emailLocalPart(user.Email)
}
