package fixtures

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/click-ai/cal.com/internal/models"
)

func TestUniqueString(t *testing.T) {
	first := uniqueString("user", "3")
	second := uniqueString("user", "3")

	assert.Regexp(t, regexp.MustCompile(`^user-3-\d+$`), first)
	assert.NotEqual(t, first, second)
}

func TestTimeOfDay(t *testing.T) {
	got := TimeOfDay(9, 30)
	assert.Equal(t, time.Date(1970, time.January, 1, 9, 30, 0, 0, time.UTC), got)
}

func TestAvailabilityFromSchedule(t *testing.T) {
	rules := availabilityFromSchedule(DefaultWeeklySchedule)

	require.Len(t, rules, 1)
	assert.Equal(t, models.Int64List{1, 2, 3, 4, 5}, rules[0].Days)
	assert.Equal(t, TimeOfDay(9, 0), rules[0].StartTime)
	assert.Equal(t, TimeOfDay(17, 0), rules[0].EndTime)
}

func TestEmailHelpers(t *testing.T) {
	assert.Equal(t, "example.com", emailDomain("pro@example.com"))
	assert.Equal(t, "example.com", emailDomain("no-at-sign"))
	assert.Equal(t, "pro", emailLocalPart("pro@example.com"))
	assert.Equal(t, "pro", emailLocalPart("pro"))
}

func TestProfileUsername(t *testing.T) {
	withUsername := &models.User{Username: "pro", Email: "other@example.com"}
	assert.Equal(t, "pro", profileUsername(withUsername))

	withoutUsername := &models.User{Email: "fallback@example.com"}
	assert.Equal(t, "fallback", profileUsername(withoutUsername))
}
