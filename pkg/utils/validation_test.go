package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user-69-123@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.domain.org"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("team-69-1234567890"))
	assert.NoError(t, ValidateSlug("30-min"))
	assert.Error(t, ValidateSlug(""))
	assert.Error(t, ValidateSlug("Uppercase"))
	assert.Error(t, ValidateSlug("double--hyphen"))
	assert.Error(t, ValidateSlug("-leading"))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("user-69-1234567890"))
	assert.NoError(t, ValidateUsername("first.last_name"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("has space"))
}

func TestValidateWorkerName(t *testing.T) {
	assert.NoError(t, ValidateWorkerName("69"))
	assert.NoError(t, ValidateWorkerName("ci-worker_3"))
	assert.Error(t, ValidateWorkerName(""))
	assert.Error(t, ValidateWorkerName("bad name"))
}
