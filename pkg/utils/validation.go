package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidateEmail validates email address format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateSlug validates a URL slug: lowercase alphanumerics separated by
// single hyphens.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if len(slug) > 191 {
		return fmt.Errorf("slug must not exceed 191 characters")
	}

	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug contains invalid characters")
	}

	return nil
}

// ValidateUsername validates a username: like a slug, but underscores and
// dots are also allowed.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) > 191 {
		return fmt.Errorf("username must not exceed 191 characters")
	}

	validUsernameRegex := regexp.MustCompile(`^[a-z0-9][a-z0-9._\-]*$`)
	if !validUsernameRegex.MatchString(strings.ToLower(username)) {
		return fmt.Errorf("username contains invalid characters")
	}

	return nil
}

// ValidateWorkerName validates the worker name used to namespace generated
// fixture values.
func ValidateWorkerName(name string) error {
	if name == "" {
		return fmt.Errorf("worker name cannot be empty")
	}

	validWorkerRegex := regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
	if !validWorkerRegex.MatchString(name) {
		return fmt.Errorf("worker name contains invalid characters")
	}

	return nil
}
