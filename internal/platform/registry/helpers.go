// internal/platform/registry/helpers.go
package registry

import (
	"fmt"
	"strings"
	"time"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/validator"
)

// Validation helpers for resolver factories. Every error wraps
// domain.ErrInvalidConfig so callers can map it to the config exit code.

// ValidateEndpoint checks that value is an absolute http(s) URL.
func ValidateEndpoint(fieldName, value string) error {
	if !validator.IsURL(value) {
		return fmt.Errorf("%w: %s must be an absolute URL, got %q", domain.ErrInvalidConfig, fieldName, value)
	}
	scheme := strings.ToLower(value[:strings.Index(value, ":")])
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: %s must use http or https, got %q", domain.ErrInvalidConfig, fieldName, scheme)
	}
	return nil
}

// ValidateIntRange validates that an int field is within [min, max].
func ValidateIntRange(fieldName string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", domain.ErrInvalidConfig, fieldName, min, max, value)
	}
	return nil
}

// ValidatePositiveDuration validates that a duration is positive.
func ValidatePositiveDuration(fieldName string, value time.Duration) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", domain.ErrInvalidConfig, fieldName, value)
	}
	return nil
}

// ValidateEnum validates that a string value is one of the allowed options.
func ValidateEnum(fieldName, value string, allowed []string) error {
	for _, option := range allowed {
		if value == option {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %v, got %q", domain.ErrInvalidConfig, fieldName, allowed, value)
}
