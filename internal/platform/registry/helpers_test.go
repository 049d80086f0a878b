package registry

import (
	"testing"
	"time"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/testutil"
)

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expectErr bool
	}{
		{"https", "https://mowojang.matdoes.dev", false},
		{"http with port", "http://127.0.0.1:8080", false},
		{"no scheme", "mowojang.matdoes.dev", true},
		{"ftp", "ftp://example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEndpoint("endpoint", tt.value)
			if tt.expectErr {
				testutil.AssertErrorIs(t, err, domain.ErrInvalidConfig, "should reject endpoint")
				return
			}
			testutil.AssertNoError(t, err, "should accept endpoint")
		})
	}
}

func TestValidateIntRange(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		expectErr bool
	}{
		{"in range", 5, false},
		{"at min", 1, false},
		{"at max", 10, false},
		{"below min", 0, true},
		{"above max", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntRange("batch", tt.value, 1, 10)
			testutil.AssertEqual(t, err != nil, tt.expectErr, "range check")
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	testutil.AssertNoError(t, ValidatePositiveDuration("timeout", time.Second), "positive")
	testutil.AssertErrorIs(t, ValidatePositiveDuration("timeout", 0), domain.ErrInvalidConfig, "zero")
	testutil.AssertErrorIs(t, ValidatePositiveDuration("timeout", -time.Second), domain.ErrInvalidConfig, "negative")
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"pair", "id", "jsonl", "csv"}

	testutil.AssertNoError(t, ValidateEnum("format", "jsonl", allowed), "valid option")
	err := ValidateEnum("format", "xml", allowed)
	testutil.AssertErrorIs(t, err, domain.ErrInvalidConfig, "invalid option")
	testutil.AssertContains(t, err.Error(), `"xml"`, "message names the value")
}
