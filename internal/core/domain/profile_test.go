// internal/core/domain/profile_test.go
package domain

import (
	"fmt"
	"testing"

	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/testutil"
)

const notchID = "069a79f4-44e9-4726-a5be-fca90e38aaf5"

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"dashed", notchID, notchID, false},
		{"undashed", "069a79f444e94726a5befca90e38aaf5", notchID, false},
		{"upper case", "069A79F444E94726A5BEFCA90E38AAF5", notchID, false},
		{"surrounding spaces", "  " + notchID + " ", notchID, false},
		{"short", "069a79f4", "", true},
		{"garbage", "not-a-uuid", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeID(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, ErrInvalidIdentifier, "should reject identifier")
				return
			}
			testutil.AssertNoError(t, err, "should accept identifier")
			testutil.AssertEqual(t, got, tt.expected, "canonical identifier")
		})
	}
}

func TestNewProfile(t *testing.T) {
	p, err := NewProfile("Notch", "069a79f444e94726a5befca90e38aaf5")
	testutil.AssertNoError(t, err, "valid profile")
	testutil.AssertEqual(t, p.ID, notchID, "id should be canonical")
	testutil.AssertEqual(t, p.HexID(), "069a79f444e94726a5befca90e38aaf5", "hex form drops dashes")

	_, err = NewProfile("", notchID)
	testutil.AssertErrorIs(t, err, ErrEmptyName, "empty name rejected")
}

func TestProfile_Matches(t *testing.T) {
	p := Profile{Name: "Notch", ID: notchID}
	testutil.AssertTrue(t, p.Matches("notch"), "case-insensitive match")
	testutil.AssertTrue(t, p.Matches("NOTCH"), "case-insensitive match")
	testutil.AssertFalse(t, p.Matches("notch_"), "different name")
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status  Status
		valid   bool
		isError bool
	}{
		{StatusFound, true, false},
		{StatusNotFound, true, false},
		{StatusTransientError, true, true},
		{StatusFatalError, true, true},
		{Status("bogus"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			testutil.AssertEqual(t, tt.status.IsValid(), tt.valid, "validity")
			testutil.AssertEqual(t, tt.status.IsError(), tt.isError, "error classification")
		})
	}
}

func TestFailedOutcome(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Status
	}{
		{"rate limit", errors.ErrRateLimit, StatusTransientError},
		{"unauthorized", fmt.Errorf("HTTP 403: %w", errors.ErrUnauthorized), StatusFatalError},
		{"gone", errors.ErrEndpointGone, StatusFatalError},
		{"breaker", fmt.Errorf("%w: breaker open", ErrFatalEndpoint), StatusFatalError},
		{"invalid response", errors.ErrInvalidResponse, StatusTransientError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := FailedOutcome("steve", tt.err, 4)
			testutil.AssertEqual(t, o.Status, tt.expected, "status")
			testutil.AssertEqual(t, o.Attempts, 4, "attempts")
			testutil.AssertNil(t, o.Profile, "failed outcome carries no profile")
		})
	}
}

func TestNewOutputRecord(t *testing.T) {
	o := FoundOutcome("notch", Profile{Name: "Notch", ID: notchID}, 1)
	rec := NewOutputRecord(o, true)

	testutil.AssertEqual(t, rec.Candidate, Candidate("notch"), "candidate kept")
	testutil.AssertEqual(t, rec.Name, "Notch", "endpoint name wins")
	testutil.AssertEqual(t, rec.Identifier, notchID, "identifier")
	testutil.AssertTrue(t, rec.Ignored, "ignored flag")
}
