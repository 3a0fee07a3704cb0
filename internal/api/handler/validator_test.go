package handler

import (
	"errors"
	"testing"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		req  any
		want string
	}{
		{"oneof", &statusRequest{Status: "hired"}, "Status must be one of: pending, reviewed, accepted, rejected"},
		{"required", &statusRequest{}, "Status is required"},
		{"email", &contactRequest{Email: "nope"}, "Email must be a valid email"},
		{"url", &SponsorRequest{Link: "not a url"}, "Link must be a valid URL"},
		{"json name", &TeamRequest{GameType: string(make([]byte, 101))}, "Game type must be at most 100 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Message != tc.want {
				t.Fatalf("got %q, want %q", ve.Message, tc.want)
			}
		})
	}
}

func TestValidator_Passes(t *testing.T) {
	if err := NewValidator().Validate(&TeamRequest{Name: "Apex", Gender: "male"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
