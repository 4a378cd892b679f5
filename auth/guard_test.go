package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coachdesk/coachdesk/auth"
)

func TestAuthorize(t *testing.T) {
	admin := &auth.SessionObject{UserID: "u-1", Role: auth.RoleAdmin}
	coach := &auth.SessionObject{UserID: "u-2", Role: auth.RoleCoach}

	tests := []struct {
		name     string
		session  *auth.SessionObject
		required auth.UserRole
		allowed  bool
		reason   string
	}{
		{"anonymous denied for any-role op", nil, "", false, auth.ReasonNotAuthenticated},
		{"anonymous denied for admin op", nil, auth.RoleAdmin, false, auth.ReasonNotAuthenticated},
		{"coach allowed for any-role op", coach, "", true, ""},
		{"coach denied for admin op", coach, auth.RoleAdmin, false, auth.ReasonInsufficientRole},
		{"admin allowed for admin op", admin, auth.RoleAdmin, true, ""},
		{"admin allowed for any-role op", admin, "", true, ""},
		{"admin denied for coach-only op", admin, auth.RoleCoach, false, auth.ReasonInsufficientRole},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := auth.Authorize(tc.session, tc.required)

			assert.Equal(t, tc.allowed, decision.Allowed)
			assert.Equal(t, !tc.allowed, decision.Denied())
			assert.Equal(t, tc.reason, decision.Reason)
		})
	}
}

func TestGuardHelpers(t *testing.T) {
	admin := &auth.SessionObject{UserID: "u-1", Role: auth.RoleAdmin}
	coach := &auth.SessionObject{UserID: "u-2", Role: auth.RoleCoach}

	assert.True(t, auth.RequireAdmin(admin).Allowed)
	assert.True(t, auth.RequireAdmin(coach).Denied())
	assert.True(t, auth.RequireAdmin(nil).Denied())

	assert.True(t, auth.RequireSession(coach).Allowed)
	assert.True(t, auth.RequireSession(nil).Denied())
}
