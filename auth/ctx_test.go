package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coachdesk/coachdesk/auth"
)

func TestSessionContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		session := &auth.SessionObject{UserID: "u-1", Role: auth.RoleAdmin}

		ctx := auth.WithSession(context.Background(), session)
		assert.Equal(t, session, auth.SessionFromContext(ctx))
	})

	t.Run("missing session is anonymous", func(t *testing.T) {
		assert.Nil(t, auth.SessionFromContext(context.Background()))
	})

	t.Run("explicit nil session stays anonymous", func(t *testing.T) {
		ctx := auth.WithSession(context.Background(), nil)
		assert.Nil(t, auth.SessionFromContext(ctx))
	})
}
