package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/actions"
)

func TestServicesHandler(t *testing.T) {
	valid := actions.CreateServiceMessage{
		Name:            "Séance individuelle",
		Description:     "Coaching en tête à tête",
		Price:           60,
		DurationMinutes: 60,
	}

	t.Run("admin creates a service", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewServicesHandler(repo)

		result, err := handler.Create(adminCtx(), valid)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, actions.MsgServiceCreated, result.Message)
		require.Len(t, repo.services.created, 1)
		assert.Equal(t, "Séance individuelle", repo.services.created[0].Name)
	})

	t.Run("coach may not touch the catalog", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewServicesHandler(repo)

		result, err := handler.Create(coachCtx(newUUID()), valid)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgAdminOnly, result.Message)

		result, err = handler.Delete(coachCtx(newUUID()), actions.DeleteServiceMessage{ID: newUUID()})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, repo.services.deleted)
	})

	t.Run("duration is required", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewServicesHandler(repo)

		payload := valid
		payload.DurationMinutes = 0

		result, err := handler.Create(adminCtx(), payload)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgInvalidFields, result.Message)
	})

	t.Run("admin deletes a service", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewServicesHandler(repo)
		id := newUUID()

		result, err := handler.Delete(adminCtx(), actions.DeleteServiceMessage{ID: id})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, repo.services.deleted, id)
	})
}
