package actions_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/store"
)

func TestClientsHandler_Create(t *testing.T) {
	valid := actions.CreateClientMessage{
		ClientFields: actions.ClientFields{
			Name:  "Jean Dupont",
			Email: "jean@test.dev",
			Phone: "06 12 34 56 78",
		},
	}

	t.Run("any signed-in user may create", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewClientsHandler(repo)

		result, err := handler.Create(coachCtx(newUUID()), valid)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, actions.MsgClientCreated, result.Message)

		require.Len(t, repo.clients.created, 1)
		assert.Equal(t, "Jean Dupont", repo.clients.created[0].Name)
		assert.Equal(t, "+33612345678", repo.clients.created[0].Phone)
	})

	t.Run("anonymous may not create", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewClientsHandler(repo)

		result, err := handler.Create(anonymousCtx(), valid)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgAuthRequired, result.Message)
		assert.Empty(t, repo.clients.created)
	})

	t.Run("name is required", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewClientsHandler(repo)

		result, err := handler.Create(adminCtx(), actions.CreateClientMessage{})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgInvalidFields, result.Message)
	})
}

func TestClientsHandler_UpdateAndDelete(t *testing.T) {
	seed := func(repo *stubStore) *store.Client {
		record := &store.Client{ID: newUUID(), Name: "Jean Dupont"}
		repo.clients.byID[record.ID] = record
		return record
	}

	t.Run("admin updates a client", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo)
		handler := actions.NewClientsHandler(repo)

		result, err := handler.Update(adminCtx(), actions.UpdateClientMessage{
			ID: record.ID,
			ClientFields: actions.ClientFields{
				Name:  "Jean Durand",
				Notes: "reprise en septembre",
			},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		require.Len(t, repo.clients.updated, 1)
		assert.Equal(t, "Jean Durand", repo.clients.updated[0].Name)
	})

	t.Run("coach may not update", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo)
		handler := actions.NewClientsHandler(repo)

		result, err := handler.Update(coachCtx(newUUID()), actions.UpdateClientMessage{
			ID:           record.ID,
			ClientFields: actions.ClientFields{Name: "Jean Durand"},
		})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgAdminOnly, result.Message)
		assert.Empty(t, repo.clients.updated)
	})

	t.Run("coach may not delete", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo)
		handler := actions.NewClientsHandler(repo)

		result, err := handler.Delete(coachCtx(newUUID()), actions.DeleteClientMessage{ID: record.ID})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgAdminOnly, result.Message)
		assert.Empty(t, repo.clients.deleted)
	})

	t.Run("admin deletes a client", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo)
		handler := actions.NewClientsHandler(repo)

		result, err := handler.Delete(adminCtx(), actions.DeleteClientMessage{ID: record.ID})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, []uuid.UUID{record.ID}, repo.clients.deleted)
	})
}
