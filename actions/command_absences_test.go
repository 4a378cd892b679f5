package actions_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/store"
)

func declareMsg(coachID uuid.UUID) actions.DeclareAbsenceMessage {
	start := time.Now().Add(24 * time.Hour)
	return actions.DeclareAbsenceMessage{
		CoachID:   coachID,
		StartDate: start,
		EndDate:   start.Add(48 * time.Hour),
		Reason:    "congés d'été",
		Kind:      store.AbsenceLeave,
	}
}

func TestAbsencesHandler_Declare(t *testing.T) {
	t.Run("coach declares own absence as pending", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewAbsencesHandler(repo)
		coachID := newUUID()

		result, err := handler.Declare(coachCtx(coachID), declareMsg(coachID))

		require.NoError(t, err)
		assert.True(t, result.Success)
		require.Len(t, repo.absences.declared, 1)
		assert.Equal(t, store.AbsencePending, repo.absences.declared[0].Status)
	})

	t.Run("admin declaration is approved on the spot", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Declare(adminCtx(), declareMsg(newUUID()))

		require.NoError(t, err)
		assert.True(t, result.Success)
		require.Len(t, repo.absences.declared, 1)
		assert.Equal(t, store.AbsenceApproved, repo.absences.declared[0].Status)
	})

	t.Run("coach may not declare for someone else", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Declare(coachCtx(newUUID()), declareMsg(newUUID()))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgNotYourAbsence, result.Message)
		assert.Empty(t, repo.absences.declared)
	})

	t.Run("end date must not precede start date", func(t *testing.T) {
		repo := newStubStore()
		handler := actions.NewAbsencesHandler(repo)
		coachID := newUUID()

		payload := declareMsg(coachID)
		payload.EndDate = payload.StartDate.Add(-time.Hour)

		result, err := handler.Declare(coachCtx(coachID), payload)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgInvalidFields, result.Message)
	})
}

func TestAbsencesHandler_Review(t *testing.T) {
	seed := func(repo *stubStore, coachID uuid.UUID) *store.Absence {
		record := &store.Absence{ID: newUUID(), CoachID: coachID, Status: store.AbsencePending}
		repo.absences.byID[record.ID] = record
		return record
	}

	t.Run("admin approves", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo, newUUID())
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Review(adminCtx(), actions.ReviewAbsenceMessage{ID: record.ID, Approve: true})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, store.AbsenceApproved, repo.absences.statuses[record.ID])
	})

	t.Run("admin refuses", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo, newUUID())
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Review(adminCtx(), actions.ReviewAbsenceMessage{ID: record.ID})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, store.AbsenceRefused, repo.absences.statuses[record.ID])
	})

	t.Run("coach may not review", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo, newUUID())
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Review(coachCtx(record.CoachID), actions.ReviewAbsenceMessage{ID: record.ID, Approve: true})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, actions.MsgAdminOnly, result.Message)
		assert.Empty(t, repo.absences.statuses)
	})
}

func TestAbsencesHandler_Delete(t *testing.T) {
	seed := func(repo *stubStore, coachID uuid.UUID, status store.AbsenceStatus) *store.Absence {
		record := &store.Absence{ID: newUUID(), CoachID: coachID, Status: status}
		repo.absences.byID[record.ID] = record
		return record
	}

	t.Run("coach deletes own pending absence", func(t *testing.T) {
		repo := newStubStore()
		coachID := newUUID()
		record := seed(repo, coachID, store.AbsencePending)
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Delete(coachCtx(coachID), actions.DeleteAbsenceMessage{ID: record.ID})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, repo.absences.deleted, record.ID)
	})

	t.Run("coach may not delete an approved absence", func(t *testing.T) {
		repo := newStubStore()
		coachID := newUUID()
		record := seed(repo, coachID, store.AbsenceApproved)
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Delete(coachCtx(coachID), actions.DeleteAbsenceMessage{ID: record.ID})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, repo.absences.deleted)
	})

	t.Run("coach may not delete someone else's absence", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo, newUUID(), store.AbsencePending)
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Delete(coachCtx(newUUID()), actions.DeleteAbsenceMessage{ID: record.ID})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, repo.absences.deleted)
	})

	t.Run("admin deletes anything", func(t *testing.T) {
		repo := newStubStore()
		record := seed(repo, newUUID(), store.AbsenceApproved)
		handler := actions.NewAbsencesHandler(repo)

		result, err := handler.Delete(adminCtx(), actions.DeleteAbsenceMessage{ID: record.ID})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, repo.absences.deleted, record.ID)
	})
}
