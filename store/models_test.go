package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coachdesk/coachdesk/auth"
)

func TestModelsOrder(t *testing.T) {
	models := Models()

	// parents must be created before the rows that reference them
	index := map[any]int{}
	for i, m := range models {
		index[m] = i
	}

	assert.Less(t, index[(*auth.User)(nil)], index[(*CoachProfile)(nil)])
	assert.Less(t, index[(*auth.User)(nil)], index[(*Absence)(nil)])
	assert.Less(t, index[(*Client)(nil)], index[(*Measurement)(nil)])
	assert.Less(t, index[(*Client)(nil)], index[(*TrainingSession)(nil)])
	assert.Less(t, index[(*Service)(nil)], index[(*TrainingSession)(nil)])
	assert.Less(t, index[(*TrainingSession)(nil)], index[(*SessionChangeRequest)(nil)])
}

func TestPrepareClientDefaults(t *testing.T) {
	record := &Client{Name: "  Jean Dupont ", Email: "Jean@Test.DEV"}

	prepareClientDefaults(record)

	assert.Equal(t, "Jean Dupont", record.Name)
	assert.Equal(t, "jean@test.dev", record.Email)
	assert.NotEqual(t, record.ID.String(), "00000000-0000-0000-0000-000000000000")

	prepareClientDefaults(nil) // must not panic
}
