package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "activity-service/internal/common/errors"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog_Valid(t *testing.T) {
	path := writeCatalog(t, `{
		"version": "1.0",
		"activities": [
			{
				"name": "Robotics Club",
				"description": "Build and program robots",
				"schedule": "Thursdays, 3:30 PM - 5:00 PM",
				"max_participants": 14,
				"participants": ["liam@mergington.edu"]
			},
			{
				"name": "Choir",
				"description": "Vocal performance",
				"schedule": "Mondays, 3:30 PM - 4:30 PM",
				"max_participants": 40,
				"participants": []
			}
		]
	}`)

	reg, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Robotics Club", "Choir"}, reg.Names())

	robotics, ok := reg.Get("Robotics Club")
	require.True(t, ok)
	assert.Equal(t, 14, robotics.MaxParticipants)
	assert.Equal(t, []string{"liam@mergington.edu"}, robotics.Participants)

	choir, ok := reg.Get("Choir")
	require.True(t, ok)
	assert.NotNil(t, choir.Participants)
	assert.Empty(t, choir.Participants)
}

func TestLoadCatalog_SchemaViolations(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantDetails string
	}{
		{
			name: "missing schedule",
			content: `{"activities": [
				{"name": "Choir", "description": "d", "max_participants": 10, "participants": []}
			]}`,
			wantDetails: "schedule",
		},
		{
			name: "zero capacity",
			content: `{"activities": [
				{"name": "Choir", "description": "d", "schedule": "s", "max_participants": 0, "participants": []}
			]}`,
			wantDetails: "max_participants",
		},
		{
			name:        "empty activity list",
			content:     `{"activities": []}`,
			wantDetails: "activities",
		},
		{
			name:        "activities not an array",
			content:     `{"activities": {"Choir": {}}}`,
			wantDetails: "activities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.content)
			_, err := LoadCatalog(path)
			require.Error(t, err)
			assert.True(t, apierrors.IsCode(err, apierrors.ErrCodeCatalogInvalid))
			assert.Contains(t, apierrors.Normalize(err).Details, tt.wantDetails)
		})
	}
}

func TestLoadCatalog_DuplicateNames(t *testing.T) {
	path := writeCatalog(t, `{"activities": [
		{"name": "Choir", "description": "d", "schedule": "s", "max_participants": 10, "participants": []},
		{"name": "Choir", "description": "d2", "schedule": "s2", "max_participants": 12, "participants": []}
	]}`)

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.True(t, apierrors.IsCode(err, apierrors.ErrCodeCatalogInvalid))
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestLoadCatalog_MalformedJSON(t *testing.T) {
	path := writeCatalog(t, `{"activities": [`)
	_, err := LoadCatalog(path)
	require.Error(t, err)
}
