package registry

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "activity-service/internal/common/errors"
)

// ==========================
// Seed Tests
// ==========================

func TestNewSeeded(t *testing.T) {
	reg := NewSeeded()

	assert.Equal(t, 9, reg.Len())
	assert.Equal(t, []string{
		"Chess Club",
		"Programming Class",
		"Gym Class",
		"Basketball Team",
		"Tennis Club",
		"Drama Club",
		"Art Studio",
		"Debate Team",
		"Science Club",
	}, reg.Names())

	chess, ok := reg.Get("Chess Club")
	require.True(t, ok)
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestAdd_DuplicateName(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Add("Chess Club", Activity{MaxParticipants: 12}))
	err := reg.Add("Chess Club", Activity{MaxParticipants: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
	assert.Equal(t, 1, reg.Len())
}

func TestGet_ReturnsCopy(t *testing.T) {
	reg := NewSeeded()

	chess, ok := reg.Get("Chess Club")
	require.True(t, ok)
	chess.Participants[0] = "tampered@mergington.edu"

	again, ok := reg.Get("Chess Club")
	require.True(t, ok)
	assert.Equal(t, "michael@mergington.edu", again.Participants[0])
}

// ==========================
// Signup Tests
// ==========================

func TestSignup(t *testing.T) {
	tests := []struct {
		name         string
		activity     string
		email        string
		wantErrCode  apierrors.ErrorCode
		wantContains []string
	}{
		{
			name:         "new participant succeeds",
			activity:     "Chess Club",
			email:        "newstudent@mergington.edu",
			wantContains: []string{"newstudent@mergington.edu", "Chess Club"},
		},
		{
			name:        "duplicate participant fails",
			activity:    "Chess Club",
			email:       "michael@mergington.edu",
			wantErrCode: apierrors.ErrCodeAlreadySignedUp,
		},
		{
			name:        "unknown activity fails",
			activity:    "Nonexistent Activity",
			email:       "x@y.edu",
			wantErrCode: apierrors.ErrCodeActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewSeeded()

			msg, err := reg.Signup(tt.activity, tt.email)
			if tt.wantErrCode != "" {
				require.Error(t, err)
				assert.True(t, apierrors.IsCode(err, tt.wantErrCode))
				return
			}

			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestSignup_AppendsInOrder(t *testing.T) {
	reg := NewSeeded()

	_, err := reg.Signup("Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)

	chess, ok := reg.Get("Chess Club")
	require.True(t, ok)
	assert.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"newstudent@mergington.edu",
	}, chess.Participants)
}

func TestSignup_DuplicateDoesNotGrowList(t *testing.T) {
	reg := NewSeeded()

	_, err := reg.Signup("Programming Class", "newstudent@mergington.edu")
	require.NoError(t, err)
	_, err = reg.Signup("Programming Class", "newstudent@mergington.edu")
	require.Error(t, err)

	assert.Equal(t, 3, reg.ParticipantCount("Programming Class"))
}

func TestSignup_NoCapacityEnforcement(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Add("Tiny Club", Activity{
		MaxParticipants: 1,
		Participants:    []string{"first@mergington.edu"},
	}))

	// max_participants is advisory; a second signup still succeeds.
	_, err := reg.Signup("Tiny Club", "second@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.ParticipantCount("Tiny Club"))
}

// ==========================
// Unregister Tests
// ==========================

func TestUnregister(t *testing.T) {
	tests := []struct {
		name        string
		activity    string
		email       string
		wantErrCode apierrors.ErrorCode
	}{
		{
			name:     "existing participant succeeds",
			activity: "Chess Club",
			email:    "michael@mergington.edu",
		},
		{
			name:        "non-member fails",
			activity:    "Chess Club",
			email:       "notregistered@mergington.edu",
			wantErrCode: apierrors.ErrCodeNotRegistered,
		},
		{
			name:        "unknown activity fails",
			activity:    "Nonexistent Activity",
			email:       "student@mergington.edu",
			wantErrCode: apierrors.ErrCodeActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewSeeded()
			before := reg.ParticipantCount(tt.activity)

			msg, err := reg.Unregister(tt.activity, tt.email)
			if tt.wantErrCode != "" {
				require.Error(t, err)
				assert.True(t, apierrors.IsCode(err, tt.wantErrCode))
				assert.Equal(t, before, reg.ParticipantCount(tt.activity))
				return
			}

			require.NoError(t, err)
			assert.Contains(t, msg, "Removed")
			assert.Contains(t, msg, tt.email)
			assert.Contains(t, msg, tt.activity)
			assert.Equal(t, before-1, reg.ParticipantCount(tt.activity))
		})
	}
}

func TestSignupUnregisterSignupAgain(t *testing.T) {
	reg := NewSeeded()
	email := "test@mergington.edu"

	_, err := reg.Signup("Art Studio", email)
	require.NoError(t, err)
	a, _ := reg.Get("Art Studio")
	assert.Contains(t, a.Participants, email)

	_, err = reg.Unregister("Art Studio", email)
	require.NoError(t, err)
	a, _ = reg.Get("Art Studio")
	assert.NotContains(t, a.Participants, email)

	_, err = reg.Signup("Art Studio", email)
	require.NoError(t, err)
	a, _ = reg.Get("Art Studio")
	assert.Contains(t, a.Participants, email)
}

// ==========================
// Serialization Tests
// ==========================

func TestMarshalJSON_PreservesInsertionOrder(t *testing.T) {
	reg := NewSeeded()

	data, err := json.Marshal(reg)
	require.NoError(t, err)

	raw := string(data)
	chess := strings.Index(raw, `"Chess Club"`)
	science := strings.Index(raw, `"Science Club"`)
	require.GreaterOrEqual(t, chess, 0)
	require.GreaterOrEqual(t, science, 0)
	assert.Less(t, chess, science)

	var decoded map[string]Activity
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 9)
	assert.Equal(t, 12, decoded["Chess Club"].MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, decoded["Chess Club"].Participants)
}

func TestMarshalJSON_ReflectsMutations(t *testing.T) {
	reg := NewSeeded()
	_, err := reg.Signup("Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)

	data, err := json.Marshal(reg)
	require.NoError(t, err)

	var decoded map[string]Activity
	require.NoError(t, json.Unmarshal(data, &decoded))
	participants := decoded["Chess Club"].Participants
	require.Len(t, participants, 3)
	assert.Equal(t, "newstudent@mergington.edu", participants[2])
}
