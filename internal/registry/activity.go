// internal/registry/activity.go
package registry

// Activity is one extracurricular offering. The activity name is the
// registry key and is not repeated inside the record, matching the
// serialized shape clients consume.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// clone returns a deep copy so callers can't mutate registry state
// through a returned record.
func (a *Activity) clone() Activity {
	out := *a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

func (a *Activity) hasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
