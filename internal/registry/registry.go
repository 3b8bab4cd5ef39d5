// internal/registry/registry.go
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	apierrors "activity-service/internal/common/errors"
)

// Registry is the in-memory collection of all activities, keyed by name.
// Insertion order is preserved and is the order records serialize in.
// A single mutex serializes all access; operations are plain map lookups
// plus at most one slice append or removal, so finer-grained locking
// buys nothing here.
type Registry struct {
	mu         sync.Mutex
	activities map[string]*Activity
	order      []string
}

func New() *Registry {
	return &Registry{
		activities: make(map[string]*Activity),
	}
}

// Add inserts an activity under name. Names must be unique.
func (r *Registry) Add(name string, a Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.activities[name]; exists {
		return fmt.Errorf("duplicate activity name: %q", name)
	}
	record := a.clone()
	r.activities[name] = &record
	r.order = append(r.order, name)
	return nil
}

// Get returns a copy of the named activity.
func (r *Registry) Get(name string) (Activity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, false
	}
	return a.clone(), true
}

// Names returns activity names in insertion order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Signup appends email to the named activity's participant list.
// Validation order: unknown activity first, then duplicate signup.
// MaxParticipants is advisory and never checked.
func (r *Registry) Signup(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return "", apierrors.NewActivityNotFound(name)
	}
	if a.hasParticipant(email) {
		return "", apierrors.NewAlreadySignedUp(email, name)
	}

	a.Participants = append(a.Participants, email)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes exactly the matching email entry from the named activity.
// Validation order: unknown activity first, then absent participant.
func (r *Registry) Unregister(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return "", apierrors.NewActivityNotFound(name)
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return fmt.Sprintf("Removed %s from %s", email, name), nil
		}
	}
	return "", apierrors.NewNotRegistered(email, name)
}

// ParticipantCount returns the current participant count, or -1 for an
// unknown activity.
func (r *Registry) ParticipantCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return -1
	}
	return len(a.Participants)
}

// MarshalJSON serializes the registry as a JSON object mapping activity
// name to record, in insertion order. encoding/json sorts map keys, so
// the object is assembled by hand.
func (r *Registry) MarshalJSON() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
