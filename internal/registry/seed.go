// internal/registry/seed.go
package registry

// SeedEntry pairs an activity name with its record, keeping seed order explicit.
type SeedEntry struct {
	Name     string
	Activity Activity
}

// DefaultSeed returns the built-in Mergington High School catalog.
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{
			Name: "Chess Club",
			Activity: Activity{
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
		},
		{
			Name: "Programming Class",
			Activity: Activity{
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
		},
		{
			Name: "Gym Class",
			Activity: Activity{
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
		},
		{
			Name: "Basketball Team",
			Activity: Activity{
				Description:     "Competitive basketball training and games",
				Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 15,
				Participants:    []string{"james@mergington.edu"},
			},
		},
		{
			Name: "Tennis Club",
			Activity: Activity{
				Description:     "Tennis skills development and friendly matches",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
				MaxParticipants: 10,
				Participants:    []string{"sarah@mergington.edu", "alex@mergington.edu"},
			},
		},
		{
			Name: "Drama Club",
			Activity: Activity{
				Description:     "Theater performance, scriptwriting, and acting workshops",
				Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 25,
				Participants:    []string{"isabella@mergington.edu"},
			},
		},
		{
			Name: "Art Studio",
			Activity: Activity{
				Description:     "Painting, drawing, and visual arts creation",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 18,
				Participants:    []string{"mia@mergington.edu", "lucas@mergington.edu"},
			},
		},
		{
			Name: "Debate Team",
			Activity: Activity{
				Description:     "Competitive debate and public speaking skills",
				Schedule:        "Mondays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 16,
				Participants:    []string{"noah@mergington.edu"},
			},
		},
		{
			Name: "Science Club",
			Activity: Activity{
				Description:     "Hands-on experiments and scientific discovery",
				Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 20,
				Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
			},
		},
	}
}

// NewSeeded builds a registry from the built-in seed.
func NewSeeded() *Registry {
	r := New()
	for _, entry := range DefaultSeed() {
		// Names in the built-in seed are unique.
		_ = r.Add(entry.Name, entry.Activity)
	}
	return r
}
