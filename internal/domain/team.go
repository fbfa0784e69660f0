package domain

// Team groups athletes for bulk program and leaderboard purposes.
// Programs reference teams by id via AssignedTeams.
type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Athletes    []string `json:"athletes"` // member athlete ids
}

// HasAthlete reports whether the given athlete is a member of the team.
func (t *Team) HasAthlete(athleteID string) bool {
	for _, id := range t.Athletes {
		if id == athleteID {
			return true
		}
	}
	return false
}
