package domain

import "time"

// WorkoutProgram represents a named, ordered collection of exercises a coach
// assigns to athletes and/or teams. Owned by the coach who authored it and
// mutated only through coach-facing edit operations.
type WorkoutProgram struct {
	ID            string     `json:"id"`
	CoachID       string     `json:"coachId"` // who created the program
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Exercises     []Exercise `json:"exercises"`
	AssignedTo    []string   `json:"assignedTo"`    // directly-assigned athlete ids
	AssignedTeams []string   `json:"assignedTeams"` // assigned team ids
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AssignedToAthlete reports whether the athlete is directly assigned.
func (p *WorkoutProgram) AssignedToAthlete(athleteID string) bool {
	for _, id := range p.AssignedTo {
		if id == athleteID {
			return true
		}
	}
	return false
}

// AssignedToTeam reports whether the team is assigned.
func (p *WorkoutProgram) AssignedToTeam(teamID string) bool {
	for _, id := range p.AssignedTeams {
		if id == teamID {
			return true
		}
	}
	return false
}
