package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

// User represents a user in the system (either a Coach or an Athlete).
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"` // Should be unique
	Role           Role   `json:"role"`
	OrganizationID string `json:"organizationId"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}
