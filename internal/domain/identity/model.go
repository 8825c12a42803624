package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role classifies a signed-in user and selects which portal they land in.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
	RoleTherapist Role = "therapist"
)

var validRoles = map[Role]bool{
	RolePatient: true, RoleCaregiver: true, RoleTherapist: true,
}

// Valid reports whether r is one of the three known portal roles.
func (r Role) Valid() bool { return validRoles[r] }

// User is a session-scoped account record. It is created when a login is
// simulated, held for the session, and discarded on logout.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DemoUser builds the stand-in account for a role. There is no credential
// store; the login flow validates nothing and always produces the same
// person per role, with a fresh id per session.
func DemoUser(role Role, email string, now time.Time) (User, error) {
	if !role.Valid() {
		return User{}, fmt.Errorf("invalid role: %s", role)
	}
	if email == "" {
		email = "user@carecompanion.com"
	}
	u := User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch role {
	case RolePatient:
		u.FirstName, u.LastName = "Eleanor", "Thompson"
	case RoleCaregiver:
		u.FirstName, u.LastName = "Mary", "Thompson"
	case RoleTherapist:
		u.FirstName, u.LastName = "Dr. Sarah", "Johnson"
	}
	return u, nil
}
