// Package store holds the single source of truth for session and domain
// state. All mutation flows through one reducer applied by a single owner
// goroutine; consumers receive value snapshots and read them through the
// accessor methods.
package store

import (
	"github.com/carecompanion/carecompanion/internal/domain/careteam"
	"github.com/carecompanion/carecompanion/internal/domain/identity"
	"github.com/carecompanion/carecompanion/internal/domain/patient"
)

// View names the anonymous screen being shown before authentication.
type View string

const (
	ViewLanding View = "landing"
	ViewLogin   View = "login"
)

var validViews = map[View]bool{ViewLanding: true, ViewLogin: true}

// Valid reports whether v is a known anonymous view.
func (v View) Valid() bool { return validViews[v] }

// State is the global state tree. Together, View, Authenticated and Role
// form the session state machine: anonymous users move between landing and
// login, authentication lands them in their role's portal, and logout is
// the only way back.
//
// Patient data is held only in the normalized Patients list keyed by
// patient id, with SelectedPatientID pointing into it ("" means no
// selection). There are no duplicated singular collections; every read
// resolves through the list.
type State struct {
	Authenticated     bool
	View              View
	Role              identity.Role
	CurrentUser       *identity.User
	Patients          []patient.Data
	SelectedPatientID string
	CareTeam          []careteam.CareTeamMember
	Goals             []careteam.Goal
}

// Initial returns the anonymous landing state.
func Initial() State {
	return State{View: ViewLanding}
}
