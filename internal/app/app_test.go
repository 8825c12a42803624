package app

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/config"
	"github.com/carecompanion/carecompanion/internal/domain/identity"
)

var appNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Env:                "test",
		SeedPatientCount:   2,
		LoginDelay:         0,
		SessionTTL:         time.Hour,
		IdleReplayInterval: time.Hour,
		ClockTickInterval:  time.Hour,
		SundownStartHour:   16,
		SundownEndHour:     19,
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(context.Background(), testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(a.Close)
	clock := appNow
	a.SetClock(func() time.Time { return clock })
	return a
}

// ---------------------------------------------------------------------------
// screen flow
// ---------------------------------------------------------------------------

func TestScreen_StartsOnLanding(t *testing.T) {
	a := newTestApp(t)
	if got := a.Screen(); got != ScreenLanding {
		t.Errorf("Screen() = %q, want landing", got)
	}
}

func TestScreen_ShowLoginAndBack(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	if err := a.ShowLogin(ctx); err != nil {
		t.Fatalf("ShowLogin() error = %v", err)
	}
	if got := a.Screen(); got != ScreenLogin {
		t.Errorf("Screen() = %q, want login", got)
	}
	if err := a.ShowLanding(ctx); err != nil {
		t.Fatalf("ShowLanding() error = %v", err)
	}
	if got := a.Screen(); got != ScreenLanding {
		t.Errorf("Screen() = %q, want landing", got)
	}
}

func TestScreen_PerRolePortal(t *testing.T) {
	cases := []struct {
		role identity.Role
		want Screen
	}{
		{identity.RolePatient, ScreenPatient},
		{identity.RoleCaregiver, ScreenCaregiver},
		{identity.RoleTherapist, ScreenTherapist},
	}
	for _, tc := range cases {
		a := newTestApp(t)
		if _, err := a.Login(context.Background(), "", tc.role); err != nil {
			t.Fatalf("Login(%s) error = %v", tc.role, err)
		}
		if got := a.Screen(); got != tc.want {
			t.Errorf("Screen() after %s login = %q, want %q", tc.role, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// login and session
// ---------------------------------------------------------------------------

func TestLogin_SeedsRosterOnce(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	if _, err := a.Login(ctx, "", identity.RoleCaregiver); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got := a.Store().Snapshot().PatientCount(); got != 2 {
		t.Fatalf("PatientCount() = %d, want 2", got)
	}
	first := a.Store().Snapshot().Patients[0].Patient.ID

	// A later login in the same process reuses the loaded roster.
	if _, err := a.Login(ctx, "", identity.RoleTherapist); err != nil {
		t.Fatalf("second Login() error = %v", err)
	}
	snap := a.Store().Snapshot()
	if snap.PatientCount() != 2 || snap.Patients[0].Patient.ID != first {
		t.Error("second login reseeded the roster")
	}
}

func TestLogin_RejectsUnknownRole(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.Login(context.Background(), "", identity.Role("admin")); err == nil {
		t.Error("Login(admin) succeeded, want error")
	}
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	a := newTestApp(t)
	sess, err := a.Login(context.Background(), "mary@example.com", identity.RoleCaregiver)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if sess.User.Email != "mary@example.com" {
		t.Errorf("User.Email = %q, want mary@example.com", sess.User.Email)
	}
	sub, role, err := a.Verify(sess.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if sub != sess.User.ID {
		t.Errorf("subject = %q, want %q", sub, sess.User.ID)
	}
	if role != identity.RoleCaregiver {
		t.Errorf("role = %q, want caregiver", role)
	}
}

func TestLogin_CancelledContext(t *testing.T) {
	a, err := New(context.Background(), testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(a.Close)
	a.cfg.LoginDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Login(ctx, "", identity.RolePatient); err == nil {
		t.Error("Login with cancelled context succeeded, want error")
	}
}

func TestLogout_DropsSessionAndData(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	if _, err := a.Login(ctx, "", identity.RolePatient); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := a.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	snap := a.Store().Snapshot()
	if snap.Authenticated {
		t.Error("Authenticated = true after logout")
	}
	if snap.PatientCount() != 0 {
		t.Errorf("PatientCount() after logout = %d, want 0", snap.PatientCount())
	}
	if got := a.Screen(); got != ScreenLanding {
		t.Errorf("Screen() after logout = %q, want landing", got)
	}
}

// ---------------------------------------------------------------------------
// portals wired to the shared store
// ---------------------------------------------------------------------------

func TestPortals_ShareOneStore(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	if _, err := a.Login(ctx, "", identity.RoleCaregiver); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	roster := a.Caregiver.Roster()
	if len(roster.Entries) != 2 {
		t.Fatalf("caregiver roster = %d entries, want 2", len(roster.Entries))
	}
	caseload := a.Therapist.Caseload()
	if len(caseload.Cases) != 2 {
		t.Errorf("therapist caseload = %d cases, want 2", len(caseload.Cases))
	}
	if _, ok := a.Patient.Home(); !ok {
		t.Error("patient Home() not ok with a seeded roster")
	}
}
