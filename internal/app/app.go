// Package app assembles the application: configuration, the state store,
// session handling, the three portals and the background timers. It is the
// single composition point; cmd binaries only construct an App and drive it.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/config"
	"github.com/carecompanion/carecompanion/internal/domain/identity"
	"github.com/carecompanion/carecompanion/internal/portal/caregiverportal"
	"github.com/carecompanion/carecompanion/internal/portal/patientportal"
	"github.com/carecompanion/carecompanion/internal/portal/therapistportal"
	"github.com/carecompanion/carecompanion/internal/platform/schedule"
	"github.com/carecompanion/carecompanion/internal/platform/seed"
	"github.com/carecompanion/carecompanion/internal/store"
)

// Screen is what the shell should render, derived from session state.
type Screen string

const (
	ScreenLanding   Screen = "landing"
	ScreenLogin     Screen = "login"
	ScreenPatient   Screen = "patient"
	ScreenCaregiver Screen = "caregiver"
	ScreenTherapist Screen = "therapist"
)

// Session is the result of a successful login.
type Session struct {
	User  identity.User
	Token string
}

// App owns the store and everything wired to it.
type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *store.Store
	issuer *identity.TokenIssuer
	runner *schedule.Runner
	now    func() time.Time

	Patient   *patientportal.Service
	Caregiver *caregiverportal.Service
	Therapist *therapistportal.Service
}

// New builds the application.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	issuer, err := identity.NewTokenIssuer(cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("init token issuer: %w", err)
	}
	st := store.New(store.Initial(), log)
	a := &App{
		cfg:       cfg,
		log:       log,
		store:     st,
		issuer:    issuer,
		runner:    schedule.NewRunner(ctx, log),
		now:       time.Now,
		Patient:   patientportal.New(st, log, cfg.SundownStartHour, cfg.SundownEndHour),
		Caregiver: caregiverportal.New(st, log),
		Therapist: therapistportal.New(st, log),
	}
	return a, nil
}

// SetClock overrides the app clock and propagates it to the portals and the
// token issuer. Test hook.
func (a *App) SetClock(now func() time.Time) {
	a.now = now
	a.issuer.SetClock(now)
	a.Patient.SetClock(now)
	a.Caregiver.SetClock(now)
	a.Therapist.SetClock(now)
}

// Store exposes the underlying store for subscriptions.
func (a *App) Store() *store.Store { return a.store }

// ShowLogin moves the anonymous session to the login screen.
func (a *App) ShowLogin(ctx context.Context) error {
	return a.store.Dispatch(ctx, store.SetView{View: store.ViewLogin})
}

// ShowLanding moves the anonymous session back to the landing screen.
func (a *App) ShowLanding(ctx context.Context) error {
	return a.store.Dispatch(ctx, store.SetView{View: store.ViewLanding})
}

// Login authenticates the demo user for the chosen role. The artificial
// delay mirrors a real credential check and respects ctx cancellation. The
// first successful login seeds the patient roster; later logins reuse it.
func (a *App) Login(ctx context.Context, email string, role identity.Role) (Session, error) {
	if !role.Valid() {
		return Session{}, fmt.Errorf("invalid role: %s", role)
	}
	if a.cfg.LoginDelay > 0 {
		timer := time.NewTimer(a.cfg.LoginDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Session{}, ctx.Err()
		}
	}

	user, err := identity.DemoUser(role, email, a.now())
	if err != nil {
		return Session{}, err
	}
	if err := a.store.Dispatch(ctx, store.SetUser{User: user}); err != nil {
		return Session{}, err
	}
	if err := a.store.Dispatch(ctx, store.SetRole{Role: role}); err != nil {
		return Session{}, err
	}
	if err := a.store.Dispatch(ctx, store.SetAuthenticated{Authenticated: true}); err != nil {
		return Session{}, err
	}
	if err := a.seedOnce(ctx); err != nil {
		return Session{}, err
	}

	token, err := a.issuer.Issue(user)
	if err != nil {
		return Session{}, fmt.Errorf("issue session token: %w", err)
	}
	a.log.Info().Str("role", string(role)).Str("user", user.FullName()).Msg("login")
	return Session{User: user, Token: token}, nil
}

// seedOnce loads the generated roster on first login. The reducer refuses a
// second load, so racing logins stay consistent either way.
func (a *App) seedOnce(ctx context.Context) error {
	if a.store.Snapshot().PatientCount() > 0 {
		return nil
	}
	cfg := seed.DefaultConfig()
	cfg.PatientCount = a.cfg.SeedPatientCount
	cfg.Seed = a.cfg.SeedRandom
	res := seed.New(cfg, a.now()).Generate()
	a.log.Info().Int("patients", len(res.Patients)).Msg("roster seeded")
	return a.store.Dispatch(ctx, store.LoadPatients{
		Patients: res.Patients,
		CareTeam: res.CareTeam,
		Goals:    res.Goals,
	})
}

// Verify checks a session token and returns its subject and role.
func (a *App) Verify(token string) (string, identity.Role, error) {
	return a.issuer.Verify(token)
}

// Logout drops the session and all loaded data.
func (a *App) Logout(ctx context.Context) error {
	return a.store.Dispatch(ctx, store.Logout{})
}

// Screen derives what to render from the current state.
func (a *App) Screen() Screen {
	snap := a.store.Snapshot()
	if !snap.Authenticated {
		if snap.View == store.ViewLogin {
			return ScreenLogin
		}
		return ScreenLanding
	}
	switch snap.Role {
	case identity.RoleCaregiver:
		return ScreenCaregiver
	case identity.RoleTherapist:
		return ScreenTherapist
	default:
		return ScreenPatient
	}
}

// StartTimers launches the recurring background jobs: the minute clock tick
// and the idle safety-message replay. onTick and onReplay run on timer
// goroutines and must not block.
func (a *App) StartTimers(onTick, onReplay func(now time.Time)) {
	if onTick != nil {
		a.runner.Every("clock", a.cfg.ClockTickInterval, onTick)
	}
	if onReplay != nil {
		a.runner.Every("safety-replay", a.cfg.IdleReplayInterval, onReplay)
	}
}

// Close stops the timers and the store.
func (a *App) Close() {
	a.runner.Stop()
	a.store.Close()
}
