package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/carecompanion/carecompanion/internal/app"
	"github.com/carecompanion/carecompanion/internal/config"
	"github.com/carecompanion/carecompanion/internal/domain/identity"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/platform/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "carecompanion",
		Short: "Dementia care companion for patients, caregivers and therapists",
	}

	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(caseloadCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted caregiver session against the seeded roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			email, _ := cmd.Flags().GetString("email")
			return runDemo(identity.Role(role), email)
		},
	}
	cmd.Flags().String("role", "caregiver", "Portal role: patient, caregiver or therapist")
	cmd.Flags().String("email", "", "Login email (defaults to the demo account)")
	return cmd
}

func caseloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caseload",
		Short: "Print the therapist caseload summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaseload()
		},
	}
}

func runDemo(role identity.Role, email string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	session, err := a.Login(ctx, email, role)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("Signed in as %s (%s)\n", session.User.FullName(), session.User.Role)

	a.StartTimers(
		func(now time.Time) { logger.Debug().Str("clock", now.Format("3:04 PM")).Msg("tick") },
		func(now time.Time) { logger.Debug().Msg("replaying safety reassurance") },
	)

	switch role {
	case identity.RoleCaregiver:
		if err := demoCaregiver(ctx, a); err != nil {
			return err
		}
	case identity.RoleTherapist:
		demoTherapist(a)
	default:
		if err := demoPatient(ctx, a); err != nil {
			return err
		}
	}

	return a.Logout(ctx)
}

func demoCaregiver(ctx context.Context, a *app.App) error {
	roster := a.Caregiver.Roster()
	fmt.Printf("\nPatients under care: %d (attention %d, monitor %d, stable %d)\n",
		len(roster.Entries), roster.NeedsAttention, roster.Monitoring, roster.Stable)
	for _, e := range roster.Entries {
		fmt.Printf("  %-22s %-16s unread alerts %d, tasks %d/%d\n",
			e.Patient.DisplayName(), e.Risk, e.UnreadAlerts, e.TasksCompleted, e.TasksTotal)
	}
	if len(roster.Entries) == 0 {
		return nil
	}

	if err := a.Caregiver.SelectPatient(ctx, roster.Entries[0].Patient.ID); err != nil {
		return err
	}
	dash, ok := a.Caregiver.Dashboard("Mary")
	if !ok {
		return fmt.Errorf("dashboard unavailable after selection")
	}
	fmt.Printf("\n%s\n", dash.Greeting)
	fmt.Printf("Caring for %s: meds %d/%d (%d%% adherence), tasks %d/%d, mood %s (%s)\n",
		dash.Patient.DisplayName(),
		dash.Stats.MedicationsTaken, dash.Stats.MedicationsTotal, dash.Stats.MedicationsAdherenceRate,
		dash.Stats.TasksCompleted, dash.Stats.TasksTotal,
		dash.Stats.MoodToday, dash.Stats.MoodTrend)
	for _, al := range dash.Alerts {
		fmt.Printf("  alert: %s\n", al.Title)
		if err := a.Caregiver.MarkAlertRead(ctx, al.ID); err != nil {
			return err
		}
	}

	crisis := a.Caregiver.CrisisPrevention()
	fmt.Printf("\nCrisis guides available: %d, emergency contacts: %d\n",
		len(crisis.Guides), len(crisis.Contacts))
	if crisis.HasPatient {
		fmt.Printf("Risk profile: high %d, monitor %d, stable %d\n",
			len(crisis.HighRisk.Titles), len(crisis.Monitor.Titles), len(crisis.Stable.Titles))
	}
	return nil
}

func demoPatient(ctx context.Context, a *app.App) error {
	home, ok := a.Patient.Home()
	if !ok {
		return fmt.Errorf("no patient loaded")
	}
	fmt.Printf("\n%s\n%s · %s\n", home.Greeting, home.DateLine, home.Clock)
	fmt.Printf("%s %s\n", home.AffirmationHeadline, home.AffirmationRest)
	if home.Sundowning {
		fmt.Println("(calming evening mode is on)")
	}

	meds, _ := a.Patient.Medications()
	fmt.Printf("\nToday's medications: %d taken, %d remaining\n", meds.TakenCount, meds.RemainingCount)
	for _, dose := range meds.Doses {
		fmt.Printf("  %-8s %-14s %s (%s)\n", dose.Time, dose.Name, dose.Dosage, dose.Status)
		if dose.Status == medication.StatusPending {
			if err := a.Patient.MarkDoseTaken(ctx, dose.MedicationID, dose.Time); err != nil {
				return err
			}
		}
	}

	routine, _ := a.Patient.Routine()
	fmt.Printf("\nRoutine: %d of %d done (%d%%)\n",
		routine.CompletedCount, routine.Total, routine.ProgressPercent)
	return nil
}

func demoTherapist(a *app.App) {
	caseload := a.Therapist.Caseload()
	fmt.Printf("\nCaseload: %d patients (%d need attention, %d declining mood)\n",
		len(caseload.Cases), caseload.NeedsAttention, caseload.Declining)
	for _, c := range caseload.Cases {
		fmt.Printf("  %-22s mood %.1f (%s), adherence %d%%, open risks %d\n",
			c.Patient.DisplayName(), c.MoodAverage, c.MoodTrend, c.Adherence, c.OpenRisks)
	}
}

func runCaseload() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.Login(ctx, "", identity.RoleTherapist); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	demoTherapist(a)
	return a.Logout(ctx)
}
