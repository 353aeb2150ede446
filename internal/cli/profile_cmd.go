package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/studbud/internal/cli/formatter"
	"github.com/alexanderramin/studbud/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage student profiles",
	}

	cmd.AddCommand(
		newProfileInitCmd(app),
		newProfileShowCmd(app),
		newProfileListCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

// profileOptions collects the flag-only (non-wizard) profile inputs.
type profileOptions struct {
	name        string
	subjects    []string
	goals       string
	strengths   []string
	weaknesses  []string
	time        string
	hours       float64
	environment string
	methods     []string
}

func registerProfileFlags(fs *pflag.FlagSet, opts *profileOptions) {
	fs.StringVar(&opts.name, "name", "", "Student name")
	fs.StringSliceVar(&opts.subjects, "subject", nil, "Subject (repeatable)")
	fs.StringVar(&opts.goals, "goals", "", "Study goals")
	fs.StringArrayVar(&opts.strengths, "strength", nil, "Per-subject strength (subject=text)")
	fs.StringArrayVar(&opts.weaknesses, "weakness", nil, "Per-subject weakness (subject=text)")
	fs.StringVar(&opts.time, "time", "Morning", "Preferred study time")
	fs.Float64Var(&opts.hours, "hours", 2, "Daily study hours")
	fs.StringVar(&opts.environment, "environment", "", "Study environment")
	fs.StringSliceVar(&opts.methods, "method", nil, "Study method (repeatable)")
}

// parseSubjectValues parses repeated subject=text flags into a map.
func parseSubjectValues(values []string, flag string) (map[string]string, error) {
	out := make(map[string]string, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --%s format %q, expected subject=text", flag, v)
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out, nil
}

func (o *profileOptions) toProfile() (*domain.StudentProfile, error) {
	strengths, err := parseSubjectValues(o.strengths, "strength")
	if err != nil {
		return nil, err
	}
	weaknesses, err := parseSubjectValues(o.weaknesses, "weakness")
	if err != nil {
		return nil, err
	}

	return &domain.StudentProfile{
		StudentName: o.name,
		Subjects:    o.subjects,
		Goals:       o.goals,
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Preferences: domain.Preferences{
			PreferredTime:      o.time,
			DailyDurationHours: o.hours,
			Environment:        o.environment,
			Methods:            o.methods,
		},
	}, nil
}

func newProfileInitCmd(app *App) *cobra.Command {
	var opts profileOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a student profile",
		Long:  "Create a student profile interactively, or via flags when not attached to a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile *domain.StudentProfile
			var err error

			// Flags win over the wizard so scripted use stays possible
			// from an interactive shell.
			if app.IsInteractive && !cmd.Flags().Changed("name") {
				profile, err = runProfileWizard()
			} else {
				profile, err = opts.toProfile()
			}
			if err != nil {
				return err
			}

			if err := app.Profiles.Create(context.Background(), profile); err != nil {
				return err
			}

			fmt.Printf("Created profile for %s (%d subjects)\n", profile.StudentName, len(profile.Subjects))
			return nil
		},
	}

	registerProfileFlags(cmd.Flags(), &opts)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a student profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var profile *domain.StudentProfile
			var err error
			if len(args) == 1 {
				profile, err = app.Profiles.GetByID(ctx, args[0])
			} else {
				profile, err = app.Profiles.GetLatest(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProfile(profile))
			return nil
		},
	}
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List student profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(context.Background())
			if err != nil {
				return err
			}

			if len(profiles) == 0 {
				fmt.Println("No profiles found.")
				return nil
			}

			for _, p := range profiles {
				fmt.Printf("%s  %s %s\n",
					formatter.Dim(p.ID),
					formatter.Bold(p.StudentName),
					formatter.Dim(fmt.Sprintf("(%d subjects)", len(p.Subjects))))
			}
			return nil
		},
	}
}

func newProfileRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a student profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed profile %s\n", args[0])
			return nil
		},
	}
}
