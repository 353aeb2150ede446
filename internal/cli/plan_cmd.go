package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studbud/internal/cli/formatter"
	"github.com/alexanderramin/studbud/internal/domain"
	"github.com/alexanderramin/studbud/internal/repository"
	"github.com/alexanderramin/studbud/internal/service"
)

// fetchPlan resolves a stored plan from the --plan / --profile flags,
// defaulting to the latest plan of the latest profile.
func fetchPlan(ctx context.Context, app *App, planID, profileID string) (*repository.StoredPlan, error) {
	if planID != "" {
		return app.Plans.GetByID(ctx, planID)
	}
	return app.Plans.Latest(ctx, profileID)
}

func newGenerateCmd(app *App) *cobra.Command {
	var days int
	var start, profileID string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate := time.Now().UTC().Truncate(24 * time.Hour)
			if start != "" {
				var err error
				startDate, err = time.Parse(domain.DateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
			}

			stop := func() {}
			if app.IsInteractive {
				stop = formatter.StartSpinner("Generating study plan...")
			}

			stored, err := app.Plans.Generate(context.Background(), service.GenerateRequest{
				ProfileID: profileID,
				StartDate: startDate,
				NumDays:   days,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatStudyPlan(stored.Plan))
			fmt.Printf("%s\n", formatter.Dim(fmt.Sprintf("Plan %s saved.", stored.ID)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days to plan")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID (default latest)")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var planID, date, profileID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the latest study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stored, err := fetchPlan(ctx, app, planID, profileID)
			if err != nil {
				return err
			}

			if date != "" {
				daily, ok := stored.Plan[date]
				if !ok {
					return fmt.Errorf("plan has no day %s", date)
				}
				fmt.Printf("%s\n", formatter.FormatDailyPlan(daily))
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatStudyPlan(stored.Plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID (default latest)")
	cmd.Flags().StringVar(&date, "date", "", "Show a single day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID (default latest)")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var planID, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a study plan to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Export(context.Background(), planID, out); err != nil {
				return err
			}
			fmt.Printf("Exported plan to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID (default latest)")
	cmd.Flags().StringVar(&out, "out", "study_plan.json", "Output file path")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var profileID string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a study plan from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := app.Plans.Import(context.Background(), profileID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported plan %s (%d days)\n", stored.ID, stored.NumDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID (default latest)")

	return cmd
}
