package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/studbud/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles service.ProfileService
	Plans    service.PlanService

	// IsInteractive gates the profile wizard and spinners; when false
	// (piped output, CI) commands fall back to flag-only operation.
	IsInteractive bool
}

// NewRootCmd creates the top-level "studbud" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studbud",
		Short: "Personalized study plan generator",
	}

	root.AddCommand(
		newProfileCmd(app),
		newGenerateCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
