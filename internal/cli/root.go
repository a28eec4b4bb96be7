package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/vital/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Entries   service.EntryService
	Analytics service.AnalyticsService
	Forecast  service.ForecastService

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flag-only behavior when it is false or unset.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "vital" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "vital",
		Short: "Local-first health and mood journal with analytics",
	}

	root.AddCommand(
		newLogCmd(app),
		newMoodCmd(app),
		newDayCmd(app),
		newEntriesCmd(app),
		newWeekCmd(app),
		newStoryCmd(app),
		newSimulateCmd(app),
		newNameCmd(app),
	)

	return root
}
