package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/vital/internal/cli/formatter"
	"github.com/alexanderramin/vital/internal/contract"
)

func newSimulateCmd(app *App) *cobra.Command {
	var targetSleep, baselineSleep float64
	var targetSteps, baselineSteps, days int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a habit change over the coming weeks",
		Long:  "Project how energy and mood would evolve if you held new sleep and step habits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sleep") && !cmd.Flags().Changed("steps") {
				return fmt.Errorf("nothing to simulate: pass --sleep and/or --steps")
			}

			req := contract.NewSimulateRequest(targetSleep, targetSteps)
			if cmd.Flags().Changed("baseline-sleep") {
				req.BaselineSleep = &baselineSleep
			}
			if cmd.Flags().Changed("baseline-steps") {
				req.BaselineSteps = &baselineSteps
			}
			if cmd.Flags().Changed("days") {
				req.Days = days
			}

			resp, err := app.Forecast.Simulate(context.Background(), req)
			if err != nil {
				return err
			}

			if interactive && app.interactive() {
				return runSimulateView(resp)
			}

			fmt.Print(formatter.FormatSimulation(resp))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Float64Var(&targetSleep, "sleep", 0, "Target hours of sleep per night")
	cmd.Flags().IntVar(&targetSteps, "steps", 0, "Target steps per day")
	cmd.Flags().Float64Var(&baselineSleep, "baseline-sleep", 0, "Current sleep (default from your history)")
	cmd.Flags().IntVar(&baselineSteps, "baseline-steps", 0, "Current steps (default from your history)")
	cmd.Flags().IntVar(&days, "days", 0, "Simulation horizon in days")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Adjust the scenario live and step through the projection")

	return cmd
}

func runSimulateView(resp *contract.SimulateResponse) error {
	p := tea.NewProgram(newSimulateModel(resp))
	_, err := p.Run()
	return err
}
