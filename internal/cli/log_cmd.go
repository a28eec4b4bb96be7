package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/vital/internal/analytics"
	"github.com/alexanderramin/vital/internal/cli/formatter"
	"github.com/alexanderramin/vital/internal/domain"
)

func newLogCmd(app *App) *cobra.Command {
	var date string
	var steps, heartRate int
	var sleepHours, waterLitres float64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a day's health data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = time.Now().Format(domain.DateFormat)
			}

			// With no values given on an interactive terminal, ask.
			noFlags := !cmd.Flags().Changed("steps") &&
				!cmd.Flags().Changed("sleep") &&
				!cmd.Flags().Changed("heart-rate") &&
				!cmd.Flags().Changed("water")
			if noFlags {
				if !app.interactive() {
					return fmt.Errorf("nothing to log: pass --steps and/or --sleep, or run interactively")
				}
				var err error
				date, steps, sleepHours, heartRate, waterLitres, err = promptHealthValues(date)
				if err != nil {
					return err
				}
			}

			sample := &domain.HealthSample{
				Date:       date,
				Steps:      steps,
				SleepHours: sleepHours,
			}
			if cmd.Flags().Changed("heart-rate") || heartRate > 0 {
				sample.HeartRate = &heartRate
			}
			if cmd.Flags().Changed("water") || waterLitres > 0 {
				sample.WaterLitres = &waterLitres
			}

			if err := app.Entries.LogHealth(ctx, sample); err != nil {
				return err
			}

			score := analytics.ComputeEnergyScore(sample.SleepHours, sample.Steps)
			fmt.Print(formatter.FormatEnergy(sample.Date, score))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to log (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&steps, "steps", 0, "Steps walked")
	cmd.Flags().Float64Var(&sleepHours, "sleep", 0, "Hours slept")
	cmd.Flags().IntVar(&heartRate, "heart-rate", 0, "Resting heart rate (bpm)")
	cmd.Flags().Float64Var(&waterLitres, "water", 0, "Water drunk (litres)")

	return cmd
}

// promptHealthValues collects the day's numbers through a themed form.
func promptHealthValues(defaultDate string) (date string, steps int, sleep float64, heartRate int, water float64, err error) {
	date = defaultDate
	var stepsStr, sleepStr, heartStr, waterStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder(defaultDate).
				Value(&date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Hours slept").
				Placeholder("7.5").
				Value(&sleepStr).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Steps walked").
				Placeholder("8000").
				Value(&stepsStr).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Resting heart rate (blank to skip)").
				Placeholder("62").
				Value(&heartStr).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Water in litres (blank to skip)").
				Placeholder("2.0").
				Value(&waterStr).
				Validate(validateOptionalFloat),
		),
	).WithTheme(vitalHuhTheme()).WithShowHelp(false)

	if err = form.Run(); err != nil {
		return "", 0, 0, 0, 0, err
	}
	if date == "" {
		date = defaultDate
	}
	return date, parsedInt(stepsStr, 0), parsedFloat(sleepStr, 0), parsedInt(heartStr, 0), parsedFloat(waterStr, 0), nil
}
