package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/vital/internal/analytics"
	"github.com/alexanderramin/vital/internal/cli/formatter"
	"github.com/alexanderramin/vital/internal/domain"
)

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show a single day's scores",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format(domain.DateFormat)
			if len(args) > 0 {
				date = args[0]
			}

			entry, err := app.Entries.GetDay(context.Background(), date)
			if err != nil {
				return err
			}

			if entry.Health != nil {
				score := analytics.ComputeEnergyScore(entry.Health.SleepHours, entry.Health.Steps)
				fmt.Print(formatter.FormatEnergy(date, score))
				fmt.Println()
			}
			if entry.Mood != nil {
				score := analytics.ComputeEmotionScore(entry.Mood.Value, entry.Mood.DiaryText)
				fmt.Print(formatter.FormatEmotion(date, score))
				fmt.Println()
			}
			return nil
		},
	}
}
