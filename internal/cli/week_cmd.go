package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/vital/internal/cli/formatter"
	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/domain"
)

func newWeekCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly report",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewWeeklyRequest()
			if start != "" {
				day, err := time.Parse(domain.DateFormat, start)
				if err != nil {
					return fmt.Errorf("invalid --start date %q: use YYYY-MM-DD", start)
				}
				req.Start = &day
			}

			resp, err := app.Analytics.GenerateWeeklyAnalytics(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatWeekly(resp))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day of the week (YYYY-MM-DD, default the last 7 days)")

	return cmd
}
