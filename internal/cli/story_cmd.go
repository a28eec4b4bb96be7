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

func newStoryCmd(app *App) *cobra.Command {
	var start, name string

	cmd := &cobra.Command{
		Use:   "story",
		Short: "Tell the week as a short story",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewWeeklyRequest()
			req.UserName = name
			if start != "" {
				day, err := time.Parse(domain.DateFormat, start)
				if err != nil {
					return fmt.Errorf("invalid --start date %q: use YYYY-MM-DD", start)
				}
				req.Start = &day
			}

			resp, err := app.Analytics.GenerateWeeklyStory(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderBox("Your Week", resp.Story))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day of the week (YYYY-MM-DD, default the last 7 days)")
	cmd.Flags().StringVar(&name, "name", "", "Name to address the story to")

	return cmd
}
