package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/vital/internal/cli/formatter"
	"github.com/alexanderramin/vital/internal/domain"
)

func newEntriesCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Show recent logged days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			now := time.Now()
			end := now.Format(domain.DateFormat)
			start := now.AddDate(0, 0, -(days - 1)).Format(domain.DateFormat)

			entries, err := app.Entries.ListEntries(context.Background(), start, end)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatEntries(entries))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to show")

	return cmd
}
