package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "name NAME",
		Short: "Set the name used in weekly stories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("name cannot be empty")
			}
			if err := app.Entries.SetUserName(context.Background(), name); err != nil {
				return err
			}
			fmt.Printf("Nice to meet you, %s.\n", name)
			return nil
		},
	}
}
