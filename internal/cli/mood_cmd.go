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

func newMoodCmd(app *App) *cobra.Command {
	var date, diary string
	var stress int

	cmd := &cobra.Command{
		Use:   "mood [value]",
		Short: "Log how today felt",
		Long:  "Log a mood entry. Value is one of: great, good, okay, low, bad.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = time.Now().Format(domain.DateFormat)
			}

			var value string
			if len(args) > 0 {
				value = args[0]
			} else {
				if !app.interactive() {
					return fmt.Errorf("mood value required: vital mood <great|good|okay|low|bad>")
				}
				var err error
				value, diary, err = promptMoodValues(diary)
				if err != nil {
					return err
				}
			}

			sample := &domain.MoodSample{
				Date:      date,
				Value:     domain.MoodValue(value),
				DiaryText: diary,
			}
			if cmd.Flags().Changed("stress") {
				sample.StressLevel = &stress
			}

			if err := app.Entries.LogMood(ctx, sample); err != nil {
				return err
			}

			score := analytics.ComputeEmotionScore(sample.Value, sample.DiaryText)
			fmt.Print(formatter.FormatEmotion(sample.Date, score))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to log (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&diary, "diary", "", "A few words about the day")
	cmd.Flags().IntVar(&stress, "stress", 0, "Stress level 1-10")

	return cmd
}

func promptMoodValues(diary string) (value, diaryOut string, err error) {
	diaryOut = diary

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How was the day?").
				Options(
					huh.NewOption("great", string(domain.MoodGreat)),
					huh.NewOption("good", string(domain.MoodGood)),
					huh.NewOption("okay", string(domain.MoodOkay)),
					huh.NewOption("low", string(domain.MoodLow)),
					huh.NewOption("bad", string(domain.MoodBad)),
				).
				Value(&value),
			huh.NewText().
				Title("Anything worth remembering? (optional)").
				Value(&diaryOut),
		),
	).WithTheme(vitalHuhTheme()).WithShowHelp(false)

	if err = form.Run(); err != nil {
		return "", "", err
	}
	return value, diaryOut, nil
}
