package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/daemon"
)

func init() {
	waterCmd.AddCommand(waterAddCmd, waterRmCmd, waterTodayCmd, waterWeekCmd, waterGoalCmd)
	rootCmd.AddCommand(waterCmd)
}

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: "Record a drink (defaults to one cup)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		var ml int
		if len(args) == 1 {
			ml, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
		} else {
			settings, err := a.Water.Settings()
			if err != nil {
				return err
			}
			ml = settings.CupSizeML
		}

		entry, err := a.Water.AddEntry(ml)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %d ml (id %s)\n", entry.AmountML, entry.ID)
		return nil
	},
}

var waterRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an intake entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Water.DeleteEntry(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

var waterTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		progress, err := a.Water.TodayTotal()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d / %d ml (%.0f%%)\n",
			progress.Date, progress.AmountML, progress.GoalML, progress.Pct())
		return nil
	},
}

var waterWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the last 7 days of intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		series, err := a.Water.WeeklySeries()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tML")
		for _, day := range series {
			fmt.Fprintf(w, "%s\t%d\n", day.Date, day.AmountML)
		}
		return w.Flush()
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal [ml]",
	Short: "Show or set the daily goal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		settings, err := a.Water.Settings()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Printf("Daily goal: %d ml (cup %d ml)\n", settings.DailyGoalML, settings.CupSizeML)
			return nil
		}

		goal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal %q", args[0])
		}
		settings.DailyGoalML = goal
		if err := a.Water.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Printf("Daily goal set to %d ml\n", goal)
		return nil
	},
}
