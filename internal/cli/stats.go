package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show engagement counters",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := daemon.New()
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.Engagement.Snapshot()
	if err != nil {
		return err
	}

	fmt.Printf("Cumulative score: %d\n", rec.CumulativeScore)
	fmt.Printf("Total events:     %d\n", rec.TotalEvents)
	fmt.Printf("Today:            %d\n", rec.TodayEvents)
	fmt.Printf("Streak:           %d day(s)\n", rec.ContinuousDays)
	if rec.LastEventDate != "" {
		fmt.Printf("Last event:       %s\n", rec.LastEventDate)
	}
	fmt.Printf("Achievements:     %d\n", len(rec.Achievements))
	return nil
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List unlocked achievements",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	a, err := daemon.New()
	if err != nil {
		return err
	}
	defer a.Close()

	unlocked, err := a.Engagement.Achievements()
	if err != nil {
		return err
	}
	if len(unlocked) == 0 {
		fmt.Println("No achievements yet. Run 'daykeep tap' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tUNLOCKED")
	for _, ach := range unlocked {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			ach.Name, ach.Description, ach.UnlockedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
