package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/daemon"
)

func init() {
	tapCmd.Flags().IntVarP(&tapCount, "count", "n", 1, "Number of taps to record")
	rootCmd.AddCommand(tapCmd)
}

var tapCount int

var tapCmd = &cobra.Command{
	Use:   "tap",
	Short: "Record a habit event",
	RunE:  runTap,
}

func runTap(cmd *cobra.Command, args []string) error {
	a, err := daemon.New()
	if err != nil {
		return err
	}
	defer a.Close()

	if tapCount < 1 {
		tapCount = 1
	}
	for i := 0; i < tapCount; i++ {
		res, err := a.Engagement.RecordEvent()
		if err != nil {
			return err
		}
		if i == tapCount-1 {
			fmt.Printf("Score %d  ·  today %d  ·  streak %d day(s)\n",
				res.CumulativeScore, res.TodayEvents, res.ContinuousDays)
		}
		for _, ach := range res.NewAchievements {
			fmt.Printf("Achievement unlocked: %s (%s)\n", ach.Name, ach.Description)
		}
	}
	return nil
}
