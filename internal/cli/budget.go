package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/daemon"
	"github.com/daykeep/daykeep/internal/domain"
)

func init() {
	budgetAddCmd.Flags().Float64Var(&budgetAmount, "amount", 0, "Amount (required)")
	budgetAddCmd.Flags().StringVar(&budgetType, "type", "expense", "Entry type: income or expense")
	budgetAddCmd.Flags().StringVar(&budgetCategory, "category", "", "Category (required)")
	budgetAddCmd.Flags().StringVar(&budgetNote, "note", "", "Optional description")
	budgetBreakdownCmd.Flags().StringVar(&budgetType, "type", "expense", "Entry type: income or expense")

	budgetCmd.AddCommand(budgetAddCmd, budgetRmCmd, budgetListCmd, budgetSummaryCmd, budgetBreakdownCmd)
	rootCmd.AddCommand(budgetCmd)
}

var (
	budgetAmount   float64
	budgetType     string
	budgetCategory string
	budgetNote     string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Track income and expenses",
}

var budgetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a ledger entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.Budget.AddEntry(budgetAmount, domain.EntryType(budgetType), budgetCategory, budgetNote)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s %.2f in %s (id %s)\n", entry.Type, entry.Amount, entry.Category, entry.ID)
		return nil
	},
}

var budgetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a ledger entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Budget.DeleteEntry(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

var budgetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List ledger entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.Budget.Entries()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No entries. Run 'daykeep budget add' to record one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tAMOUNT\tNOTE\tID")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
				e.Date.Format("2006-01-02"), e.Type, e.Category, e.Amount, e.Description, e.ID)
		}
		return w.Flush()
	},
}

var budgetSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expense, and balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		sum, err := a.Budget.Summary()
		if err != nil {
			return err
		}
		fmt.Printf("Income:  %.2f\n", sum.Income)
		fmt.Printf("Expense: %.2f\n", sum.Expense)
		fmt.Printf("Balance: %.2f\n", sum.Balance)
		return nil
	},
}

var budgetBreakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show per-category totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := daemon.New()
		if err != nil {
			return err
		}
		defer a.Close()

		typ := domain.EntryType(budgetType)
		rows, err := a.Budget.Breakdown(typ)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%.2f\t%.1f%%\n", row.Category, row.Amount, row.Percentage)
		}
		return w.Flush()
	},
}
