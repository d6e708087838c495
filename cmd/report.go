package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkoehler/sprechzeit/internal/progress"
	"github.com/mkoehler/sprechzeit/internal/report"
	"github.com/mkoehler/sprechzeit/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show per-mode progress and the next recommendation",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		lastN, _ := cmd.Flags().GetUint("last")
		csvPath, _ := cmd.Flags().GetString("csv")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// The query applies the mode filter before the lastN window, so
		// "last 5 of q1" means the five most recent q1 attempts.
		summaries, err := st.Attempts().ListSummaries(cmd.Context(), mode, int(lastN))
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		stats, rec := progress.Aggregate(toProgressAttempts(summaries), 0, "")

		if csvPath != "" {
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("create CSV file: %w", err)
			}
			defer f.Close()
			if err := report.WriteCSV(f, stats); err != nil {
				return fmt.Errorf("write CSV: %w", err)
			}
			fmt.Printf("Exportiert nach %s\n", csvPath)
			return nil
		}

		fmt.Print(report.Render(stats, rec))
		return nil
	},
}

func init() {
	reportCmd.Flags().String("mode", "", "Only aggregate this practice mode")
	reportCmd.Flags().Uint("last", 0, "Only aggregate the most recent N attempts (0 = all)")
	reportCmd.Flags().String("csv", "", "Write per-mode stats to this CSV file instead of the terminal")
}

func toProgressAttempts(summaries []store.AttemptSummary) []progress.Attempt {
	attempts := make([]progress.Attempt, len(summaries))
	for i, s := range summaries {
		attempts[i] = progress.Attempt{
			Mode:        s.Mode,
			WordCount:   s.WordCount,
			UniqueRatio: s.UniqueRatio,
			WPM:         s.WPM,
			LowQuality:  s.LowQuality,
			ASREmpty:    s.ASREmpty,
			Q3HasCausal: s.Q3HasCausal,
		}
	}
	return attempts
}
