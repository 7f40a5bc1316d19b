package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.Results().Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No quizzes finished yet.")
			return nil
		}

		fmt.Fprintf(out, "%-20s  %5s  %5s  %8s  %s\n", "Quiz", "Runs", "Best", "Accuracy", "Last played")
		fmt.Fprintln(out, strings.Repeat("─", 64))

		var total store.QuizStats
		for _, st := range stats {
			fmt.Fprintf(out, "%-20s  %5d  %5d  %7.0f%%  %s\n",
				dataset.Kind(st.Quiz).DisplayName(),
				st.Runs,
				st.BestCorrect,
				accuracy(st.TotalCorrect, st.TotalIncorrect)*100,
				humanize.Time(st.LastPlayed),
			)
			total.Runs += st.Runs
			total.TotalCorrect += st.TotalCorrect
			total.TotalIncorrect += st.TotalIncorrect
		}

		fmt.Fprintln(out, strings.Repeat("─", 64))
		fmt.Fprintf(out, "%-20s  %5d  %5s  %7.0f%%\n",
			"TOTAL", total.Runs, "", accuracy(total.TotalCorrect, total.TotalIncorrect)*100)

		limit, _ := cmd.Flags().GetInt("recent")
		if limit <= 0 {
			return nil
		}
		runs, err := s.Results().Recent(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recent runs")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, r := range runs {
			fmt.Fprintf(out, "#%-4d  %s  %-20s  %d/%d\n",
				r.Seq, r.FinishedAt.Local().Format("2006-01-02 15:04"),
				dataset.Kind(r.Quiz).DisplayName(), r.Correct, r.Total)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 5, "Also list this many recent runs (0 to skip)")
}

func accuracy(correct, incorrect int) float64 {
	if n := correct + incorrect; n > 0 {
		return float64(correct) / float64(n)
	}
	return 0
}
