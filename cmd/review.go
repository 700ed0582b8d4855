package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/LNshuti/adaptest/internal/attempt"
	"github.com/LNshuti/adaptest/internal/config"
	"github.com/LNshuti/adaptest/internal/curriculum"
	"github.com/LNshuti/adaptest/internal/irt"
	"github.com/LNshuti/adaptest/internal/itembank"
	"github.com/LNshuti/adaptest/internal/mastery"
	"github.com/LNshuti/adaptest/internal/review"
	"github.com/LNshuti/adaptest/internal/selection"
	"github.com/LNshuti/adaptest/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review <bank.json>",
	Short: "Practice skills whose mastery has decayed",
	Long: "Review finds skills that were proficient at last practice but have " +
		"decayed below the proficiency threshold since, and administers a short " +
		"maintenance set for each.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd, args[0])
	},
}

func init() {
	reviewCmd.Flags().Float64("simulate", math.NaN(),
		"Simulate a learner with the given true ability instead of interactive grading")
	reviewCmd.Flags().Int("items", 3, "Items to administer per due skill")
}

func runReview(cmd *cobra.Command, bankPath string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	bank, err := itembank.LoadFile(bankPath)
	if err != nil {
		return fmt.Errorf("load item bank: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	states, err := st.MasteryRepo().Latest(ctx)
	if err != nil {
		return fmt.Errorf("load mastery snapshot: %w", err)
	}
	due := review.Due(states, time.Now())
	if len(due) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills due for review.")
		return nil
	}

	tracker := mastery.NewTracker(mastery.Params{
		PSlip:       cfg.PSlip,
		PGuess:      cfg.PGuess,
		FastFactor:  cfg.FastFactor,
		LearnGrowth: cfg.LearnGrowth,
		LearnCap:    cfg.LearnCap,
	})
	tracker.Restore(states)

	grade := interactiveGrader(cmd)
	simTheta, _ := cmd.Flags().GetFloat64("simulate")
	if !math.IsNaN(simTheta) {
		grade = simulatedGrader(simTheta)
	}
	itemsPerSkill, _ := cmd.Flags().GetInt("items")

	attemptRepo := st.AttemptRepo()
	planner := review.NewPlanner(attemptRepo, irt.DefaultPrior())
	hist := selection.NewHistory()
	cons := selection.Constraints{MaxPerSkill: itemsPerSkill, MinPerSkill: 1}

	for _, entry := range due {
		sk, _ := curriculum.GetSkill(entry.SkillID)
		fmt.Fprintf(cmd.OutOrStdout(), "Reviewing %s (mastery %.0f%% → %.0f%%)\n",
			sk.Name, entry.PKnown*100, entry.Decayed*100)

		for i := 0; i < itemsPerSkill; i++ {
			it, ok, err := planner.NextItem(ctx, bank, hist, entry.SkillID, cons)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			correct, responseTime, err := grade(it)
			if err != nil {
				return err
			}
			now := time.Now()
			tracker.Record(entry.SkillID, correct, responseTime, it.ExpectedTime, now)
			if err := attemptRepo.Append(ctx, entry.SkillID, attempt.New(it.ID, correct, responseTime, now)); err != nil {
				return fmt.Errorf("persist attempt: %w", err)
			}
		}

		level := tracker.Level(entry.SkillID, time.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "  %s is now %s\n", sk.Name, level.Label())
	}

	if err := st.MasteryRepo().Save(ctx, tracker.Snapshot(), time.Now()); err != nil {
		return fmt.Errorf("persist mastery snapshot: %w", err)
	}
	return nil
}
