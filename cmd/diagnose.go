package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LNshuti/adaptest/internal/attempt"
	"github.com/LNshuti/adaptest/internal/config"
	"github.com/LNshuti/adaptest/internal/curriculum"
	"github.com/LNshuti/adaptest/internal/diagnostic"
	"github.com/LNshuti/adaptest/internal/irt"
	"github.com/LNshuti/adaptest/internal/itembank"
	"github.com/LNshuti/adaptest/internal/mastery"
	"github.com/LNshuti/adaptest/internal/report"
	"github.com/LNshuti/adaptest/internal/store"
)

const snapshotsToKeep = 20

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <bank.json>",
	Short: "Run an adaptive diagnostic over an item bank",
	Long: "Diagnose administers items from the given bank, probing the most " +
		"uncertain skill first, until every skill's ability estimate converges " +
		"or its item budget is spent. Grading is interactive unless --simulate " +
		"is given.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiagnose(cmd, args[0])
	},
}

func init() {
	diagnoseCmd.Flags().Float64("simulate", math.NaN(),
		"Simulate a learner with the given true ability instead of interactive grading")
	diagnoseCmd.Flags().StringSlice("skills", nil,
		"Skill IDs to assess (default: all skills with items in the bank)")
}

func runDiagnose(cmd *cobra.Command, bankPath string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

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

	skillIDs, err := diagnosticSkills(ctx, cmd, bank)
	if err != nil {
		return err
	}

	tracker := mastery.NewTracker(mastery.Params{
		PSlip:       cfg.PSlip,
		PGuess:      cfg.PGuess,
		FastFactor:  cfg.FastFactor,
		LearnGrowth: cfg.LearnGrowth,
		LearnCap:    cfg.LearnCap,
	})
	if states, err := st.MasteryRepo().Latest(ctx); err != nil {
		return fmt.Errorf("load mastery snapshot: %w", err)
	} else if states != nil {
		tracker.Restore(states)
	}

	session := diagnostic.NewSession(skillIDs,
		diagnostic.WithCompletion(cfg.SEThreshold, cfg.DiagnosticMaxPerSkill),
		diagnostic.WithLogger(logger))

	grade := interactiveGrader(cmd)
	simTheta, _ := cmd.Flags().GetFloat64("simulate")
	if !math.IsNaN(simTheta) {
		grade = simulatedGrader(simTheta)
	}

	attemptRepo := st.AttemptRepo()
	for {
		it, ok, err := session.NextItem(ctx, bank)
		if err != nil {
			return fmt.Errorf("select item: %w", err)
		}
		if !ok {
			break
		}

		correct, responseTime, err := grade(it)
		if err != nil {
			return err
		}
		att := attempt.New(it.ID, correct, responseTime, time.Now())
		session.ProcessAnswer(it, att, bank.Lookup)

		for _, tag := range it.Skills {
			if !curriculum.IsKnown(tag) {
				continue
			}
			tracker.Record(tag, correct, responseTime, it.ExpectedTime, att.Timestamp)
			if err := attemptRepo.Append(ctx, tag, att); err != nil {
				return fmt.Errorf("persist attempt: %w", err)
			}
		}
	}

	result := session.Result()
	fmt.Fprintln(cmd.OutOrStdout(), report.Diagnostic(result))

	if err := persistOutcome(ctx, st, tracker, result); err != nil {
		return err
	}
	logger.Info("diagnostic complete",
		zap.Int("items", result.TotalItems),
		zap.Duration("elapsed", result.Elapsed))
	return nil
}

// diagnosticSkills resolves which skills the session assesses: the --skills
// flag if given, otherwise every registry skill the bank has items for.
func diagnosticSkills(ctx context.Context, cmd *cobra.Command, bank *itembank.Bank) ([]string, error) {
	if ids, _ := cmd.Flags().GetStringSlice("skills"); len(ids) > 0 {
		for _, id := range ids {
			if !curriculum.IsKnown(id) {
				return nil, fmt.Errorf("unknown skill %q", id)
			}
		}
		return ids, nil
	}

	var ids []string
	for _, id := range curriculum.SkillIDs() {
		pool, err := bank.FetchBySkill(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(pool) > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("item bank covers no known skills")
	}
	return ids, nil
}

type graderFunc func(it itembank.Item) (correct bool, responseTime time.Duration, err error)

// interactiveGrader prompts on stdin for each administered item and times
// the response.
func interactiveGrader(cmd *cobra.Command) graderFunc {
	reader := bufio.NewReader(cmd.InOrStdin())
	return func(it itembank.Item) (bool, time.Duration, error) {
		sk, _ := curriculum.GetSkill(it.PrimarySkill())
		fmt.Fprintf(cmd.OutOrStdout(), "Item %s (%s) — correct? [y/n] ", it.ID, sk.Name)
		start := time.Now()
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, 0, fmt.Errorf("read answer: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", time.Since(start), nil
	}
}

// simulatedGrader answers with the probability a learner of the given
// ability would: each item is an independent Bernoulli draw.
func simulatedGrader(theta float64) graderFunc {
	return func(it itembank.Item) (bool, time.Duration, error) {
		p := irt.ProbabilityCorrect(theta, it)
		return rand.Float64() < p, it.ExpectedTime, nil
	}
}

func persistOutcome(ctx context.Context, st *store.Store, tracker *mastery.Tracker, result *diagnostic.Result) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := st.ResultRepo().Save(ctx, result.CompletedAt, result.Elapsed, result.TotalItems, blob); err != nil {
		return fmt.Errorf("persist result: %w", err)
	}

	repo := st.MasteryRepo()
	if err := repo.Save(ctx, tracker.Snapshot(), result.CompletedAt); err != nil {
		return fmt.Errorf("persist mastery snapshot: %w", err)
	}
	if err := repo.Prune(ctx, snapshotsToKeep); err != nil {
		fmt.Fprintln(os.Stderr, "prune snapshots:", err)
	}
	return nil
}
