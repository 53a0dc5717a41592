package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jinterlante1206/WordleBench/pkg/logging"
	"github.com/jinterlante1206/WordleBench/pkg/ux"
	"github.com/jinterlante1206/WordleBench/services/solver"
)

// DefaultResultsDir is where run summaries land unless overridden.
const DefaultResultsDir = "benchmarks/logs"

// Runner plays a scenario's worth of games on one session and aggregates
// the results. The session is reset between games; the oracle, vocabulary,
// and configuration stay fixed for the whole run.
type Runner struct {
	scenario *Scenario
	session  *solver.Session
	logger   *logging.Logger
	storage  ResultStorage // optional
}

// NewRunner wires a runner. storage may be nil for JSON-file-only runs.
func NewRunner(scenario *Scenario, session *solver.Session, logger *logging.Logger, storage ResultStorage) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{scenario: scenario, session: session, logger: logger, storage: storage}
}

// RunID builds the run identifier: {scenario id}_v{version}_{timestamp},
// the same shape the rest of the tooling keys exports on.
func (r *Runner) RunID() string {
	version := r.scenario.Metadata.Version
	if version == "" {
		version = "0"
	}
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_v%s_%s", r.scenario.Metadata.ID, version, timestamp)
}

// Run plays every game in the scenario and returns the aggregated summary.
// Individual game failures don't exist by design (the solver always
// produces a guess); the only error paths are ctx cancellation between
// turns and result persistence.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID:     r.RunID(),
		Platform:  r.scenario.Oracle.Platform,
		Model:     r.scenario.Oracle.Model,
		Lies:      r.scenario.Game.Lies,
		NumGames:  r.scenario.Game.Games,
		StartedAt: time.Now(),
	}
	if summary.Platform == "" {
		summary.Platform = "ollama"
	}

	r.logger.Info("benchmark starting",
		"run_id", summary.RunID,
		"games", summary.NumGames,
		"lies", summary.Lies,
		"platform", summary.Platform,
		"model", summary.Model)

	for i := 0; i < r.scenario.Game.Games; i++ {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("benchmark interrupted after %d games: %w", i, err)
		}

		game, err := r.runGame(ctx, i)
		if err != nil {
			return summary, err
		}
		summary.Games = append(summary.Games, game)

		if game.Success {
			summary.Wins++
		}
		summary.OracleCalls += game.OracleCalls
		summary.GoodGuesses += game.GoodGuesses
		summary.BadGuesses += game.BadGuesses

		n := i + 1
		summary.WinRate = float64(summary.Wins) / float64(n)
		summary.AvgTries = avgTries(summary.Games)
		summary.AvgLatency = avgLatency(summary.Games)

		ux.Info(fmt.Sprintf("rolling: win rate %.1f%%, avg tries %.2f",
			summary.WinRate*100, summary.AvgTries))

		if r.storage != nil {
			if err := r.storage.StoreGame(ctx, summary, game); err != nil {
				// Persistence trouble must not kill a long run.
				r.logger.Warn("failed to store game result", "game", game.ID, "error", err)
			}
		}
	}

	summary.FinishedAt = time.Now()
	return summary, nil
}

// runGame plays one game to completion.
func (r *Runner) runGame(ctx context.Context, index int) (GameResult, error) {
	if index > 0 {
		if err := r.session.Reset(); err != nil {
			return GameResult{}, fmt.Errorf("failed to reset session for game %d: %w", index+1, err)
		}
	}

	ux.Title(fmt.Sprintf("Game %d of %d", index+1, r.scenario.Game.Games))

	game := GameResult{ID: uuid.NewString()}
	start := time.Now()

	for r.session.Status() == solver.StatusPlaying {
		turn := r.session.PlayTurn(ctx)
		game.OracleCalls += turn.OracleCalls
		game.GoodGuesses++
		if turn.OracleCalls > 1 {
			game.BadGuesses += turn.OracleCalls - 1
		}
		fmt.Println("  " + ux.RenderRow(turn.Guess, turn.Feedback))
	}

	game.LatencySeconds = time.Since(start).Seconds()
	game.FinishedAt = time.Now()
	game.Target = r.session.Target()
	game.Success = r.session.Success()
	game.Tries = r.session.Tries()
	game.Completion = completionScore(r.session.History())

	if game.Success {
		ux.Success(fmt.Sprintf("solved %q in %d tries (%.2fs, %d oracle calls)",
			game.Target, game.Tries, game.LatencySeconds, game.OracleCalls))
	} else {
		ux.Error(fmt.Sprintf("failed, target was %q (%.2fs, %d oracle calls)",
			game.Target, game.LatencySeconds, game.OracleCalls))
	}

	r.logger.Info("game finished",
		"game_id", game.ID,
		"target", game.Target,
		"success", game.Success,
		"tries", game.Tries,
		"oracle_calls", game.OracleCalls)
	return game, nil
}

// completionScore averages per-row board completion: each correct tile is
// worth 1, each present tile 0.5, scaled to the 0..5 range of one row.
func completionScore(history []solver.HistoryEntry) float64 {
	if len(history) == 0 {
		return 0
	}
	total := 0.0
	for _, entry := range history {
		for _, fb := range entry.Feedback {
			switch fb {
			case solver.FeedbackCorrect:
				total += 1
			case solver.FeedbackPresent:
				total += 0.5
			}
		}
	}
	return total / float64(len(history))
}

func avgTries(games []GameResult) float64 {
	if len(games) == 0 {
		return 0
	}
	total := 0
	for _, g := range games {
		total += g.Tries
	}
	return float64(total) / float64(len(games))
}

func avgLatency(games []GameResult) float64 {
	if len(games) == 0 {
		return 0
	}
	total := 0.0
	for _, g := range games {
		total += g.LatencySeconds
	}
	return total / float64(len(games))
}
