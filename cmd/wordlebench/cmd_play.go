package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jinterlante1206/WordleBench/pkg/ux"
	"github.com/jinterlante1206/WordleBench/services/llm"
	"github.com/jinterlante1206/WordleBench/services/solver"
	"github.com/jinterlante1206/WordleBench/services/words"
)

func runPlay(cmd *cobra.Command, _ []string) {
	vocab := words.Default()
	if playWordsFile != "" {
		loaded, err := words.Load(playWordsFile)
		if err != nil {
			slog.Error("Failed to load word list", "path", playWordsFile, "error", err)
			return
		}
		vocab = loaded
	}

	oracle, err := llm.ForPlatform(playPlatform, playBaseURL, playModel, 0, 0)
	if err != nil {
		slog.Error("Failed to configure oracle", "platform", playPlatform, "error", err)
		return
	}

	session, err := solver.NewSession(solver.Config{
		Vocabulary: vocab,
		Starters:   words.DefaultStarters,
		Lies:       playLies,
		CallBudget: playBudget,
		Target:     playTarget,
	}, oracle, logger)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		return
	}

	if playLies > 0 {
		ux.Title(fmt.Sprintf("Fibble (%d lie)", playLies))
	} else {
		ux.Title("Wordle")
	}

	ctx := context.Background()
	start := time.Now()
	oracleCalls := 0
	for session.Status() == solver.StatusPlaying {
		turn := session.PlayTurn(ctx)
		oracleCalls += turn.OracleCalls
		fmt.Println("  " + ux.RenderRow(turn.Guess, turn.Feedback))
	}

	elapsed := time.Since(start)
	if session.Success() {
		ux.Success(fmt.Sprintf("solved %q in %d tries (%.1fs, %d oracle calls)",
			session.Target(), session.Tries(), elapsed.Seconds(), oracleCalls))
	} else {
		ux.Error(fmt.Sprintf("out of guesses, target was %q", session.Target()))
	}
	if playLies > 0 {
		ux.Muted(fmt.Sprintf("lie column was %d", session.LieColumn()+1))
	}
}
