// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"
	"testing"

	"github.com/jinterlante1206/WordleBench/services/solver"
)

func TestRenderRow_UppercasesLetters(t *testing.T) {
	row := RenderRow("crane", solver.Score("crane", "slate"))
	for _, letter := range []string{"C", "R", "A", "N", "E"} {
		if !strings.Contains(row, letter) {
			t.Errorf("rendered row missing letter %s", letter)
		}
	}
	if strings.Contains(row, "c") {
		t.Error("rendered row must be uppercase")
	}
}

func TestRenderRow_TruncatesToFeedbackLength(t *testing.T) {
	row := RenderRow("crane", []solver.Feedback{solver.FeedbackCorrect})
	if strings.Contains(row, "R") {
		t.Error("row must only render letters that have feedback")
	}
}

func TestRenderBoard_OneLinePerGuess(t *testing.T) {
	history := []solver.HistoryEntry{
		{Word: "crane", Feedback: solver.Score("crane", "slate")},
		{Word: "slate", Feedback: solver.Score("slate", "slate")},
	}
	board := RenderBoard(history)
	if got := len(strings.Split(board, "\n")); got != 2 {
		t.Errorf("board has %d lines, want 2", got)
	}
}
