// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jinterlante1206/WordleBench/services/solver"
)

var (
	tileCorrect = lipgloss.NewStyle().
			Background(ColorTileCorrect).
			Foreground(ColorTileText).
			Bold(true).
			Padding(0, 1)
	tilePresent = lipgloss.NewStyle().
			Background(ColorTilePresent).
			Foreground(ColorTileText).
			Bold(true).
			Padding(0, 1)
	tileIncorrect = lipgloss.NewStyle().
			Background(ColorTileIncorrect).
			Foreground(ColorTileText).
			Bold(true).
			Padding(0, 1)
)

// RenderRow renders one guess as a row of colored tiles.
func RenderRow(word string, feedback []solver.Feedback) string {
	word = strings.ToUpper(word)
	tiles := make([]string, 0, len(word))
	for i := 0; i < len(word) && i < len(feedback); i++ {
		letter := string(word[i])
		switch feedback[i] {
		case solver.FeedbackCorrect:
			tiles = append(tiles, tileCorrect.Render(letter))
		case solver.FeedbackPresent:
			tiles = append(tiles, tilePresent.Render(letter))
		default:
			tiles = append(tiles, tileIncorrect.Render(letter))
		}
	}
	return strings.Join(tiles, " ")
}

// RenderBoard renders the full guess history, one row per line.
func RenderBoard(history []solver.HistoryEntry) string {
	rows := make([]string, 0, len(history))
	for _, entry := range history {
		rows = append(rows, RenderRow(entry.Word, entry.Feedback))
	}
	return strings.Join(rows, "\n")
}
