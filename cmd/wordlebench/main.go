// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/jinterlante1206/WordleBench/pkg/logging"
)

// logger is shared by all commands; the --verbose flag raises it to debug
// in the root command's PersistentPreRun, after flags are parsed.
var logger = logging.New(logging.Config{Level: logging.LevelInfo, Service: "cli"})

func main() {
	defer logger.Close()

	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
