// This file is part of logo - https://github.com/logoscript/logo
//
// Copyright 2026 The Logo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command logo is the REPL executable: a github.com/spf13/cobra command
// tree (run/repl/version) replacing the teacher's flat cmd/retro/main.go
// flag set. Only --config and --debug are flags; startup scripts, raw
// terminal input and capabilities come from the logo.yaml that --config
// names.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overwritten at build time via -ldflags, matching the
// teacher's own build-time-stamped Version/GitCommit/BuildDate trio.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "logo",
	Short:   "A Logo interpreter",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "logo.yaml", "path to an optional logo.yaml configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print a stack trace alongside any fatal error")
}

// Execute runs the command tree; main's only job is to call this and set
// the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func fail(err error) {
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}
