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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logoscript/logo/eval"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/internal/config"
	"github.com/logoscript/logo/internal/session"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Logo session",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	bundle, teardown := buildConsole(cfg)
	defer teardown()

	it := eval.New(heap.New(), bundle)
	sess := session.New(it)
	sess.RegisterPrims()

	d := newDriver(sess, os.Stderr)

	for _, path := range cfg.With {
		lines, err := readLines(path)
		if err != nil {
			return err
		}
		runAll(d, lines)
	}

	prompt(bundle.Output, it, false)
	for {
		line, err := bundle.Input.ReadLine()
		if err == io.EOF {
			fmt.Fprintln(bundle.Output)
			return nil
		}
		if err != nil {
			return err
		}
		d.feed(line)
		prompt(bundle.Output, it, d.inDef)
	}
}

// prompt writes the REPL's next-line cue: "~" while a `to` definition is
// being buffered. A pause's own "co>" prompt is written by
// eval.Interp.pauseLoop itself, since by the time control returns here
// the pause has already been resumed past by `co`.
func prompt(w io.Writer, it *eval.Interp, bufferingDef bool) {
	if bufferingDef {
		fmt.Fprint(w, "~ ")
		return
	}
	fmt.Fprint(w, "? ")
}
