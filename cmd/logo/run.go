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
	"bufio"
	"os"

	"github.com/logoscript/logo/eval"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/internal/config"
	"github.com/logoscript/logo/internal/session"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Logo script non-interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.RawTTY = false // `run` never drives an interactive terminal

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

	lines, err := readLines(args[0])
	if err != nil {
		return err
	}
	runAll(d, lines)
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
