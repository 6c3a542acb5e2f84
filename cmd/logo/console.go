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
	"os"

	"github.com/logoscript/logo/console"
	"github.com/logoscript/logo/internal/config"
)

// buildConsole assembles the console.Bundle cmd/logo hands to eval.New,
// wiring a real terminal and, when cfg.Files is set, the host file
// system. Capabilities left nil (Files when disabled, Turtle and Hardware
// always) make their primitives fail with eval's ErrUnsupportedOnDevice
// rather than needing a dedicated no-op implementation (spec.md §6.2's
// "fields may be nil").
//
// cfg.RawTTY puts the terminal into raw mode first; stdin is read through
// terminalInput either way, including when raw mode could not be entered.
// teardown restores the terminal on exit and must always be deferred by
// the caller (it is a no-op when raw mode was not entered).
func buildConsole(cfg config.Config) (bundle *console.Bundle, teardown func()) {
	screen := newVT100Screen(os.Stdout)

	bundle = &console.Bundle{
		Output: screen,
		Screen: screen,
	}

	teardown = func() {}
	if cfg.RawTTY {
		restore, err := setRawIO()
		if err == nil {
			teardown = restore
			bundle.Input = newTerminalInput(os.Stdin)
		}
	}
	if bundle.Input == nil {
		bundle.Input = newTerminalInput(os.Stdin)
	}

	if cfg.Files {
		bundle.Files = osFileSystem{}
	}
	// Turtle and Hardware have no headless-terminal-backed implementation
	// yet; cfg.Turtle/cfg.Hardware are accepted so a future graphical or
	// port-backed host can gate on them, but cmd/logo itself only drives
	// a text terminal, so those capabilities stay nil here regardless.

	return bundle, teardown
}
