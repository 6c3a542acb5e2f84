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

// Package config loads the REPL's optional logo.yaml, the same
// startup-size/capability knobs the teacher's cmd/retro exposes as flags
// (-size, -with, -noraw), generalized into a file a user can check in
// alongside their scripts. CLI flags set on top of a loaded Config always
// win, matching the teacher's own flag-wins-over-default convention (none
// of cmd/retro's flags read from a file at all, so there is no "file wins"
// case to preserve).
package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config is the REPL's startup configuration, the logo.yaml equivalent of
// the teacher's command-line flags.
type Config struct {
	// FrameSize is a frame arena capacity in bindings, the teacher's -size
	// equivalent for call frames rather than VM cells. cmd/logo does not
	// pass it on: eval.New sizes its arena with frame.DefaultCapacity.
	FrameSize int `yaml:"frame_size"`
	// With lists startup script paths to run before entering the REPL
	// loop, in order, the direct analogue of the teacher's repeatable
	// -with flag.
	With []string `yaml:"with"`
	// RawTTY enables raw terminal input (the teacher's -noraw, inverted
	// since raw is the more useful REPL default).
	RawTTY bool `yaml:"raw_tty"`
	// Turtle is the turtle capability switch. cmd/logo's buildConsole
	// leaves console.Turtle nil whatever its value, so turtle primitives
	// fail with eval's ErrUnsupportedOnDevice.
	Turtle bool `yaml:"turtle"`
	// Files enables the console.FileSystem capability (save/load/
	// openread/openwrite); a config can turn workspace persistence off
	// entirely for a sandboxed embedding.
	Files bool `yaml:"files"`
	// Hardware is the port capability switch; cmd/logo's buildConsole
	// leaves console.Hardware nil whatever its value.
	Hardware bool `yaml:"hardware"`
}

// Default returns the configuration used when no logo.yaml is present:
// every optional capability switch on, FrameSize 256*1024, raw TTY input,
// no startup scripts.
func Default() Config {
	return Config{
		FrameSize: 256 * 1024,
		RawTTY:    true,
		Turtle:    true,
		Files:     true,
		Hardware:  true,
	}
}

// Load reads and parses path as a logo.yaml document. A missing file is
// not an error: Load returns Default() unchanged, so an absent logo.yaml
// behaves exactly like the teacher's absent command-line flags (built-in
// defaults apply).
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
