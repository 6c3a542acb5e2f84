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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "logo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.yaml")
	doc := "frame_size: 4096\nwith:\n  - startup.logo\nraw_tty: false\nturtle: false\n"
	writeFile(t, path, doc)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.FrameSize)
	assert.Equal(t, []string{"startup.logo"}, cfg.With)
	assert.False(t, cfg.RawTTY, "expected RawTTY to be overridden to false")
	assert.False(t, cfg.Turtle, "expected Turtle to be overridden to false")
	// Files/Hardware were left unset in the document and must keep their
	// Default() values, not zero out.
	assert.True(t, cfg.Files, "expected Files to keep its default")
	assert.True(t, cfg.Hardware, "expected Hardware to keep its default")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.yaml")
	writeFile(t, path, "frame_size: [this is not an int\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
