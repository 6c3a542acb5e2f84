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
	"io"
	"os"
)

// osFileSystem is the real, host-backed console.FileSystem implementation
// cmd/logo wires in when the "files" capability is enabled — the
// counterpart to console.MemoryFileSystem used by the engine's own tests.
type osFileSystem struct{}

func (osFileSystem) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

func (osFileSystem) Create(name string) (io.WriteCloser, error) { return os.Create(name) }

func (osFileSystem) Remove(name string) error { return os.Remove(name) }
