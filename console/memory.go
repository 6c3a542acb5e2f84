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

package console

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// MemoryInput is an InputStream backed by a fixed string, for tests and
// for scripted `logo run` input redirection.
type MemoryInput struct {
	r *bufio.Reader
}

// NewMemoryInput wraps s as a line/char oriented InputStream.
func NewMemoryInput(s string) *MemoryInput {
	return &MemoryInput{r: bufio.NewReader(strings.NewReader(s))}
}

func (m *MemoryInput) ReadLine() (string, error) {
	line, err := m.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *MemoryInput) ReadChar() (rune, error) {
	r, _, err := m.r.ReadRune()
	return r, err
}

// MemoryOutput is an OutputStream that records everything written to it,
// for assertions in tests.
type MemoryOutput struct {
	buf bytes.Buffer
}

// NewMemoryOutput creates an empty recording OutputStream.
func NewMemoryOutput() *MemoryOutput { return &MemoryOutput{} }

func (m *MemoryOutput) Write(p []byte) (int, error) { return m.buf.Write(p) }

// String returns everything written so far.
func (m *MemoryOutput) String() string { return m.buf.String() }

// MemoryFileSystem is a FileSystem backed by an in-memory map, for tests
// and for headless embeddings with no real file access.
type MemoryFileSystem struct {
	files map[string][]byte
}

// NewMemoryFileSystem creates an empty in-memory FileSystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

func (m *MemoryFileSystem) Open(name string) (io.ReadCloser, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, &fsPathError{Op: "open", Path: name}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryFileSystem) Create(name string) (io.WriteCloser, error) {
	return &memoryFile{fs: m, name: name}, nil
}

func (m *MemoryFileSystem) Remove(name string) error {
	if _, ok := m.files[name]; !ok {
		return &fsPathError{Op: "remove", Path: name}
	}
	delete(m.files, name)
	return nil
}

type memoryFile struct {
	fs   *MemoryFileSystem
	name string
	buf  bytes.Buffer
}

func (f *memoryFile) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *memoryFile) Close() error {
	f.fs.files[f.name] = append([]byte(nil), f.buf.Bytes()...)
	return nil
}

type fsPathError struct {
	Op   string
	Path string
}

func (e *fsPathError) Error() string { return e.Op + " " + e.Path + ": no such file" }
