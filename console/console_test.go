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
	"io"
	"testing"
)

func TestMemoryInputReadLine(t *testing.T) {
	in := NewMemoryInput("forward 100\nright 90\n")
	line, err := in.ReadLine()
	if err != nil || line != "forward 100" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
	line, err = in.ReadLine()
	if err != nil || line != "right 90" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
	if _, err := in.ReadLine(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestMemoryOutputRecords(t *testing.T) {
	out := NewMemoryOutput()
	out.Write([]byte("hello "))
	out.Write([]byte("world"))
	if out.String() != "hello world" {
		t.Fatalf("String() = %q", out.String())
	}
}
