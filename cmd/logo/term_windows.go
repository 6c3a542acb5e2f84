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

	"github.com/pkg/errors"
)

// setRawIO is unsupported on windows, matching the teacher's own
// cmd/retro/term_windows.go stub.
func setRawIO() (func(), error) {
	return nil, errors.New("raw IO not supported")
}

func consoleSize(f *os.File) func() (int, int) {
	return func() (int, int) { return 0, 0 }
}
