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

//go:build !windows

package main

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
)

type winsize struct {
	row, col, xpixel, ypixel uint16
}

func ioctl(fd uintptr, request, argp uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, request, argp)
	if errno != 0 {
		return errors.Wrap(errno, "ioctl failed")
	}
	return nil
}

// consoleSize returns a size func suitable for vt100Screen's prompt
// layout, reading the terminal's window size the same way the teacher's
// cmd/retro/term.go does for its VT100 terminal.
func consoleSize(f *os.File) func() (int, int) {
	return func() (int, int) {
		var w winsize
		if err := ioctl(f.Fd(), syscall.TIOCGWINSZ, uintptr(unsafe.Pointer(&w))); err != nil {
			return 0, 0
		}
		return int(w.col), int(w.row)
	}
}
