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

// driver buffers `to`/`end` procedure definitions out of a line stream
// and hands everything else to eval.Interp.RunSource one line at a time
// (spec.md's "the REPL line-buffering layer is responsible for `to`/
// `end`", per eval/define.go's own doc comment). Both `logo run` and
// `logo repl` share this type; they differ only in where lines come from
// and whether a prompt is printed.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logoscript/logo/internal/session"
	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/tokensrc"
	"github.com/logoscript/logo/value"
)

type driver struct {
	sess *session.Session
	err  io.Writer

	inDef    bool
	defTitle string
	defBody  []string
}

func newDriver(sess *session.Session, errOut io.Writer) *driver {
	return &driver{sess: sess, err: errOut}
}

// feed processes one raw source line. While buffering a `to` block it
// only watches for `end`; otherwise it lexes and runs the line
// immediately, the same per-line granularity eval/pause.go's pauseLoop
// uses for its own nested read-eval loop.
func (d *driver) feed(line string) {
	trimmed := strings.TrimSpace(line)

	if d.inDef {
		if strings.EqualFold(firstWord(trimmed), "end") {
			err := d.sess.Interp().Define(d.defTitle, d.defBody)
			d.inDef = false
			d.defTitle = ""
			d.defBody = nil
			if err != nil {
				d.reportErr(err)
			}
			return
		}
		d.defBody = append(d.defBody, line)
		return
	}

	if strings.EqualFold(firstWord(trimmed), "to") {
		d.inDef = true
		d.defTitle = strings.TrimSpace(trimmed[len("to"):])
		d.defBody = nil
		return
	}

	if trimmed == "" {
		return
	}

	it := d.sess.Interp()
	lx := lexer.New(it.Heap(), []byte(line))
	res := it.RunSource(tokensrc.NewLexSource(lx))
	if res.Status == value.StatusError {
		d.reportErr(res.Err)
	}
}

// reportErr prints err, in the same %+v-under-debug style as root.go's
// fail: every eval.LogoError is built with errors.WithStack, so --debug
// recovers a frame trace back to the point of failure instead of just
// the rendered message.
func (d *driver) reportErr(err error) {
	if debug {
		fmt.Fprintf(d.err, "%+v\n", err)
		return
	}
	fmt.Fprintf(d.err, "%v\n", err)
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// runAll feeds every one of lines through the driver in sequence,
// matching the teacher's -with file loading (each file is read fully
// before the next).
func runAll(d *driver, lines []string) {
	for _, line := range lines {
		d.feed(line)
	}
}
