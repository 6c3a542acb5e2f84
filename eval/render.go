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

// Rendering a stored procedure body back to source text: the inverse of
// define.go's lineToList, used by `pr`/`po`-style introspection
// primitives and by internal/session's workspace save.
package eval

import (
	"strings"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/proc"
)

// RenderLine renders one captured body line back to its Logo source
// surface, recursing into nested list literals.
func RenderLine(h *heap.Heap, line heap.Handle) string {
	elems := h.Elements(line)
	parts := make([]string, len(elems))
	for i, el := range elems {
		parts[i] = renderElement(h, el)
	}
	return strings.Join(parts, " ")
}

func renderElement(h *heap.Heap, el heap.Handle) string {
	if el.IsCons() || el.IsNil() {
		inner := h.Elements(el)
		parts := make([]string, len(inner))
		for i, e := range inner {
			parts[i] = renderElement(h, e)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return h.Text(el)
}

// RenderTitle renders a procedure's "to" header line: its name followed by
// its formal parameter list, including optional-default and rest forms.
func RenderTitle(h *heap.Heap, name string, params []proc.Param) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, p := range params {
		sb.WriteByte(' ')
		switch {
		case p.Rest:
			sb.WriteString("[:")
			sb.WriteString(h.Text(p.Name))
			sb.WriteString("]")
		case !p.Default.IsNil():
			sb.WriteString("[:")
			sb.WriteString(h.Text(p.Name))
			sb.WriteByte(' ')
			sb.WriteString(RenderLine(h, p.Default))
			sb.WriteString("]")
		default:
			sb.WriteString(":")
			sb.WriteString(h.Text(p.Name))
		}
	}
	return sb.String()
}
