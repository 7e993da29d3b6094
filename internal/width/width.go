// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// package width exports functions which measure the number of terminal
// window cells that a particular Unicode string can be expected to use up,
// for the purpose of aligning the caret line of a diagnostic excerpt under
// the line of source it points at.
//
// Tabstops are special-cased (justified to the next column that is a
// multiple of the configured tabstop width); everything else is measured
// with github.com/rivo/uniseg, which accounts for combining marks and other
// grapheme-cluster oddities that a naive rune count would get wrong.
package width

import "github.com/rivo/uniseg"

// Width returns the number of terminal columns s would occupy if printed
// starting at column 0, expanding any tab characters to the next multiple
// of tabstop.
func Width(s string, tabstop int) int {
	if tabstop <= 0 {
		tabstop = 1
	}

	var column int
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\t' {
			continue
		}
		column += uniseg.StringWidth(s[start:i])
		column += tabstop - column%tabstop
		start = i + 1
	}
	column += uniseg.StringWidth(s[start:])
	return column
}
