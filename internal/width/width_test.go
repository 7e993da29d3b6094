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

package width

import "testing"

func TestWidth(t *testing.T) {
	tests := []struct {
		s       string
		tabstop int
		want    int
	}{
		{"", 4, 0},
		{"abc", 4, 3},
		{"\t", 4, 4},
		{"ab\t", 4, 4},
		{"abcd\t", 4, 8},
		{"\tx", 4, 5},
		{"a\tb\tc", 4, 9},
	}
	for _, tt := range tests {
		if got := Width(tt.s, tt.tabstop); got != tt.want {
			t.Errorf("Width(%q, %d) = %d, want %d", tt.s, tt.tabstop, got, tt.want)
		}
	}
}
