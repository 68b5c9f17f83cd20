// This file is part of RomDeck.
//
// RomDeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RomDeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RomDeck.  If not, see <https://www.gnu.org/licenses/>.

package preload_test

import (
	"testing"

	"github.com/hexworth/romdeck/preload"
	"github.com/hexworth/romdeck/test"
)

func TestHint(t *testing.T) {
	tests := []struct {
		current  int
		previous int
		total    int
		hint     int
	}{
		// scrolling forwards hints the next entry
		{current: 10, previous: 9, total: 100, hint: 11},
		{current: 10, previous: 5, total: 100, hint: 11},

		// scrolling backwards hints the previous entry
		{current: 10, previous: 11, total: 100, hint: 9},
		{current: 10, previous: 50, total: 100, hint: 9},

		// the hint never falls outside the list
		{current: 99, previous: 98, total: 100, hint: preload.NoHint},
		{current: 0, previous: 1, total: 100, hint: preload.NoHint},

		// the very edges are still hintable from one position in
		{current: 98, previous: 97, total: 100, hint: 99},
		{current: 1, previous: 2, total: 100, hint: 0},

		// a stationary selection hints nothing
		{current: 10, previous: 10, total: 100, hint: preload.NoHint},
		{current: 0, previous: 0, total: 1, hint: preload.NoHint},

		// an empty or nonsensical list hints nothing
		{current: 10, previous: 9, total: 0, hint: preload.NoHint},
		{current: 10, previous: 9, total: -1, hint: preload.NoHint},
	}

	for _, tst := range tests {
		h := preload.Hint(tst.current, tst.previous, tst.total)
		test.ExpectEquality(t, h, tst.hint)
	}
}
