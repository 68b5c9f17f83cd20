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

package preload

// NoHint is returned by Hint() when there is nothing worth pre-loading.
const NoHint = -1

// Hint returns the entry to decode ahead of time given the selected entry on
// this frame and the previous one. Scrolling forwards hints the next entry,
// scrolling backwards hints the previous one. The hint is never outside the
// range of the list; a stationary selection or an empty list hints nothing.
func Hint(current int, previous int, total int) int {
	if total <= 0 || current == previous {
		return NoHint
	}

	if current > previous {
		if next := current + 1; next < total {
			return next
		}
		return NoHint
	}

	if prev := current - 1; prev >= 0 {
		return prev
	}
	return NoHint
}
