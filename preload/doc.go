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

// Package preload suggests which neighbouring thumbnail to decode ahead of
// time as the user scrolls a ROM list.
//
// The Hint() function is pure and stateless: given where the selection is
// now, where it was on the previous frame and how long the list is, it names
// the adjacent entry in the direction of travel, or NoHint when the selection
// has not moved or the neighbour would fall outside the list.
package preload
