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

// Package browser ties the thumbnail cache, the preload hint and the fade
// animation together into the per-frame loop of a ROM list screen.
//
// The Browser is given the list of thumbnail paths for the browsed folder
// and a Loader that can decode a path into a resource handle. Each frame the
// front-end reports the selection with Select() or MoveBy() and then calls
// Update() with the current time. Update decodes the selected entry on first
// display, pre-decodes the neighbour in the direction of scroll, evicts the
// oldest cached thumbnail when room is needed (releasing the evicted
// resource through the Loader) and drives the fade timer.
//
// The front-end composites the frame from Displayed(), which returns the
// resource handle for the on-screen entry together with the current fade
// alpha. A NoHandle result means there is nothing to draw yet.
//
// The cache and the fade share no state; this package is the only place they
// are both consulted.
package browser
