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

// Package fade animates the opacity of a newly displayed thumbnail from
// fully transparent to fully opaque over a fixed duration.
//
// The Fade type is a small two-state machine. It is Idle until Start() and
// returns to Idle on its own once the duration has elapsed. Update() is
// called once per frame with the current time in milliseconds; the clock is
// owned by the caller, the package never looks at wall-clock time itself.
//
// The alpha value follows the smoothstep curve t*t*(3-2t), so most of the
// change happens in the middle of the fade with gentle ramps at either end.
package fade
