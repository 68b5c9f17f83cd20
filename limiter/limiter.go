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

// Package limiter paces the browser's frame loop to a fixed rate.
//
// A new FPS limiter is created with NewFPS() and the loop stalled with the
// Wait() function:
//
//	lim := limiter.NewFPS(60)
//	for {
//		lim.Wait()
//		drawFrame()
//	}
//
// The pacing is only as good as the host's timer resolution. That is fine
// for a UI; it would not be fine for emulation timing.
package limiter

import "time"

// FPS limits a loop to a fixed number of iterations per second. NewFPS is
// the preferred method of initialisation.
type FPS struct {
	rate   int
	ticker *time.Ticker
}

// NewFPS is the preferred method of initialisation for the FPS type. Rates
// below one frame per second are treated as one frame per second.
func NewFPS(framesPerSecond int) *FPS {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	return &FPS{
		rate:   framesPerSecond,
		ticker: time.NewTicker(time.Second / time.Duration(framesPerSecond)),
	}
}

// Wait blocks until the next frame is due.
func (lim *FPS) Wait() {
	<-lim.ticker.C
}

// Rate returns the limit in frames per second.
func (lim *FPS) Rate() int {
	return lim.rate
}

// Stop releases the limiter's resources. Wait() must not be called after
// Stop().
func (lim *FPS) Stop() {
	lim.ticker.Stop()
}
