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

package fade

import "math"

// Alpha bounds. the maximum matches the 8bit alpha channel used by the
// renderer
const (
	AlphaMin = 0
	AlphaMax = 255
)

// DefaultDuration is the fade length in milliseconds used when NewFade() is
// given a non-positive duration.
const DefaultDuration = 250

// Fade animates an alpha value from AlphaMin to AlphaMax over a fixed
// duration. NewFade is the preferred method of initialisation.
//
// All times are in milliseconds on a clock of the caller's choosing. The only
// requirement is that the clock never reads zero at the moment Start() is
// called: zero is the sentinel for "not fading".
type Fade struct {
	duration int64
	alpha    int

	// time Start() was called. zero means the fade is idle
	start int64
}

// NewFade is the preferred method of initialisation for the Fade type. A
// non-positive duration selects DefaultDuration. The new fade is idle and
// fully opaque.
func NewFade(duration int64) *Fade {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Fade{
		duration: duration,
		alpha:    AlphaMax,
	}
}

// Start begins a fade at the given time. Starting an in-progress fade
// restarts it from fully transparent.
func (f *Fade) Start(now int64) {
	if f == nil {
		return
	}
	f.start = now
	f.alpha = AlphaMin
}

// Reset cancels any in-progress fade, returning immediately to the idle,
// fully opaque state. Used when the fade is not wanted after all (eg. the
// same item being re-selected).
func (f *Fade) Reset() {
	if f == nil {
		return
	}
	f.start = 0
	f.alpha = AlphaMax
}

// Active returns true if a fade is in progress.
func (f *Fade) Active() bool {
	return f != nil && f.start != 0
}

// Alpha returns the current opacity, in the range AlphaMin to AlphaMax.
func (f *Fade) Alpha() int {
	if f == nil {
		return AlphaMax
	}
	return f.alpha
}

// Update advances the fade to the given time, recomputing the alpha value.
// It returns true if the fade is still in progress and false if it is idle,
// including the update on which the fade completes.
func (f *Fade) Update(now int64) bool {
	if f == nil || f.start == 0 {
		return false
	}

	elapsed := now - f.start
	f.alpha = CalcAlpha(elapsed, f.duration, AlphaMax)

	if elapsed >= f.duration {
		f.start = 0
		f.alpha = AlphaMax
		return false
	}

	return true
}

// CalcAlpha returns the alpha value for a point during a fade, easing with
// the smoothstep curve t*t*(3-2t). The curve is strictly increasing with its
// steepest slope at the midpoint, giving a slow-fast-slow fade.
//
// A non-positive duration or an elapsed time at or past the duration returns
// maxAlpha.
func CalcAlpha(elapsed int64, duration int64, maxAlpha int) int {
	if duration <= 0 || elapsed >= duration {
		return maxAlpha
	}
	if elapsed <= 0 {
		return 0
	}

	t := float64(elapsed) / float64(duration)
	s := t * t * (3 - 2*t)

	return int(math.Round(s * float64(maxAlpha)))
}
