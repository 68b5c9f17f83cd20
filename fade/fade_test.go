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

package fade_test

import (
	"testing"

	"github.com/hexworth/romdeck/fade"
	"github.com/hexworth/romdeck/test"
)

func TestCalcAlphaBoundaries(t *testing.T) {
	test.ExpectEquality(t, fade.CalcAlpha(0, 1000, fade.AlphaMax), 0)
	test.ExpectEquality(t, fade.CalcAlpha(1000, 1000, fade.AlphaMax), fade.AlphaMax)
	test.ExpectEquality(t, fade.CalcAlpha(2000, 1000, fade.AlphaMax), fade.AlphaMax)

	// division by zero guard
	test.ExpectEquality(t, fade.CalcAlpha(0, 0, fade.AlphaMax), fade.AlphaMax)
	test.ExpectEquality(t, fade.CalcAlpha(500, 0, fade.AlphaMax), fade.AlphaMax)
	test.ExpectEquality(t, fade.CalcAlpha(500, -1, fade.AlphaMax), fade.AlphaMax)
}

func TestCalcAlphaMonotonicity(t *testing.T) {
	const duration = 1000

	// sample at deciles of the duration. strictly increasing throughout,
	// with the largest step at the midpoint and the smallest at the ends
	// (slow-fast-slow easing)
	prev := 0
	var deltas []int
	for elapsed := int64(100); elapsed < duration; elapsed += 100 {
		a := fade.CalcAlpha(elapsed, duration, fade.AlphaMax)
		if a <= prev {
			t.Fatalf("alpha not strictly increasing at %dms (%d -> %d)", elapsed, prev, a)
		}
		deltas = append(deltas, a-prev)
		prev = a
	}
	deltas = append(deltas, fade.AlphaMax-prev)

	// the steepest step is near the midpoint and the shallowest steps are at
	// the ends
	steepest := 0
	for i, d := range deltas {
		if d > deltas[steepest] {
			steepest = i
		}
	}
	if steepest < len(deltas)/3 || steepest > 2*len(deltas)/3 {
		t.Errorf("steepest step at sample %d, expected it near the midpoint (deltas %v)", steepest, deltas)
	}
	for i, d := range deltas {
		if d < deltas[0] || d < deltas[len(deltas)-1] {
			t.Errorf("easing should be shallowest at the ends (sample %d, deltas %v)", i, deltas)
		}
	}
}

func TestLifecycle(t *testing.T) {
	f := fade.NewFade(250)

	// idle on creation and fully opaque
	test.ExpectFailure(t, f.Active())
	test.ExpectEquality(t, f.Alpha(), fade.AlphaMax)

	// updating an idle fade does nothing
	test.ExpectFailure(t, f.Update(1000))
	test.ExpectEquality(t, f.Alpha(), fade.AlphaMax)

	f.Start(1000)
	test.ExpectSuccess(t, f.Active())
	test.ExpectEquality(t, f.Alpha(), fade.AlphaMin)

	// mid-fade the alpha is strictly between the bounds
	test.ExpectSuccess(t, f.Update(1100))
	if f.Alpha() <= fade.AlphaMin || f.Alpha() >= fade.AlphaMax {
		t.Errorf("mid-fade alpha should be between the bounds (%d)", f.Alpha())
	}

	// the update at which the duration elapses completes the fade
	test.ExpectFailure(t, f.Update(1250))
	test.ExpectFailure(t, f.Active())
	test.ExpectEquality(t, f.Alpha(), fade.AlphaMax)
}

func TestRestart(t *testing.T) {
	f := fade.NewFade(250)

	f.Start(1000)
	f.Update(1200)

	// starting mid-fade restarts from fully transparent
	f.Start(1300)
	test.ExpectSuccess(t, f.Active())
	test.ExpectEquality(t, f.Alpha(), fade.AlphaMin)
	test.ExpectSuccess(t, f.Update(1301))
}

func TestReset(t *testing.T) {
	f := fade.NewFade(250)

	f.Start(1000)
	f.Update(1100)
	f.Reset()

	test.ExpectFailure(t, f.Active())
	test.ExpectEquality(t, f.Alpha(), fade.AlphaMax)
	test.ExpectFailure(t, f.Update(1200))
}

func TestDefaultDuration(t *testing.T) {
	// a non-positive duration selects the default
	f := fade.NewFade(0)
	f.Start(1000)
	test.ExpectSuccess(t, f.Update(1000+fade.DefaultDuration-1))
	test.ExpectFailure(t, f.Update(1000+fade.DefaultDuration))

	f = fade.NewFade(-100)
	f.Start(1000)
	test.ExpectSuccess(t, f.Update(1000+fade.DefaultDuration-1))
}

func TestNilFade(t *testing.T) {
	var f *fade.Fade

	for i := 0; i < 2; i++ {
		f.Start(1000)
		test.ExpectFailure(t, f.Active())
		test.ExpectFailure(t, f.Update(1100))
		test.ExpectEquality(t, f.Alpha(), fade.AlphaMax)
		f.Reset()
	}
}
