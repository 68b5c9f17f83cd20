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

package browser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hexworth/romdeck/browser"
	"github.com/hexworth/romdeck/fade"
	"github.com/hexworth/romdeck/test"
	"github.com/hexworth/romdeck/thumbnail"
)

// loader that hands out sequential handles and records every load and
// release. paths in the fail set refuse to decode
type recordingLoader struct {
	loads    []string
	released []thumbnail.Handle
	fail     map[string]bool
	next     thumbnail.Handle
}

func (l *recordingLoader) Load(path string) (thumbnail.Handle, error) {
	if l.fail[path] {
		return thumbnail.NoHandle, errors.New("refusing to decode")
	}
	l.loads = append(l.loads, path)
	l.next++
	return l.next, nil
}

func (l *recordingLoader) Release(h thumbnail.Handle) {
	l.released = append(l.released, h)
}

func paths(n int) []string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("thumbs/%d.png", i)
	}
	return p
}

func TestFirstDisplay(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(20))

	b.Update(1000)

	// the top entry is decoded, displayed and fading in
	test.DemandEquality(t, len(ld.loads), 1)
	test.ExpectEquality(t, ld.loads[0], "thumbs/0.png")

	h, alpha := b.Displayed()
	test.ExpectInequality(t, h, thumbnail.NoHandle)
	test.ExpectEquality(t, alpha, fade.AlphaMin)

	// part way through the fade the alpha has risen but not topped out
	b.Update(1100)
	_, alpha = b.Displayed()
	if alpha <= fade.AlphaMin || alpha >= fade.AlphaMax {
		t.Errorf("mid-fade alpha should be between the bounds (%d)", alpha)
	}

	// once the duration has elapsed the thumbnail is fully opaque
	b.Update(1300)
	_, alpha = b.Displayed()
	test.ExpectEquality(t, alpha, fade.AlphaMax)
}

func TestPreloadFollowsScroll(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(20))
	b.Update(1000)

	// scrolling down causes the selected entry and its forward neighbour to
	// be decoded
	b.MoveBy(1)
	b.Update(1016)
	test.DemandEquality(t, len(ld.loads), 3)
	test.ExpectEquality(t, ld.loads[1], "thumbs/1.png")
	test.ExpectEquality(t, ld.loads[2], "thumbs/2.png")

	// the next step down finds its thumbnail already cached and pre-decodes
	// the following one
	b.MoveBy(1)
	b.Update(1032)
	test.DemandEquality(t, len(ld.loads), 4)
	test.ExpectEquality(t, ld.loads[3], "thumbs/3.png")

	// reversing direction hints the backward neighbour, which is still
	// cached. nothing new is decoded
	b.MoveBy(-1)
	b.Update(1048)
	test.DemandEquality(t, len(ld.loads), 4)
}

func TestBackwardPreloadAfterEviction(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(20))
	b.Update(1000)

	// scroll far enough down that the earliest thumbnails have been evicted
	now := int64(1016)
	for b.Selected() < 9 {
		b.MoveBy(1)
		b.Update(now)
		now += 16
	}
	test.DemandEquality(t, len(ld.loads), 11)
	test.ExpectEquality(t, ld.loads[10], "thumbs/10.png")

	// scroll back up. the backward neighbours are cached until we reach the
	// point where eviction took them, at which point the backward preload
	// kicks in
	for b.Selected() > 3 {
		b.MoveBy(-1)
		b.Update(now)
		now += 16
	}
	test.DemandEquality(t, len(ld.loads), 12)
	test.ExpectEquality(t, ld.loads[11], "thumbs/2.png")

	// making room for that preload evicted the oldest slot, which happened
	// to be the displayed entry. the next frame re-decodes it and fades it
	// back in
	h, _ := b.Displayed()
	test.ExpectEquality(t, h, thumbnail.NoHandle)

	b.Update(now)
	test.ExpectEquality(t, ld.loads[len(ld.loads)-1], "thumbs/3.png")
	h, alpha := b.Displayed()
	test.ExpectInequality(t, h, thumbnail.NoHandle)
	test.ExpectEquality(t, alpha, fade.AlphaMin)
}

func TestPreloadAtListEdges(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(2))
	b.Update(1000)

	// moving to the last entry: there is no forward neighbour to pre-decode
	b.MoveBy(1)
	b.Update(1016)
	test.DemandEquality(t, len(ld.loads), 2)
	test.ExpectEquality(t, ld.loads[1], "thumbs/1.png")
}

func TestEvictionReleasesResources(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(100))

	// scroll a long way down the list. every frame decodes at most two
	// thumbnails so the cache fills and then recycles
	now := int64(1000)
	for i := 0; i < 30; i++ {
		b.MoveBy(1)
		b.Update(now)
		now += 16
	}

	if len(ld.released) == 0 {
		t.Fatal("scrolling past the cache capacity should release evicted resources")
	}

	// everything loaded is either still cached or has been released. nothing
	// leaks and nothing is released twice
	test.ExpectEquality(t, len(ld.released), len(ld.loads)-b.CacheLen())
	seen := make(map[thumbnail.Handle]bool)
	for _, h := range ld.released {
		if seen[h] {
			t.Fatalf("handle %d released twice", h)
		}
		seen[h] = true
	}
}

func TestLoadFailure(t *testing.T) {
	ld := &recordingLoader{fail: map[string]bool{"thumbs/0.png": true}}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(5))

	b.Update(1000)

	// nothing to display but nothing has gone wrong either
	h, alpha := b.Displayed()
	test.ExpectEquality(t, h, thumbnail.NoHandle)
	test.ExpectEquality(t, alpha, fade.AlphaMax)

	// scrolling on recovers: the next entry decodes and fades in normally
	b.MoveBy(1)
	b.Update(1016)
	h, alpha = b.Displayed()
	test.ExpectInequality(t, h, thumbnail.NoHandle)
	test.ExpectEquality(t, alpha, fade.AlphaMin)
}

func TestReselectCancelsFade(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(5))
	b.Update(1000)

	// re-selecting the displayed entry mid-fade snaps to fully opaque
	b.Update(1100)
	b.Select(0)
	_, alpha := b.Displayed()
	test.ExpectEquality(t, alpha, fade.AlphaMax)
}

func TestSetListReleasesEverything(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(10))

	now := int64(1000)
	for i := 0; i < 5; i++ {
		b.MoveBy(1)
		b.Update(now)
		now += 16
	}
	loaded := len(ld.loads)
	test.DemandEquality(t, loaded > 0, true)

	// navigating to a new folder returns every cached resource to the loader
	b.SetList(paths(3))
	test.ExpectEquality(t, len(ld.released), loaded)
	test.ExpectEquality(t, b.Selected(), 0)

	h, _ := b.Displayed()
	test.ExpectEquality(t, h, thumbnail.NoHandle)
}

func TestSelectionClamping(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)
	b.SetList(paths(5))

	b.Select(100)
	test.ExpectEquality(t, b.Selected(), 4)
	b.MoveBy(-100)
	test.ExpectEquality(t, b.Selected(), 0)
}

func TestEmptyList(t *testing.T) {
	ld := &recordingLoader{}
	b := browser.NewBrowser(ld, 250)

	// a browser with no list is inert
	b.Select(3)
	b.MoveBy(1)
	b.Update(1000)
	test.ExpectEquality(t, len(ld.loads), 0)

	h, _ := b.Displayed()
	test.ExpectEquality(t, h, thumbnail.NoHandle)

	b.SetList([]string{})
	b.Update(1016)
	test.ExpectEquality(t, len(ld.loads), 0)
}
