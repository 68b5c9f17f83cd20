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

package browser

import (
	"github.com/hexworth/romdeck/fade"
	"github.com/hexworth/romdeck/logger"
	"github.com/hexworth/romdeck/preload"
	"github.com/hexworth/romdeck/thumbnail"
)

// Loader decodes thumbnail images and owns the resources behind the handles
// it returns. The browser never frees a resource itself, it hands evicted
// handles back through Release().
type Loader interface {
	Load(path string) (thumbnail.Handle, error)
	Release(handle thumbnail.Handle)
}

// Browser runs the thumbnail bookkeeping for one ROM list screen. NewBrowser
// is the preferred method of initialisation.
//
// All methods must be called from the same goroutine. The browser is driven
// once per frame and never blocks.
type Browser struct {
	loader Loader
	cache  *thumbnail.Cache
	fade   *fade.Fade

	// thumbnail path for every entry in the browsed list. an empty string
	// means the entry has no cover art
	paths []string

	// the selection as of this frame and as of the previous call to Update.
	// the pair feeds the preload hint
	selected int
	previous int
}

// NewBrowser is the preferred method of initialisation for the Browser type.
// The fade duration is in milliseconds; a non-positive value selects the
// package default.
func NewBrowser(loader Loader, fadeDuration int64) *Browser {
	return &Browser{
		loader: loader,
		cache:  thumbnail.NewCache(),
		fade:   fade.NewFade(fadeDuration),
	}
}

// SetList replaces the browsed list with a new one, identified by the
// thumbnail path of each entry. Any cached thumbnails for the old list are
// evicted and released, any in-progress fade is cancelled and the selection
// returns to the top. Used when the user navigates to a different folder.
func (b *Browser) SetList(paths []string) {
	for {
		h, ok := b.cache.Evict()
		if !ok {
			break
		}
		if h != thumbnail.NoHandle {
			b.loader.Release(h)
		}
	}
	b.cache.Clear()
	b.fade.Reset()

	b.paths = paths
	b.selected = 0
	b.previous = 0
}

// Len returns the number of entries in the browsed list.
func (b *Browser) Len() int {
	return len(b.paths)
}

// Selected returns the currently selected entry.
func (b *Browser) Selected() int {
	return b.selected
}

// CacheLen returns the number of thumbnails currently resident in memory.
func (b *Browser) CacheLen() int {
	return b.cache.Len()
}

// Select moves the selection to the given entry, clamped to the list.
// Selecting the entry that is already selected cancels any in-progress fade,
// snapping the thumbnail to fully opaque.
func (b *Browser) Select(entry int) {
	if len(b.paths) == 0 {
		return
	}
	if entry < 0 {
		entry = 0
	}
	if entry >= len(b.paths) {
		entry = len(b.paths) - 1
	}

	if entry == b.selected {
		b.fade.Reset()
		return
	}
	b.selected = entry
}

// MoveBy moves the selection by the given number of entries. Negative values
// scroll towards the top of the list.
func (b *Browser) MoveBy(delta int) {
	b.Select(b.selected + delta)
}

// Update runs one frame of thumbnail bookkeeping: it decodes the selected
// entry if it is being shown for the first time, starts the fade for it,
// pre-decodes the neighbour in the direction of travel and advances the fade
// timer. The time is in milliseconds on the same clock passed to every other
// Update call.
func (b *Browser) Update(now int64) {
	if len(b.paths) == 0 {
		return
	}

	// a change of displayed entry triggers the load and the fade-in. the
	// second condition recovers when the displayed entry's slot has been
	// evicted from under it (FIFO can do that when a preload needs room)
	if b.selected != b.cache.DisplayedEntry() || !b.cache.DisplayedValid() {
		b.cacheEntry(b.selected)
		b.cache.SetDisplayed(b.selected)
		if b.cache.DisplayedValid() {
			b.fade.Start(now)
		} else {
			b.fade.Reset()
		}
	}

	// pre-decode the neighbour in the direction of travel
	if hint := preload.Hint(b.selected, b.previous, len(b.paths)); hint != preload.NoHint {
		if b.cache.Find(hint) < 0 {
			b.cacheEntry(hint)
		}
	}
	b.previous = b.selected

	b.fade.Update(now)
}

// Displayed returns the resource handle for the entry being shown on screen
// together with the alpha to composite it at. The renderer must tolerate
// NoHandle, meaning there is nothing to draw yet.
func (b *Browser) Displayed() (thumbnail.Handle, int) {
	return b.cache.DisplayedData(), b.fade.Alpha()
}

// cacheEntry decodes the thumbnail for an entry and adds it to the cache,
// evicting the oldest thumbnail first if the cache is full. Entries with no
// thumbnail path and entries that fail to decode are left uncached; a decode
// failure is logged but is not fatal to anything.
func (b *Browser) cacheEntry(entry int) {
	if b.cache.Find(entry) >= 0 {
		return
	}

	path := b.paths[entry]
	if path == "" {
		return
	}

	if b.cache.IsFull() {
		if h, ok := b.cache.Evict(); ok && h != thumbnail.NoHandle {
			b.loader.Release(h)
		}
	}

	h, err := b.loader.Load(path)
	if err != nil {
		logger.Logf("browser", "thumbnail: %v", err)
		return
	}

	if !b.cache.Add(entry, path, h) {
		b.loader.Release(h)
	}
}
