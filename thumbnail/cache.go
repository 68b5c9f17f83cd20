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

package thumbnail

// Handle is a non-owning reference to a decoded image resource. The resource
// itself lives in a table managed by whatever decoded the image. The cache
// only ever copies handles around, it never creates or destroys the resource
// behind one.
type Handle uint32

// NoHandle is the Handle value meaning "no resource".
const NoHandle Handle = 0

// Capacity is the number of slots in a Cache. Enough to cover one visible
// screenful of a ROM list plus look-ahead.
const Capacity = 8

// NoEntry is the value returned by DisplayedEntry() when no entry is being
// displayed.
const NoEntry = -1

// Slot is one occupied cache position.
type Slot struct {
	// Entry is the position in the browsed ROM list that the thumbnail
	// belongs to. Uniqueness among occupied slots is the caller's obligation
	Entry int

	// Path is the source the image was decoded from. Kept for diagnostics
	// and possible reload. The cache does not reinterpret it
	Path string

	Data Handle
}

// Cache is a fixed-capacity FIFO registry of decoded thumbnails. The zero
// value is usable but NewCache is the preferred method of initialisation
// because it also marks the displayed entry as "none".
//
// Occupied slots form a contiguous prefix of the slots array, oldest
// insertion first.
type Cache struct {
	slots [Capacity]Slot
	size  int

	// the entry currently being shown on screen. independent of cache
	// membership: the entry may have been evicted since it was recorded, in
	// which case displayedValid is false
	displayedEntry int
	displayedValid bool
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache() *Cache {
	c := &Cache{}
	c.Clear()
	return c
}

// Clear resets the cache to its initial state: no occupied slots and no
// displayed entry. Used when the browsed list changes (eg. the user navigates
// to a different folder).
func (c *Cache) Clear() {
	if c == nil {
		return
	}
	for i := range c.slots {
		c.slots[i] = Slot{}
	}
	c.size = 0
	c.displayedEntry = NoEntry
	c.displayedValid = false
}

// Len returns the number of occupied slots.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// IsFull returns true if every slot is occupied. Add() will refuse until the
// caller has made room with Evict().
func (c *Cache) IsFull() bool {
	return c != nil && c.size == Capacity
}

// Find returns the position of the slot caching the given entry, or -1 if the
// entry is not cached. Linear scan: fine at this capacity.
func (c *Cache) Find(entry int) int {
	if c == nil {
		return -1
	}
	for i := 0; i < c.size; i++ {
		if c.slots[i].Entry == entry {
			return i
		}
	}
	return -1
}

// EvictionTarget returns the position of the slot that Evict() will remove,
// or -1 if the cache is not full. Because insertion always appends and
// eviction is FIFO, the target is always position zero.
func (c *Cache) EvictionTarget() int {
	if c.IsFull() {
		return 0
	}
	return -1
}

// Add caches a thumbnail for the given entry, appending it as the newest
// slot. It returns false, changing nothing, if the cache is nil, the path is
// empty or the cache is full. Add never evicts on the caller's behalf.
func (c *Cache) Add(entry int, path string, data Handle) bool {
	if c == nil || path == "" || c.size == Capacity {
		return false
	}
	c.slots[c.size] = Slot{Entry: entry, Path: path, Data: data}
	c.size++
	return true
}

// Evict removes the oldest slot, returning the handle it held so that the
// caller can release the underlying resource. Remaining slots shift down one
// position and the vacated slot at the end of the prefix is cleared.
//
// If the evicted slot was caching the displayed entry then the displayed
// entry is marked invalid. The entry itself remains recorded.
//
// Returns NoHandle and false if the cache is nil or empty.
func (c *Cache) Evict() (Handle, bool) {
	if c == nil || c.size == 0 {
		return NoHandle, false
	}

	victim := c.slots[0]
	copy(c.slots[:c.size-1], c.slots[1:c.size])
	c.size--
	c.slots[c.size] = Slot{}

	if victim.Entry == c.displayedEntry {
		c.displayedValid = false
	}

	return victim.Data, true
}

// Data returns the handle held at the given position, or NoHandle if the
// position is out of range.
func (c *Cache) Data(pos int) Handle {
	if c == nil || pos < 0 || pos >= c.size {
		return NoHandle
	}
	return c.slots[pos].Data
}

// SlotAt returns the slot at the given position, or nil if the position is
// out of range.
func (c *Cache) SlotAt(pos int) *Slot {
	if c == nil || pos < 0 || pos >= c.size {
		return nil
	}
	return &c.slots[pos]
}

// SetDisplayed records the entry currently being shown on screen and
// immediately reassesses whether that entry is cached.
func (c *Cache) SetDisplayed(entry int) {
	if c == nil {
		return
	}
	c.displayedEntry = entry
	c.displayedValid = c.Find(entry) >= 0
}

// ClearDisplayed forgets the displayed entry.
func (c *Cache) ClearDisplayed() {
	if c == nil {
		return
	}
	c.displayedEntry = NoEntry
	c.displayedValid = false
}

// DisplayedEntry returns the entry recorded by SetDisplayed(), or NoEntry.
// The value is meaningful even when DisplayedValid() is false.
func (c *Cache) DisplayedEntry() int {
	if c == nil {
		return NoEntry
	}
	return c.displayedEntry
}

// DisplayedValid returns true if the displayed entry was cached the last time
// that was assessed. Assessment happens on SetDisplayed() and on eviction of
// the displayed entry's slot.
func (c *Cache) DisplayedValid() bool {
	return c != nil && c.displayedValid
}

// DisplayedData returns the handle cached for the displayed entry, or
// NoHandle if there is no displayed entry or it is no longer cached.
func (c *Cache) DisplayedData() Handle {
	if !c.DisplayedValid() {
		return NoHandle
	}
	pos := c.Find(c.displayedEntry)
	if pos < 0 {
		return NoHandle
	}
	return c.slots[pos].Data
}
