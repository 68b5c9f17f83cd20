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

// Package thumbnail tracks which cover-art images are currently resident in
// memory for the entries of a ROM list.
//
// The Cache type is a fixed-capacity registry mapping a list entry to the
// path the image was decoded from and to a Handle for the decoded resource.
// When the cache is full the oldest entry must be evicted before a new one
// can be added. Eviction order is strictly FIFO. Insertions always append, so
// the oldest entry is always at position zero. The EvictionTarget() function
// makes that explicit for callers that want to inspect the victim before
// committing.
//
// The cache does not decode images and it does not free them. A Handle is a
// non-owning identifier into a resource table managed elsewhere (for the SDL
// front-end, a texture table). Evict() returns the dropped Handle so the
// caller can decide what to do with the underlying resource.
//
// Independently of cache membership, the cache records which entry is
// currently being shown on screen. The displayed entry remains recorded after
// its slot has been evicted but DisplayedValid() turns false, allowing the
// caller to notice that the on-screen image has lost its backing resource.
//
// Every operation is total. A nil *Cache, an out-of-range position or a
// refused mutation yields a neutral return value, never a panic.
package thumbnail
