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

// Package sdlbrowse is the SDL2 front-end for the ROM browser. It owns the
// window, the renderer and the texture table behind the thumbnail cache's
// resource handles, and it feeds keyboard input to the browser package.
//
// The front-end is the two collaborators the browser core expects rolled
// into one package: the image loader (PNG decode into an SDL texture,
// texture destruction on release) and the renderer (per-frame compositing of
// the displayed thumbnail at the fade alpha).
//
// All functions in this package must be called from the main thread. The
// Service() function runs exactly one frame and is intended to be called
// from a loop in the main() function.
package sdlbrowse
