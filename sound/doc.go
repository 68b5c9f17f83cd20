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

// Package sound loads the short PCM samples the browser plays as navigation
// feedback (the click when the selection moves).
//
// LoadPCM() accepts WAV and MP3 files, identified by file extension, and
// returns mono float32 PCM. Stereo sources keep their left channel only.
// Playback is the front-end's concern; this package only decodes.
package sound
