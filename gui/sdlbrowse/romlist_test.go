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

package sdlbrowse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hexworth/romdeck/test"
)

func touch(t *testing.T, path string) {
	t.Helper()
	test.DemandSuccess(t, os.MkdirAll(filepath.Dir(path), 0700))
	test.DemandSuccess(t, os.WriteFile(path, []byte{}, 0644))
}

func TestScanRomDir(t *testing.T) {
	romDir := t.TempDir()
	thumbDir := filepath.Join(romDir, "thumbs")

	touch(t, filepath.Join(romDir, "Adventure.a26"))
	touch(t, filepath.Join(romDir, "Pitfall.a26"))
	touch(t, filepath.Join(romDir, "Zork.a26"))
	touch(t, filepath.Join(romDir, ".hidden.a26"))
	test.DemandSuccess(t, os.MkdirAll(filepath.Join(romDir, "subdir"), 0700))

	touch(t, filepath.Join(thumbDir, "Adventure.png"))
	touch(t, filepath.Join(thumbDir, "Zork.jpg"))

	names, thumbs, err := scanRomDir(romDir, thumbDir)
	test.DemandSuccess(t, err)

	// dotfiles and directories are skipped; entries arrive in lexical order
	test.DemandEquality(t, len(names), 3)
	test.DemandEquality(t, len(thumbs), 3)
	test.ExpectEquality(t, names[0], "Adventure.a26")
	test.ExpectEquality(t, names[1], "Pitfall.a26")
	test.ExpectEquality(t, names[2], "Zork.a26")

	// cover art matched by base name, any supported extension. no art means
	// an empty path
	test.ExpectEquality(t, thumbs[0], filepath.Join(thumbDir, "Adventure.png"))
	test.ExpectEquality(t, thumbs[1], "")
	test.ExpectEquality(t, thumbs[2], filepath.Join(thumbDir, "Zork.jpg"))
}

func TestScanRomDirMissing(t *testing.T) {
	_, _, err := scanRomDir(filepath.Join(t.TempDir(), "no-such-dir"), "")
	test.ExpectFailure(t, err)
}

func TestFindThumbPreference(t *testing.T) {
	thumbDir := t.TempDir()
	touch(t, filepath.Join(thumbDir, "Game.png"))
	touch(t, filepath.Join(thumbDir, "Game.jpg"))

	// png wins when both are present
	test.ExpectEquality(t, findThumb(thumbDir, "Game.a26"), filepath.Join(thumbDir, "Game.png"))

	// no thumb directory at all means no art
	test.ExpectEquality(t, findThumb("", "Game.a26"), "")
}
