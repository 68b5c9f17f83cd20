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
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// cover art extensions in order of preference
var thumbExtensions = [...]string{".png", ".jpg", ".jpeg"}

// scanRomDir gathers the browsable entries in romDir. it returns the display
// names and, in a parallel slice, the path to each entry's cover art. an
// entry with no cover art in thumbDir gets the empty string.
//
// entries are returned in lexical order, as read from the directory.
func scanRomDir(romDir string, thumbDir string) ([]string, []string, error) {
	ents, err := os.ReadDir(romDir)
	if err != nil {
		return nil, nil, fmt.Errorf("romlist: %w", err)
	}

	var names []string
	var thumbs []string

	for _, e := range ents {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		names = append(names, e.Name())
		thumbs = append(thumbs, findThumb(thumbDir, e.Name()))
	}

	return names, thumbs, nil
}

// findThumb returns the path of the cover art for the named ROM, or the
// empty string if there is none. the art is expected in thumbDir with the
// same base name as the ROM.
func findThumb(thumbDir string, romName string) string {
	if thumbDir == "" {
		return ""
	}

	base := strings.TrimSuffix(romName, filepath.Ext(romName))
	for _, ext := range thumbExtensions {
		p := filepath.Join(thumbDir, base+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
