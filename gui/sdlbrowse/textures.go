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
	"image"
	"image/draw"
	"os"
	"unsafe"

	// cover art is overwhelmingly png but jpeg shows up in scraped sets
	_ "image/jpeg"
	_ "image/png"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexworth/romdeck/thumbnail"
)

// textureTable owns the SDL textures behind the thumbnail cache's resource
// handles. It implements the browser.Loader interface. Handles are allocated
// from a counter and never reused, so a stale handle can never resolve to
// the wrong texture.
type textureTable struct {
	renderer *sdl.Renderer
	textures map[thumbnail.Handle]*sdl.Texture
	next     thumbnail.Handle
}

func newTextureTable(renderer *sdl.Renderer) *textureTable {
	return &textureTable{
		renderer: renderer,
		textures: make(map[thumbnail.Handle]*sdl.Texture),
	}
}

// Load implements the browser.Loader interface.
func (tt *textureTable) Load(path string) (thumbnail.Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return thumbnail.NoHandle, fmt.Errorf("textures: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return thumbnail.NoHandle, fmt.Errorf("textures: %s: %w", path, err)
	}

	// normalise to RGBA for the texture upload
	rgba, ok := src.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(src.Bounds())
		draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	}

	w := int32(rgba.Bounds().Dx())
	h := int32(rgba.Bounds().Dy())

	tex, err := tt.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STATIC), w, h)
	if err != nil {
		return thumbnail.NoHandle, fmt.Errorf("textures: %w", err)
	}

	err = tex.Update(nil, unsafe.Pointer(&rgba.Pix[0]), rgba.Stride)
	if err != nil {
		tex.Destroy()
		return thumbnail.NoHandle, fmt.Errorf("textures: %w", err)
	}
	tex.SetBlendMode(sdl.BlendMode(sdl.BLENDMODE_BLEND))

	tt.next++
	tt.textures[tt.next] = tex

	return tt.next, nil
}

// Release implements the browser.Loader interface.
func (tt *textureTable) Release(h thumbnail.Handle) {
	if tex, ok := tt.textures[h]; ok {
		tex.Destroy()
		delete(tt.textures, h)
	}
}

// lookup resolves a handle to its texture, or nil.
func (tt *textureTable) lookup(h thumbnail.Handle) *sdl.Texture {
	return tt.textures[h]
}

func (tt *textureTable) destroy() {
	for h, tex := range tt.textures {
		tex.Destroy()
		delete(tt.textures, h)
	}
}
