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

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexworth/romdeck/thumbnail"
)

// layout of the browser window. the list occupies the left column and the
// cover art the remainder
const (
	visibleRows = 20
	rowHeight   = 22
	listMargin  = 10
	listWidth   = 240
)

func (g *SdlBrowse) draw() {
	g.renderer.SetDrawColor(12, 12, 16, 255)
	g.renderer.Clear()

	g.drawList()
	g.drawThumbnail()

	g.renderer.Present()
}

// drawList draws one bar per visible entry. the selected entry is kept
// within the visible window and drawn in the highlight colour. the name of
// the selection goes in the window title, which is the only text surface
// this front-end has.
func (g *SdlBrowse) drawList() {
	if len(g.names) == 0 {
		g.window.SetTitle(windowTitle)
		return
	}

	sel := g.browser.Selected()
	g.window.SetTitle(fmt.Sprintf("%s - %s", windowTitle, g.names[sel]))

	// scroll the window so the selection stays centred where possible
	top := sel - visibleRows/2
	if top > len(g.names)-visibleRows {
		top = len(g.names) - visibleRows
	}
	if top < 0 {
		top = 0
	}

	for row := 0; row < visibleRows; row++ {
		entry := top + row
		if entry >= len(g.names) {
			break
		}

		r := sdl.Rect{
			X: listMargin,
			Y: int32(listMargin + row*rowHeight),
			W: listWidth,
			H: rowHeight - 4,
		}

		if entry == sel {
			g.renderer.SetDrawColor(220, 160, 40, 255)
		} else {
			g.renderer.SetDrawColor(50, 50, 60, 255)
		}
		g.renderer.FillRect(&r)
	}
}

// drawThumbnail composites the displayed cover art, aspect-fitted to the
// right hand column, at the current fade alpha.
func (g *SdlBrowse) drawThumbnail() {
	handle, alpha := g.browser.Displayed()
	if handle == thumbnail.NoHandle || alpha <= 0 {
		return
	}

	tex := g.textures.lookup(handle)
	if tex == nil {
		return
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		return
	}

	// aspect-fit into the column to the right of the list
	area := sdl.Rect{
		X: listMargin*2 + listWidth,
		Y: listMargin,
		W: windowWidth - listWidth - listMargin*3,
		H: windowHeight - listMargin*2,
	}

	dst := area
	if w*area.H > h*area.W {
		dst.H = area.W * h / w
		dst.Y += (area.H - dst.H) / 2
	} else {
		dst.W = area.H * w / h
		dst.X += (area.W - dst.W) / 2
	}

	tex.SetAlphaMod(uint8(alpha))
	g.renderer.Copy(tex, nil, &dst)
}
