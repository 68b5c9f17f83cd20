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
	"io"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexworth/romdeck/browser"
	"github.com/hexworth/romdeck/limiter"
	"github.com/hexworth/romdeck/logger"
)

const windowTitle = "RomDeck"

// window dimensions match the class of handheld the browser targets
const (
	windowWidth  = 640
	windowHeight = 480
)

// Spec collects the options for NewSdlBrowse.
type Spec struct {
	// directory of ROM files to browse
	RomDir string

	// directory of cover art. for a ROM named Game.a26 the expected cover
	// art is ThumbDir/Game.png
	ThumbDir string

	// navigation sound, wav or mp3. empty string or a missing file means
	// silence
	ClickPath string

	// frame rate of the service loop
	FPS int

	// fade duration in milliseconds. non-positive selects the default
	FadeDuration int64
}

// SdlBrowse is the SDL2 ROM browser window.
//
// MUST ONLY be used from the main thread.
type SdlBrowse struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	textures *textureTable
	browser  *browser.Browser
	lim      *limiter.FPS
	audio    *clickPlayer

	// names of the browsed ROMs, parallel to the browser's entries
	names []string

	// reference point for the millisecond clock fed to the browser. offset
	// so that the clock never reads zero
	epoch time.Time

	quit bool
}

// NewSdlBrowse is the preferred method of initialisation for the SdlBrowse
// type.
//
// MUST ONLY be called from the main thread.
func NewSdlBrowse(spec Spec) (*SdlBrowse, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and it makes the requirement explicit
	runtime.LockOSThread()

	g := &SdlBrowse{
		epoch: time.Now().Add(-time.Millisecond),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdlbrowse: %w", err)
	}

	g.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		windowWidth, windowHeight, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdlbrowse: %w", err)
	}

	g.renderer, err = sdl.CreateRenderer(g.window, -1,
		uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, fmt.Errorf("sdlbrowse: %w", err)
	}

	g.textures = newTextureTable(g.renderer)
	g.browser = browser.NewBrowser(g.textures, spec.FadeDuration)
	g.lim = limiter.NewFPS(spec.FPS)

	// navigation sound is best effort. the browser works fine silent
	g.audio, err = newClickPlayer(spec.ClickPath)
	if err != nil {
		logger.Logf("sdlbrowse", "no navigation sound: %v", err)
	}

	var thumbs []string
	g.names, thumbs, err = scanRomDir(spec.RomDir, spec.ThumbDir)
	if err != nil {
		return nil, fmt.Errorf("sdlbrowse: %w", err)
	}
	logger.Logf("sdlbrowse", "%d entries in %s", len(g.names), spec.RomDir)
	g.browser.SetList(thumbs)

	return g, nil
}

// now returns the millisecond clock fed to the browser core.
func (g *SdlBrowse) now() int64 {
	return time.Since(g.epoch).Milliseconds()
}

// Done returns true once the user has asked to leave the browser.
func (g *SdlBrowse) Done() bool {
	return g.quit
}

// Service runs one frame of the browser: pending SDL events, the thumbnail
// bookkeeping and the draw. It blocks only for frame pacing.
//
// MUST ONLY be called from the main thread.
func (g *SdlBrowse) Service() {
	g.lim.Wait()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			g.quit = true

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				g.serviceKeyDown(ev)
			}
		}
	}

	g.browser.Update(g.now())
	g.draw()
}

func (g *SdlBrowse) serviceKeyDown(ev *sdl.KeyboardEvent) {
	before := g.browser.Selected()

	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE:
		g.quit = true

	case sdl.K_UP:
		g.browser.MoveBy(-1)
	case sdl.K_DOWN:
		g.browser.MoveBy(1)
	case sdl.K_PAGEUP:
		g.browser.MoveBy(-visibleRows)
	case sdl.K_PAGEDOWN:
		g.browser.MoveBy(visibleRows)
	case sdl.K_HOME:
		g.browser.Select(0)
	case sdl.K_END:
		g.browser.Select(g.browser.Len() - 1)

	case sdl.K_RETURN:
		// re-selecting the current entry snaps the fade
		g.browser.Select(g.browser.Selected())
	}

	if g.browser.Selected() != before {
		g.audio.play()
	}
}

// Destroy cleans up the resources used by the browser window.
//
// MUST ONLY be called from the main thread.
func (g *SdlBrowse) Destroy(output io.Writer) {
	g.lim.Stop()
	g.audio.destroy()
	g.textures.destroy()

	if err := g.renderer.Destroy(); err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}
	if err := g.window.Destroy(); err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}
	sdl.Quit()
}
