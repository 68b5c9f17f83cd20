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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hexworth/romdeck/gui/sdlbrowse"
	"github.com/hexworth/romdeck/logger"
	"github.com/hexworth/romdeck/modalflag"
	"github.com/hexworth/romdeck/resources"
	"github.com/hexworth/romdeck/statsview"
	"github.com/hexworth/romdeck/version"
)

// SDL requires that the window is created and serviced from the main thread.
// all of main() runs there and nothing in the browser leaves it.
//
// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "VERSION":
		vers, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vers)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	thumbs := md.AddString("thumbs", "", "directory of cover art (defaults to ROM directory + /thumbs)")
	click := md.AddString("click", "", "navigation sound, wav or mp3 (defaults to silence)")
	fps := md.AddInt("fps", 60, "frame rate of the browser")
	fade := md.AddInt64("fade", 0, "thumbnail fade duration in milliseconds (0 selects the default)")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo log to stderr")
	md.AdditionalHelp("The single argument is the directory of ROM files to browse.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	var romDir string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM directory required")
	case 1:
		romDir = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* no statsview in this build (build with statsview tag)")
		}
	}

	if *thumbs == "" {
		*thumbs = filepath.Join(romDir, "thumbs")
	}

	// with no explicit click sound, fall back to a click.wav in the
	// resources path. missing is fine, the browser is silent without it
	if *click == "" {
		if p, err := resources.JoinPath("click.wav"); err == nil {
			if _, err := os.Stat(p); err == nil {
				*click = p
			}
		}
	}

	g, err := sdlbrowse.NewSdlBrowse(sdlbrowse.Spec{
		RomDir:       romDir,
		ThumbDir:     *thumbs,
		ClickPath:    *click,
		FPS:          *fps,
		FadeDuration: *fade,
	})
	if err != nil {
		return err
	}
	defer g.Destroy(os.Stderr)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for !g.Done() {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
			g.Service()
		}
	}

	return nil
}
