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

// Package modalflag wraps the flag package in the Go standard library with
// the idea of program modes. A mode is a command line argument that selects
// a different activity of the program, in the manner of the go command's
// build, test, doc, etc. Each mode can have its own set of flags.
//
// Basic use replaces flag.Parse() with a call to NewArgs() followed by a
// call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//	p, err := md.Parse()
//
// The first listed sub-mode is the default, used when the user names no
// mode. After a successful Parse() the selected mode is available from the
// Mode() function. The program will typically call NewMode(), add the flags
// particular to the selected mode and Parse() a second time:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		verbose := md.AddBool("verbose", false, "echo the log")
//		p, err := md.Parse()
//		...
//	}
//
// Arguments that are neither flags nor a mode selector are available from
// RemainingArgs() and GetArg().
//
// Help output (in response to the -help flag) is printed to the Output
// field, which must be set for any help to be visible. Sub-mode comparisons
// are case insensitive.
package modalflag
