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

// Package resources prepares paths to RomDeck resources: the ROM directory,
// the thumbnail directory and the navigation sound.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments, creating directories as
// required but not otherwise touching or creating files.
//
// The base path depends on how the binary was built. For builds with the
// "release" build tag the base is in the user's configuration directory,
// which on a modern Linux system means something like:
//
//	/home/user/.config/romdeck/
//
// For non-"release" builds the base is the .romdeck directory in the current
// working directory, which is more convenient during development.
package resources
