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

// Package logger is the central log for the application. Entries are tagged
// with the name of the originating subsystem and kept in a bounded in-memory
// list; consecutive identical entries are compressed into a repeat count.
//
// The package level functions log to the central logger, which is what almost
// all code wants. Logger instances can also be created directly, which is
// useful for tests.
//
// Log output is not written anywhere by default. SetEcho() directs new
// entries to an io.Writer as they arrive; Write() and Tail() dump what has
// been collected so far.
package logger
