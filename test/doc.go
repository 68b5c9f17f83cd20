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

// Package test removes common boilerplate from the package tests in this
// repository.
//
// The Expect group of functions mark the test as failed but allow it to
// continue. The Demand group end the test immediately; they are for values
// that later parts of the test depend on.
//
// ExpectSuccess and ExpectFailure interpret their argument according to
// type: a bool succeeds when true and an error succeeds when nil. A nil
// interface value is treated as success, which is the only sensible reading
// given how Go errors work.
package test
