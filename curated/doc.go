// This file is part of GoAmiga.
//
// GoAmiga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoAmiga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoAmiga.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the fmt package, and
// returns an error.
//
// The Is() function checks whether an error was created by Errorf() with a
// specific pattern:
//
//	e := curated.Errorf("chipset: unknown register (%03x)", reg)
//
//	if curated.Is(e, "chipset: unknown register (%03x)") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than just at the head.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it distinguishes errors this project expects and has
// curated from errors that have arrived from elsewhere.
//
// The Error() implementation normalises the error chain: adjacent duplicate
// message parts are removed, so wrapping an error with the same context
// string twice does not produce a stuttering message.
package curated
