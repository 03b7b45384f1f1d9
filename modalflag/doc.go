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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Usage differs from flag.FlagSet in that the argument list is supplied up
// front with NewArgs() and Parse() is then called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "performance")
//	p, err := md.Parse()
//
// After a successful parse, Mode() names the sub-mode selected (the first
// sub-mode added is the default), and NewMode() begins flag handling for
// that mode's own arguments:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 500, "number of frames to emulate")
//		...
//	}
//
// Sub-mode comparisons are case insensitive. Non-flag arguments are
// retrieved with RemainingArgs() or GetArg(). Help messages are written to
// the Output field; Parse() says whether help was printed, parsing failed,
// or processing should continue.
package modalflag
