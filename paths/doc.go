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

// Package paths contains functions to prepare paths to GoAmiga resources.
//
// The ResourcePath() function returns the supplied resource name prepended
// with the appropriate config directory. For example, the following returns
// the path to a Kickstart image:
//
//	d, err := paths.ResourcePath("roms", "kickstart-1.3")
//
// For development builds the base path is the ".goamiga" directory in the
// current working directory. For release builds (the "release" build tag)
// the base path is the "goamiga" directory inside the user's configuration
// directory, as reported by os.UserConfigDir().
package paths
