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

// Package rom names the system ROM images a machine needs and defines how
// they are supplied. ROM images cannot be distributed with the emulator, so
// machine construction takes a Fetcher from the host; how the host finds
// the file is its own business.
package rom

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/wystan/goamiga/curated"
)

// sentinels.
const (
	Missing = "rom: no image available for %s"
)

// Name identifies a system ROM image.
type Name string

// List of ROM images the machine may request.
const (
	KickstartV13 Name = "kickstart-1.3"
)

// Fetcher supplies the byte image of a named ROM. A fetcher that cannot
// supply the ROM should return an error satisfying
// curated.Is(err, rom.Missing).
type Fetcher func(name Name) ([]byte, error)

// FileFetcher returns a Fetcher that looks for "<name>.rom" files in the
// given directory.
func FileFetcher(dir string) Fetcher {
	return func(name Name) ([]byte, error) {
		path := filepath.Join(dir, string(name)+".rom")
		data, err := ioutil.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, curated.Errorf(Missing, name)
			}
			return nil, curated.Errorf("rom: %v", err)
		}
		return data, nil
	}
}
