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

// Package memgraph renders the pointer graph of a machine, or any part of
// one, in graphviz dot format. Feed the output to dot to get a picture of
// how the sub-systems reference one another; handy when chasing down a
// reference that should have been dropped.
package memgraph

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/wystan/goamiga/curated"
)

// Write renders the value's pointer graph as graphviz dot.
func Write(output io.Writer, value interface{}) (rerr error) {
	// memviz panics on some structures rather than returning an error
	defer func() {
		if r := recover(); r != nil {
			rerr = curated.Errorf("memgraph: %v", r)
		}
	}()

	memviz.Map(output, value)
	return nil
}
