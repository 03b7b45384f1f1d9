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

package memgraph_test

import (
	"strings"
	"testing"

	"github.com/wystan/goamiga/memgraph"
	"github.com/wystan/goamiga/test"
)

func TestWrite(t *testing.T) {
	type inner struct {
		Label string
	}
	type outer struct {
		Child *inner
	}

	v := &outer{Child: &inner{Label: "leaf"}}

	b := &strings.Builder{}
	err := memgraph.Write(b, v)
	if err != nil {
		t.Fatal(err)
	}

	test.Equate(t, strings.HasPrefix(b.String(), "digraph"), true)
	test.Equate(t, strings.Contains(b.String(), "leaf"), true)
}
