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

package logger_test

import (
	"strings"
	"testing"

	"github.com/wystan/goamiga/logger"
	"github.com/wystan/goamiga/test"
)

func TestRepeatCoalescing(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "wdc", "unhandled state")
	logger.Log(logger.Allow, "wdc", "unhandled state")
	logger.Log(logger.Allow, "wdc", "unhandled state")

	s := strings.Builder{}
	logger.Write(&s)
	test.Equate(t, s.String(), "wdc: unhandled state (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "chipset", "first")
	logger.Log(logger.Allow, "chipset", "second")
	logger.Log(logger.Allow, "chipset", "third")

	s := strings.Builder{}
	logger.Tail(&s, 2)
	test.Equate(t, s.String(), "chipset: second\nchipset: third\n")
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()

	logger.Log(deny{}, "chipset", "should not appear")

	s := strings.Builder{}
	logger.Write(&s)
	test.Equate(t, s.String(), "")
}
