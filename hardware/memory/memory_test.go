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

package memory_test

import (
	"testing"

	"github.com/wystan/goamiga/hardware/cpu/bus"
	"github.com/wystan/goamiga/hardware/memory"
	"github.com/wystan/goamiga/test"
)

func TestPackBigEndian16(t *testing.T) {
	dst := make([]uint16, 2)
	memory.PackBigEndian16([]byte{0x11, 0x22, 0x33, 0x44}, dst)
	test.Equate(t, dst[0], 0x1122)
	test.Equate(t, dst[1], 0x3344)
}

func TestOverlay(t *testing.T) {
	mem := memory.NewMap()

	rom := make([]byte, memory.KickstartSize)
	rom[0] = 0xca
	rom[1] = 0xfe
	err := mem.LoadKickstart(rom)
	if err != nil {
		t.Fatal(err)
	}

	// at power-on the ROM appears at address zero as well as at its home
	// address
	test.Equate(t, mem.Peek(0x000000), 0xcafe)
	test.Equate(t, mem.Peek(0xf80000), 0xcafe)

	// writes to the overlayed region are dropped
	addr := uint32(0x000000)
	data := uint16(0x1234)
	cycle := &bus.Microcycle{
		Operation: bus.NewAddress | bus.SelectWord,
		Address:   &addr,
		Data:      &data,
	}
	mem.Apply(cycle)
	test.Equate(t, mem.Peek(0x000000), 0xcafe)

	// dropping the overlay exposes chip RAM and the write lands
	mem.SetOverlay(false)
	test.Equate(t, mem.Peek(0x000000), 0x0000)
	mem.Apply(cycle)
	test.Equate(t, mem.Peek(0x000000), 0x1234)

	// the ROM is still at its home address
	test.Equate(t, mem.Peek(0xf80000), 0xcafe)
}

func TestKickstartMirror(t *testing.T) {
	mem := memory.NewMap()

	rom := make([]byte, memory.KickstartSize/2)
	rom[0] = 0xaa
	rom[1] = 0x55
	err := mem.LoadKickstart(rom)
	if err != nil {
		t.Fatal(err)
	}

	// a 256KB image fills the 512KB window twice over
	test.Equate(t, mem.Peek(0xf80000), 0xaa55)
	test.Equate(t, mem.Peek(0xfc0000), 0xaa55)
}

func TestKickstartSize(t *testing.T) {
	mem := memory.NewMap()
	err := mem.LoadKickstart(make([]byte, 1000))
	if err == nil {
		t.Error("expected load of odd-sized kickstart to fail")
	}
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMap()
	test.Equate(t, mem.Mapped(0x200000), false)
	test.Equate(t, mem.Peek(0x200000), 0xffff)
}

func TestReadByteLanes(t *testing.T) {
	mem := memory.NewMap()
	mem.SetOverlay(false)

	addr := uint32(0x000100)
	data := uint16(0xabcd)
	cycle := &bus.Microcycle{
		Operation: bus.NewAddress | bus.SelectWord,
		Address:   &addr,
		Data:      &data,
	}
	mem.Apply(cycle)

	// byte writes touch only their lane. even addresses drive the upper
	// lane, odd addresses the lower
	addr = 0x000100
	cycle.Operation = bus.NewAddress | bus.SelectByte
	cycle.SetValue8(0x11)
	mem.Apply(cycle)
	test.Equate(t, mem.Peek(0x000100), 0x11cd)

	addr = 0x000101
	cycle.SetValue8(0x22)
	mem.Apply(cycle)
	test.Equate(t, mem.Peek(0x000100), 0x1122)
}
