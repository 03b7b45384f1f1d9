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

package bus_test

import (
	"testing"

	"github.com/wystan/goamiga/hardware/cpu/bus"
	"github.com/wystan/goamiga/test"
)

func TestExposure(t *testing.T) {
	addr := uint32(0x00f80000)
	data := uint16(0x0000)

	// an internal cycle exposes nothing, even when the fields are set
	mc := &bus.Microcycle{Address: &addr, Data: &data}
	test.Equate(t, mc.AddressExposed(), false)
	test.Equate(t, mc.DataExposed(), false)

	mc.Operation = bus.NewAddress
	test.Equate(t, mc.AddressExposed(), true)
	test.Equate(t, mc.DataExposed(), false)

	mc.Operation |= bus.Read | bus.SelectWord
	test.Equate(t, mc.DataExposed(), true)
	test.Equate(t, mc.IsRead(), true)
}

func TestByteAddressMask(t *testing.T) {
	// only 24 address lines exist on the external bus
	addr := uint32(0xfff80002)
	mc := &bus.Microcycle{Operation: bus.NewAddress, Address: &addr}
	test.Equate(t, mc.ByteAddress(), 0x00f80002)
}

func TestByteLanes(t *testing.T) {
	addr := uint32(0x100)
	data := uint16(0xffff)
	mc := &bus.Microcycle{
		Operation: bus.NewAddress | bus.SelectByte,
		Address:   &addr,
		Data:      &data,
	}

	// even address, upper lane
	mc.SetValue8(0xab)
	test.Equate(t, data, 0xabff)
	test.Equate(t, int(mc.Value8()), 0xab)

	// odd address, lower lane
	addr = 0x101
	mc.SetValue8(0xcd)
	test.Equate(t, data, 0xabcd)
	test.Equate(t, int(mc.Value8()), 0xcd)
}

func TestIdleDataLines(t *testing.T) {
	// with no data cell attached both accessors see floating lines
	mc := &bus.Microcycle{Operation: bus.NewAddress}
	test.Equate(t, mc.Value16(), bus.OpenBus)
	test.Equate(t, int(mc.Value8()), 0xff)

	// and the setters are no-ops
	mc.SetValue16(0x1234)
	mc.SetValue8(0x56)
	test.Equate(t, mc.Value16(), bus.OpenBus)
}

func TestApplyToReadOnly(t *testing.T) {
	addr := uint32(0x0)
	data := uint16(0x1234)
	word := uint16(0xcafe)

	mc := &bus.Microcycle{
		Operation: bus.NewAddress | bus.SelectWord,
		Address:   &addr,
		Data:      &data,
	}

	// the write is dropped by the mask
	mc.ApplyTo(&word, bus.ReadOnly)
	test.Equate(t, word, 0xcafe)

	// but a read through the same mask works
	mc.Operation |= bus.Read
	mc.ApplyTo(&word, bus.ReadOnly)
	test.Equate(t, data, 0xcafe)
}

func TestApplyToByteWrite(t *testing.T) {
	addr := uint32(0x1)
	data := uint16(0x00aa)
	word := uint16(0x1234)

	mc := &bus.Microcycle{
		Operation: bus.NewAddress | bus.SelectByte,
		Address:   &addr,
		Data:      &data,
	}

	// odd address writes the lower lane only
	mc.ApplyTo(&word, bus.ReadWrite)
	test.Equate(t, word, 0x12aa)

	// a cycle with no data select is a no-op
	mc.Operation = bus.NewAddress
	word = 0x1234
	mc.ApplyTo(&word, bus.ReadWrite)
	test.Equate(t, word, 0x1234)
}
