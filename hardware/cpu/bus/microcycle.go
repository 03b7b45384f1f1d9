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

package bus

import (
	"github.com/wystan/goamiga/hardware/clocks"
)

// Operation describes the control lines asserted during one microcycle. It
// is a bit set; several operations are combined in a typical cycle (eg.
// NewAddress|Read|SelectWord).
type Operation uint8

// List of Operation bits.
const (
	// a new address is exposed on the address lines
	NewAddress Operation = 1 << iota

	// the address lines continue to hold the previously exposed address
	SameAddress

	// the cycle is a read; in the absence of this bit a cycle with a select
	// bit is a write
	Read

	// one byte lane of the data lines is active. which lane is determined by
	// the low bit of the exposed address
	SelectByte

	// both byte lanes of the data lines are active
	SelectWord

	// the reset output is asserted
	Reset

	// the cycle is an interrupt acknowledgement
	InterruptAcknowledge
)

// OpenBus is the value seen by a read that no device responds to. Writes to
// such addresses are dropped.
const OpenBus uint16 = 0xffff

// Microcycle is a single timed transaction on the processor bus: the state
// of the address, data and control lines for the duration of Length.
//
// Address and Data are each optional and are present only when the Operation
// bit set says the corresponding lines carry a signal: Address when
// NewAddress or SameAddress is set, Data when SelectByte or SelectWord is
// set. A Microcycle is passed to the bus handler by reference and the
// handler may mutate the Data cell in place; ownership is never passed.
type Microcycle struct {
	Operation Operation

	// Address is the full 32-bit value of the address lines. only the low 24
	// bits are significant to the external bus. nil when no address is
	// exposed.
	Address *uint32

	// Data points at the value of the data lines. nil when neither select
	// bit is set.
	Data *uint16

	Length clocks.HalfCycles
}

// AddressExposed returns true if the address lines carry a valid address
// during this cycle.
func (mc *Microcycle) AddressExposed() bool {
	return mc.Address != nil && mc.Operation&(NewAddress|SameAddress) != 0
}

// DataExposed returns true if the data lines are active during this cycle.
func (mc *Microcycle) DataExposed() bool {
	return mc.Data != nil && mc.Operation&(SelectByte|SelectWord) != 0
}

// IsRead returns true if the cycle is a read.
func (mc *Microcycle) IsRead() bool {
	return mc.Operation&Read == Read
}

// ByteAddress returns the byte address of the transaction, masked to the 24
// external address lines. Valid only when AddressExposed() is true.
func (mc *Microcycle) ByteAddress() uint32 {
	return *mc.Address & 0x00ffffff
}

// Value16 returns the current value of the data lines.
func (mc *Microcycle) Value16() uint16 {
	if mc.Data == nil {
		return OpenBus
	}
	return *mc.Data
}

// SetValue16 drives both byte lanes of the data lines.
func (mc *Microcycle) SetValue16(v uint16) {
	if mc.Data == nil {
		return
	}
	*mc.Data = v
}

// Value8 returns the value of the active byte lane, as selected by the low
// bit of the exposed address. Even addresses use the upper lane.
func (mc *Microcycle) Value8() uint8 {
	if mc.Data == nil {
		return 0xff
	}
	if mc.AddressExposed() && mc.ByteAddress()&1 == 1 {
		return uint8(*mc.Data)
	}
	return uint8(*mc.Data >> 8)
}

// SetValue8 drives the active byte lane, as selected by the low bit of the
// exposed address.
func (mc *Microcycle) SetValue8(v uint8) {
	if mc.Data == nil {
		return
	}
	if mc.AddressExposed() && mc.ByteAddress()&1 == 1 {
		*mc.Data = (*mc.Data & 0xff00) | uint16(v)
	} else {
		*mc.Data = (*mc.Data & 0x00ff) | (uint16(v) << 8)
	}
}
