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

// AccessMask controls which data bits of a memory word a write can change.
// It is the Go equivalent of tying a region's write-enable lines high or
// low: a read-only region drops writes without any special casing at the
// point of dispatch.
type AccessMask uint16

// The two masks used by the memory map.
const (
	ReadWrite AccessMask = 0xffff
	ReadOnly  AccessMask = 0x0000
)

// ApplyTo completes this cycle against a single word of a memory region.
// For reads the active byte lanes of the data cell are loaded from the word;
// for writes the word is updated through the region's access mask. Byte
// cycles touch only the lane selected by the low bit of the exposed address.
//
// Cycles that expose no data are a no-op.
func (mc *Microcycle) ApplyTo(word *uint16, mask AccessMask) {
	if !mc.DataExposed() {
		return
	}

	var lane uint16 = 0xffff
	if mc.Operation&SelectByte == SelectByte {
		if mc.AddressExposed() && mc.ByteAddress()&1 == 1 {
			lane = 0x00ff
		} else {
			lane = 0xff00
		}
	}

	if mc.IsRead() {
		*mc.Data = (*mc.Data &^ lane) | (*word & lane)
	} else {
		m := lane & uint16(mask)
		*word = (*word &^ m) | (*mc.Data & m)
	}
}
