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

package chipset

// blitter channel indices. A, B and C are sources, D is the destination.
const (
	blitterA = 0
	blitterB = 1
	blitterC = 2
	blitterD = 3
)

// Blitter is the block-transfer engine. Software programs the control
// words, masks, pointers, modulos and static data registers, then writes
// the size register to start a blit. The engine itself does no work at
// that point; it consumes the DMA slots the chipset grants it, one word per
// slot, until the blit is finished.
type Blitter struct {
	ram []uint16

	control       [2]uint16
	firstWordMask uint16
	lastWordMask  uint16
	pointers      [4]uint32
	modulos       [4]uint16
	data          [3]uint16

	width, height int
	column, row   int
	remaining     int

	// shift carry from the previous word of the current row
	previous [2]uint16

	notZero bool
}

// SetControl writes control word 0 or 1. Word 0 carries the channel-enable
// bits, the A shift and the minterm; word 1 the B shift and the descending
// mode bit.
func (blt *Blitter) SetControl(word int, value uint16) {
	blt.control[word] = value
}

// SetFirstWordMask sets the mask ANDed into channel A on the first word of
// each row.
func (blt *Blitter) SetFirstWordMask(value uint16) {
	blt.firstWordMask = value
}

// SetLastWordMask sets the mask ANDed into channel A on the last word of
// each row.
func (blt *Blitter) SetLastWordMask(value uint16) {
	blt.lastWordMask = value
}

// SetPointer writes half of a channel pointer; shift is 16 for the high
// half and 0 for the low.
func (blt *Blitter) SetPointer(channel, shift int, value uint16) {
	blt.pointers[channel] = (blt.pointers[channel] &^ (0xffff << shift)) | uint32(value)<<shift
}

// SetModulo sets the signed byte count added to a channel's pointer at the
// end of each row.
func (blt *Blitter) SetModulo(channel int, value uint16) {
	blt.modulos[channel] = value
}

// SetData writes a source channel's static data register, used when the
// channel is not fetching from memory.
func (blt *Blitter) SetData(channel int, value uint16) {
	blt.data[channel] = value
}

// SetSize writes the size register, which starts the blit: width in the low
// six bits (zero meaning 64 words), height in the rest (zero meaning 1024
// rows).
func (blt *Blitter) SetSize(value uint16) {
	blt.width = int(value & 0x3f)
	if blt.width == 0 {
		blt.width = 64
	}
	blt.height = int(value >> 6)
	if blt.height == 0 {
		blt.height = 1024
	}

	blt.column = 0
	blt.row = 0
	blt.remaining = blt.width * blt.height
	blt.previous = [2]uint16{}
	blt.notZero = false
}

// Busy returns true while a blit is in progress.
func (blt *Blitter) Busy() bool {
	return blt.remaining > 0
}

// ZeroFlag returns true if every word the last blit produced was zero.
func (blt *Blitter) ZeroFlag() bool {
	return !blt.notZero
}

func (blt *Blitter) ramWord(address uint32) *uint16 {
	return &blt.ram[(address>>1)&uint32(len(blt.ram)-1)]
}

// fetch reads a source channel and advances its pointer in the blit
// direction.
func (blt *Blitter) fetch(channel int, descending bool) uint16 {
	value := *blt.ramWord(blt.pointers[channel])
	if descending {
		blt.pointers[channel] -= 2
	} else {
		blt.pointers[channel] += 2
	}
	return value
}

// shifted barrel-shifts a source word in the blit direction, carrying bits
// in from the previous word of the row.
func (blt *Blitter) shifted(channel int, value uint16, shift uint, descending bool) uint16 {
	previous := blt.previous[channel]
	blt.previous[channel] = value
	if descending {
		return uint16((uint32(value)<<16 | uint32(previous)) << shift >> 16)
	}
	return uint16((uint32(previous)<<16 | uint32(value)) >> shift)
}

// Advance performs one word of the current blit, consuming the DMA slot the
// chipset has granted. It returns true when this word completes the blit,
// at which point the caller raises the blitter-done interrupt.
func (blt *Blitter) Advance() bool {
	if blt.remaining == 0 {
		return false
	}

	descending := blt.control[1]&0x0002 != 0

	a := blt.data[blitterA]
	if blt.control[0]&0x0800 != 0 {
		a = blt.fetch(blitterA, descending)
	}
	if blt.column == 0 {
		a &= blt.firstWordMask
	}
	if blt.column == blt.width-1 {
		a &= blt.lastWordMask
	}
	a = blt.shifted(blitterA, a, uint(blt.control[0]>>12), descending)

	b := blt.data[blitterB]
	if blt.control[0]&0x0400 != 0 {
		b = blt.fetch(blitterB, descending)
	}
	b = blt.shifted(blitterB, b, uint(blt.control[1]>>12), descending)

	c := blt.data[blitterC]
	if blt.control[0]&0x0200 != 0 {
		c = blt.fetch(blitterC, descending)
	}

	out := minterm(uint8(blt.control[0]), a, b, c)
	blt.notZero = blt.notZero || out != 0

	if blt.control[0]&0x0100 != 0 {
		*blt.ramWord(blt.pointers[blitterD]) = out
		if descending {
			blt.pointers[blitterD] -= 2
		} else {
			blt.pointers[blitterD] += 2
		}
	}

	blt.remaining--
	blt.column++
	if blt.column == blt.width {
		blt.column = 0
		blt.row++
		blt.previous = [2]uint16{}
		blt.applyModulos(descending)
	}

	return blt.remaining == 0
}

// applyModulos adds each enabled channel's signed modulo to its pointer at
// the end of a row.
func (blt *Blitter) applyModulos(descending bool) {
	apply := func(channel int, enabled bool) {
		if !enabled {
			return
		}
		modulo := int32(int16(blt.modulos[channel]))
		if descending {
			modulo = -modulo
		}
		blt.pointers[channel] = uint32(int32(blt.pointers[channel]) + modulo)
	}
	apply(blitterA, blt.control[0]&0x0800 != 0)
	apply(blitterB, blt.control[0]&0x0400 != 0)
	apply(blitterC, blt.control[0]&0x0200 != 0)
	apply(blitterD, blt.control[0]&0x0100 != 0)
}

// minterm combines the three source words under the logic-function byte:
// each set bit selects one combination of source bit values for inclusion
// in the output.
func minterm(lf uint8, a, b, c uint16) uint16 {
	var out uint16
	for bit := 0; bit < 8; bit++ {
		if lf&(1<<bit) == 0 {
			continue
		}
		term := ^uint16(0)
		if bit&4 != 0 {
			term &= a
		} else {
			term &^= a
		}
		if bit&2 != 0 {
			term &= b
		} else {
			term &^= b
		}
		if bit&1 != 0 {
			term &= c
		} else {
			term &^= c
		}
		out |= term
	}
	return out
}
