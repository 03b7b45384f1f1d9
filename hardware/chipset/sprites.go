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

const numSprites = 8

// sprite is one of the eight sprite DMA channels. Each has a pointer into
// chip RAM, a start position word, a stop/control word and two image data
// words.
type sprite struct {
	pointer     uint32
	start       uint16
	stopControl uint16
	data        [2]uint16
}

func (spr *sprite) setPointer(shift int, value uint16) {
	spr.pointer = (spr.pointer &^ (0xffff << shift)) | uint32(value)<<shift
}

func (spr *sprite) setStartPosition(value uint16) {
	spr.start = value
}

func (spr *sprite) setStopAndControl(value uint16) {
	spr.stopControl = value
}

func (spr *sprite) setImageData(slot int, value uint16) {
	spr.data[slot] = value
}

// vertical extent of the sprite, from the start position and stop/control
// words. bit 2 of the control word extends the start, bit 1 the stop.
func (spr *sprite) verticalStart() int {
	return int(spr.start>>8) | int(spr.stopControl&0x04)<<6
}

func (spr *sprite) verticalStop() int {
	return int(spr.stopControl>>8) | int(spr.stopControl&0x02)<<7
}

// runSpriteSlot performs one of sprite n's two DMA fetches for this line.
// Outside the sprite's vertical extent the fetched words reprogram the
// position and control registers, which is how a sprite chains to its next
// appearance; inside it they are image data.
func (chip *Chipset) runSpriteSlot(n, word int) {
	spr := &chip.sprites[n]
	value := *chip.ramWord(spr.pointer)
	spr.pointer += 2

	if chip.y >= spr.verticalStart() && chip.y < spr.verticalStop() {
		spr.setImageData(word, value)
		return
	}
	if word == 0 {
		spr.setStartPosition(value)
	} else {
		spr.setStopAndControl(value)
	}
}
