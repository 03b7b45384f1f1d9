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

import (
	"github.com/wystan/goamiga/hardware/clocks"
)

// one DMA slot is one colour clock, which is two processor cycles.
const slotLength = clocks.HalfCycles(4)

// the fixed slot allocation within each line. refresh always holds its
// slots; the others are claimed only when the corresponding DMA channel is
// enabled.
const (
	slotRefreshEnd  = 4
	slotDiskEnd     = 7
	slotAudioFirst  = 7
	slotAudioEnd    = slotAudioFirst + numAudioChannels
	slotSpriteFirst = slotAudioEnd
	slotSpriteEnd   = slotSpriteFirst + 2*numSprites
)

// Interrupt request and enable bits, in INTENA/INTREQ layout.
const (
	InterruptSerialTransmit uint16 = 0x0001
	InterruptDiskBlock      uint16 = 0x0002
	InterruptSoftware       uint16 = 0x0004
	InterruptIOPorts        uint16 = 0x0008
	InterruptCopper         uint16 = 0x0010
	InterruptVerticalBlank  uint16 = 0x0020
	InterruptBlitter        uint16 = 0x0040
	InterruptAudio0         uint16 = 0x0080
	InterruptAudio1         uint16 = 0x0100
	InterruptAudio2         uint16 = 0x0200
	InterruptAudio3         uint16 = 0x0400
	InterruptSerialReceive  uint16 = 0x0800
	InterruptDiskSync       uint16 = 0x1000
	InterruptExternal       uint16 = 0x2000

	interruptMasterEnable uint16 = 0x4000
)

// DMA control bits, in DMACON layout.
const (
	DMAAudio0   uint16 = 0x0001
	DMAAudio1   uint16 = 0x0002
	DMAAudio2   uint16 = 0x0004
	DMAAudio3   uint16 = 0x0008
	DMADisk     uint16 = 0x0010
	DMASprites  uint16 = 0x0020
	DMABlitter  uint16 = 0x0040
	DMACopper   uint16 = 0x0080
	DMABitplane uint16 = 0x0100
	DMAMaster   uint16 = 0x0200

	dmaBlitterZero uint16 = 0x2000
	dmaBlitterBusy uint16 = 0x4000
)

// Changes summarises one advance of the chipset: the sync edges crossed,
// the interrupt level at the end of the advance, and the duration actually
// consumed.
type Changes struct {
	HSyncs         int
	VSyncs         int
	InterruptLevel int
	Duration       clocks.HalfCycles
}

// Chipset is the custom chip complex: raster counters, the DMA slot
// allocator, the interrupt aggregator, eight sprite channels, four audio
// channels and the blitter.
type Chipset struct {
	// chip RAM, shared with the processor. non-owning
	ram []uint16

	interruptEnable   uint16
	interruptRequests uint16
	interruptLevel    int

	dmaControl uint16

	blitter Blitter
	sprites [numSprites]sprite
	audio   [numAudioChannels]audioChannel
	mixer   AudioMixer

	// raster position in colour clocks and lines
	x, y       int
	lineLength int
	frameLines int

	// half-cycles consumed of the current slot
	subSlot clocks.HalfCycles

	displayWindowStart uint16
	displayWindowStop  uint16
	fetchWindowStart   uint16
	fetchWindowStop    uint16
}

// NewChipset is the preferred method of initialisation for the Chipset
// type. The RAM slice is shared with the rest of the machine and its length
// must be a power of two. Raster geometry is decided by the clock rate; PAL
// and NTSC share a line length and differ in field height.
func NewChipset(ram []uint16, clockRate int) *Chipset {
	chip := &Chipset{
		ram:        ram,
		lineLength: clocks.PALLineLength,
		frameLines: clocks.PALFieldLines,
	}
	if clockRate == clocks.NTSC {
		chip.frameLines = clocks.NTSCFieldLines
	}
	chip.blitter.ram = ram
	return chip
}

// SetAudioMixer attaches the receiver for samples produced by the audio
// channels. A nil mixer discards them.
func (chip *Chipset) SetAudioMixer(mixer AudioMixer) {
	chip.mixer = mixer
}

// InterruptLevel returns the level currently presented to the processor.
// The processor samples this after every advance; nothing is pushed.
func (chip *Chipset) InterruptLevel() int {
	return chip.interruptLevel
}

// RaiseInterrupt sets bits in the request mask. This is the entry point for
// external peripherals, such as the disk controller, as well as for the
// chipset's own DMA engines.
func (chip *Chipset) RaiseInterrupt(mask uint16) {
	chip.interruptRequests |= mask & 0x3fff
	chip.updateInterrupts()
}

// interrupt level by request bit, per the enable/request layout: external
// is level 6, serial receive and disk sync 5, audio 4, copper/vertical
// blank/blitter 3, I/O ports 2, the rest 1.
func (chip *Chipset) updateInterrupts() {
	chip.interruptLevel = 0
	if chip.interruptEnable&interruptMasterEnable == 0 {
		return
	}

	active := chip.interruptEnable & chip.interruptRequests & 0x3fff
	switch {
	case active&InterruptExternal != 0:
		chip.interruptLevel = 6
	case active&(InterruptSerialReceive|InterruptDiskSync) != 0:
		chip.interruptLevel = 5
	case active&(InterruptAudio0|InterruptAudio1|InterruptAudio2|InterruptAudio3) != 0:
		chip.interruptLevel = 4
	case active&(InterruptCopper|InterruptVerticalBlank|InterruptBlitter) != 0:
		chip.interruptLevel = 3
	case active&InterruptIOPorts != 0:
		chip.interruptLevel = 2
	case active != 0:
		chip.interruptLevel = 1
	}
}

// RunFor advances the chipset by exactly the stated duration. Partial slots
// are carried over to the next call, so that a sequence of short advances
// lands on the same slot boundaries as one long one.
func (chip *Chipset) RunFor(duration clocks.HalfCycles) Changes {
	changes := Changes{Duration: duration}

	chip.subSlot += duration
	for chip.subSlot >= slotLength {
		chip.subSlot -= slotLength
		chip.runSlot(&changes)
	}

	changes.InterruptLevel = chip.interruptLevel
	return changes
}

// TimeUntilCPUSlot returns the duration from now until the start of the
// next slot in which the processor may access chip memory.
func (chip *Chipset) TimeUntilCPUSlot() clocks.HalfCycles {
	// lookahead state for the blitter; each slot it would win consumes one
	// of its remaining words
	blitterRemaining := chip.blitter.remaining

	x, y := chip.x, chip.y
	if chip.subSlot == 0 && chip.cpuMayUseSlot(x, y, &blitterRemaining) {
		return 0
	}

	// the search is bounded to one frame of slots. a register setup that
	// leaves no free slot in a frame leaves none in any frame, so the
	// access is granted at the bound rather than stalling forever
	until := slotLength - chip.subSlot
	for n := chip.lineLength * chip.frameLines; n > 0; n-- {
		x++
		if x == chip.lineLength {
			x = 0
			y++
			if y == chip.frameLines {
				y = 0
			}
		}
		if chip.cpuMayUseSlot(x, y, &blitterRemaining) {
			return until
		}
		until += slotLength
	}
	return until
}

// RunUntilCPUSlot advances to the start of the next slot available to the
// processor and reports what happened on the way. The Duration field of the
// result is the access delay the bus handler should charge.
func (chip *Chipset) RunUntilCPUSlot() Changes {
	return chip.RunFor(chip.TimeUntilCPUSlot())
}

// cpuMayUseSlot decides slot ownership without advancing anything. It must
// agree with runSlot() on every slot.
func (chip *Chipset) cpuMayUseSlot(x, y int, blitterRemaining *int) bool {
	if x < slotRefreshEnd {
		return false
	}

	if chip.dmaControl&DMAMaster == 0 {
		return true
	}

	switch {
	case x < slotDiskEnd:
		return chip.dmaControl&DMADisk == 0
	case x < slotAudioEnd:
		return chip.dmaControl&(DMAAudio0<<(x-slotAudioFirst)) == 0
	case x < slotSpriteEnd:
		return chip.dmaControl&DMASprites == 0
	}

	if chip.dmaControl&DMABitplane != 0 && chip.inFetchWindow(x, y) {
		return false
	}
	if chip.dmaControl&DMABlitter != 0 && *blitterRemaining > 0 {
		*blitterRemaining--
		return false
	}
	return true
}

// runSlot performs the work of one colour clock: the audio period counters,
// the DMA engine that owns the slot, and the raster counters.
func (chip *Chipset) runSlot(changes *Changes) {
	// audio playback is paced by the period counters, which tick every
	// colour clock regardless of slot ownership. only the fetch of the next
	// sample word waits for the channel's slot
	for ch := range chip.audio {
		if chip.audioEnabled(ch) {
			chip.audio[ch].tick(ch, chip.mixer)
		}
	}

	if chip.dmaControl&DMAMaster != 0 {
		x := chip.x
		switch {
		case x < slotRefreshEnd:
			// memory refresh. nothing observable happens

		case x < slotDiskEnd:
			// disk DMA slot. the controller's data path is fed by the drive
			// directly, so the slot only reserves bus time

		case x < slotAudioEnd:
			ch := x - slotAudioFirst
			if chip.audioEnabled(ch) {
				chip.runAudioSlot(ch)
			}

		case x < slotSpriteEnd:
			if chip.dmaControl&DMASprites != 0 {
				n := (x - slotSpriteFirst) / 2
				chip.runSpriteSlot(n, (x-slotSpriteFirst)&1)
			}

		default:
			if chip.dmaControl&DMABitplane != 0 && chip.inFetchWindow(x, chip.y) {
				// bitplane fetch. the slot is consumed; the pixel pipeline
				// is outside this core
			} else if chip.dmaControl&DMABlitter != 0 {
				if chip.blitter.Advance() {
					chip.RaiseInterrupt(InterruptBlitter)
				}
			}
		}
	}

	chip.x++
	if chip.x == chip.lineLength {
		chip.x = 0
		changes.HSyncs++
		chip.y++
		if chip.y == chip.frameLines {
			chip.y = 0
			changes.VSyncs++
			chip.RaiseInterrupt(InterruptVerticalBlank)
		}
	}
}

// inFetchWindow returns true if the raster position is inside both the
// vertical display window and the horizontal data-fetch window.
func (chip *Chipset) inFetchWindow(x, y int) bool {
	vstart := int(chip.displayWindowStart >> 8)
	vstop := int(chip.displayWindowStop >> 8)
	if vstop&0x80 == 0 {
		vstop |= 0x100
	}
	if y < vstart || y >= vstop {
		return false
	}
	return x >= int(chip.fetchWindowStart) && x <= int(chip.fetchWindowStop)
}

// ramWord returns a pointer into chip RAM for a DMA engine's byte address.
func (chip *Chipset) ramWord(address uint32) *uint16 {
	return &chip.ram[(address>>1)&uint32(len(chip.ram)-1)]
}
