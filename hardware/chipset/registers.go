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
	"github.com/wystan/goamiga/hardware/cpu/bus"
	"github.com/wystan/goamiga/logger"
)

// chip register offsets within the register window. the list is sparse;
// anything not decoded reads as open bus and drops writes.
const (
	regDMACONR = 0x002
	regVPOSR   = 0x004
	regVHPOSR  = 0x006
	regINTENAR = 0x01c
	regINTREQR = 0x01e

	regBLTCON0 = 0x040
	regBLTCON1 = 0x042
	regBLTAFWM = 0x044
	regBLTALWM = 0x046
	regBLTCPTH = 0x048
	regBLTCPTL = 0x04a
	regBLTBPTH = 0x04c
	regBLTBPTL = 0x04e
	regBLTAPTH = 0x050
	regBLTAPTL = 0x052
	regBLTDPTH = 0x054
	regBLTDPTL = 0x056
	regBLTSIZE = 0x058
	regBLTCMOD = 0x060
	regBLTBMOD = 0x062
	regBLTAMOD = 0x064
	regBLTDMOD = 0x066
	regBLTCDAT = 0x070
	regBLTBDAT = 0x072
	regBLTADAT = 0x074

	regDIWSTRT = 0x08e
	regDIWSTOP = 0x090
	regDDFSTRT = 0x092
	regDDFSTOP = 0x094
	regDMACON  = 0x096
	regINTENA  = 0x09a
	regINTREQ  = 0x09c

	regAudioBase     = 0x0a0
	regAudioEnd      = 0x0a0 + 16*numAudioChannels
	regSpritePtrBase = 0x120
	regSpritePtrEnd  = 0x120 + 4*numSprites
	regSpriteBase    = 0x140
	regSpriteEnd     = 0x140 + 8*numSprites
)

// setClr applies the shared write semantics of the enable, request and DMA
// control registers: bit 15 decides whether the remaining set bits are set
// or cleared in the target.
func setClr(target *uint16, value uint16) {
	if value&0x8000 != 0 {
		*target |= value &^ 0x8000
	} else {
		*target &^= value
	}
}

// Perform completes a microcycle that the bus handler has already placed in
// the chip register window. Reads of undecoded registers see open bus;
// writes to them are dropped.
//
// Every write that can change derived state reprocesses it before
// returning: the interrupt level after an enable or request write, audio
// channel arming after a DMA control write, a blit start after a size
// write.
func (chip *Chipset) Perform(cycle *bus.Microcycle) {
	address := cycle.ByteAddress() & 0x1fe

	if cycle.IsRead() {
		switch address {
		case regDMACONR:
			value := chip.dmaControl
			if chip.blitter.Busy() {
				value |= dmaBlitterBusy
			}
			if chip.blitter.ZeroFlag() {
				value |= dmaBlitterZero
			}
			cycle.SetValue16(value)
		case regVPOSR:
			cycle.SetValue16(uint16(chip.y >> 8))
		case regVHPOSR:
			cycle.SetValue16(uint16(chip.y&0xff)<<8 | uint16(chip.x&0xff))
		case regINTENAR:
			cycle.SetValue16(chip.interruptEnable)
		case regINTREQR:
			cycle.SetValue16(chip.interruptRequests)
		default:
			cycle.SetValue16(bus.OpenBus)
		}
		return
	}

	value := cycle.Value16()

	switch {
	case address >= regAudioBase && address < regAudioEnd:
		chip.audioWrite(address, value)
		return
	case address >= regSpritePtrBase && address < regSpritePtrEnd:
		n := (address - regSpritePtrBase) >> 2
		shift := 16 - ((address & 2) << 3)
		chip.sprites[n].setPointer(int(shift), value)
		return
	case address >= regSpriteBase && address < regSpriteEnd:
		n := (address - regSpriteBase) >> 3
		switch address & 6 {
		case 0:
			chip.sprites[n].setStartPosition(value)
		case 2:
			chip.sprites[n].setStopAndControl(value)
		case 4:
			chip.sprites[n].setImageData(0, value)
		case 6:
			chip.sprites[n].setImageData(1, value)
		}
		return
	}

	switch address {
	case regDIWSTRT:
		chip.displayWindowStart = value
	case regDIWSTOP:
		chip.displayWindowStop = value
	case regDDFSTRT:
		chip.fetchWindowStart = value
	case regDDFSTOP:
		chip.fetchWindowStop = value

	case regDMACON:
		previous := chip.dmaControl
		setClr(&chip.dmaControl, value&^(dmaBlitterBusy|dmaBlitterZero))
		chip.dmaControlChanged(previous)

	case regINTENA:
		setClr(&chip.interruptEnable, value)
		chip.updateInterrupts()
	case regINTREQ:
		setClr(&chip.interruptRequests, value)
		chip.updateInterrupts()

	case regBLTCON0:
		chip.blitter.SetControl(0, value)
	case regBLTCON1:
		chip.blitter.SetControl(1, value)
	case regBLTAFWM:
		chip.blitter.SetFirstWordMask(value)
	case regBLTALWM:
		chip.blitter.SetLastWordMask(value)
	case regBLTAPTH:
		chip.blitter.SetPointer(0, 16, value)
	case regBLTAPTL:
		chip.blitter.SetPointer(0, 0, value)
	case regBLTBPTH:
		chip.blitter.SetPointer(1, 16, value)
	case regBLTBPTL:
		chip.blitter.SetPointer(1, 0, value)
	case regBLTCPTH:
		chip.blitter.SetPointer(2, 16, value)
	case regBLTCPTL:
		chip.blitter.SetPointer(2, 0, value)
	case regBLTDPTH:
		chip.blitter.SetPointer(3, 16, value)
	case regBLTDPTL:
		chip.blitter.SetPointer(3, 0, value)
	case regBLTAMOD:
		chip.blitter.SetModulo(0, value)
	case regBLTBMOD:
		chip.blitter.SetModulo(1, value)
	case regBLTCMOD:
		chip.blitter.SetModulo(2, value)
	case regBLTDMOD:
		chip.blitter.SetModulo(3, value)
	case regBLTADAT:
		chip.blitter.SetData(0, value)
	case regBLTBDAT:
		chip.blitter.SetData(1, value)
	case regBLTCDAT:
		chip.blitter.SetData(2, value)
	case regBLTSIZE:
		chip.blitter.SetSize(value)

	default:
		logger.Logf(logger.Allow, "chipset", "write to undecoded register %03x of %04x", address, value)
	}
}

// dmaControlChanged reprocesses state that depends on the DMA control word.
// Audio channels restart from their location registers on the clock edge
// that enables them.
func (chip *Chipset) dmaControlChanged(previous uint16) {
	for ch := range chip.audio {
		bit := DMAAudio0 << ch
		wasEnabled := previous&DMAMaster != 0 && previous&bit != 0
		if chip.audioEnabled(ch) && !wasEnabled {
			chip.audio[ch].restart()
		}
	}
}

func (chip *Chipset) audioEnabled(ch int) bool {
	return chip.dmaControl&DMAMaster != 0 && chip.dmaControl&(DMAAudio0<<ch) != 0
}
