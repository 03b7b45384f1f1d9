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

package chipset_test

import (
	"testing"

	"github.com/wystan/goamiga/hardware/chipset"
	"github.com/wystan/goamiga/hardware/clocks"
	"github.com/wystan/goamiga/hardware/cpu/bus"
	"github.com/wystan/goamiga/test"
)

func newTestChipset() (*chipset.Chipset, []uint16) {
	ram := make([]uint16, 256*1024)
	return chipset.NewChipset(ram, clocks.PAL), ram
}

// write performs a word write to a chip register.
func write(chip *chipset.Chipset, register uint32, value uint16) {
	address := 0xdff000 + register
	cycle := &bus.Microcycle{
		Operation: bus.NewAddress | bus.SelectWord,
		Address:   &address,
		Data:      &value,
	}
	chip.Perform(cycle)
}

// read performs a word read from a chip register.
func read(chip *chipset.Chipset, register uint32) uint16 {
	address := 0xdff000 + register
	var value uint16
	cycle := &bus.Microcycle{
		Operation: bus.NewAddress | bus.Read | bus.SelectWord,
		Address:   &address,
		Data:      &value,
	}
	chip.Perform(cycle)
	return value
}

const (
	intena  = 0x09a
	intreq  = 0x09c
	intenar = 0x01c
	intreqr = 0x01e
	dmacon  = 0x096
	dmaconr = 0x002
	vhposr  = 0x006
)

func TestSetClrSemantics(t *testing.T) {
	chip, _ := newTestChipset()

	// SET writes or in the stated bits
	write(chip, intena, 0x8000|0x4020)
	test.Equate(t, read(chip, intenar), 0x4020)

	// CLR writes knock them out again
	write(chip, intena, 0x0020)
	test.Equate(t, read(chip, intenar), 0x4000)
}

func TestInterruptLevel(t *testing.T) {
	chip, _ := newTestChipset()

	// a request with no enables asserts nothing
	chip.RaiseInterrupt(chipset.InterruptVerticalBlank)
	test.Equate(t, chip.InterruptLevel(), 0)

	// enabling the source is not enough without the master enable
	write(chip, intena, 0x8000|uint16(chipset.InterruptVerticalBlank))
	test.Equate(t, chip.InterruptLevel(), 0)

	// the master enable exposes the pending request at its level
	write(chip, intena, 0x8000|0x4000)
	test.Equate(t, chip.InterruptLevel(), 3)

	// a higher-priority source wins
	write(chip, intena, 0x8000|uint16(chipset.InterruptExternal))
	chip.RaiseInterrupt(chipset.InterruptExternal)
	test.Equate(t, chip.InterruptLevel(), 6)

	// acknowledging the external request falls back to the vertical blank
	write(chip, intreq, uint16(chipset.InterruptExternal))
	test.Equate(t, chip.InterruptLevel(), 3)

	// and clearing that leaves nothing asserted
	write(chip, intreq, uint16(chipset.InterruptVerticalBlank))
	test.Equate(t, chip.InterruptLevel(), 0)
}

func TestRasterAdvance(t *testing.T) {
	chip, _ := newTestChipset()

	line := clocks.HalfCycles(clocks.PALLineLength * 4)

	changes := chip.RunFor(line)
	test.Equate(t, changes.HSyncs, 1)
	test.Equate(t, changes.VSyncs, 0)
	test.Equate(t, read(chip, vhposr), 0x0100)

	// a full field wraps and signals the vertical blank interrupt request
	changes = chip.RunFor(line * clocks.HalfCycles(clocks.PALFieldLines-1))
	test.Equate(t, changes.HSyncs, clocks.PALFieldLines-1)
	test.Equate(t, changes.VSyncs, 1)
	test.Equate(t, read(chip, intreqr)&uint16(chipset.InterruptVerticalBlank), 0x0020)
	test.Equate(t, read(chip, vhposr), 0x0000)
}

func TestRasterAdvanceSplit(t *testing.T) {
	chip, _ := newTestChipset()

	// partial slots carry across calls; many short advances cross the same
	// line boundary as one long one
	var hsyncs int
	for i := 0; i < clocks.PALLineLength*4; i++ {
		hsyncs += chip.RunFor(1).HSyncs
	}
	test.Equate(t, hsyncs, 1)
}

func TestCPUSlotArbitration(t *testing.T) {
	chip, _ := newTestChipset()

	// at the start of a line the refresh slots hold the bus; the first CPU
	// opportunity is slot 4
	test.Equate(t, int(chip.TimeUntilCPUSlot()), 16)

	changes := chip.RunUntilCPUSlot()
	test.Equate(t, int(changes.Duration), 16)
	test.Equate(t, int(chip.TimeUntilCPUSlot()), 0)

	// enabling disk DMA pushes the CPU past the disk slots too
	write(chip, dmacon, 0x8000|0x0200|0x0010)
	test.Equate(t, int(chip.TimeUntilCPUSlot()), 12)
}

func TestCPUSlotArbitrationSaturated(t *testing.T) {
	chip, _ := newTestChipset()

	const (
		diwstrt = 0x08e
		diwstop = 0x090
		ddfstrt = 0x092
		ddfstop = 0x094
	)

	// a display window over every line of the field and a fetch window over
	// every non-refresh slot, with disk, audio, sprite and bitplane DMA all
	// enabled, leaves the processor no slot at all
	write(chip, diwstrt, 0x0000)
	write(chip, diwstop, 0x3800)
	write(chip, ddfstrt, 0x0004)
	write(chip, ddfstop, 0x00ff)
	write(chip, dmacon, 0x8000|0x0200|0x0010|0x000f|0x0020|0x0100)

	// the arbiter grants the access after searching one full frame rather
	// than stalling
	frameSlots := clocks.PALLineLength * clocks.PALFieldLines
	test.Equate(t, int(chip.TimeUntilCPUSlot()), (frameSlots+1)*4)
}

func TestDMAConReadOnlyBits(t *testing.T) {
	chip, _ := newTestChipset()

	// the blitter-busy and blitter-zero bits cannot be written
	write(chip, dmacon, 0x8000|0x6000)
	test.Equate(t, read(chip, dmaconr)&0x4000, 0)

	// an idle blitter reads back as not busy, zero flag set
	test.Equate(t, read(chip, dmaconr)&0x2000, 0x2000)
}

func TestUndecodedRegisters(t *testing.T) {
	chip, _ := newTestChipset()

	// reads of undecoded registers see open bus; writes land nowhere
	test.Equate(t, read(chip, 0x1f0), 0xffff)
	write(chip, 0x1f0, 0x1234)
	test.Equate(t, read(chip, 0x1f0), 0xffff)
}

type recordingMixer struct {
	samples []int8
	volumes []uint8
}

func (m *recordingMixer) Mix(channel int, sample int8, volume uint8) {
	m.samples = append(m.samples, sample)
	m.volumes = append(m.volumes, volume)
}

func (m *recordingMixer) EndMixing() error {
	return nil
}

func TestAudioDMA(t *testing.T) {
	chip, ram := newTestChipset()
	mixer := &recordingMixer{}
	chip.SetAudioMixer(mixer)

	// two sample words at 0x10000
	ram[0x10000>>1] = 0x7f80
	ram[0x10002>>1] = 0x0102

	const (
		aud0lch = 0x0a0
		aud0lcl = 0x0a2
		aud0len = 0x0a4
		aud0per = 0x0a6
		aud0vol = 0x0a8
	)

	write(chip, aud0lch, 0x0001)
	write(chip, aud0lcl, 0x0000)
	write(chip, aud0len, 2)

	// a period longer than the distance to the channel's DMA slot, so the
	// first output follows the first fetch
	write(chip, aud0per, 16)
	write(chip, aud0vol, 64)

	// enabling the channel arms it from the programmed registers
	write(chip, dmacon, 0x8000|0x0200|0x0001)

	// several lines is ample for the fetches and a few periods
	chip.RunFor(clocks.HalfCycles(clocks.PALLineLength * 4 * 4))

	if len(mixer.samples) < 4 {
		t.Fatalf("expected at least 4 samples, got %d", len(mixer.samples))
	}
	test.Equate(t, int(mixer.samples[0]), 0x7f)
	test.Equate(t, int(mixer.samples[1]), -128)
	test.Equate(t, int(mixer.volumes[0]), 64)

	// buffer exhaustion raises the channel interrupt
	test.Equate(t, read(chip, intreqr)&uint16(chipset.InterruptAudio0), 0x0080)
}
