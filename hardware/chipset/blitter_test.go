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
	"github.com/wystan/goamiga/test"
)

const (
	bltcon0 = 0x040
	bltcon1 = 0x042
	bltafwm = 0x044
	bltalwm = 0x046
	bltapth = 0x050
	bltaptl = 0x052
	bltdpth = 0x054
	bltdptl = 0x056
	bltamod = 0x064
	bltdmod = 0x066
	bltsize = 0x058
)

// programCopy programs a straight A-to-D copy of two rows of two words,
// from 0x2000 to 0x4000.
func programCopy(chip *chipset.Chipset) {
	// channels A and D enabled, minterm selects A
	write(chip, bltcon0, 0x0800|0x0100|0x00f0)
	write(chip, bltcon1, 0x0000)
	write(chip, bltafwm, 0xffff)
	write(chip, bltalwm, 0xffff)
	write(chip, bltapth, 0x0000)
	write(chip, bltaptl, 0x2000)
	write(chip, bltdpth, 0x0000)
	write(chip, bltdptl, 0x4000)
	write(chip, bltamod, 0)
	write(chip, bltdmod, 0)
	write(chip, bltsize, 2<<6|2)
}

func TestBlitterCopy(t *testing.T) {
	chip, ram := newTestChipset()

	src := []uint16{0x1111, 0x2222, 0x3333, 0x4444}
	copy(ram[0x2000>>1:], src)

	write(chip, dmacon, 0x8000|0x0200|0x0040)
	programCopy(chip)

	// busy immediately after the size write
	test.Equate(t, read(chip, dmaconr)&0x4000, 0x4000)

	chip.RunFor(clocks.HalfCycles(clocks.PALLineLength * 4))

	for i, want := range src {
		test.Equate(t, ram[0x4000>>1+i], want)
	}

	// done: busy clear, result not zero, completion interrupt requested
	test.Equate(t, read(chip, dmaconr)&0x4000, 0)
	test.Equate(t, read(chip, dmaconr)&0x2000, 0)
	test.Equate(t, read(chip, intreqr)&uint16(chipset.InterruptBlitter), 0x0040)
}

func TestBlitterEnableGating(t *testing.T) {
	chip, ram := newTestChipset()
	ram[0x2000>>1] = 0xbeef

	// with blitter DMA disabled the blit is pending but makes no progress
	programCopy(chip)
	write(chip, dmacon, 0x8000|0x0200)
	chip.RunFor(clocks.HalfCycles(clocks.PALLineLength * 4))
	test.Equate(t, read(chip, dmaconr)&0x4000, 0x4000)
	test.Equate(t, ram[0x4000>>1], 0x0000)

	// the enable edge lets it finish within the following advance
	write(chip, dmacon, 0x8000|0x0040)
	chip.RunFor(clocks.HalfCycles(clocks.PALLineLength * 4))
	test.Equate(t, read(chip, dmaconr)&0x4000, 0)
	test.Equate(t, ram[0x4000>>1], 0xbeef)

	// and disabling mid-blit freezes it again
	programCopy(chip)
	write(chip, dmacon, 0x0040)
	chip.RunFor(clocks.HalfCycles(clocks.PALLineLength * 4))
	test.Equate(t, read(chip, dmaconr)&0x4000, 0x4000)
}

func TestBlitterZeroFlag(t *testing.T) {
	chip, ram := newTestChipset()
	ram[0x2000>>1] = 0xffff

	write(chip, dmacon, 0x8000|0x0200|0x0040)

	// minterm of zero produces all-zero output
	programCopy(chip)
	write(chip, bltcon0, 0x0800|0x0100|0x0000)
	write(chip, bltsize, 1<<6|1)

	chip.RunFor(clocks.HalfCycles(clocks.PALLineLength * 4))
	test.Equate(t, read(chip, dmaconr)&0x2000, 0x2000)
}

func TestBlitterFirstWordMask(t *testing.T) {
	chip, ram := newTestChipset()
	ram[0x2000>>1] = 0xffff
	ram[0x2002>>1] = 0xffff

	write(chip, dmacon, 0x8000|0x0200|0x0040)
	programCopy(chip)
	write(chip, bltafwm, 0x00ff)
	write(chip, bltsize, 1<<6|2)

	chip.RunFor(clocks.HalfCycles(clocks.PALLineLength * 4))

	// the first word of the row is masked, the last is not
	test.Equate(t, ram[0x4000>>1], 0x00ff)
	test.Equate(t, ram[0x4002>>1], 0xffff)
}
