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

// Package chipset implements the custom chipset: the time-sliced scheduler
// that arbitrates chip memory between the processor and the DMA engines,
// and the memory-mapped register file through which the processor programs
// them.
//
// Time is divided into colour clocks, two processor cycles each. Every
// colour clock is one DMA slot, allocated in fixed priority order to memory
// refresh, disk, audio, sprite fetch, bitplane fetch, the blitter and
// finally the processor. RunFor() advances by an exact duration and reports
// the sync edges crossed; TimeUntilCPUSlot() and RunUntilCPUSlot() give the
// bus handler the cycle-exact delay a chip memory access suffers while a
// DMA engine holds the bus.
//
// The interrupt level presented to the processor is always a pure function
// of the enable and request masks. It is recomputed inside every mutation
// of either mask, whether from a register write, a DMA engine completing,
// or an external peripheral raising a request. Nothing ever needs to ask
// for a recomputation.
package chipset
