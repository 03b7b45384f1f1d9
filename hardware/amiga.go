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

// Package hardware assembles the machine: processor, memory map, custom
// chipset and disk controller, glued together by the bus handler that every
// processor cycle passes through.
package hardware

import (
	"github.com/wystan/goamiga/curated"
	"github.com/wystan/goamiga/hardware/chipset"
	"github.com/wystan/goamiga/hardware/clocks"
	"github.com/wystan/goamiga/hardware/cpu/bus"
	"github.com/wystan/goamiga/hardware/cpu/m68k"
	"github.com/wystan/goamiga/hardware/memory"
	"github.com/wystan/goamiga/hardware/wdc"
	"github.com/wystan/goamiga/logger"
	"github.com/wystan/goamiga/rom"
	"github.com/wystan/goamiga/storage/disk"
)

// drive rotation speed in revolutions per minute.
const driveRPM = 300

// Amiga is an assembled machine. The exported fields allow direct access to
// the sub-systems; very useful for testing and debugging.
type Amiga struct {
	CPU     *m68k.Processor
	Mem     *memory.Map
	Chipset *chipset.Chipset
	Disk    *wdc.Controller
	Drive   *disk.Drive

	// sync edges accumulated since construction
	frames int
	lines  int
}

// NewAmiga is the preferred method of initialisation for the Amiga type.
// The fetcher must be able to supply the Kickstart image; a machine without
// its ROM cannot be constructed.
func NewAmiga(fetcher rom.Fetcher) (*Amiga, error) {
	kickstart, err := fetcher(rom.KickstartV13)
	if err != nil {
		return nil, curated.Errorf("amiga: %v", err)
	}

	amiga := &Amiga{
		Mem: memory.NewMap(),
	}
	if err := amiga.Mem.LoadKickstart(kickstart); err != nil {
		return nil, curated.Errorf("amiga: %v", err)
	}

	amiga.Chipset = chipset.NewChipset(amiga.Mem.ChipRAM, clocks.PAL)
	amiga.Drive = disk.NewDrive(clocks.PAL/wdc.ClockDivider, driveRPM)
	amiga.Disk = wdc.NewController(amiga.Drive)
	amiga.CPU = m68k.NewProcessor(amiga)

	return amiga, nil
}

// InsertDisk attaches a disk image to the drive.
func (amiga *Amiga) InsertDisk(image disk.Image) {
	amiga.Drive.Insert(image)
}

// SetAudioMixer attaches the receiver for audio samples.
func (amiga *Amiga) SetAudioMixer(mixer chipset.AudioMixer) {
	amiga.Chipset.SetAudioMixer(mixer)
}

// Frames returns the number of complete fields emulated so far.
func (amiga *Amiga) Frames() int {
	return amiga.frames
}

// RunForCycles advances the whole machine by a number of master clock
// cycles. The processor drives; everything else advances in its wake, one
// bus cycle at a time.
func (amiga *Amiga) RunForCycles(numberOfCycles int) {
	amiga.CPU.RunFor(clocks.Cycles(numberOfCycles))
}

// PerformBusOperation implements the bus.Handler interface. It is the one
// path by which a processor cycle touches the rest of the machine.
func (amiga *Amiga) PerformBusOperation(cycle *bus.Microcycle) clocks.HalfCycles {
	// a chip memory access must wait for the DMA engines to release the bus
	var delay clocks.HalfCycles
	if cycle.Operation&bus.NewAddress != 0 && cycle.Address != nil && cycle.ByteAddress() < 0x200000 {
		advance := amiga.Chipset.RunUntilCPUSlot()
		delay = advance.Duration
		amiga.countSyncs(advance)
	}

	// everything moves by the full length of the cycle before its side
	// effects are applied
	length := cycle.Length + delay
	changes := amiga.Chipset.RunFor(length)
	amiga.countSyncs(changes)
	amiga.Disk.RunForCycles(length.AsCycles())
	if amiga.Disk.InterruptRequest() {
		amiga.Chipset.RaiseInterrupt(chipset.InterruptDiskBlock)
	}
	amiga.CPU.SetInterruptLevel(amiga.Chipset.InterruptLevel())

	if cycle.Operation&bus.Reset != 0 {
		logger.Logf(logger.Allow, "amiga", "reset")
		amiga.Mem.Reset()
	}

	// interrupt acknowledgement is autovectored; there is nothing on the
	// bus to answer it
	if cycle.Operation&bus.InterruptAcknowledge != 0 {
		return delay
	}

	if !cycle.AddressExposed() {
		return delay
	}
	address := cycle.ByteAddress()

	if amiga.Mem.Mapped(address) {
		amiga.Mem.Apply(cycle)
		return delay
	}

	if !cycle.DataExposed() {
		return delay
	}

	switch {
	case address&0xe00000 == 0xa00000:
		amiga.performPeripheral(cycle, address)

	case address >= 0xdff000 && address <= 0xdff1be:
		amiga.Chipset.Perform(cycle)

	default:
		// open bus
		if cycle.IsRead() {
			cycle.SetValue16(bus.OpenBus)
		}

		// the top of the map is expansion ROM this machine doesn't have;
		// the boot sequence probes it, so don't log that
		if address < 0xf00000 {
			if cycle.IsRead() {
				logger.Logf(logger.Allow, "amiga", "unmapped read from %06x", address)
			} else {
				logger.Logf(logger.Allow, "amiga", "unmapped write to %06x of %04x", address, cycle.Value16())
			}
		}
	}

	return delay
}

// performPeripheral decodes the peripheral region. Address bit 12 selects
// the port latch that carries the ROM overlay control; bit 13 the disk
// controller. The two selects are independent, as on the real bus.
func (amiga *Amiga) performPeripheral(cycle *bus.Microcycle, address uint32) {
	if cycle.IsRead() {
		result := bus.OpenBus
		if address&0x1000 == 0 {
			result &= 0xff00
		}
		if address&0x2000 == 0 {
			result &= 0x00ff | uint16(amiga.Disk.Register(int(address>>8)))<<8
		}
		cycle.SetValue16(result)
		return
	}

	if address&0x1000 == 0 {
		// bit 0 of the port latch maps the ROM overlay
		amiga.Mem.SetOverlay(cycle.Value16()&0x01 != 0)
	}
	if address&0x2000 == 0 {
		amiga.Disk.SetRegister(int(address>>8), uint8(cycle.Value16()>>8))
	}
}

func (amiga *Amiga) countSyncs(changes chipset.Changes) {
	amiga.lines += changes.HSyncs
	amiga.frames += changes.VSyncs
}
