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

// Package memory holds the machine's memory map: chip RAM, the Kickstart
// ROM and the region table that the bus handler dispatches through.
//
// Storage is word organised, matching the 16-bit data bus. The 24-bit
// address space is divided into 256KB regions; each region either exposes a
// window onto a backing store, with an access mask that makes ROM writes
// vanish, or is unmapped and left to open-bus handling.
package memory

import (
	"github.com/wystan/goamiga/curated"
	"github.com/wystan/goamiga/hardware/cpu/bus"
)

// Sizes of the two backing stores, in bytes.
const (
	ChipRAMSize   = 512 * 1024
	KickstartSize = 512 * 1024
)

// the address space is divided into 256KB regions: 24 address bits less the
// 18 that address within a region.
const (
	regionShift = 18
	numRegions  = 1 << (24 - regionShift)
	regionWords = (1 << regionShift) / 2
)

// byte address at which the Kickstart ROM normally lives.
const kickstartBase = 0xf80000

type region struct {
	contents []uint16
	mask     bus.AccessMask
}

// Map is the machine's memory map.
type Map struct {
	ChipRAM   []uint16
	Kickstart []uint16

	regions [numRegions]region

	// while the overlay is active the Kickstart ROM also appears at address
	// zero, so that the reset vector fetch finds ROM rather than RAM
	overlay bool
}

// NewMap is the preferred method of initialisation for the Map type. The
// Kickstart store is empty until LoadKickstart() succeeds.
func NewMap() *Map {
	mem := &Map{
		ChipRAM:   make([]uint16, ChipRAMSize/2),
		Kickstart: make([]uint16, KickstartSize/2),
	}
	mem.Reset()
	return mem
}

// LoadKickstart packs a ROM byte image into the Kickstart store. A 256KB
// image is mirrored to fill the 512KB window.
func (mem *Map) LoadKickstart(data []byte) error {
	switch len(data) {
	case KickstartSize:
		PackBigEndian16(data, mem.Kickstart)
	case KickstartSize / 2:
		PackBigEndian16(data, mem.Kickstart[:KickstartSize/4])
		copy(mem.Kickstart[KickstartSize/4:], mem.Kickstart[:KickstartSize/4])
	default:
		return curated.Errorf("memory: unexpected kickstart size (%d)", len(data))
	}
	return nil
}

// Reset restores the power-on memory map, with the Kickstart overlay
// active.
func (mem *Map) Reset() {
	mem.overlay = true
	mem.updateMap()
}

// SetOverlay controls whether the Kickstart ROM is mirrored over address
// zero. On the real machine this is wired to a CIA output line.
func (mem *Map) SetOverlay(overlay bool) {
	if mem.overlay != overlay {
		mem.overlay = overlay
		mem.updateMap()
	}
}

func (mem *Map) updateMap() {
	for i := range mem.regions {
		mem.regions[i] = region{}
	}

	// chip RAM or the overlayed ROM at the bottom of the map
	low := mem.ChipRAM
	lowMask := bus.ReadWrite
	if mem.overlay {
		low = mem.Kickstart
		lowMask = bus.ReadOnly
	}
	for i := 0; i*regionWords < len(low); i++ {
		mem.regions[i] = region{
			contents: low[i*regionWords : (i+1)*regionWords],
			mask:     lowMask,
		}
	}

	// the Kickstart ROM at its home address
	for i := 0; i*regionWords < len(mem.Kickstart); i++ {
		mem.regions[kickstartBase>>regionShift+i] = region{
			contents: mem.Kickstart[i*regionWords : (i+1)*regionWords],
			mask:     bus.ReadOnly,
		}
	}
}

// Mapped returns true if the address falls in a region with a backing
// store.
func (mem *Map) Mapped(address uint32) bool {
	return mem.regions[(address&0x00ffffff)>>regionShift].contents != nil
}

// Apply completes a microcycle against the backing store for its exposed
// address. The caller has already established that the address is Mapped().
func (mem *Map) Apply(cycle *bus.Microcycle) {
	address := cycle.ByteAddress()
	r := &mem.regions[address>>regionShift]
	cycle.ApplyTo(&r.contents[(address&(1<<regionShift-1))>>1], r.mask)
}

// Peek returns the word at the given byte address without any bus traffic.
// Unmapped addresses read as open bus.
func (mem *Map) Peek(address uint32) uint16 {
	address &= 0x00ffffff
	r := &mem.regions[address>>regionShift]
	if r.contents == nil {
		return bus.OpenBus
	}
	return r.contents[(address&(1<<regionShift-1))>>1]
}
