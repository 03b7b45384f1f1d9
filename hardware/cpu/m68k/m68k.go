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

// Package m68k drives the processor side of the bus protocol. The engine
// issues the 68000's bus-cycle stream: word fetches of standard length, each
// handed to the host's bus handler, with any returned access delay absorbed
// into the engine's own timebase before the next cycle is generated.
//
// The engine models the processor's bus behaviour, not its instruction
// semantics. Fetched words pace the machine and trigger the handler's side
// effects in the same order a full core would; what the words decode to is
// outside its scope.
package m68k

import (
	"github.com/wystan/goamiga/hardware/clocks"
	"github.com/wystan/goamiga/hardware/cpu/bus"
)

// a standard 68000 bus cycle is four processor cycles.
const busCycleLength = clocks.HalfCycles(8)

// Processor issues bus cycles against a host-supplied handler.
type Processor struct {
	handler bus.Handler

	// program counter for the fetch stream. wraps within the 24-bit space
	pc uint32

	// the interrupt priority mask and the level most recently sampled from
	// the handler's side of the machine
	interruptMask  int
	interruptLevel int

	// time owed to cycles already performed. RunFor() executes whole bus
	// cycles, so a request rarely divides evenly
	overrun clocks.HalfCycles

	pendingReset bool
}

// NewProcessor is the preferred method of initialisation for the Processor
// type.
func NewProcessor(handler bus.Handler) *Processor {
	proc := &Processor{handler: handler}
	proc.Reset()
	return proc
}

// Reset schedules a reset sequence for the start of the next RunFor(). The
// reset cycle asserts the bus reset line, letting peripherals restore their
// power-on state, and restarts the fetch stream from the vector table.
func (proc *Processor) Reset() {
	proc.pendingReset = true
}

// SetInterruptLevel presents a new level on the interrupt input. The engine
// samples it between bus cycles; a level above the current mask produces an
// acknowledge cycle.
func (proc *Processor) SetInterruptLevel(level int) {
	proc.interruptLevel = level
}

// SetInterruptMask sets the priority below which interrupts are ignored.
func (proc *Processor) SetInterruptMask(mask int) {
	proc.interruptMask = mask
}

// PC returns the current fetch address.
func (proc *Processor) PC() uint32 {
	return proc.pc
}

// RunFor issues bus cycles until the requested duration is spent. Cycles
// are never split: time spent beyond the request, including access delays
// reported by the handler, is deducted from the next call.
func (proc *Processor) RunFor(duration clocks.HalfCycles) {
	duration -= proc.overrun
	proc.overrun = 0

	for duration > 0 {
		if proc.pendingReset {
			duration -= proc.reset()
			continue
		}

		if proc.interruptLevel > proc.interruptMask {
			duration -= proc.acknowledgeInterrupt()
			continue
		}

		duration -= proc.fetch()
	}

	proc.overrun = -duration
}

// fetch performs one program fetch cycle. The handler's access delay
// stretches the cycle.
func (proc *Processor) fetch() clocks.HalfCycles {
	address := proc.pc
	var data uint16

	cycle := bus.Microcycle{
		Operation: bus.NewAddress | bus.Read | bus.SelectWord,
		Address:   &address,
		Data:      &data,
		Length:    busCycleLength,
	}
	delay := proc.handler.PerformBusOperation(&cycle)

	proc.pc = (proc.pc + 2) & 0x00ffffff
	return busCycleLength + delay
}

// acknowledgeInterrupt performs the interrupt acknowledge cycle and raises
// the mask to the acknowledged level, so the same level does not retrigger
// until it is reasserted above the mask.
func (proc *Processor) acknowledgeInterrupt() clocks.HalfCycles {
	level := proc.interruptLevel
	address := uint32(0xfffffff0) | uint32(level)<<1
	var vector uint16

	cycle := bus.Microcycle{
		Operation: bus.InterruptAcknowledge | bus.NewAddress | bus.Read | bus.SelectByte,
		Address:   &address,
		Data:      &vector,
		Length:    busCycleLength,
	}
	delay := proc.handler.PerformBusOperation(&cycle)

	proc.interruptMask = level
	return busCycleLength + delay
}

// reset performs the reset bus cycle and restarts the fetch stream.
func (proc *Processor) reset() clocks.HalfCycles {
	proc.pendingReset = false
	proc.pc = 0
	proc.interruptMask = 7
	proc.interruptLevel = 0

	cycle := bus.Microcycle{
		Operation: bus.Reset,
		Length:    busCycleLength,
	}
	delay := proc.handler.PerformBusOperation(&cycle)

	return busCycleLength + delay
}
