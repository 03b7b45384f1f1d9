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

package wdc_test

import (
	"strings"
	"testing"

	"github.com/wystan/goamiga/hardware/wdc"
	"github.com/wystan/goamiga/logger"
	"github.com/wystan/goamiga/storage/disk"
	"github.com/wystan/goamiga/test"
)

// enough input cycles for several hundred controller micro-steps. commands
// that make no head movement complete in a handful of steps; a full restore
// across the disk needs a few hundred.
const plentyOfCycles = 8 * 1000

func newTestController(headPosition int) (*wdc.Controller, *disk.Drive) {
	drv := disk.NewDrive(1000000, 300)
	con := wdc.NewController(drv)
	for i := 0; i < headPosition; i++ {
		drv.Step(1)
	}
	return con, drv
}

func TestRestore(t *testing.T) {
	con, drv := newTestController(5)
	con.SetRegister(1, 5)

	// restore with the h bit set, skipping the spin-up wait
	con.SetRegister(0, 0x0b)
	con.RunForCycles(plentyOfCycles)

	test.Equate(t, drv.IsTrackZero(), true)
	test.Equate(t, con.Register(1), 0)
	test.Equate(t, con.InterruptRequest(), true)
	test.Equate(t, con.Register(0)&wdc.StatusBusy, 0)
	test.Equate(t, con.Register(0)&wdc.StatusTrackZero, int(wdc.StatusTrackZero))

	// the status read has dropped INTRQ
	test.Equate(t, con.InterruptRequest(), false)
}

func TestSpinUpWait(t *testing.T) {
	con, drv := newTestController(2)
	con.SetRegister(1, 2)

	// restore with the h bit clear: the command must hold in the spin-up
	// wait until the sixth index pulse
	con.SetRegister(0, 0x03)
	con.RunForCycles(plentyOfCycles)

	test.Equate(t, con.Register(0)&wdc.StatusBusy, int(wdc.StatusBusy))
	test.Equate(t, con.Register(0)&wdc.StatusMotorOn, int(wdc.StatusMotorOn))

	// five pulses are not enough
	for i := 0; i < 5; i++ {
		con.ProcessIndexHole()
	}
	con.RunForCycles(plentyOfCycles)
	test.Equate(t, con.Register(0)&wdc.StatusBusy, int(wdc.StatusBusy))
	test.Equate(t, drv.IsTrackZero(), false)

	// the sixth releases the command
	con.ProcessIndexHole()
	con.RunForCycles(plentyOfCycles)
	test.Equate(t, con.InterruptRequest(), true)
	test.Equate(t, con.Register(0)&wdc.StatusBusy, 0)
	test.Equate(t, drv.IsTrackZero(), true)
}

func TestSeekAlreadyAtTarget(t *testing.T) {
	con, drv := newTestController(5)

	// track register and target (data register) agree at 5: the equality
	// test must complete the command without any head movement
	con.SetRegister(1, 5)
	con.SetRegister(3, 5)
	con.SetRegister(0, 0x1b)
	con.RunForCycles(plentyOfCycles)

	test.Equate(t, con.Register(1), 5)
	test.Equate(t, drv.HeadPosition(), 5)
	test.Equate(t, con.InterruptRequest(), true)
	test.Equate(t, con.Register(0)&wdc.StatusBusy, 0)
}

func TestSeek(t *testing.T) {
	con, drv := newTestController(2)

	con.SetRegister(1, 2)
	con.SetRegister(3, 7)
	con.SetRegister(0, 0x1b)
	con.RunForCycles(plentyOfCycles)

	test.Equate(t, con.Register(1), 7)
	test.Equate(t, drv.HeadPosition(), 7)
	test.Equate(t, con.Register(0)&wdc.StatusBusy, 0)
}

func TestType2RecordNotFound(t *testing.T) {
	con, _ := newTestController(0)

	// read sector with the h bit set. with no flux data path attached the
	// record scan must give up after five index pulses
	con.SetRegister(2, 1)
	con.SetRegister(0, 0x88)
	con.RunForCycles(plentyOfCycles)
	test.Equate(t, con.Register(0)&wdc.StatusBusy, int(wdc.StatusBusy))

	for i := 0; i < 5; i++ {
		con.ProcessIndexHole()
	}
	con.RunForCycles(plentyOfCycles)

	test.Equate(t, con.InterruptRequest(), true)
	test.Equate(t, con.Register(0)&wdc.StatusBusy, 0)
	test.Equate(t, con.Register(0)&wdc.StatusRecordNotFound, int(wdc.StatusRecordNotFound))
}

func TestUnhandledStateLogsOnce(t *testing.T) {
	logger.Clear()

	con, _ := newTestController(0)

	// type 3 commands dispatch but have no handler yet
	con.SetRegister(0, 0xe0)
	con.RunForCycles(plentyOfCycles)
	con.RunForCycles(plentyOfCycles)

	s := strings.Builder{}
	logger.Write(&s)
	test.Equate(t, strings.Count(s.String(), "unhandled state"), 1)
	test.Equate(t, strings.Contains(s.String(), "repeat"), false)

	// a reset arms the diagnostic again
	con.Reset()
	con.SetRegister(0, 0xe0)
	con.RunForCycles(plentyOfCycles)

	s.Reset()
	logger.Write(&s)
	test.Equate(t, strings.Count(s.String(), "unhandled state"), 1)
}

func TestRegisterFile(t *testing.T) {
	con, _ := newTestController(0)

	con.SetRegister(1, 0x11)
	con.SetRegister(2, 0x22)
	con.SetRegister(3, 0x33)
	test.Equate(t, con.Register(1), 0x11)
	test.Equate(t, con.Register(2), 0x22)
	test.Equate(t, con.Register(3), 0x33)

	// partial address decode folds higher addresses onto the registers
	test.Equate(t, con.Register(5), 0x11)
	test.Equate(t, con.Register(7), 0x33)
}
