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

package wdc

import (
	"github.com/wystan/goamiga/logger"
	"github.com/wystan/goamiga/storage/disk"
)

// Status register bits. Several bits change meaning between the Type 1 and
// Type 2/3 command families; both names are given where that happens.
const (
	StatusBusy           uint8 = 0x01
	StatusDataRequest    uint8 = 0x02
	StatusTrackZero      uint8 = 0x04 // type 1
	StatusLostData       uint8 = 0x04 // type 2 and 3
	StatusCRCError       uint8 = 0x08
	StatusRecordNotFound uint8 = 0x10
	StatusSpinUp         uint8 = 0x20 // type 1
	StatusWriteProtect   uint8 = 0x40
	StatusMotorOn        uint8 = 0x80
)

// internal micro-states of the controller.
type state int

const (
	stateWaiting state = iota
	stateWaitForSixIndexPulses
	stateBeginType1
	stateBeginType1PostSpin
	stateTestTrack
	stateTestDirection
	stateTestHead
	stateStepDelay
	stateTestVerify
	stateVerifyTrack
	stateBeginType2
	stateTestPause
	stateTestWrite
	stateScanRecord
	stateBeginType3
)

// ClockDivider is the ratio of the controller's input clock to the rate at
// which it micro-steps. The attached drive receives one cycle of rotation
// per micro-step, so a drive paired with a controller should be constructed
// with the input clock rate divided by this value.
const ClockDivider = 8

// number of index pulses a Type 2 command will scan for its record before
// giving up with record-not-found.
const scanRevolutions = 5

// Controller is a single WD1770-class disk controller bound to one drive.
type Controller struct {
	drive *disk.Drive

	state  state
	status uint8

	command    uint8
	hasCommand bool

	track  uint8
	sector uint8
	data   uint8

	// the data register is latched at the start of a seek comparison
	dataShift uint8

	// direction of the next head step. true is towards higher tracks
	stepIn bool

	stepDelay int

	// index pulses are counted whenever they arrive; the count is only
	// consumed by the states that wait on it
	indexPulseCount int

	// where to resume after the six-pulse spin-up wait
	spinUpNextState state

	interruptRequest bool

	// number of input cycles not yet consumed by a micro-step
	cycles int

	// diagnostic for reaching a state the machine has no handler for. reset
	// by Reset(), not by time, so the log carries it once per incident
	unhandledStateLogged bool
}

// NewController is the preferred method of initialisation for the Controller
// type. The controller registers itself as the drive's event delegate.
func NewController(drive *disk.Drive) *Controller {
	con := &Controller{
		drive: drive,
	}
	drive.SetEventDelegate(con)
	return con
}

// Reset returns the controller to its power-on state. The attached drive is
// not affected.
func (con *Controller) Reset() {
	con.state = stateWaiting
	con.status = 0
	con.hasCommand = false
	con.indexPulseCount = 0
	con.interruptRequest = false
	con.cycles = 0
	con.unhandledStateLogged = false
}

// SetRegister writes one of the controller's four registers. Address is
// folded to the low two bits, matching the partial address decode of the
// real part.
func (con *Controller) SetRegister(address int, value uint8) {
	switch address & 3 {
	case 0:
		con.command = value
		con.hasCommand = true
		con.setInterruptRequest(false)
	case 1:
		con.track = value
	case 2:
		con.sector = value
	case 3:
		con.data = value
	}
}

// Register reads one of the controller's four registers.
func (con *Controller) Register(address int) uint8 {
	switch address & 3 {
	default:
		return con.statusRead()
	case 1:
		return con.track
	case 2:
		return con.sector
	case 3:
		return con.data
	}
}

// statusRead folds live conditions into the static status bits. the
// track-zero bit follows the sensor directly during Type 1 commands and at
// rest. reading status also drops the INTRQ output, as on the real part.
func (con *Controller) statusRead() uint8 {
	con.setInterruptRequest(false)
	s := con.status
	if con.command&0x80 == 0 {
		s &= ^StatusTrackZero
		if con.drive.IsTrackZero() {
			s |= StatusTrackZero
		}
	}
	return s
}

// InterruptRequest returns the state of the INTRQ output.
func (con *Controller) InterruptRequest() bool {
	return con.interruptRequest
}

func (con *Controller) setInterruptRequest(set bool) {
	con.interruptRequest = set
}

// ProcessIndexHole implements the disk.EventDelegate interface. Pulses are
// counted regardless of state; only the states that wait on the count react
// to it.
func (con *Controller) ProcessIndexHole() {
	con.indexPulseCount++

	if con.state == stateWaitForSixIndexPulses && con.indexPulseCount == 6 {
		con.state = con.spinUpNextState
	}
}

// ProcessInputBit implements the disk.EventDelegate interface. The flux
// data path (address mark detection, CRC) hangs off this entry point; see
// the scan-record handling in RunForCycles for what happens while it is
// not attached to anything.
func (con *Controller) ProcessInputBit(value int, cyclesSinceIndexHole int) {
}

// RunForCycles advances the controller by the given number of input clock
// cycles.
func (con *Controller) RunForCycles(numberOfCycles int) {
	con.cycles += numberOfCycles

	for con.cycles > ClockDivider {
		con.cycles -= ClockDivider

		if con.status&StatusMotorOn == StatusMotorOn {
			con.drive.RunForCycles(1)
		}

		switch con.state {
		case stateWaiting:
			if con.hasCommand {
				con.hasCommand = false
				if con.command&0x80 == 0x80 {
					if con.command&0x40 == 0x40 {
						con.state = stateBeginType3
					} else {
						con.state = stateBeginType2
					}
				} else {
					con.state = stateBeginType1
				}
			}
			continue

		case stateWaitForSixIndexPulses:
			// deliberately empty; the transition is made by
			// ProcessIndexHole()
			continue

		case stateBeginType1:
			con.status |= StatusBusy | StatusMotorOn
			con.status &= ^(StatusDataRequest | StatusCRCError)
			con.setInterruptRequest(false)
			con.state = stateBeginType1PostSpin
			if con.command&0x08 == 0 {
				// the h bit is clear: wait for spin-up
				con.spinUpNextState = con.state
				con.indexPulseCount = 0
				con.state = stateWaitForSixIndexPulses
			}
			continue

		case stateBeginType1PostSpin:
			switch con.command >> 4 {
			case 0: // restore
				con.track = 0xff
				con.data = 0x00
			case 1: // seek
				// the data register holds the target track
			case 2, 3: // step
			case 4, 5: // step in
				con.stepIn = true
			case 6, 7: // step out
				con.stepIn = false
			}

			if con.command>>5 == 0 {
				con.state = stateTestTrack
			} else if con.command&0x10 == 0x10 {
				con.state = stateTestDirection
			} else {
				con.state = stateTestHead
			}
			continue

		case stateTestTrack:
			con.dataShift = con.data
			if con.track == con.dataShift {
				con.state = stateTestVerify
			} else {
				con.stepIn = con.dataShift > con.track
				con.state = stateTestDirection
			}
			continue

		case stateTestDirection:
			if con.stepIn {
				con.track++
			} else {
				con.track--
			}
			con.state = stateTestHead
			continue

		case stateTestHead:
			if con.drive.IsTrackZero() && !con.stepIn {
				con.track = 0
				con.state = stateTestVerify
			} else {
				if con.stepIn {
					con.drive.Step(1)
				} else {
					con.drive.Step(-1)
				}
				con.stepDelay = 0
				con.state = stateStepDelay
			}
			continue

		case stateStepDelay:
			if con.stepDelay == int(con.command&0x03) {
				if con.command>>5 != 0 {
					con.state = stateTestVerify
				} else {
					con.state = stateTestTrack
				}
			}
			con.stepDelay++
			continue

		case stateTestVerify:
			if con.command&0x04 == 0x04 {
				con.state = stateVerifyTrack
			} else {
				con.endCommand(0)
			}
			continue

		case stateVerifyTrack:
			// verification re-reads the ID field under the head, which
			// needs the flux data path; with no address marks decoded the
			// head position is taken on trust
			con.status |= StatusSpinUp
			con.endCommand(0)
			continue

		case stateBeginType2:
			con.status |= StatusBusy | StatusMotorOn
			con.status &= ^(StatusDataRequest | StatusLostData | StatusRecordNotFound | 0x60)
			con.setInterruptRequest(false)
			con.state = stateTestPause
			if con.command&0x08 == 0 {
				con.spinUpNextState = con.state
				con.indexPulseCount = 0
				con.state = stateWaitForSixIndexPulses
			}
			continue

		case stateTestPause:
			// TODO: 30ms head-settle pause when the E bit is set
			con.state = stateTestWrite
			continue

		case stateTestWrite:
			if con.command&0x20 == 0x20 {
				// write sector. respect write protection before anything
				// touches the surface
				if con.drive.IsWriteProtected() {
					con.endCommand(StatusWriteProtect)
					continue
				}
			}
			con.indexPulseCount = 0
			con.state = stateScanRecord
			continue

		case stateScanRecord:
			// the record search compares ID fields delivered by the flux
			// data path against the sector register. until that path is
			// attached no record can match, and the search ends the way the
			// real part's does: record-not-found after five revolutions
			if con.indexPulseCount >= scanRevolutions {
				con.endCommand(StatusRecordNotFound)
			}
			continue

		default:
			if !con.unhandledStateLogged {
				logger.Logf(logger.Allow, "wdc", "unhandled state (%d)", con.state)
				con.unhandledStateLogged = true
			}
			return
		}
	}
}

// endCommand completes the current command: any completion status bits are
// set, busy is cleared and the interrupt is raised.
func (con *Controller) endCommand(completionStatus uint8) {
	con.status |= completionStatus
	con.status &= ^StatusBusy
	con.setInterruptRequest(true)
	con.state = stateWaiting
}
