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

// Package disk models the physical side of a floppy drive: a spinning
// platter with an index hole, a stepping head assembly and a track-zero
// sensor. Everything is driven by an input clock so that rotation stays in
// lockstep with the controller that owns the drive.
//
// The content of the disk arrives through the Image interface; the file
// format readers that provide Images live outside this package.
package disk

// EventDelegate receives the asynchronous signals a drive generates as the
// platter turns. The floppy controller implements this interface.
type EventDelegate interface {
	// ProcessInputBit delivers one flux transition from the read head
	ProcessInputBit(value int, cyclesSinceIndexHole int)

	// ProcessIndexHole announces that the index hole has passed the sensor
	ProcessIndexHole()
}

// NumHeadPositions is the highest head position the stepper will reach. The
// standard mechanism allows a few positions beyond the 80 formatted tracks.
const NumHeadPositions = 84

// Drive is a single physical drive.
type Drive struct {
	inputClockRate int
	rpm            int

	cyclesPerRotation int
	rotation          int

	headPosition int
	head         int

	delegate EventDelegate

	image Image
	track Track

	// bit delivery state, valid while a track is loaded
	cyclesPerBit int
	bitIndex     int
	bitCycles    int
}

// NewDrive is the preferred method of initialisation for the Drive type.
// The input clock rate is in Hz and is supplied by the owning controller;
// rpm is the rotation speed of the platter.
func NewDrive(inputClockRate int, rpm int) *Drive {
	return &Drive{
		inputClockRate:    inputClockRate,
		rpm:               rpm,
		cyclesPerRotation: inputClockRate * 60 / rpm,
	}
}

// SetEventDelegate attaches the receiver for index-hole and input-bit
// events.
func (drv *Drive) SetEventDelegate(delegate EventDelegate) {
	drv.delegate = delegate
}

// Insert loads an image into the drive. A nil image ejects.
func (drv *Drive) Insert(image Image) {
	drv.image = image
	drv.loadTrack()
}

// IsInserted returns true if the drive contains an image.
func (drv *Drive) IsInserted() bool {
	return drv.image != nil
}

// IsWriteProtected returns true if the inserted image rejects writes. An
// empty drive is not write protected.
func (drv *Drive) IsWriteProtected() bool {
	return drv.image != nil && drv.image.IsReadOnly()
}

// Step moves the head assembly one position. Direction is +1 towards the
// centre of the disk (higher tracks) and -1 towards the edge (track zero).
// The mechanism clamps at both ends; stepping against the end stop is not
// an error, the head simply stays put.
func (drv *Drive) Step(direction int) {
	p := drv.headPosition + direction
	if p < 0 {
		p = 0
	}
	if p >= NumHeadPositions {
		p = NumHeadPositions - 1
	}
	if p != drv.headPosition {
		drv.headPosition = p
		drv.loadTrack()
	}
}

// IsTrackZero returns the state of the track-zero sensor.
func (drv *Drive) IsTrackZero() bool {
	return drv.headPosition == 0
}

// HeadPosition returns the current position of the head assembly.
func (drv *Drive) HeadPosition() int {
	return drv.headPosition
}

// RunForCycles rotates the platter for the given number of input clock
// cycles, delivering index-hole and input-bit events to the delegate as
// they occur.
func (drv *Drive) RunForCycles(cycles int) {
	for i := 0; i < cycles; i++ {
		drv.rotation++
		if drv.rotation >= drv.cyclesPerRotation {
			drv.rotation = 0
			drv.bitIndex = 0
			drv.bitCycles = 0
			if drv.delegate != nil {
				drv.delegate.ProcessIndexHole()
			}
			continue
		}

		if drv.track == nil || drv.cyclesPerBit == 0 {
			continue
		}

		drv.bitCycles++
		if drv.bitCycles >= drv.cyclesPerBit && drv.bitIndex < drv.track.BitCount() {
			drv.bitCycles = 0
			if drv.delegate != nil {
				drv.delegate.ProcessInputBit(drv.track.Bit(drv.bitIndex), drv.rotation)
			}
			drv.bitIndex++
		}
	}
}

// loadTrack refreshes the track under the head. called whenever the head
// moves or new media arrives.
func (drv *Drive) loadTrack() {
	drv.track = nil
	drv.cyclesPerBit = 0
	drv.bitIndex = 0
	drv.bitCycles = 0

	if drv.image == nil {
		return
	}
	if drv.headPosition >= drv.image.HeadPositionCount() || drv.head >= drv.image.HeadCount() {
		return
	}

	drv.track = drv.image.TrackAt(drv.headPosition, drv.head)
	if drv.track != nil && drv.track.BitCount() > 0 {
		drv.cyclesPerBit = drv.cyclesPerRotation / drv.track.BitCount()
	}
}
