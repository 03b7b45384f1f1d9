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

// Package wdc emulates a WD1770-class floppy disk controller.
//
// The controller is a state machine advanced in fixed quanta of the input
// clock: one internal micro-step per eight input cycles, with the attached
// drive receiving one cycle of rotation per quantum while the motor is on.
// The ratio is a property of the device, not a configuration option.
//
// Register writes arrive asynchronously from the host; index-hole pulses
// arrive asynchronously from the drive; everything else happens inside
// RunForCycles().
//
// The command set is the standard one:
//
//	+------+----------+-------------------------+
//	!      !          !          BITS           !
//	! TYPE ! COMMAND  !  7  6  5  4  3  2  1  0 !
//	+------+----------+-------------------------+
//	!   1  ! Restore  !  0  0  0  0  h  v r1 r0 !
//	!   1  ! Seek     !  0  0  0  1  h  v r1 r0 !
//	!   1  ! Step     !  0  0  1  u  h  v r1 r0 !
//	!   1  ! Step-in  !  0  1  0  u  h  v r1 r0 !
//	!   1  ! Step-out !  0  1  1  u  h  v r1 r0 !
//	!   2  ! Rd sectr !  1  0  0  m  h  E  0  0 !
//	!   2  ! Wt sectr !  1  0  1  m  h  E  P a0 !
//	!   3  ! Rd addr  !  1  1  0  0  h  E  0  0 !
//	!   3  ! Rd track !  1  1  1  0  h  E  0  0 !
//	!   3  ! Wt track !  1  1  1  1  h  E  P  0 !
//	!   4  ! Forc int !  1  1  0  1 i3 i2 i1 i0 !
//	+------+----------+-------------------------+
package wdc
