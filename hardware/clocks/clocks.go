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

// Package clocks defines the master clock rates of the emulated machine and
// the HalfCycles type used to measure time against them.
//
// The Amiga master clock is twice the NTSC colour subcarrier (or the PAL
// equivalent). One colour clock is two master clock cycles; one 68000 bus
// cycle is four. Durations are counted in half-cycles throughout so that
// both CPU and chipset events can be expressed without rounding: a colour
// clock is four half-cycles, a bus cycle eight.
package clocks

// Master clock rates in Hz.
//
// NTSC is 2 x 3.579545MHz. PAL is 7.09379MHz with 227 colour clocks per line.
const (
	PAL  = 7093790
	NTSC = 7159090
)

// Colour clocks per line and lines per field. Both machines share a line
// length; the fields differ in height.
const (
	PALLineLength  = 227
	PALFieldLines  = 312
	NTSCFieldLines = 262
)

// HalfCycles is a duration or instant measured in half-cycles of the master
// clock. Two half-cycles are one master clock cycle.
type HalfCycles int

// Cycles converts a whole number of master clock cycles to HalfCycles.
func Cycles(n int) HalfCycles {
	return HalfCycles(n * 2)
}

// AsCycles returns the duration in whole master clock cycles, rounding down.
func (h HalfCycles) AsCycles() int {
	return int(h) / 2
}
