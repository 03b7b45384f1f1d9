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

package disk

// Image supplies track content on demand given a physical address (head
// position and head number). Implementations are the file format readers,
// which are deliberately outside this package: the drive does not care
// whether a track was decoded from a byte stream with an IDAM index or
// synthesised from raw flux.
type Image interface {
	// HeadPositionCount returns the number of head positions the image
	// holds content for
	HeadPositionCount() int

	// HeadCount returns the number of sides
	HeadCount() int

	// TrackAt returns the track at the physical address. may return nil for
	// an unformatted track
	TrackAt(position int, head int) Track

	// IsReadOnly returns true if the image rejects writes
	IsReadOnly() bool
}

// Track is one circular stream of bits.
type Track interface {
	// BitCount returns the number of bits in one revolution
	BitCount() int

	// Bit returns the bit at index i, either 0 or 1
	Bit(i int) int
}
