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

package memory

// PackBigEndian16 packs a byte stream into a word store, big-endian. dst
// must be at least len(src)/2 words long.
func PackBigEndian16(src []byte, dst []uint16) {
	for i := 0; i < len(src)/2; i++ {
		dst[i] = uint16(src[i*2])<<8 | uint16(src[i*2+1])
	}
}
