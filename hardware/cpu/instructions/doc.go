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

// Package instructions implements the decoding model shared by the processor
// emulations: a fixed-width instruction word is classified into exactly one
// Operation at decode time, while every operand field is extracted lazily by
// pure bit-manipulation accessors on the Instruction value.
//
// The encoding decoded here is the PowerPC one, which is straightforward
// enough that ahead-of-time decoding beyond the operation tag would buy
// nothing: the accessors are single shift-and-mask expressions.
package instructions
