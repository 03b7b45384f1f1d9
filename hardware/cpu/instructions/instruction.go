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

package instructions

// BranchOption is the decoded BO field of a conditional branch, with the
// branch-prediction hint severed.
//
// Naming convention: a Dec prefix means the CTR is decremented; NotZero and
// Zero test the decremented CTR; Set and Clear test the condition bit
// selected by the BI field.
type BranchOption uint32

// List of BranchOption values. There is some redundancy in the hardware
// encoding; these are the canonical forms.
const (
	DecNotZeroAndClear BranchOption = 0b0000
	DecZeroAndClear    BranchOption = 0b0001
	Clear              BranchOption = 0b0010
	DecNotZeroAndSet   BranchOption = 0b0100
	DecZeroAndSet      BranchOption = 0b0101
	Set                BranchOption = 0b0110
	DecNotZero         BranchOption = 0b1000
	DecZero            BranchOption = 0b1001
	Always             BranchOption = 0b1010
)

// Instruction holds one decoded machine word.
//
// Only the Operation is classified ahead of time, at Decode(); every operand
// field is extracted on demand from the raw word by the accessor methods
// below. The accessors are pure functions of Opcode, with no hidden state
// and no memoisation, so calling one twice always yields the same answer.
//
// Instruction is a value type. It is constructed per fetched word, consumed
// by the execution stage and discarded.
type Instruction struct {
	Operation  Operation
	Supervisor bool
	Opcode     uint32
}

// Field naming below is a compromise between the Motorola and IBM manuals.
// Synonymous fields (RD/RS, D/SImm) have their own entry points so that the
// intent is recorded here rather than at every use site.

// UImm is the immediate field interpreted as an unsigned 16-bit integer.
func (in Instruction) UImm() uint16 { return uint16(in.Opcode & 0xffff) }

// SImm is the immediate field interpreted as a signed 16-bit integer.
func (in Instruction) SImm() int16 { return int16(in.Opcode & 0xffff) }

// D is the displacement field of a load or store; identical bits to SImm.
func (in Instruction) D() int16 { return int16(in.Opcode & 0xffff) }

// TO specifies the conditions on which to trap.
func (in Instruction) TO() uint32 { return (in.Opcode >> 21) & 0x1f }

// RA is register source A or destination.
func (in Instruction) RA() uint32 { return (in.Opcode >> 16) & 0x1f }

// RB is register source B.
func (in Instruction) RB() uint32 { return (in.Opcode >> 11) & 0x1f }

// RD is the register destination.
func (in Instruction) RD() uint32 { return (in.Opcode >> 21) & 0x1f }

// RS is the register source; same bits as RD.
func (in Instruction) RS() uint32 { return (in.Opcode >> 21) & 0x1f }

// BO is the branch options field as encoded, ie. options plus the
// branch-prediction hint bit.
func (in Instruction) BO() uint32 { return (in.Opcode >> 21) & 0x1f }

// BranchOptions is just the branch options, hint severed.
func (in Instruction) BranchOptions() BranchOption {
	return BranchOption((in.Opcode >> 22) & 0xf)
}

// BranchPredictionHint is 0 to expect the branch untaken, non-0 taken.
func (in Instruction) BranchPredictionHint() uint32 { return in.Opcode & 0x200000 }

// BI is the condition register bit tested by a conditional branch.
func (in Instruction) BI() uint32 { return (in.Opcode >> 16) & 0x1f }

// BD is the branch displacement, already sign extended.
func (in Instruction) BD() int16 { return int16(in.Opcode & 0xfffc) }

// MB is the first 1 bit of the mask for rotate operations.
func (in Instruction) MB() uint32 { return (in.Opcode >> 6) & 0x1f }

// ME is the last 1 bit of the mask for rotate operations.
func (in Instruction) ME() uint32 { return (in.Opcode >> 1) & 0x1f }

// CRBA is condition register source bit A.
func (in Instruction) CRBA() uint32 { return (in.Opcode >> 16) & 0x1f }

// CRBB is condition register source bit B.
func (in Instruction) CRBB() uint32 { return (in.Opcode >> 11) & 0x1f }

// CRBD is the condition register destination bit.
func (in Instruction) CRBD() uint32 { return (in.Opcode >> 21) & 0x1f }

// CRFD is the condition register destination field.
func (in Instruction) CRFD() uint32 { return (in.Opcode >> 23) & 0x07 }

// CRFS is the condition register source field.
func (in Instruction) CRFS() uint32 { return (in.Opcode >> 18) & 0x07 }

// CRM is the mask identifying fields to be updated by mtcrf.
func (in Instruction) CRM() uint32 { return (in.Opcode >> 12) & 0xff }

// NB is the number of bytes to move in an immediate string load or store.
func (in Instruction) NB() uint32 { return (in.Opcode >> 11) & 0x1f }

// SH is a shift amount.
func (in Instruction) SH() uint32 { return (in.Opcode >> 11) & 0x1f }

// SR selects one of the 16 segment registers.
func (in Instruction) SR() uint32 { return (in.Opcode >> 16) & 0xf }

// SPR is the special purpose register field of mfspr/mtspr, with its two
// halves swapped back into numerical order.
func (in Instruction) SPR() uint32 {
	return ((in.Opcode >> 16) & 0x1f) | ((in.Opcode >> 6) & 0x3e0)
}

// LI is the 24-bit branch offset, sign extended and shifted into place.
func (in Instruction) LI() int32 {
	value := in.Opcode & 0x03fffffc
	if in.Opcode&0x02000000 != 0 {
		value |= 0xfc000000
	}
	return int32(value)
}

// AA is the absolute address bit; 0 or non-0.
func (in Instruction) AA() uint32 { return in.Opcode & 0x02 }

// LK is the link bit; 0 or non-0.
func (in Instruction) LK() uint32 { return in.Opcode & 0x01 }

// RC is the record bit; 0 or non-0.
func (in Instruction) RC() uint32 { return in.Opcode & 0x01 }

// OE enables setting of OV and SO in the XER; 0 or non-0.
func (in Instruction) OE() uint32 { return in.Opcode & 0x400 }
