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

package instructions_test

import (
	"testing"

	"github.com/wystan/goamiga/hardware/cpu/instructions"
	"github.com/wystan/goamiga/test"
)

func TestClassification(t *testing.T) {
	// addi r3, r0, 1
	in := instructions.Decode(0x38600001)
	test.Equate(t, in.Operation == instructions.Addi, true)
	test.Equate(t, in.Supervisor, false)
	test.Equate(t, in.RD(), 3)
	test.Equate(t, in.RA(), 0)
	test.Equate(t, int(in.SImm()), 1)

	// add r3, r4, r5
	in = instructions.Decode(0x7c642a14)
	test.Equate(t, in.Operation == instructions.Addx, true)
	test.Equate(t, in.RD(), 3)
	test.Equate(t, in.RA(), 4)
	test.Equate(t, in.RB(), 5)
	test.Equate(t, in.RC(), 0)
	test.Equate(t, in.OE(), 0)

	// lwz r4, 8(r1)
	in = instructions.Decode(0x80810008)
	test.Equate(t, in.Operation == instructions.Lwz, true)
	test.Equate(t, in.RD(), 4)
	test.Equate(t, in.RA(), 1)
	test.Equate(t, int(in.D()), 8)

	// rlwinm r3, r4, 5, 0, 31
	in = instructions.Decode(0x5483283e)
	test.Equate(t, in.Operation == instructions.Rlwinmx, true)
	test.Equate(t, in.RS(), 4)
	test.Equate(t, in.RA(), 3)
	test.Equate(t, in.SH(), 5)
	test.Equate(t, in.MB(), 0)
	test.Equate(t, in.ME(), 31)
}

func TestModifierBitsShareOneTag(t *testing.T) {
	// add, add., addo and addo. must classify identically; the modifier
	// bits remain visible through the accessors
	add := instructions.Decode(0x7c642a14)
	addDot := instructions.Decode(0x7c642a15)
	addo := instructions.Decode(0x7c642e14)
	addoDot := instructions.Decode(0x7c642e15)

	test.Equate(t, add.Operation == instructions.Addx, true)
	test.Equate(t, addDot.Operation == instructions.Addx, true)
	test.Equate(t, addo.Operation == instructions.Addx, true)
	test.Equate(t, addoDot.Operation == instructions.Addx, true)

	test.Equate(t, add.RC() == 0, true)
	test.Equate(t, addDot.RC() != 0, true)
	test.Equate(t, addo.OE() != 0, true)
	test.Equate(t, addoDot.RC() != 0 && addoDot.OE() != 0, true)

	// b, bl, ba, bla likewise
	b := instructions.Decode(0x48000100)
	bl := instructions.Decode(0x48000101)
	ba := instructions.Decode(0x48000102)

	test.Equate(t, b.Operation == instructions.Bx, true)
	test.Equate(t, bl.Operation == instructions.Bx, true)
	test.Equate(t, ba.Operation == instructions.Bx, true)
	test.Equate(t, b.LK(), 0)
	test.Equate(t, bl.LK() != 0, true)
	test.Equate(t, ba.AA() != 0, true)
	test.Equate(t, int(b.LI()), 0x100)
}

func TestBranchConditional(t *testing.T) {
	// bne cr0, +8
	in := instructions.Decode(0x40820008)
	test.Equate(t, in.Operation == instructions.Bcx, true)
	test.Equate(t, in.BranchOptions() == instructions.Clear, true)
	test.Equate(t, in.BI(), 2)
	test.Equate(t, int(in.BD()), 8)

	// blr
	in = instructions.Decode(0x4e800020)
	test.Equate(t, in.Operation == instructions.Bclrx, true)
	test.Equate(t, in.BranchOptions() == instructions.Always, true)
	test.Equate(t, in.LK(), 0)
}

func TestSupervisorFlag(t *testing.T) {
	// mfspr r0, lr - user level
	in := instructions.Decode(0x7c0802a6)
	test.Equate(t, in.Operation == instructions.Mfspr, true)
	test.Equate(t, in.Supervisor, false)
	test.Equate(t, in.SPR(), 8)

	// mtmsr r0 - supervisor level
	in = instructions.Decode(0x7c000124)
	test.Equate(t, in.Operation == instructions.Mtmsr, true)
	test.Equate(t, in.Supervisor, true)

	// rfi - supervisor level, group 19
	in = instructions.Decode(0x4c000064)
	test.Equate(t, in.Operation == instructions.Rfi, true)
	test.Equate(t, in.Supervisor, true)
}

func TestUndefinedEncodings(t *testing.T) {
	// primary opcode 0 is not allocated
	in := instructions.Decode(0x00000000)
	test.Equate(t, in.Operation == instructions.Undefined, true)

	// group 31 with an unallocated XO field
	in = instructions.Decode(0x7c0007fe)
	test.Equate(t, in.Operation == instructions.Undefined, true)
}

func TestDecodeIsPure(t *testing.T) {
	// decoding the same word twice yields identical classification and
	// identical accessor outputs
	words := []uint32{0x38600001, 0x7c642a15, 0x40820008, 0x00000000, 0x7c0802a6}

	for _, w := range words {
		a := instructions.Decode(w)
		b := instructions.Decode(w)
		test.Equate(t, a.Operation == b.Operation, true)
		test.Equate(t, a.Supervisor == b.Supervisor, true)
		test.Equate(t, a.RA() == b.RA(), true)
		test.Equate(t, a.RD() == b.RD(), true)
		test.Equate(t, a.SImm() == b.SImm(), true)
		test.Equate(t, a.LI() == b.LI(), true)
		test.Equate(t, a.RC() == b.RC(), true)

		// and a third call to any accessor is no different
		test.Equate(t, a.RA() == a.RA(), true)
	}
}
