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

// Decode classifies a raw 32-bit instruction word.
//
// Classification uses the primary opcode (bits 26-31) and, for the two
// extended groups, the XO field (bits 1-10). An encoding that matches no
// known pattern yields the Undefined operation; this is not an error - the
// execution stage decides whether an undefined word traps.
func Decode(opcode uint32) Instruction {
	op, supervisor := classify(opcode)
	return Instruction{
		Operation:  op,
		Supervisor: supervisor,
		Opcode:     opcode,
	}
}

func classify(opcode uint32) (Operation, bool) {
	switch opcode >> 26 {
	case 3:
		return Twi, false
	case 7:
		return Mulli, false
	case 8:
		return Subfic, false
	case 10:
		return Cmpli, false
	case 11:
		return Cmpi, false
	case 12:
		return Addic, false
	case 13:
		return Addic_, false
	case 14:
		return Addi, false
	case 15:
		return Addis, false
	case 16:
		return Bcx, false
	case 17:
		return Sc, false
	case 18:
		return Bx, false
	case 19:
		return classify19(opcode)
	case 20:
		return Rlwimix, false
	case 21:
		return Rlwinmx, false
	case 23:
		return Rlwnmx, false
	case 24:
		return Ori, false
	case 25:
		return Oris, false
	case 26:
		return Xori, false
	case 27:
		return Xoris, false
	case 28:
		return Andi_, false
	case 29:
		return Andis_, false
	case 31:
		return classify31(opcode)
	case 32:
		return Lwz, false
	case 33:
		return Lwzu, false
	case 34:
		return Lbz, false
	case 35:
		return Lbzu, false
	case 36:
		return Stw, false
	case 37:
		return Stwu, false
	case 38:
		return Stb, false
	case 39:
		return Stbu, false
	case 40:
		return Lhz, false
	case 41:
		return Lhzu, false
	case 42:
		return Lha, false
	case 43:
		return Lhau, false
	case 44:
		return Sth, false
	case 45:
		return Sthu, false
	}

	return Undefined, false
}

// extended group 19: branches to registers and condition register logic.
func classify19(opcode uint32) (Operation, bool) {
	switch (opcode >> 1) & 0x3ff {
	case 0:
		return Mcrf, false
	case 16:
		return Bclrx, false
	case 33:
		return Crnor, false
	case 50:
		return Rfi, true
	case 129:
		return Crandc, false
	case 150:
		return Isync, false
	case 193:
		return Crxor, false
	case 225:
		return Crnand, false
	case 257:
		return Crand, false
	case 289:
		return Creqv, false
	case 417:
		return Crorc, false
	case 449:
		return Cror, false
	case 528:
		return Bcctrx, false
	}

	return Undefined, false
}

// extended group 31: register-register arithmetic, logic and indexed
// loads/stores.
func classify31(opcode uint32) (Operation, bool) {
	xo := (opcode >> 1) & 0x3ff

	switch xo {
	case 0:
		return Cmp, false
	case 4:
		return Tw, false
	case 11:
		return Mulhwux, false
	case 19:
		return Mfcr, false
	case 23:
		return Lwzx, false
	case 24:
		return Slwx, false
	case 26:
		return Cntlzwx, false
	case 28:
		return Andx, false
	case 32:
		return Cmpl, false
	case 55:
		return Lwzux, false
	case 60:
		return Andcx, false
	case 75:
		return Mulhwx, false
	case 83:
		return Mfmsr, true
	case 87:
		return Lbzx, false
	case 119:
		return Lbzux, false
	case 124:
		return Norx, false
	case 144:
		return Mtcrf, false
	case 146:
		return Mtmsr, true
	case 151:
		return Stwx, false
	case 183:
		return Stwux, false
	case 215:
		return Stbx, false
	case 247:
		return Stbux, false
	case 279:
		return Lhzx, false
	case 284:
		return Eqvx, false
	case 306:
		return Tlbie, true
	case 311:
		return Lhzux, false
	case 316:
		return Xorx, false
	case 339:
		return Mfspr, false
	case 343:
		return Lhax, false
	case 375:
		return Lhaux, false
	case 407:
		return Sthx, false
	case 412:
		return Orcx, false
	case 439:
		return Sthux, false
	case 444:
		return Orx, false
	case 467:
		return Mtspr, false
	case 470:
		return Dcbi, true
	case 476:
		return Nandx, false
	case 536:
		return Srwx, false
	case 598:
		return Sync, false
	case 792:
		return Srawx, false
	case 824:
		return Srawix, false
	case 922:
		return Extshx, false
	case 954:
		return Extsbx, false
	}

	// XO-form arithmetic carries the overflow-enable modifier in bit 9 of
	// the XO field; strip it so that eg. addo and add classify identically.
	// Only operations that genuinely have an OE form are listed here - the
	// bit is significant for everything else in the group.
	switch xo & 0x1ff {
	case 8:
		return Subfcx, false
	case 10:
		return Addcx, false
	case 40:
		return Subfx, false
	case 104:
		return Negx, false
	case 136:
		return Subfex, false
	case 138:
		return Addex, false
	case 200:
		return Subfzex, false
	case 202:
		return Addzex, false
	case 232:
		return Subfmex, false
	case 234:
		return Addmex, false
	case 235:
		return Mullwx, false
	case 266:
		return Addx, false
	case 459:
		return Divwux, false
	case 491:
		return Divwx, false
	}

	return Undefined, false
}
