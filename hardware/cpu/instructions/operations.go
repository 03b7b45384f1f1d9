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

// Operation classifies a decoded instruction word. The set is closed; the
// execution stage dispatches over it with a single switch.
//
// Variant forms that share an encoding pattern and differ only by a modifier
// bit are represented by one Operation and the modifier accessors on the
// Instruction type. The convention follows the architecture manuals: a
// trailing x means the mnemonic family includes record and/or
// overflow-enable forms (add, add., addo, addo. are all Addx; b, bl, ba,
// bla are all Bx). Without the collapse the table below would need four
// entries for almost every arithmetic operation.
type Operation uint8

// List of Operation values. Undefined is deliberately the zero value: a
// zeroed Instruction decodes to nothing.
const (
	Undefined Operation = iota

	// arithmetic
	Addx
	Addcx
	Addex
	Addi
	Addic
	Addic_
	Addis
	Addmex
	Addzex
	Divwx
	Divwux
	Mulhwx
	Mulhwux
	Mulli
	Mullwx
	Negx
	Subfx
	Subfcx
	Subfex
	Subfic
	Subfmex
	Subfzex

	// logical
	Andx
	Andcx
	Andi_
	Andis_
	Cntlzwx
	Eqvx
	Extsbx
	Extshx
	Nandx
	Norx
	Orx
	Orcx
	Ori
	Oris
	Xorx
	Xori
	Xoris

	// comparison
	Cmp
	Cmpi
	Cmpl
	Cmpli

	// branch
	Bx
	Bcx
	Bcctrx
	Bclrx

	// condition register
	Crand
	Crandc
	Creqv
	Crnand
	Crnor
	Cror
	Crorc
	Crxor
	Mcrf

	// rotate and shift
	Rlwimix
	Rlwinmx
	Rlwnmx
	Slwx
	Srawx
	Srawix
	Srwx

	// load and store
	Lbz
	Lbzu
	Lbzux
	Lbzx
	Lha
	Lhau
	Lhaux
	Lhax
	Lhz
	Lhzu
	Lhzux
	Lhzx
	Lwz
	Lwzu
	Lwzux
	Lwzx
	Stb
	Stbu
	Stbux
	Stbx
	Sth
	Sthu
	Sthux
	Sthx
	Stw
	Stwu
	Stwux
	Stwx

	// system
	Isync
	Mfcr
	Mfspr
	Mtcrf
	Mtspr
	Sc
	Sync
	Tw
	Twi

	// supervisor level
	Dcbi
	Mfmsr
	Mtmsr
	Rfi
	Tlbie
)
