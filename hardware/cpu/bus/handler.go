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

package bus

import (
	"github.com/wystan/goamiga/hardware/clocks"
)

// Handler is the contract between a processor core and the machine it is
// plugged into. The core decomposes execution into microcycles and calls
// PerformBusOperation() for each one, in order.
//
// The handler must inspect the Operation bit set to decide whether an
// address and/or data value is exposed; dispatch the access to memory or to
// a peripheral (mutating the Data cell in place for reads); and return any
// additional delay incurred by the access, for example while waiting for a
// free slot on shared chip memory. The core adds the returned delay to its
// own timebase before issuing the next cycle.
//
// Accesses that no device claims must follow open-bus behaviour: reads
// return OpenBus, writes are dropped. They are not errors.
type Handler interface {
	PerformBusOperation(cycle *Microcycle) clocks.HalfCycles
}
