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

package disk_test

import (
	"testing"

	"github.com/wystan/goamiga/storage/disk"
	"github.com/wystan/goamiga/test"
)

type countingDelegate struct {
	indexHoles int
	bits       int
}

func (d *countingDelegate) ProcessIndexHole() {
	d.indexHoles++
}

func (d *countingDelegate) ProcessInputBit(value int, cyclesSinceIndexHole int) {
	d.bits++
}

func TestIndexHolePerRotation(t *testing.T) {
	// 1MHz input clock at 300rpm is 200000 cycles per rotation
	drv := disk.NewDrive(1000000, 300)
	del := &countingDelegate{}
	drv.SetEventDelegate(del)

	drv.RunForCycles(199999)
	test.Equate(t, del.indexHoles, 0)

	drv.RunForCycles(1)
	test.Equate(t, del.indexHoles, 1)

	drv.RunForCycles(200000 * 5)
	test.Equate(t, del.indexHoles, 6)
}

func TestStepClamping(t *testing.T) {
	drv := disk.NewDrive(1000000, 300)

	test.Equate(t, drv.IsTrackZero(), true)

	// stepping against the end stop stays put
	drv.Step(-1)
	test.Equate(t, drv.IsTrackZero(), true)
	test.Equate(t, drv.HeadPosition(), 0)

	drv.Step(1)
	drv.Step(1)
	test.Equate(t, drv.IsTrackZero(), false)
	test.Equate(t, drv.HeadPosition(), 2)

	drv.Step(-1)
	drv.Step(-1)
	test.Equate(t, drv.IsTrackZero(), true)

	for i := 0; i < disk.NumHeadPositions*2; i++ {
		drv.Step(1)
	}
	test.Equate(t, drv.HeadPosition(), disk.NumHeadPositions-1)
}
