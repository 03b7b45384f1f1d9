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

// Package performance measures how quickly the emulation runs against the
// real machine, optionally capturing CPU and memory profiles while it does.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/wystan/goamiga/curated"
	"github.com/wystan/goamiga/hardware"
	"github.com/wystan/goamiga/hardware/clocks"
)

// fields per second of the PAL machine.
const palFieldsPerSecond = 50

// how much emulated time to run between wall-clock checks.
const sliceCycles = clocks.PALLineLength * 2 * 16

// Check runs the machine for the given wall-clock duration and reports the
// achieved frame rate against the real machine's.
func Check(output io.Writer, profile Profile, amiga *hardware.Amiga, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	runner := func() error {
		startFrames := amiga.Frames()
		startTime := time.Now()
		deadline := startTime.Add(dur)

		for time.Now().Before(deadline) {
			amiga.RunForCycles(sliceCycles)
		}

		elapsed := time.Since(startTime).Seconds()
		frames := amiga.Frames() - startFrames

		fps := float64(frames) / elapsed
		accuracy := 100 * fps / palFieldsPerSecond
		output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2fs) %.1f%%\n", fps, frames, elapsed, accuracy)))

		return nil
	}

	return RunProfiler(profile, "performance", runner)
}
