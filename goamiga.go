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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/wystan/goamiga/digest"
	"github.com/wystan/goamiga/hardware"
	"github.com/wystan/goamiga/hardware/clocks"
	"github.com/wystan/goamiga/logger"
	"github.com/wystan/goamiga/memgraph"
	"github.com/wystan/goamiga/modalflag"
	"github.com/wystan/goamiga/paths"
	"github.com/wystan/goamiga/performance"
	"github.com/wystan/goamiga/performance/limiter"
	"github.com/wystan/goamiga/rom"
	"github.com/wystan/goamiga/statsview"
	"github.com/wystan/goamiga/version"
	"github.com/wystan/goamiga/wavwriter"
)

// the number of emulated cycles between checks of the interrupt channel. a
// sixteenth of a PAL field is short enough that ctrl-c feels immediate.
const cyclesPerSlice = clocks.PALLineLength * 2 * (clocks.PALFieldLines / 16)

// field rate of the PAL machine.
const palFieldsPerSecond = 50

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		ver, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// newMachine gathers the construction steps shared by the run and
// performance modes.
func newMachine(romDir string, wav string) (*hardware.Amiga, func() error, error) {
	amiga, err := hardware.NewAmiga(rom.FileFetcher(romDir))
	if err != nil {
		return nil, nil, err
	}

	// ending the mixer is a no-op unless a wav file was asked for
	endMixing := func() error { return nil }

	if wav != "" {
		aw, err := wavwriter.New(wav)
		if err != nil {
			return nil, nil, err
		}
		amiga.SetAudioMixer(aw)
		endMixing = aw.EndMixing
	}

	return amiga, endMixing, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	defRomDir, err := paths.ResourcePath("roms", "")
	if err != nil {
		return err
	}

	romDir := md.AddString("roms", defRomDir, "directory to search for Kickstart images")
	frames := md.AddInt("frames", 0, "number of frames to run (0 = run until interrupted)")
	wav := md.AddString("wav", "", "record audio to wav file")
	audioHash := md.AddBool("audiohash", false, "print a hash of the audio stream on exit")
	graph := md.AddString("graph", "", "write machine state graph (dot format) on exit")
	fpsCap := md.AddBool("fpscap", true, "cap field rate to the real machine's")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not supported in this build")
		}
	}

	if *audioHash && *wav != "" {
		return fmt.Errorf("the audiohash and wav options cannot be combined")
	}

	amiga, endMixing, err := newMachine(*romDir, *wav)
	if err != nil {
		return err
	}

	var hash *digest.Audio
	if *audioHash {
		hash = digest.NewAudio()
		amiga.SetAudioMixer(hash)
	}

	var fps *limiter.FpsLimiter
	if *fpsCap {
		fps = limiter.NewFPSLimiter(palFieldsPerSecond)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	running := true
	lastFrame := amiga.Frames()
	for running {
		select {
		case <-intChan:
			fmt.Println("\r")
			running = false

		default:
			amiga.RunForCycles(cyclesPerSlice)
			if fps != nil && amiga.Frames() != lastFrame {
				lastFrame = amiga.Frames()
				fps.Wait()
			}
			if *frames > 0 && amiga.Frames() >= *frames {
				running = false
			}
		}
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := memgraph.Write(f, amiga.Chipset); err != nil {
			return err
		}
	}

	if hash != nil {
		if err := hash.EndMixing(); err != nil {
			return err
		}
		fmt.Printf("audio: %s\n", hash.Hash())
	}

	return endMixing()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	defRomDir, err := paths.ResourcePath("roms", "")
	if err != nil {
		return err
	}

	romDir := md.AddString("roms", defRomDir, "directory to search for Kickstart images")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "perform cpu and memory profiling")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	amiga, _, err := newMachine(*romDir, "")
	if err != nil {
		return err
	}

	prf := performance.ProfileNone
	if *profile {
		prf = performance.ProfileCPU | performance.ProfileMem
	}

	return performance.Check(md.Output, prf, amiga, *duration)
}
