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

package chipset

const numAudioChannels = 4

// AudioMixer receives the samples produced by the audio channels. A sample
// is one signed 8-bit value at the channel's current volume (0 to 64).
//
// Implementations can expect Mix() to be called at the rate programmed into
// the channel's period register. EndMixing() is called once, when the
// machine is done with the mixer.
type AudioMixer interface {
	Mix(channel int, sample int8, volume uint8)
	EndMixing() error
}

// audioChannel is one of the four sample-playback DMA channels. The
// location, length, period and volume fields hold the programmed register
// values; the working copies below them change as the channel plays.
type audioChannel struct {
	location uint32
	length   uint16
	period   uint16
	volume   uint16

	pointer       uint32
	lengthCounter uint16
	periodCounter uint16
	sample        uint16
	highByte      bool
	wantsWord     bool
}

// restart arms the channel from its programmed registers. Called on the
// DMA control edge that enables the channel.
func (ac *audioChannel) restart() {
	ac.pointer = ac.location
	ac.lengthCounter = ac.length
	ac.periodCounter = ac.period
	ac.highByte = true
	ac.wantsWord = true
}

// tick advances the playback period by one colour clock. When the period
// expires a byte of the current sample word goes to the mixer and, once
// both bytes are spent, the channel asks its DMA slot for the next word.
func (ac *audioChannel) tick(channel int, mixer AudioMixer) {
	if ac.periodCounter > 1 {
		ac.periodCounter--
		return
	}
	ac.periodCounter = ac.period

	var value int8
	if ac.highByte {
		value = int8(ac.sample >> 8)
	} else {
		value = int8(ac.sample)
		ac.wantsWord = true
	}
	ac.highByte = !ac.highByte

	if mixer != nil {
		mixer.Mix(channel, value, uint8(ac.volume&0x7f))
	}
}

// runAudioSlot performs channel ch's DMA fetch if it is waiting on one.
// When the length counter runs out the channel rewinds to its location
// register and raises its interrupt, which is how software chains sample
// buffers.
func (chip *Chipset) runAudioSlot(ch int) {
	ac := &chip.audio[ch]
	if !ac.wantsWord {
		return
	}
	ac.wantsWord = false

	ac.sample = *chip.ramWord(ac.pointer)
	ac.pointer += 2

	ac.lengthCounter--
	if ac.lengthCounter == 0 {
		ac.pointer = ac.location
		ac.lengthCounter = ac.length
		chip.RaiseInterrupt(InterruptAudio0 << ch)
	}
}

// audioWrite decodes a write to one of the audio channel registers.
func (chip *Chipset) audioWrite(address uint32, value uint16) {
	ac := &chip.audio[(address-regAudioBase)>>4]
	switch address & 0xe {
	case 0x0:
		ac.location = (ac.location & 0x0000ffff) | uint32(value&0x7)<<16
	case 0x2:
		ac.location = (ac.location & 0xffff0000) | uint32(value&0xfffe)
	case 0x4:
		ac.length = value
	case 0x6:
		ac.period = value
	case 0x8:
		ac.volume = value
	case 0xa:
		// direct sample load, for software-driven playback
		ac.sample = value
		ac.highByte = true
	}
}
