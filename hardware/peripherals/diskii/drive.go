// This file is part of Gopher2Plus.
//
// Gopher2Plus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2Plus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2Plus.  If not, see <https://www.gnu.org/licenses/>.

package diskii

// Geometry of a 5.25" disk as seen by the controller.
const (
	// number of physical tracks on a disk surface
	NumTracks = 35

	// number of sectors in a track
	NumSectors = 16

	// number of payload bytes in a sector
	SectorLength = 256

	// number of encoded nibbles in a track
	TrackLength = 0x1a00
)

// MotorCoastCycles is how long a drive keeps spinning after the motor is
// commanded off. Real drives coast for about three quarters of a second
// after power is cut and software - including copy protection - relies on
// it.
const MotorCoastCycles = 750000

// Drive is the state of one disk drive. Two drives hang off each controller
// card.
//
// Track is in half-track units: sequential energisation of the four stepper
// phases moves the head one half-track at a time, and the surface being read
// is Track/2. The value is clamped so it never goes negative; the head
// banging against the track zero stop is not an error, just a noise the
// whole neighbourhood can hear.
type Drive struct {
	// stepper motor coil energisation
	Phases [4]bool

	// the most recently energised phase. this is history, not the currently
	// active set; it is what resolves the direction of the next step
	LastPhaseOn int

	// head position in half-tracks
	Track int

	// spindle motor. MotorOffCycle is the CycleClock deadline for a deferred
	// stop; zero means no stop is pending
	Motor         bool
	MotorOffCycle uint64

	// the two mode select flags. Q6 and Q7 together form a two bit mode
	// register: 00=read, 10=sense write protect, 01=write, 11=write load.
	// only read and the write protect sense are implemented
	Q6 bool
	Q7 bool

	// fixed per mounted image
	WriteProtect bool

	// read path. HeadPosition indexes the current track's nibble buffer,
	// ReadShiftRegister is the nibble being shifted out one bit per access,
	// BitPosition counts how many bits have been exposed so far
	HeadPosition      int
	BitPosition       int
	ReadShiftRegister uint8

	// encoded nibble stream, one buffer per physical track. nil when no
	// image is mounted
	tracks [NumTracks][]uint8

	mounted  bool
	filename string
}

// reset returns the mechanism and mode flags to their power-on state. a
// mounted image stays mounted.
func (drv *Drive) reset() {
	drv.Phases = [4]bool{}
	drv.LastPhaseOn = 0
	drv.Track = 0
	drv.Motor = false
	drv.MotorOffCycle = 0
	drv.Q6 = false
	drv.Q7 = false
	drv.WriteProtect = true
	drv.HeadPosition = 0
	drv.BitPosition = 0
	drv.ReadShiftRegister = 0
}

// step resolves the direction of head movement when a phase is energised.
// The previously energised phase tells us which neighbouring coil the rotor
// is currently held by:
//
//	phase turned on     last phase on    step
//	      0                   1           -1
//	      0                   3           +1
//	      1                   2           -1
//	      1                   0           +1
//	      2                   3           -1
//	      2                   1           +1
//	      3                   0           -1
//	      3                   2           +1
//
// Any other value of the last phase leaves the head where it is. Turning a
// phase off never steps. The track value is clamped at zero on every step.
func (drv Drive) step(phase int) Drive {
	switch drv.LastPhaseOn {
	case (phase + 1) & 0x03:
		drv.Track--
	case (phase + 3) & 0x03:
		drv.Track++
	}
	if drv.Track < 0 {
		drv.Track = 0
	}
	return drv
}

// trackData returns the nibble buffer under the head, or nil if no image is
// mounted. The physical stop at the spindle end of head travel is modelled
// by clamping to the innermost track.
func (drv *Drive) trackData() []uint8 {
	if !drv.mounted {
		return nil
	}
	idx := drv.Track / 2
	if idx >= NumTracks {
		idx = NumTracks - 1
	}
	return drv.tracks[idx]
}

// readNybble is the bit-serial read path. With the motor stopped (or no
// image mounted) the shift register is returned unchanged, over and over;
// the bus of a stopped drive is frozen.
//
// With the motor running: when the bit position is zero the next nibble is
// latched from under the head and the head advances, wrapping at the end of
// the track. Each call then exposes one more trailing bit of the latched
// nibble, most significant bit first, so that eight consecutive calls
// reproduce the full nibble and cost exactly one head advance.
func (drv *Drive) readNybble() uint8 {
	if !drv.Motor {
		return drv.ReadShiftRegister
	}

	data := drv.trackData()
	if data == nil {
		return drv.ReadShiftRegister
	}

	if drv.BitPosition == 0 {
		drv.ReadShiftRegister = data[drv.HeadPosition]

		// "spin" the virtual diskette a little more
		drv.HeadPosition++
		if drv.HeadPosition >= TrackLength {
			drv.HeadPosition = 0
		}
	}

	drv.BitPosition++
	shifted := drv.ReadShiftRegister >> (8 - drv.BitPosition)
	if drv.BitPosition == 8 {
		drv.BitPosition = 0
	}

	return shifted
}
