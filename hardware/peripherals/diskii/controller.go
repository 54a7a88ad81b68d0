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

import (
	"github.com/gopher2plus/gopher2plus/curated"
	"github.com/gopher2plus/gopher2plus/diskloader"
	"github.com/gopher2plus/gopher2plus/hardware/memory"
	"github.com/gopher2plus/gopher2plus/hardware/memory/addresses"
	"github.com/gopher2plus/gopher2plus/logger"
)

// Clock is the view of the machine's cycle clock required by the controller.
// The cycle count is the controller's only clock source; all motor and
// shift timing is expressed in it.
type Clock interface {
	Count() uint64
}

// The sixteen device registers, as offsets from the slot IO base.
const (
	Phase0Off = uint16(iota)
	Phase0On
	Phase1Off
	Phase1On
	Phase2Off
	Phase2On
	Phase3Off
	Phase3On
	MotorOff
	MotorOn
	Drive1Select
	Drive2Select
	Q6Low
	Q6High
	Q7Low
	Q7High
)

// NumDrives per controller card.
const NumDrives = 2

// Controller is a Disk II controller card: two drives and a drive select
// latch. It implements the peripherals.Card interface.
//
// The card has no enumerated state machine. The sixteen registers each
// toggle one bit of drive state and the interesting behaviour falls out of
// the combinations, exactly as it does from the LS259 latch on the real
// card.
type Controller struct {
	clk  Clock
	slot int

	drives      [NumDrives]Drive
	driveSelect int
}

// transition is one register's effect on the selected drive. Transitions are
// pure: they take a drive state and the current cycle count and return the
// new drive state, which makes each register testable in isolation. The two
// drive select registers are the only ones that operate on the controller
// rather than a drive and are handled separately.
type transition func(drv Drive, cyc uint64) Drive

var transitions = [16]transition{
	phase0Off, phase0On,
	phase1Off, phase1On,
	phase2Off, phase2On,
	phase3Off, phase3On,
	motorOff, motorOn,
	nil, nil, // drive select, handled by the controller
	q6Low, q6High,
	q7Low, q7High,
}

func phase0Off(drv Drive, _ uint64) Drive {
	drv.Phases[0] = false
	return drv
}

func phase0On(drv Drive, _ uint64) Drive {
	drv = drv.step(0)
	drv.Phases[0] = true
	drv.LastPhaseOn = 0
	return drv
}

func phase1Off(drv Drive, _ uint64) Drive {
	drv.Phases[1] = false
	return drv
}

func phase1On(drv Drive, _ uint64) Drive {
	drv = drv.step(1)
	drv.Phases[1] = true
	drv.LastPhaseOn = 1
	return drv
}

func phase2Off(drv Drive, _ uint64) Drive {
	drv.Phases[2] = false
	return drv
}

func phase2On(drv Drive, _ uint64) Drive {
	drv = drv.step(2)
	drv.Phases[2] = true
	drv.LastPhaseOn = 2
	return drv
}

func phase3Off(drv Drive, _ uint64) Drive {
	drv.Phases[3] = false
	return drv
}

func phase3On(drv Drive, _ uint64) Drive {
	drv = drv.step(3)
	drv.Phases[3] = true
	drv.LastPhaseOn = 3
	return drv
}

// turning the motor off doesn't stop the spindle. the stop is deferred by
// MotorCoastCycles and cancelled entirely if the motor is turned back on in
// the meantime. turning the motor off when it is already off does nothing.
func motorOff(drv Drive, cyc uint64) Drive {
	if drv.Motor {
		drv.MotorOffCycle = cyc + MotorCoastCycles
	}
	return drv
}

func motorOn(drv Drive, _ uint64) Drive {
	drv.Motor = true
	drv.MotorOffCycle = 0
	return drv
}

func q6Low(drv Drive, _ uint64) Drive {
	drv.Q6 = false
	return drv
}

func q6High(drv Drive, _ uint64) Drive {
	drv.Q6 = true
	return drv
}

func q7Low(drv Drive, _ uint64) Drive {
	drv.Q7 = false
	return drv
}

func q7High(drv Drive, _ uint64) Drive {
	drv.Q7 = true
	return drv
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(clk Clock) *Controller {
	ctl := &Controller{clk: clk}
	ctl.Reset()
	return ctl
}

// Install the controller in the numbered slot: the sixteen device registers
// are registered with the IO page and the boot firmware is copied into the
// slot's ROM space.
func (ctl *Controller) Install(slot int, mem *memory.Memory) error {
	ctl.slot = slot

	base := addresses.SlotIO(slot)
	for offset := uint16(0); offset < 16; offset++ {
		if err := mem.RegisterRead(base+offset, ctl.busRead); err != nil {
			return curated.Errorf("diskii: %v", err)
		}
		if err := mem.RegisterWrite(base+offset, ctl.busWrite); err != nil {
			return curated.Errorf("diskii: %v", err)
		}
	}

	if err := mem.InstallSlotROM(slot, firmware[:]); err != nil {
		return curated.Errorf("diskii: %v", err)
	}

	logger.Logf("diskii", "card installed in slot %d", slot)

	return nil
}

// ID implements the peripherals.Card interface.
func (ctl *Controller) ID() string {
	return "Disk II"
}

// Reset implements the peripherals.Card interface. Mounted images survive a
// reset.
func (ctl *Controller) Reset() {
	for i := range ctl.drives {
		ctl.drives[i].reset()
	}
	ctl.driveSelect = 0
}

// busRead services a read of any of the card's device registers.
func (ctl *Controller) busRead(addr uint16) uint8 {
	return ctl.access(addr & 0x000f)
}

// busWrite services a write to any of the card's device registers. Write
// support is not implemented: the access is accepted and the data
// discarded.
func (ctl *Controller) busWrite(addr uint16, data uint8) {
}

// access is the soft switch state machine. The order of operations matters
// and is easy to get subtly wrong:
//
//  1. an expired deferred motor stop is retired;
//  2. the register's flag side effect is applied to the selected drive (or
//     the drive select latch);
//  3. a Q7Low access returns the write protect sense;
//  4. any even numbered register access with Q6 and Q7 both low returns a
//     bit-serial read of the drive that was selected on entry.
//
// Everything else reads as the floating bus value.
func (ctl *Controller) access(reg uint16) uint8 {
	cyc := ctl.clk.Count()

	// the drive the access applies to. note that this is resolved before
	// any drive select register takes effect
	drv := &ctl.drives[ctl.driveSelect]

	// retire an expired deferred motor stop before anything else
	if drv.Motor && drv.MotorOffCycle != 0 && cyc >= drv.MotorOffCycle {
		drv.Motor = false
		drv.MotorOffCycle = 0
		logger.Logf("diskii", "slot %d drive %d: motor stopped (cycle %d)", ctl.slot, ctl.driveSelect, cyc)
	}

	track := drv.Track

	switch reg {
	case Drive1Select:
		ctl.driveSelect = 0
	case Drive2Select:
		ctl.driveSelect = 1
	default:
		*drv = transitions[reg](*drv, cyc)
	}

	if drv.Track != track {
		logger.Logf("diskii", "slot %d drive %d: half-track %d (track %d)", ctl.slot, ctl.driveSelect, drv.Track, drv.Track/2)
	}

	// the write protect sense takes precedence over the data register. this
	// is also the path taken when software loads read mode with the
	// Q7Low/Q6Low sequence
	if reg == Q7Low {
		if drv.WriteProtect {
			return 0x80
		}
		return 0x00
	}

	// any even register access reads the data register when the mode flags
	// are both low
	if reg&0x01 == 0 && !drv.Q6 && !drv.Q7 {
		return drv.readNybble()
	}

	return memory.FloatingBus
}

// Mount a disk image in the numbered drive. Sector images are encoded into
// nibble streams using the interleave named by the loader; nibble images are
// copied directly. The drive's head position and phase state are untouched,
// as they would be on a real drive when a diskette is pushed in.
func (ctl *Controller) Mount(drive int, ldr diskloader.Loader) error {
	if drive < 0 || drive >= NumDrives {
		return curated.Errorf("diskii: invalid drive number (%d)", drive)
	}

	drv := &ctl.drives[drive]

	switch ldr.Convention {
	case diskloader.ConventionNibble:
		if len(ldr.Data) != NumTracks*TrackLength {
			return curated.Errorf("diskii: %s: wrong size for a nibble image", ldr.Filename)
		}
		for t := 0; t < NumTracks; t++ {
			drv.tracks[t] = make([]uint8, TrackLength)
			copy(drv.tracks[t], ldr.Data[t*TrackLength:(t+1)*TrackLength])
		}

	case diskloader.ConventionDOS:
		fallthrough
	case diskloader.ConventionProDOS:
		if len(ldr.Data) != NumTracks*NumSectors*SectorLength {
			return curated.Errorf("diskii: %s: wrong size for a sector image", ldr.Filename)
		}

		interleave := DOSOrder
		if ldr.Convention == diskloader.ConventionProDOS {
			interleave = ProDOSOrder
		}

		trackSize := NumSectors * SectorLength
		for t := 0; t < NumTracks; t++ {
			drv.tracks[t] = encodeTrack(ldr.Data[t*trackSize:(t+1)*trackSize], t, DefaultVolume, interleave)
		}

	default:
		return curated.Errorf("diskii: unrecognised image convention (%s)", ldr.Convention)
	}

	drv.mounted = true
	drv.filename = ldr.Filename
	drv.WriteProtect = true

	logger.Logf("diskii", "slot %d drive %d: %s mounted", ctl.slot, drive, ldr.Filename)

	return nil
}

// Unmount is accepted as an interface but is a no-op: write support is not
// implemented so there is never anything to flush back to the image file.
func (ctl *Controller) Unmount(drive int) error {
	return nil
}
