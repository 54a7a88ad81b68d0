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
	"testing"

	"github.com/gopher2plus/gopher2plus/diskloader"
	"github.com/gopher2plus/gopher2plus/hardware/memory"
	"github.com/gopher2plus/gopher2plus/hardware/memory/addresses"
	"github.com/gopher2plus/gopher2plus/test"
)

// stubClock stands in for the machine's cycle clock.
type stubClock struct {
	cycles uint64
}

func (clk *stubClock) Count() uint64 {
	return clk.cycles
}

// readByte assembles one nibble from eight consecutive data register reads,
// the way machine code does it. The first read latches the nibble and
// exposes the top bit.
func readByte(ctl *Controller, reg uint16) uint8 {
	var v uint8
	for i := 0; i < 8; i++ {
		v = (v << 1) | (ctl.access(reg) & 0x01)
	}
	return v
}

func TestPhaseStepping(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	// track zero, phase 0 held. turning phase 1 on steps inward
	ctl.access(Phase0On)
	test.Equate(t, ctl.drives[0].Track, 0)
	ctl.access(Phase1On)
	test.Equate(t, ctl.drives[0].Track, 1)
	ctl.access(Phase0Off)
	ctl.access(Phase2On)
	ctl.access(Phase1Off)
	test.Equate(t, ctl.drives[0].Track, 2)

	// and back out again
	ctl.access(Phase1On)
	ctl.access(Phase2Off)
	test.Equate(t, ctl.drives[0].Track, 1)
	ctl.access(Phase0On)
	ctl.access(Phase1Off)
	test.Equate(t, ctl.drives[0].Track, 0)

	// stepping out at track zero bangs against the stop
	ctl.access(Phase3On)
	ctl.access(Phase0Off)
	test.Equate(t, ctl.drives[0].Track, 0)
	ctl.access(Phase2On)
	ctl.access(Phase3Off)
	test.Equate(t, ctl.drives[0].Track, 0)

	// re-energising the same phase does not step
	ctl.access(Phase2On)
	test.Equate(t, ctl.drives[0].Track, 0)
}

func TestMotorCoast(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	ctl.access(MotorOn)
	test.Equate(t, ctl.drives[0].Motor, true)

	// commanding the motor off arms the deferred stop
	clk.cycles = 1000
	ctl.access(MotorOff)
	test.Equate(t, ctl.drives[0].Motor, true)
	test.Equate(t, ctl.drives[0].MotorOffCycle, uint64(1000+MotorCoastCycles))

	// still coasting one cycle before the deadline
	clk.cycles = 1000 + MotorCoastCycles - 1
	ctl.access(Q6Low)
	test.Equate(t, ctl.drives[0].Motor, true)

	// stopped at the deadline
	clk.cycles = 1000 + MotorCoastCycles
	ctl.access(Q6Low)
	test.Equate(t, ctl.drives[0].Motor, false)
	test.Equate(t, ctl.drives[0].MotorOffCycle, uint64(0))
}

func TestMotorOffCancelled(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	ctl.access(MotorOn)
	clk.cycles = 500
	ctl.access(MotorOff)

	// motor on again before the deadline cancels the stop
	clk.cycles = 600
	ctl.access(MotorOn)
	clk.cycles = 500 + MotorCoastCycles + 1
	ctl.access(Q6Low)
	test.Equate(t, ctl.drives[0].Motor, true)
}

func TestBitSerialRead(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	drv := &ctl.drives[0]
	drv.mounted = true
	drv.tracks[0] = make([]uint8, TrackLength)
	drv.tracks[0][0] = 0xd5
	drv.tracks[0][1] = 0xaa

	ctl.access(MotorOn)

	// eight reads reproduce the nibble MSB first and advance the head once
	test.Equate(t, readByte(ctl, Q6Low), 0xd5)
	test.Equate(t, drv.HeadPosition, 1)
	test.Equate(t, readByte(ctl, Q6Low), 0xaa)
	test.Equate(t, drv.HeadPosition, 2)
}

func TestHeadWrap(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	drv := &ctl.drives[0]
	drv.mounted = true
	drv.tracks[0] = make([]uint8, TrackLength)
	drv.tracks[0][TrackLength-1] = 0x96
	drv.HeadPosition = TrackLength - 1

	ctl.access(MotorOn)

	test.Equate(t, readByte(ctl, Q6Low), 0x96)
	test.Equate(t, drv.HeadPosition, 0)
}

func TestMotorOffFreezesRead(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	drv := &ctl.drives[0]
	drv.mounted = true
	drv.tracks[0] = make([]uint8, TrackLength)
	for i := range drv.tracks[0] {
		drv.tracks[0][i] = uint8(i)
	}
	drv.ReadShiftRegister = 0xe7

	// the motor is off. the head must not move and the data register must
	// return the same value forever
	for i := 0; i < 100; i++ {
		test.Equate(t, ctl.access(Q6Low), 0xe7)
	}
	test.Equate(t, drv.HeadPosition, 0)
}

func TestWriteProtectSense(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	// write protect is the power-on state
	test.Equate(t, ctl.access(Q7Low), 0x80)
	test.Equate(t, ctl.drives[0].Q7, false)

	ctl.drives[0].WriteProtect = false
	test.Equate(t, ctl.access(Q7Low), 0x00)
}

func TestDriveSelect(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	ctl.access(Drive2Select)
	ctl.access(MotorOn)
	test.Equate(t, ctl.drives[0].Motor, false)
	test.Equate(t, ctl.drives[1].Motor, true)

	ctl.access(Drive1Select)
	ctl.access(MotorOn)
	test.Equate(t, ctl.drives[0].Motor, true)
}

// boot sequence as seen through the memory bus: mount an all-zero DOS order
// image, turn the motor on and read. The head starts in the track's leading
// sync gap and the first non-sync nibbles are the address field prologue.
func TestBootRead(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)
	mem := memory.NewMemory()

	err := ctl.Install(6, mem)
	test.ExpectedSuccess(t, err)

	// firmware is visible in the slot ROM space
	test.Equate(t, mem.Read(addresses.SlotROM(6)), 0xa2)
	test.Equate(t, mem.Read(addresses.SlotROM(6)+1), 0x20)

	ldr := diskloader.Loader{
		Filename:   "blank.do",
		Convention: diskloader.ConventionDOS,
		Data:       make([]uint8, diskloader.SectorImageSize),
	}
	err = ctl.Mount(0, ldr)
	test.ExpectedSuccess(t, err)

	base := addresses.SlotIO(6)
	mem.Read(base + MotorOn)

	readBusByte := func() uint8 {
		var v uint8
		for i := 0; i < 8; i++ {
			v = (v << 1) | (mem.Read(base+Q6Low) & 0x01)
		}
		return v
	}

	// leading sync gap
	for i := 0; i < gap1; i++ {
		test.Equate(t, readBusByte(), uint8(syncByte))
	}

	// address field prologue for track 0 sector 0
	test.Equate(t, readBusByte(), 0xd5)
	test.Equate(t, readBusByte(), 0xaa)
	test.Equate(t, readBusByte(), 0x96)

	// 4-and-4 volume number
	test.Equate(t, readBusByte(), uint8((DefaultVolume>>1)|0xaa))
	test.Equate(t, readBusByte(), uint8(DefaultVolume|0xaa))
}

func TestMountBadSize(t *testing.T) {
	clk := &stubClock{}
	ctl := NewController(clk)

	ldr := diskloader.Loader{
		Filename:   "short.do",
		Convention: diskloader.ConventionDOS,
		Data:       make([]uint8, 1000),
	}
	test.ExpectedFailure(t, ctl.Mount(0, ldr))
	test.Equate(t, ctl.drives[0].mounted, false)

	test.ExpectedFailure(t, ctl.Mount(2, ldr))
}
