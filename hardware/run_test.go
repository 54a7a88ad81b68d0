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

package hardware_test

import (
	"testing"

	"github.com/gopher2plus/gopher2plus/hardware"
	"github.com/gopher2plus/gopher2plus/hardware/clocks"
	"github.com/gopher2plus/gopher2plus/test"
)

// scriptedProcessor consumes a fixed number of cycles per instruction.
type scriptedProcessor struct {
	cycles       int
	instructions uint64
}

func (proc *scriptedProcessor) Reset() {
	proc.instructions = 0
}

func (proc *scriptedProcessor) ExecuteInstruction() (int, error) {
	proc.instructions++
	return proc.cycles, nil
}

// countingRenderer records how many frames it was given.
type countingRenderer struct {
	frames int
}

func (rend *countingRenderer) UpdateFrame() error {
	rend.frames++
	return nil
}

// countingMixer records the cycle windows it was given.
type countingMixer struct {
	frames int
	cycles uint64
	ended  bool
}

func (mix *countingMixer) GenerateFrame(startCycle uint64, endCycle uint64) error {
	mix.frames++
	mix.cycles += endCycle - startCycle
	return nil
}

func (mix *countingMixer) EndMixing() error {
	mix.ended = true
	return nil
}

func TestRunWindows(t *testing.T) {
	mach, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	proc := &scriptedProcessor{cycles: 2}
	mach.AttachProcessor(proc)

	// an absurdly high rate so the pacing wait never fires in any
	// measurable way
	mach.RateHz = 1e12

	windows := 0
	err = mach.Run(func() (bool, error) {
		windows++
		return windows < 300, nil
	})
	test.ExpectedSuccess(t, err)

	// every window runs a full refresh worth of cycles
	test.Equate(t, mach.Clock.Count(), uint64(300*clocks.CyclesPerRefresh))
	test.Equate(t, proc.instructions, uint64(300*clocks.CyclesPerRefresh/2))
}

func TestRunHooks(t *testing.T) {
	mach, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	proc := &scriptedProcessor{cycles: 2}
	mach.AttachProcessor(proc)
	mach.RateHz = 1e12

	rend := &countingRenderer{}
	mix := &countingMixer{}
	mach.AttachRenderer(rend)
	mach.AttachAudioMixer(mix)

	windows := 0
	err = mach.Run(func() (bool, error) {
		windows++
		return windows < 10, nil
	})
	test.ExpectedSuccess(t, err)

	// in paced mode the hooks run every window. EndMixing is the caller's
	// responsibility, not the scheduler's
	test.Equate(t, rend.frames, 10)
	test.Equate(t, mix.frames, 10)
	test.Equate(t, mix.cycles, mach.Clock.Count())
	test.Equate(t, mix.ended, false)
}

func TestRunHalt(t *testing.T) {
	mach, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	proc := &scriptedProcessor{cycles: 2}
	mach.AttachProcessor(proc)
	mach.RateHz = 1e12

	rend := &countingRenderer{}
	mach.AttachRenderer(rend)

	windows := 0
	err = mach.Run(func() (bool, error) {
		windows++
		if windows == 5 {
			mach.Halt()
		}
		return true, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, mach.Halted(), true)

	// the halt is noticed inside the window after the check that requested
	// it. that partial window still services its hooks and the scheduler
	// sends one more frame on the way out
	test.Equate(t, rend.frames, windows+2)
}

func TestRunFreeRun(t *testing.T) {
	mach, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	proc := &scriptedProcessor{cycles: 2}
	mach.AttachProcessor(proc)
	mach.Mode = hardware.FreeRun

	windows := 0
	err = mach.Run(func() (bool, error) {
		windows++
		return windows < 100, nil
	})
	test.ExpectedSuccess(t, err)

	// free running never records a pacing slip
	test.Equate(t, mach.Clock.Count(), uint64(100*clocks.CyclesPerRefresh))
	test.Equate(t, mach.Slips, uint64(0))
}

func TestRunNoProcessor(t *testing.T) {
	mach, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, mach.Run(nil))
}
