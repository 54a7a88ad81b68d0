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

package hardware

import (
	"sync/atomic"

	"github.com/gopher2plus/gopher2plus/curated"
	"github.com/gopher2plus/gopher2plus/hardware/clocks"
	"github.com/gopher2plus/gopher2plus/hardware/cpu"
	"github.com/gopher2plus/gopher2plus/hardware/memory"
	"github.com/gopher2plus/gopher2plus/hardware/memory/addresses"
	"github.com/gopher2plus/gopher2plus/hardware/peripherals"
)

// ClockMode controls how the Run() loop paces the processor.
type ClockMode int

// List of valid ClockMode values.
const (
	// run at the rate given by the RateHz field, busy-waiting at the end of
	// each refresh window to keep wall-clock time aligned with emulated
	// cycles
	Paced ClockMode = iota

	// run the processor as fast as the host allows. the periodic hooks are
	// still serviced at roughly sixty times a second of wall-clock time
	FreeRun
)

// Machine is the main container for the emulated components of the computer.
type Machine struct {
	Mem   *memory.Memory
	Clock *CycleClock

	// the processor core is an external collaborator, attached after the
	// machine is created
	Proc cpu.Processor

	// how Run() paces the processor and at what rate. RateHz is ignored in
	// FreeRun mode
	Mode   ClockMode
	RateHz int64

	// pacing diagnostics, maintained by Run(). a slip is a refresh window
	// that finished after its wall-clock deadline. neither value affects
	// emulation behaviour
	Slips     uint64
	BusyLoops uint64

	slots [addresses.NumSlots]peripherals.Card

	events   EventPoller
	audio    AudioMixer
	renderer Renderer

	// halt is accessed atomically. it is the one field that may be touched
	// from another goroutine (eg. a signal handler)
	halt uint32
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() (*Machine, error) {
	mach := &Machine{
		Mem:    memory.NewMemory(),
		Clock:  &CycleClock{},
		Mode:   Paced,
		RateHz: clocks.CPUClockHz,
	}
	return mach, nil
}

// AttachProcessor connects a processor core to the machine. The processor
// must have been created with the machine's memory as its bus.
func (mach *Machine) AttachProcessor(proc cpu.Processor) {
	mach.Proc = proc
}

// Install a card in the numbered slot. The card should already have
// registered its device registers with the machine's memory.
func (mach *Machine) Install(slot int, card peripherals.Card) error {
	if slot < 1 || slot >= addresses.NumSlots {
		return curated.Errorf("machine: invalid slot number (%d)", slot)
	}
	if mach.slots[slot] != nil {
		return curated.Errorf("machine: slot %d is already occupied (%s)", slot, mach.slots[slot].ID())
	}
	mach.slots[slot] = card
	return nil
}

// Card returns the card installed in the numbered slot, or nil if the slot is
// empty. Callers recover the concrete card type with a checked type
// assertion.
func (mach *Machine) Card(slot int) peripherals.Card {
	if slot < 0 || slot >= addresses.NumSlots {
		return nil
	}
	return mach.slots[slot]
}

// Reset emulates the reset switch on the machine. The cycle clock returns to
// zero and every installed card returns to its power-on state.
func (mach *Machine) Reset() error {
	atomic.StoreUint32(&mach.halt, 0)
	mach.Clock.reset()
	mach.Mem.Reset()

	for _, card := range mach.slots {
		if card != nil {
			card.Reset()
		}
	}

	if mach.Proc != nil {
		mach.Proc.Reset()
	}

	return nil
}

// Halt requests a clean exit from the Run() loop. It is safe to call from the
// processor core, from a hook, or from another goroutine.
func (mach *Machine) Halt() {
	atomic.StoreUint32(&mach.halt, 1)
}

// Halted returns true once Halt() has been called.
func (mach *Machine) Halted() bool {
	return atomic.LoadUint32(&mach.halt) == 1
}
