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
	"time"

	"github.com/gopher2plus/gopher2plus/curated"
	"github.com/gopher2plus/gopher2plus/hardware/clocks"
	"github.com/gopher2plus/gopher2plus/logger"
)

// EventPoller is serviced once per refresh window (roughly sixty times a
// second of wall-clock time), whatever the clock mode. Keyboard and other
// user input implementations satisfy this interface.
type EventPoller interface {
	Poll() error
}

// AudioMixer is serviced once per refresh window. The start and end values
// are the cycle window just executed, allowing the mixer to synthesise a
// proportional number of samples.
type AudioMixer interface {
	GenerateFrame(startCycle uint64, endCycle uint64) error
	EndMixing() error
}

// Renderer is serviced once per refresh window. It receives one final
// UpdateFrame() before Run() returns so the last machine state is visible.
type Renderer interface {
	UpdateFrame() error
}

// AttachEventPoller to the machine. A nil value detaches.
func (mach *Machine) AttachEventPoller(events EventPoller) {
	mach.events = events
}

// AttachAudioMixer to the machine. A nil value detaches.
func (mach *Machine) AttachAudioMixer(audio AudioMixer) {
	mach.audio = audio
}

// AttachRenderer to the machine. A nil value detaches.
func (mach *Machine) AttachRenderer(renderer Renderer) {
	mach.renderer = renderer
}

// wall-clock gate for hook servicing in FreeRun mode. one sixtieth of a
// second, same as the length of a refresh window in paced mode.
const hookInterval = 16667 * time.Microsecond

// how often the pacing summary is sent to the logger.
const summaryInterval = 5 * time.Second

// Run the machine until it is halted or until continueCheck returns false.
// continueCheck is called once per refresh window; a nil value means run
// until halted.
//
// Each iteration of the loop executes one refresh window's worth of
// instructions (clocks.CyclesPerRefresh cycles), services the periodic
// hooks, and then - in Paced mode - busy-waits until the wall-clock deadline
// for the cycles just executed. If the deadline has already passed the
// window is recorded as a slip and no wait occurs.
func (mach *Machine) Run(continueCheck func() (bool, error)) error {
	if mach.Proc == nil {
		return curated.Errorf("machine: no processor attached")
	}
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	now := time.Now()
	lastEvents := now
	lastAudio := now
	lastRender := now
	lastSummary := now
	summaryCycles := mach.Clock.Count()

	for {
		windowStart := mach.Clock.Count()
		burstStart := time.Now()

		for mach.Clock.Count()-windowStart < clocks.CyclesPerRefresh {
			cycles, err := mach.Proc.ExecuteInstruction()
			if err != nil {
				return curated.Errorf("machine: %v", err)
			}
			mach.Clock.Advance(cycles)
			if mach.Halted() {
				break // for loop
			}
		}
		windowEnd := mach.Clock.Count()

		// periodic hooks. in FreeRun mode many refresh windows can complete
		// in a sixtieth of a second so servicing is gated on wall-clock time
		now = time.Now()
		if mach.events != nil && (mach.Mode != FreeRun || now.Sub(lastEvents) > hookInterval) {
			if err := mach.events.Poll(); err != nil {
				return err
			}
			lastEvents = now
		}

		now = time.Now()
		if mach.audio != nil && (mach.Mode != FreeRun || now.Sub(lastAudio) > hookInterval) {
			if err := mach.audio.GenerateFrame(windowStart, windowEnd); err != nil {
				return err
			}
			lastAudio = now
		}

		now = time.Now()
		if mach.renderer != nil && (mach.Mode != FreeRun || now.Sub(lastRender) > hookInterval) {
			if err := mach.renderer.UpdateFrame(); err != nil {
				return err
			}
			lastRender = now
		}

		now = time.Now()
		if now.Sub(lastSummary) > summaryInterval {
			delta := mach.Clock.Count() - summaryCycles
			logger.Logf("scheduler", "%d cycles in %.1fs (%.3f MHz) slips: %d busy: %d",
				delta, now.Sub(lastSummary).Seconds(),
				float64(delta)/now.Sub(lastSummary).Seconds()/1e6,
				mach.Slips, mach.BusyLoops)
			summaryCycles = mach.Clock.Count()
			lastSummary = now
		}

		if mach.Halted() {
			// one final frame so the last machine state is visible
			if mach.renderer != nil {
				if err := mach.renderer.UpdateFrame(); err != nil {
					return err
				}
			}
			return nil
		}

		// pace wall-clock time against the cycles just executed. the wait is
		// a busy loop; sleeping gives up too much timing precision on most
		// hosts
		if mach.Mode == Paced {
			deadline := burstStart.Add(time.Duration(windowEnd-windowStart) * time.Second / time.Duration(mach.RateHz))
			if time.Now().After(deadline) {
				mach.Slips++
			} else {
				for time.Now().Before(deadline) {
					mach.BusyLoops++
					if mach.Halted() {
						break // for loop
					}
				}
			}
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
