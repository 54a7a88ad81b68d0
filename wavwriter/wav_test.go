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

package wavwriter

import (
	"testing"

	"github.com/gopher2plus/gopher2plus/hardware/clocks"
	"github.com/gopher2plus/gopher2plus/test"
)

func TestSampleAccounting(t *testing.T) {
	aw, err := New("test.wav", clocks.CPUClockHz)
	test.ExpectedSuccess(t, err)

	// one emulated second of cycles must yield exactly one second of audio,
	// however it is chopped into windows
	var cyc uint64
	for cyc < clocks.CPUClockHz {
		next := cyc + clocks.CyclesPerRefresh
		if next > clocks.CPUClockHz {
			next = clocks.CPUClockHz
		}
		test.ExpectedSuccess(t, aw.GenerateFrame(cyc, next))
		cyc = next
	}

	test.Equate(t, len(aw.buffer), SampleFreq)
}

func TestBadClockRate(t *testing.T) {
	_, err := New("test.wav", 0)
	test.ExpectedFailure(t, err)
}
