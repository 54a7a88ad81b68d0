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

// CycleClock is the monotonic count of CPU cycles since the last machine
// reset. It is advanced only as instructions are retired by the processor and
// it is the only clock source available to the peripherals - most notably the
// Disk II card, which expresses its motor timing in CycleClock values.
//
// Wall-clock time never touches this type. Everything derived from it is
// deterministic regardless of how the scheduler is being paced.
type CycleClock struct {
	cycles uint64
}

// Count returns the number of cycles since the last reset.
func (clk *CycleClock) Count() uint64 {
	return clk.cycles
}

// Advance the clock by the number of cycles consumed by a retired
// instruction.
func (clk *CycleClock) Advance(cycles int) {
	clk.cycles += uint64(cycles)
}

func (clk *CycleClock) reset() {
	clk.cycles = 0
}
