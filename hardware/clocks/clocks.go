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

// Package clocks defines the constant values that describe the speed of the
// machine's main clock.
//
// The mainboard crystal runs at 14.31818MHz. The CPU clock is that value
// divided by 14, less a small amount lost to the long cycle at the end of
// each video scanline, giving an effective rate of roughly 1.02MHz.
package clocks

const (
	// effective CPU cycles per second.
	CPUClockHz = 1020484

	// the number of CPU cycles in one sixtieth of a second; the amount of
	// work the scheduler does between servicing of the periodic hooks.
	CyclesPerRefresh = 17008
)
