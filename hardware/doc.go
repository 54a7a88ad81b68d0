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

// Package hardware is the base package for the emulated machine. The
// Machine type is the container for all the machine's components and its
// Run() function is the execution scheduler that drives everything.
//
// The emulation is single threaded and cooperative. The scheduler, the
// processor core, memory dispatch and every peripheral are synchronous
// function calls on one goroutine; no instruction is ever interrupted
// mid-step by a peripheral operation. The only blocking behaviour anywhere
// is the scheduler's pacing wait at the end of each refresh window.
package hardware
