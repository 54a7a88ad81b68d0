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

// Package cpu specifies the processor core that drives the machine. The core
// itself is an external collaborator; the machine only requires the Processor
// interface.
//
// All memory access a Processor makes must go through the Bus it was given at
// creation. Soft switches depend on seeing every read and write.
package cpu

// Bus is the memory interface presented to a Processor.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// Processor is the interface to a processor core. ExecuteInstruction() runs a
// single instruction to completion and returns the number of cycles consumed.
// The machine advances its cycle clock by that amount after the call returns,
// so every bus access made during the instruction observes the cycle count as
// it was when the instruction started.
type Processor interface {
	Reset()
	ExecuteInstruction() (int, error)
}
