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

package cpu

// FetchLoop is a bring-up core. It fetches one opcode per instruction,
// discards it and moves on, at two cycles apiece. It lets the scheduler,
// memory and peripherals be exercised before a full 65C02 core is attached.
//
// The program counter is confined to main RAM so that the fetches cannot
// trigger soft switches.
type FetchLoop struct {
	mem Bus
	pc  uint16
}

// NewFetchLoop is the preferred method of initialisation for the FetchLoop
// type.
func NewFetchLoop(mem Bus) *FetchLoop {
	return &FetchLoop{mem: mem}
}

// Reset implements the Processor interface.
func (p *FetchLoop) Reset() {
	p.pc = 0x0000
}

// ExecuteInstruction implements the Processor interface.
func (p *FetchLoop) ExecuteInstruction() (int, error) {
	_ = p.mem.Read(p.pc)
	p.pc++
	if p.pc >= 0xc000 {
		p.pc = 0x0000
	}
	return 2, nil
}
