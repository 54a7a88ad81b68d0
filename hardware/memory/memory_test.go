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

package memory_test

import (
	"testing"

	"github.com/gopher2plus/gopher2plus/hardware/memory"
	"github.com/gopher2plus/gopher2plus/hardware/memory/addresses"
	"github.com/gopher2plus/gopher2plus/test"
)

func TestRAM(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x0300, 0xa9)
	test.Equate(t, mem.Read(0x0300), 0xa9)

	// reset clears RAM but not ROM
	mem.InstallROM(addresses.ROMBase, []uint8{0x4c, 0x00, 0xd0})
	mem.Reset()
	test.Equate(t, mem.Read(0x0300), 0x00)
	test.Equate(t, mem.Read(addresses.ROMBase), 0x4c)
}

func TestIODispatch(t *testing.T) {
	mem := memory.NewMemory()

	var readAddr uint16
	var wroteAddr uint16
	var wroteData uint8

	err := mem.RegisterRead(0xc0e0, func(addr uint16) uint8 {
		readAddr = addr
		return 0x42
	})
	test.ExpectedSuccess(t, err)

	err = mem.RegisterWrite(0xc0e1, func(addr uint16, data uint8) {
		wroteAddr = addr
		wroteData = data
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mem.Read(0xc0e0), 0x42)
	test.Equate(t, readAddr, uint16(0xc0e0))

	mem.Write(0xc0e1, 0x99)
	test.Equate(t, wroteAddr, uint16(0xc0e1))
	test.Equate(t, wroteData, 0x99)

	// unhandled IO page accesses float on read and are discarded on write
	test.Equate(t, mem.Read(0xc0e2), memory.FloatingBus)
	mem.Write(0xc0e3, 0xff)
	test.Equate(t, mem.Read(0xc0e3), memory.FloatingBus)
}

func TestRegisterOutsideIOPage(t *testing.T) {
	mem := memory.NewMemory()

	handler := func(addr uint16) uint8 { return 0 }
	test.ExpectedFailure(t, mem.RegisterRead(0xbfff, handler))
	test.ExpectedFailure(t, mem.RegisterRead(0xc100, handler))
	test.ExpectedFailure(t, mem.RegisterWrite(0x0000, func(addr uint16, data uint8) {}))
}

func TestROMWriteDiscarded(t *testing.T) {
	mem := memory.NewMemory()

	mem.InstallROM(addresses.ROMBase, []uint8{0xea})
	mem.Write(addresses.ROMBase, 0x00)
	test.Equate(t, mem.Read(addresses.ROMBase), 0xea)

	// slot firmware region is just as write protected
	mem.Write(addresses.SlotROM(6), 0x12)
	test.Equate(t, mem.Read(addresses.SlotROM(6)), 0x00)
}

func TestInstallSlotROM(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.InstallSlotROM(6, []uint8{0xa2, 0x20})
	test.ExpectedSuccess(t, err)
	test.Equate(t, mem.Read(addresses.SlotROM(6)), 0xa2)
	test.Equate(t, mem.Read(addresses.SlotROM(6)+1), 0x20)

	test.ExpectedFailure(t, mem.InstallSlotROM(0, nil))
	test.ExpectedFailure(t, mem.InstallSlotROM(8, nil))
	test.ExpectedFailure(t, mem.InstallSlotROM(6, make([]uint8, 257)))
}
