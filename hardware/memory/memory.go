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

package memory

import (
	"github.com/gopher2plus/gopher2plus/curated"
	"github.com/gopher2plus/gopher2plus/hardware/memory/addresses"
	"github.com/gopher2plus/gopher2plus/logger"
)

// ReadHandler is a function called when the address it was registered against
// is read. Soft switches commonly mutate device state on read, so a
// ReadHandler is not assumed to be side effect free.
type ReadHandler func(addr uint16) uint8

// WriteHandler is a function called when the address it was registered
// against is written.
type WriteHandler func(addr uint16, data uint8)

// FloatingBus is the value returned by a read of an IO page address with no
// registered handler. On the real machine the data lines are left floating
// and this is the value most commonly seen.
const FloatingBus = uint8(0xee)

// Memory is the 64K address space of the machine: RAM, ROM and the IO page.
// Reads and writes inside the IO page are dispatched to the handler
// registered for the individual address.
type Memory struct {
	ram [0x10000]uint8

	// handlers for the IO page, indexed by address offset from IOPageBase
	readHandlers  [256]ReadHandler
	writeHandlers [256]WriteHandler
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// RegisterRead associates an IO page address with a ReadHandler. Registering
// a second handler against the same address replaces the first.
func (mem *Memory) RegisterRead(addr uint16, handler ReadHandler) error {
	if addr < addresses.IOPageBase || addr > addresses.IOPageTop {
		return curated.Errorf("memory: address %#04x not in the IO page", addr)
	}
	if mem.readHandlers[addr-addresses.IOPageBase] != nil {
		logger.Logf("memory", "replacing read handler at %#04x", addr)
	}
	mem.readHandlers[addr-addresses.IOPageBase] = handler
	return nil
}

// RegisterWrite associates an IO page address with a WriteHandler.
// Registering a second handler against the same address replaces the first.
func (mem *Memory) RegisterWrite(addr uint16, handler WriteHandler) error {
	if addr < addresses.IOPageBase || addr > addresses.IOPageTop {
		return curated.Errorf("memory: address %#04x not in the IO page", addr)
	}
	if mem.writeHandlers[addr-addresses.IOPageBase] != nil {
		logger.Logf("memory", "replacing write handler at %#04x", addr)
	}
	mem.writeHandlers[addr-addresses.IOPageBase] = handler
	return nil
}

// Read a byte from the address space. IO page reads are dispatched to the
// registered handler; an unhandled IO page read returns FloatingBus and has
// no side effect.
func (mem *Memory) Read(addr uint16) uint8 {
	if addr >= addresses.IOPageBase && addr <= addresses.IOPageTop {
		if h := mem.readHandlers[addr-addresses.IOPageBase]; h != nil {
			return h(addr)
		}
		return FloatingBus
	}
	return mem.ram[addr]
}

// Write a byte to the address space. IO page writes are dispatched to the
// registered handler; an unhandled IO page write is discarded. Writes to the
// firmware and ROM regions are discarded.
func (mem *Memory) Write(addr uint16, data uint8) {
	if addr >= addresses.IOPageBase && addr <= addresses.IOPageTop {
		if h := mem.writeHandlers[addr-addresses.IOPageBase]; h != nil {
			h(addr, data)
		}
		return
	}
	if addr > addresses.IOPageTop {
		// slot firmware, expansion ROM and mainboard ROM
		return
	}
	mem.ram[addr] = data
}

// InstallSlotROM copies a slot card's firmware into its page of the firmware
// region ($Cs00 for slot s).
func (mem *Memory) InstallSlotROM(slot int, data []uint8) error {
	if slot < 1 || slot >= addresses.NumSlots {
		return curated.Errorf("memory: invalid slot number (%d)", slot)
	}
	if len(data) > addresses.SlotROMSize {
		return curated.Errorf("memory: firmware too large for slot ROM (%d bytes)", len(data))
	}
	copy(mem.ram[addresses.SlotROM(slot):], data)
	return nil
}

// InstallROM copies data into the address space without write protection
// checks. Used when loading mainboard ROMs.
func (mem *Memory) InstallROM(base uint16, data []uint8) {
	copy(mem.ram[base:], data)
}

// Reset the contents of RAM. Handler registrations and ROM contents survive a
// reset, as they would on real hardware.
func (mem *Memory) Reset() {
	for i := uint32(0); i <= uint32(addresses.RAMTop); i++ {
		mem.ram[i] = 0x00
	}
}
