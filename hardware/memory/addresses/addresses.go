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

// Package addresses defines the memory map of the machine.
//
//	$0000 - $BFFF    main RAM
//	$C000 - $C0FF    soft switches (the IO page)
//	$C100 - $C7FF    slot card firmware, $Cs00 for slot s
//	$C800 - $CFFF    expansion ROM
//	$D000 - $FFFF    mainboard ROM
//
// Within the IO page, each slot owns sixteen device registers at
// $C080 + slot * $10.
package addresses

// Main memory regions.
const (
	RAMTop     = uint16(0xbfff)
	IOPageBase = uint16(0xc000)
	IOPageTop  = uint16(0xc0ff)
	ROMBase    = uint16(0xd000)
)

// Slot card regions within the IO page and the firmware area.
const (
	SlotIOBase  = uint16(0xc080)
	SlotROMSize = 256
)

// NumSlots is the number of peripheral card slots.
const NumSlots = 8

// SlotIO returns the base address of the sixteen device registers belonging
// to a slot.
func SlotIO(slot int) uint16 {
	return SlotIOBase + uint16(slot)*0x10
}

// SlotROM returns the base address of a slot's firmware space.
func SlotROM(slot int) uint16 {
	return IOPageBase + uint16(slot)*0x100
}
