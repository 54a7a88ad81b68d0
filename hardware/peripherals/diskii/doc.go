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

// Package diskii emulates the Disk II floppy controller card and its two
// attached drives.
//
// The card is controlled entirely through sixteen soft switches in the
// slot's device register space. Reading (or writing) the address is the
// operation; the data is irrelevant on the way in and only meaningful on the
// way out for a few of the registers:
//
//	offset  register       effect
//	 $0/$1  PHASE0 off/on  stepper motor phase 0
//	 $2/$3  PHASE1 off/on  stepper motor phase 1
//	 $4/$5  PHASE2 off/on  stepper motor phase 2
//	 $6/$7  PHASE3 off/on  stepper motor phase 3
//	 $8/$9  MOTOR off/on   spindle motor (off is deferred by about 1 second)
//	 $A/$B  DRIVE 1/2      drive select
//	 $C/$D  Q6 low/high    shift/load
//	 $E/$F  Q7 low/high    read/write
//
// With Q6 and Q7 both low, any even register read returns the data register.
// The data register serves one bit of the nibble stream per access, MSB
// first, so software sees a nibble "arrive" over eight reads with the high
// bit acting as the ready flag. Reading Q6 low after Q7 low (the standard
// read mode entry sequence) returns the write protect sense in bit 7.
//
// Mounted sector images (DOS or ProDOS order) are nibblized up front into
// the same 6656 byte track streams that a .nib image carries, so the read
// path is identical for every image type.
//
// Head movement works in half-track units. Turning on the phase adjacent to
// the last phase energised moves the head one half-track towards or away
// from the spindle. Software steps whole tracks by pulsing two phases in
// sequence.
package diskii
