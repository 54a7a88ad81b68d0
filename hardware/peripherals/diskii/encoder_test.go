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

package diskii

import (
	"testing"

	"github.com/gopher2plus/gopher2plus/test"
)

// parseTrack walks an encoded track, decoding every sector it finds, and
// returns the payloads keyed by the sector number in the address field.
func parseTrack(t *testing.T, nib []uint8) map[int][]uint8 {
	t.Helper()

	decode44 := func(a, b uint8) uint8 {
		return ((a << 1) | 0x01) & b
	}

	sectors := make(map[int][]uint8)

	i := 0
	for i < len(nib)-2 {
		if !(nib[i] == 0xd5 && nib[i+1] == 0xaa && nib[i+2] == 0x96) {
			i++
			continue
		}
		i += 3

		volume := decode44(nib[i], nib[i+1])
		track := decode44(nib[i+2], nib[i+3])
		sector := decode44(nib[i+4], nib[i+5])
		checksum := decode44(nib[i+6], nib[i+7])
		test.Equate(t, checksum, volume^track^sector)
		i += 8

		// epilogue
		test.Equate(t, nib[i], 0xde)
		test.Equate(t, nib[i+1], 0xaa)
		i += 3

		// scan forward to the data field prologue
		for !(nib[i] == 0xd5 && nib[i+1] == 0xaa && nib[i+2] == 0xad) {
			i++
		}
		i += 3

		data, err := decodeSector62(nib[i : i+343])
		test.ExpectedSuccess(t, err)
		i += 343

		test.Equate(t, nib[i], 0xde)
		test.Equate(t, nib[i+1], 0xaa)

		sectors[int(sector)] = data
	}

	return sectors
}

func testRoundTrip(t *testing.T, interleave Interleave) {
	t.Helper()

	// distinct recognisable content per sector
	track := make([]uint8, NumSectors*SectorLength)
	for s := 0; s < NumSectors; s++ {
		for i := 0; i < SectorLength; i++ {
			track[s*SectorLength+i] = uint8(s*31 + i)
		}
	}

	nib := encodeTrack(track, 17, DefaultVolume, interleave)
	test.Equate(t, len(nib), TrackLength)

	sectors := parseTrack(t, nib)
	test.Equate(t, len(sectors), NumSectors)

	// the address field holds the physical sector number; the payload
	// belongs to the logical sector the interleave maps it to
	for phys := 0; phys < NumSectors; phys++ {
		data, ok := sectors[phys]
		test.Equate(t, ok, true)

		logical := int(interleave.PhysToLogical[phys])
		for i := 0; i < SectorLength; i++ {
			if data[i] != track[logical*SectorLength+i] {
				t.Fatalf("sector %d: byte %d mismatch (%#02x - wanted %#02x)",
					phys, i, data[i], track[logical*SectorLength+i])
			}
		}
	}
}

func TestRoundTripDOSOrder(t *testing.T) {
	testRoundTrip(t, DOSOrder)
}

func TestRoundTripProDOSOrder(t *testing.T) {
	testRoundTrip(t, ProDOSOrder)
}

func TestInterleaveTables(t *testing.T) {
	// the two tables of an interleave must be inverses of one another
	for _, interleave := range []Interleave{DOSOrder, ProDOSOrder} {
		for phys := 0; phys < NumSectors; phys++ {
			logical := interleave.PhysToLogical[phys]
			test.Equate(t, int(interleave.LogicalToPhys[logical]), phys)
		}
	}
}

func TestAddressField(t *testing.T) {
	track := make([]uint8, NumSectors*SectorLength)
	nib := encodeTrack(track, 3, DefaultVolume, DOSOrder)

	// the track opens with the sync gap then sector 0's address field
	for i := 0; i < gap1; i++ {
		test.Equate(t, nib[i], uint8(syncByte))
	}

	field := nib[gap1:]
	test.Equate(t, field[0], 0xd5)
	test.Equate(t, field[1], 0xaa)
	test.Equate(t, field[2], 0x96)

	// volume, track, sector, checksum in 4-and-4
	test.Equate(t, field[3], uint8((DefaultVolume>>1)|0xaa))
	test.Equate(t, field[4], uint8(DefaultVolume|0xaa))
	test.Equate(t, field[5], uint8((3>>1)|0xaa))
	test.Equate(t, field[6], uint8(3|0xaa))
	test.Equate(t, field[7], uint8((0>>1)|0xaa))
	test.Equate(t, field[8], uint8(0|0xaa))

	chk := uint8(DefaultVolume ^ 3 ^ 0)
	test.Equate(t, field[9], (chk>>1)|0xaa)
	test.Equate(t, field[10], chk|0xaa)

	test.Equate(t, field[11], 0xde)
	test.Equate(t, field[12], 0xaa)
	test.Equate(t, field[13], 0xeb)
}

func TestTranslateTables(t *testing.T) {
	// every disk byte must have the high bit set and decode back to its
	// six bit value
	seen := make(map[uint8]bool)
	for i, b := range writeTranslate {
		test.Equate(t, b&0x80, 0x80)
		test.Equate(t, seen[b], false)
		seen[b] = true
		test.Equate(t, int(readTranslate[b]), i)
	}
}
