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

import "github.com/gopher2plus/gopher2plus/curated"

// DefaultVolume is the volume number stamped into the address field of every
// sector of an encoded disk. DOS 3.3 formatted its disks as volume 254 and a
// lot of software checks for exactly that.
const DefaultVolume = 0xfe

// gap sizes in sync bytes. these are the DOS 3.3 formatter's values and with
// them each encoded sector occupies 416 nibbles, leaving a little room at the
// end of the 6656 nibble track.
const (
	gap1 = 16 // before the address field
	gap2 = 8  // between address and data fields
	gap3 = 29 // after the data field
)

const syncByte = 0xff

// encodeTrack converts 16 sectors worth of user data (4096 bytes) into a
// nibble stream of TrackLength bytes. Sectors are laid down in physical
// order; the interleave maps each physical slot to the logical sector that
// supplies its payload.
func encodeTrack(data []uint8, track int, volume uint8, interleave Interleave) []uint8 {
	nib := make([]uint8, 0, TrackLength)

	for phys := 0; phys < NumSectors; phys++ {
		logical := int(interleave.PhysToLogical[phys])
		sector := data[logical*SectorLength : (logical+1)*SectorLength]

		for i := 0; i < gap1; i++ {
			nib = append(nib, syncByte)
		}

		// address field. the checksum is the simple XOR of the three
		// preceding values
		nib = append(nib, 0xd5, 0xaa, 0x96)
		nib = fourAndFour(nib, volume)
		nib = fourAndFour(nib, uint8(track))
		nib = fourAndFour(nib, uint8(phys))
		nib = fourAndFour(nib, volume^uint8(track)^uint8(phys))
		nib = append(nib, 0xde, 0xaa, 0xeb)

		for i := 0; i < gap2; i++ {
			nib = append(nib, syncByte)
		}

		// data field
		nib = append(nib, 0xd5, 0xaa, 0xad)
		nib = encodeSector62(nib, sector)
		nib = append(nib, 0xde, 0xaa, 0xeb)

		for i := 0; i < gap3; i++ {
			nib = append(nib, syncByte)
		}
	}

	// pad the remainder of the track with sync bytes
	for len(nib) < TrackLength {
		nib = append(nib, syncByte)
	}

	return nib[:TrackLength]
}

// fourAndFour appends the two nibble 4-and-4 encoding of v. The odd bits go
// in the first nibble and the even bits in the second, each interleaved with
// set bits so the result is always a valid disk byte.
func fourAndFour(nib []uint8, v uint8) []uint8 {
	return append(nib, (v>>1)|0xaa, v|0xaa)
}

// encodeSector62 appends the 6-and-2 encoding of a 256 byte sector: 86
// auxiliary nibbles holding the low two bits of every byte, 256 primary
// nibbles holding the high six bits, and a trailing checksum nibble. Each
// nibble is XORed with its predecessor before translation, which is what
// makes the scheme self-checksumming.
func encodeSector62(nib []uint8, data []uint8) []uint8 {
	var aux [86]uint8
	var primary [256]uint8

	for i := 0; i < SectorLength; i++ {
		v := data[i]
		// the two low bits are stored swapped
		aux[i%86] = (aux[i%86] << 2) | ((v & 0x01) << 1) | ((v & 0x02) >> 1)
		primary[i] = v >> 2
	}

	prev := uint8(0)
	for i := 85; i >= 0; i-- {
		nib = append(nib, writeTranslate[(prev^aux[i])&0x3f])
		prev = aux[i]
	}
	for i := 0; i < 256; i++ {
		nib = append(nib, writeTranslate[(prev^primary[i])&0x3f])
		prev = primary[i]
	}
	return append(nib, writeTranslate[prev&0x3f])
}

// decodeSector62 reverses encodeSector62. The input is the 343 nibbles of a
// data field, between the prologue and epilogue marks. Used by tests and by
// image extraction; the read path proper never decodes, it hands raw nibbles
// to the software in the machine.
func decodeSector62(nib []uint8) ([]uint8, error) {
	if len(nib) != 343 {
		return nil, curated.Errorf("diskii: wrong number of nibbles for a data field (%d)", len(nib))
	}

	var six [342]uint8
	prev := uint8(0)
	for i := 0; i < 342; i++ {
		t := readTranslate[nib[i]]
		if t < 0 {
			return nil, curated.Errorf("diskii: invalid disk byte (%02x)", nib[i])
		}
		six[i] = prev ^ uint8(t)
		prev = six[i]
	}

	t := readTranslate[nib[342]]
	if t < 0 || prev^uint8(t) != 0 {
		return nil, curated.Errorf("diskii: data field checksum mismatch")
	}

	data := make([]uint8, SectorLength)
	for i := 0; i < 256; i++ {
		data[i] = six[86+i] << 2
	}

	// auxiliary nibbles were written in reverse order
	for j := 0; j < 86; j++ {
		a := six[85-j]
		if j < 84 {
			data[j] |= unswap((a >> 4) & 0x03)
			data[j+86] |= unswap((a >> 2) & 0x03)
			data[j+172] |= unswap(a & 0x03)
		} else {
			data[j] |= unswap((a >> 2) & 0x03)
			data[j+86] |= unswap(a & 0x03)
		}
	}

	return data, nil
}

// unswap exchanges the two low bits. it is its own inverse.
func unswap(v uint8) uint8 {
	return ((v & 0x01) << 1) | ((v & 0x02) >> 1)
}
