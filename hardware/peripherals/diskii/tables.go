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

// The six-and-two write translate table. Maps a six bit value onto the
// nibble actually recorded on the disk surface. Every entry has the high bit
// set, no more than one pair of consecutive zero bits, and at least one pair
// of consecutive one bits (the sync nibble 0xff excepted). Published in
// "Beneath Apple DOS", page 3-21.
var writeTranslate = [64]uint8{
	0x96, 0x97, 0x9a, 0x9b, 0x9d, 0x9e, 0x9f, 0xa6,
	0xa7, 0xab, 0xac, 0xad, 0xae, 0xaf, 0xb2, 0xb3,
	0xb4, 0xb5, 0xb6, 0xb7, 0xb9, 0xba, 0xbb, 0xbc,
	0xbd, 0xbe, 0xbf, 0xcb, 0xcd, 0xce, 0xcf, 0xd3,
	0xd6, 0xd7, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde,
	0xdf, 0xe5, 0xe6, 0xe7, 0xe9, 0xea, 0xeb, 0xec,
	0xed, 0xee, 0xef, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6,
	0xf7, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
}

// readTranslate is the inverse of writeTranslate. Entries that do not
// correspond to a valid nibble are -1.
var readTranslate [256]int16

func init() {
	for i := range readTranslate {
		readTranslate[i] = -1
	}
	for i, v := range writeTranslate {
		readTranslate[v] = int16(i)
	}
}

// Interleave is a pair of sector permutation tables: the physical position
// of a sector on the track to the logical sector number stored at that
// position, and the inverse.
type Interleave struct {
	PhysToLogical [16]int
	LogicalToPhys [16]int
}

// DOSOrder is the sector interleave used by DOS 3.3 images (.do and .dsk
// files).
var DOSOrder = Interleave{
	PhysToLogical: [16]int{0, 7, 14, 6, 13, 5, 12, 4, 11, 3, 10, 2, 9, 1, 8, 15},
	LogicalToPhys: [16]int{0, 13, 11, 9, 7, 5, 3, 1, 14, 12, 10, 8, 6, 4, 2, 15},
}

// ProDOSOrder is the sector interleave used by ProDOS images (.po files).
var ProDOSOrder = Interleave{
	PhysToLogical: [16]int{0, 8, 1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15},
	LogicalToPhys: [16]int{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15},
}
