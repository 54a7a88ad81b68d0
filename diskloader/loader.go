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

package diskloader

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gopher2plus/gopher2plus/curated"
	"github.com/gopher2plus/gopher2plus/logger"
)

// List of image conventions. A convention describes how the bytes of the
// image file map onto the surface of the disk.
const (
	// sectors stored in DOS 3.3 order
	ConventionDOS = "DO"

	// sectors stored in ProDOS order
	ConventionProDOS = "PO"

	// the image is a pre-encoded nibble stream and bypasses sector encoding
	ConventionNibble = "NIB"
)

// Image file sizes.
const (
	// 35 tracks of 16 sectors of 256 bytes
	SectorImageSize = 143360

	// 35 tracks of 6656 pre-encoded nibbles
	NibbleImageSize = 232960
)

// Loader is a request to mount a disk image in a drive. It also carries the
// image data once Load() has been called.
type Loader struct {
	// where the image should be mounted
	Slot  int
	Drive int

	// filename of image to load
	Filename string

	// the image convention, decided by file extension
	Convention string

	// copy of the loaded image data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The image convention is decided by the file extension. Extensions ".do"
// and ".dsk" indicate DOS 3.3 sector order; ".po" indicates ProDOS sector
// order; ".nib" indicates a pre-encoded nibble image. Alphabetic characters
// in file extensions can be in upper or lower case or a mixture of both.
func NewLoader(filename string) (Loader, error) {
	ldr := Loader{
		Filename: filename,
		Drive:    0,
	}

	ext := strings.ToUpper(filepath.Ext(filename))
	switch ext {
	case ".DO":
		fallthrough
	case ".DSK":
		ldr.Convention = ConventionDOS
	case ".PO":
		ldr.Convention = ConventionProDOS
	case ".NIB":
		ldr.Convention = ConventionNibble
	default:
		return Loader{}, curated.Errorf("diskloader: unrecognised file extension (%s)", ext)
	}

	return ldr, nil
}

// ParseMount interprets a mount request of the form "sXdY=filename", where X
// is a slot number and Y is a drive number (1 or 2).
func ParseMount(arg string) (Loader, error) {
	i := strings.Index(arg, "=")
	if i < 0 || !strings.HasPrefix(strings.ToLower(arg), "s") {
		return Loader{}, curated.Errorf("diskloader: invalid mount request (%s). expected sXdY=filename", arg)
	}

	spec := strings.ToLower(arg[:i])
	j := strings.Index(spec, "d")
	if j < 0 {
		return Loader{}, curated.Errorf("diskloader: invalid mount request (%s). expected sXdY=filename", arg)
	}

	slot, err := strconv.Atoi(spec[1:j])
	if err != nil {
		return Loader{}, curated.Errorf("diskloader: invalid slot in mount request (%s)", arg)
	}

	drive, err := strconv.Atoi(spec[j+1:])
	if err != nil || (drive != 1 && drive != 2) {
		return Loader{}, curated.Errorf("diskloader: invalid drive in mount request (%s)", arg)
	}

	ldr, err := NewLoader(arg[i+1:])
	if err != nil {
		return Loader{}, err
	}

	ldr.Slot = slot
	ldr.Drive = drive - 1

	return ldr, nil
}

// Load the image file named in the Loader. The file size must agree with the
// convention decided at creation time.
func (ldr *Loader) Load() error {
	data, err := os.ReadFile(ldr.Filename)
	if err != nil {
		return curated.Errorf("diskloader: %v", err)
	}

	switch ldr.Convention {
	case ConventionNibble:
		if len(data) != NibbleImageSize {
			return curated.Errorf("diskloader: %s: wrong size for a nibble image (%d bytes)", ldr.Filename, len(data))
		}
	default:
		if len(data) != SectorImageSize {
			return curated.Errorf("diskloader: %s: wrong size for a sector image (%d bytes)", ldr.Filename, len(data))
		}
	}

	ldr.Data = data

	logger.Logf("diskloader", "%s loaded (%s convention)", ldr.Filename, ldr.Convention)

	return nil
}
