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

package diskloader_test

import (
	"testing"

	"github.com/gopher2plus/gopher2plus/diskloader"
	"github.com/gopher2plus/gopher2plus/test"
)

func TestExtensions(t *testing.T) {
	ldr, err := diskloader.NewLoader("game.dsk")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ldr.Convention, diskloader.ConventionDOS)

	ldr, err = diskloader.NewLoader("game.DO")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ldr.Convention, diskloader.ConventionDOS)

	ldr, err = diskloader.NewLoader("system.po")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ldr.Convention, diskloader.ConventionProDOS)

	ldr, err = diskloader.NewLoader("copyprotected.nib")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ldr.Convention, diskloader.ConventionNibble)

	_, err = diskloader.NewLoader("harddrive.hdv")
	test.ExpectedFailure(t, err)

	_, err = diskloader.NewLoader("noextension")
	test.ExpectedFailure(t, err)
}

func TestParseMount(t *testing.T) {
	ldr, err := diskloader.ParseMount("s6d1=game.dsk")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ldr.Slot, 6)
	test.Equate(t, ldr.Drive, 0)
	test.Equate(t, ldr.Filename, "game.dsk")
	test.Equate(t, ldr.Convention, diskloader.ConventionDOS)

	ldr, err = diskloader.ParseMount("s6d2=system.po")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ldr.Drive, 1)

	_, err = diskloader.ParseMount("game.dsk")
	test.ExpectedFailure(t, err)

	_, err = diskloader.ParseMount("s6d3=game.dsk")
	test.ExpectedFailure(t, err)

	_, err = diskloader.ParseMount("s6=game.dsk")
	test.ExpectedFailure(t, err)
}
