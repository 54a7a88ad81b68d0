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

import "fmt"

// DriveStatus is a snapshot of one drive's externally interesting state.
type DriveStatus struct {
	Mounted      bool
	Filename     string
	Motor        bool
	Track        int // half-track units
	HeadPosition int
	WriteProtect bool
}

func (s DriveStatus) String() string {
	if !s.Mounted {
		return "no disk"
	}
	motor := "off"
	if s.Motor {
		motor = "on"
	}
	return fmt.Sprintf("%s: track %d motor %s", s.Filename, s.Track/2, motor)
}

// Status returns a snapshot of the numbered drive. A zero value is returned
// for an invalid drive number.
func (ctl *Controller) Status(drive int) DriveStatus {
	if drive < 0 || drive >= NumDrives {
		return DriveStatus{}
	}
	drv := &ctl.drives[drive]
	return DriveStatus{
		Mounted:      drv.mounted,
		Filename:     drv.filename,
		Motor:        drv.Motor,
		Track:        drv.Track,
		HeadPosition: drv.HeadPosition,
		WriteProtect: drv.WriteProtect,
	}
}
