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

// Package termkeys reads keypresses from the controlling terminal and
// delivers them to the machine, one per poll. The terminal is put into
// cbreak mode with blocking disabled so that Poll() returns immediately
// whether or not a key is waiting; the scheduler calls it sixty times a
// second and must never stall on it.
package termkeys

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/gopher2plus/gopher2plus/curated"
	"github.com/gopher2plus/gopher2plus/logger"
)

const ctrlC = 0x03

// Keys implements the hardware.EventPoller interface.
type Keys struct {
	input *os.File

	// terminal attributes at startup, restored by Restore()
	savedAttr  unix.Termios
	cbreakAttr unix.Termios
	restored   bool

	// OnKey is called with each keypress read from the terminal. A nil
	// value discards keypresses.
	OnKey func(key uint8)

	// OnInterrupt is called when ctrl-c is pressed. With the terminal in
	// cbreak mode no SIGINT is generated so the interpretation is ours.
	OnInterrupt func()
}

// New is the preferred method of initialisation for the Keys type. The
// terminal is left in cbreak mode until Restore() is called.
func New(input *os.File) (*Keys, error) {
	ks := &Keys{input: input}

	if err := termios.Tcgetattr(input.Fd(), &ks.savedAttr); err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}

	ks.cbreakAttr = ks.savedAttr
	termios.Cfmakecbreak(&ks.cbreakAttr)

	// non-blocking reads. a read with no key waiting returns immediately
	// with nothing
	ks.cbreakAttr.Cc[unix.VMIN] = 0
	ks.cbreakAttr.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &ks.cbreakAttr); err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}

	return ks, nil
}

// Restore the terminal to the state it was in before New(). Safe to call
// more than once.
func (ks *Keys) Restore() {
	if ks.restored {
		return
	}
	ks.restored = true
	if err := termios.Tcsetattr(ks.input.Fd(), termios.TCIFLUSH, &ks.savedAttr); err != nil {
		logger.Logf("termkeys", "restoring terminal: %v", err)
	}
}

// Poll implements the hardware.EventPoller interface. At most one keypress
// is delivered per call.
func (ks *Keys) Poll() error {
	buf := make([]uint8, 1)
	n, err := ks.input.Read(buf)
	if err != nil || n == 0 {
		// in non-blocking mode an empty read is the common case and not
		// worth distinguishing from a genuine error
		return nil
	}

	if buf[0] == ctrlC {
		if ks.OnInterrupt != nil {
			ks.OnInterrupt()
		}
		return nil
	}

	if ks.OnKey != nil {
		ks.OnKey(buf[0])
	}

	return nil
}
