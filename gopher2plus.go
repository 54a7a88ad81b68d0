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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gopher2plus/gopher2plus/diskloader"
	"github.com/gopher2plus/gopher2plus/hardware"
	"github.com/gopher2plus/gopher2plus/hardware/cpu"
	"github.com/gopher2plus/gopher2plus/hardware/peripherals/diskii"
	"github.com/gopher2plus/gopher2plus/logger"
	"github.com/gopher2plus/gopher2plus/modalflag"
	"github.com/gopher2plus/gopher2plus/statsview"
	"github.com/gopher2plus/gopher2plus/termkeys"
	"github.com/gopher2plus/gopher2plus/version"
	"github.com/gopher2plus/gopher2plus/wavwriter"
)

// the slot a disk controller is installed in when no mount argument names
// one. slot 6 is where every DOS and ProDOS ever shipped expects to find it.
const defaultDiskSlot = 6

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// keyLatch is the keyboard register pair. Reading $C000 returns the most
// recent keypress with the strobe in bit 7; any access to $C010 clears the
// strobe.
type keyLatch struct {
	lastKey uint8
}

func (kl *keyLatch) press(key uint8) {
	kl.lastKey = key | 0x80
}

func (kl *keyLatch) read(_ uint16) uint8 {
	return kl.lastKey
}

func (kl *keyLatch) clearStrobe(_ uint16) uint8 {
	kl.lastKey &= 0x7f
	return kl.lastKey
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	freerun := md.AddBool("freerun", false, "run the processor as fast as the host allows")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	mach, err := hardware.NewMachine()
	if err != nil {
		return err
	}
	if *freerun {
		mach.Mode = hardware.FreeRun
	}

	mach.AttachProcessor(cpu.NewFetchLoop(mach.Mem))

	// disk controllers are created on demand as mount arguments name their
	// slots. with no arguments at all a controller still goes in the
	// default slot so the machine looks complete
	controllers := make(map[int]*diskii.Controller)

	newController := func(slot int) (*diskii.Controller, error) {
		if ctl, ok := controllers[slot]; ok {
			return ctl, nil
		}
		ctl := diskii.NewController(mach.Clock)
		if err := ctl.Install(slot, mach.Mem); err != nil {
			return nil, err
		}
		if err := mach.Install(slot, ctl); err != nil {
			return nil, err
		}
		controllers[slot] = ctl
		return ctl, nil
	}

	for _, arg := range md.RemainingArgs() {
		ldr, err := diskloader.ParseMount(arg)
		if err != nil {
			return err
		}
		if err := ldr.Load(); err != nil {
			return err
		}

		ctl, err := newController(ldr.Slot)
		if err != nil {
			return err
		}
		if err := ctl.Mount(ldr.Drive, ldr); err != nil {
			return err
		}
	}

	if len(controllers) == 0 {
		if _, err := newController(defaultDiskSlot); err != nil {
			return err
		}
	}

	latch := &keyLatch{}
	if err := mach.Mem.RegisterRead(0xc000, latch.read); err != nil {
		return err
	}
	if err := mach.Mem.RegisterRead(0xc010, latch.clearStrobe); err != nil {
		return err
	}
	err = mach.Mem.RegisterWrite(0xc010, func(_ uint16, _ uint8) {
		latch.clearStrobe(0xc010)
	})
	if err != nil {
		return err
	}

	keys, err := termkeys.New(os.Stdin)
	if err != nil {
		// not running on a terminal. keep going, just without a keyboard
		logger.Logf("main", "no keyboard input: %v", err)
	} else {
		defer keys.Restore()
		keys.OnKey = latch.press
		keys.OnInterrupt = mach.Halt
		mach.AttachEventPoller(keys)
	}

	var mixer *wavwriter.WavWriter
	if *wav != "" {
		mixer, err = wavwriter.New(*wav, mach.RateHz)
		if err != nil {
			return err
		}
		mach.AttachAudioMixer(mixer)
	}

	// ctrl-c comes through termkeys when a terminal is attached; the signal
	// path covers everything else
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		mach.Halt()
	}()

	if err := mach.Reset(); err != nil {
		return err
	}

	runErr := mach.Run(nil)

	if mixer != nil {
		if err := mixer.EndMixing(); err != nil && runErr == nil {
			runErr = err
		}
	}

	if mach.Slips > 0 {
		logger.Logf("main", "%d refresh windows missed their deadline", mach.Slips)
	}

	return runErr
}
