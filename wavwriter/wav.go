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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// on program end. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopher2plus/gopher2plus/curated"
	"github.com/gopher2plus/gopher2plus/logger"
)

// SampleFreq is the number of samples per second in the written file.
const SampleFreq = 44100

// 8-bit unsigned PCM midpoint. until a speaker device is emulated the
// machine produces no audio events and the stream is silence; what matters
// now is that the file's length tracks emulated time exactly.
const silence = 128

// WavWriter implements the hardware.AudioMixer interface.
type WavWriter struct {
	filename string
	rateHz   int64
	buffer   []int

	// fractional sample accumulator. cycle windows do not divide into whole
	// samples so the remainder carries over to the next window
	remainder uint64
}

// New is the preferred method of initialisation for the WavWriter type.
// rateHz is the emulated clock rate; it converts cycle counts into seconds
// of audio.
func New(filename string, rateHz int64) (*WavWriter, error) {
	if rateHz <= 0 {
		return nil, curated.Errorf("wavwriter: invalid clock rate (%d)", rateHz)
	}

	aw := &WavWriter{
		filename: filename,
		rateHz:   rateHz,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// GenerateFrame implements the hardware.AudioMixer interface. The number of
// samples appended is proportional to the cycle window just executed, so the
// audio stream stays aligned with emulated time rather than wall-clock time.
func (aw *WavWriter) GenerateFrame(startCycle uint64, endCycle uint64) error {
	if endCycle < startCycle {
		return curated.Errorf("wavwriter: cycle window runs backwards")
	}

	n := (endCycle-startCycle)*SampleFreq + aw.remainder
	samples := n / uint64(aw.rateHz)
	aw.remainder = n % uint64(aw.rateHz)

	for i := uint64(0); i < samples; i++ {
		aw.buffer = append(aw.buffer, silence)
	}

	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleFreq},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf("wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
