// This file is part of RomDeck.
//
// RomDeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RomDeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RomDeck.  If not, see <https://www.gnu.org/licenses/>.

package sound

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// PCM is a decoded sample, mono, ready for queueing to an audio device.
type PCM struct {
	// in seconds
	TotalTime float64

	SampleRate float64

	// mono data (taken from the left channel in the case of stereo source
	// files)
	Data []float32
}

// LoadPCM decodes a WAV or MP3 file, identified by extension, into mono
// float32 PCM.
func LoadPCM(path string) (PCM, error) {
	p := PCM{
		Data: make([]float32, 0),
	}

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("sound: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil || !dec.IsValidFile() {
			return p, fmt.Errorf("sound: wav: not a valid wav file")
		}

		// load all data at once. navigation samples are short
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, fmt.Errorf("sound: wav: %w", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of the data stream
		p.Data = make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
		for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
			p.Data = append(p.Data, floatBuf.Data[i])
		}

		p.SampleRate = float64(dec.SampleRate)

		dur, err := dec.Duration()
		if err != nil {
			return p, fmt.Errorf("sound: wav: %w", err)
		}
		p.TotalTime = dur.Seconds()

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return p, fmt.Errorf("sound: mp3: %w", err)
		}

		err = nil
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, fmt.Errorf("sound: mp3: %w", err)
			}

			// the go-mp3 stream is always 16bit little-endian two channel.
			// an index increment of 4 takes the left channel only
			for i := 2; i < chunkLen; i += 4 {
				f := int(chunk[i]) | (int(chunk[i+1]) << 8)

				// interpret as two's complement
				if f != 0 {
					f -= 32768
				}

				p.Data = append(p.Data, float32(f))
			}
		}

		p.SampleRate = float64(dec.SampleRate())
		p.TotalTime = float64(len(p.Data)) / p.SampleRate

	default:
		return p, fmt.Errorf("sound: unsupported file type (%s)", filepath.Ext(path))
	}

	return p, nil
}
