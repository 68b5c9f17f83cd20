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

package sdlbrowse

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexworth/romdeck/sound"
)

// clickPlayer queues the navigation sound on an SDL audio device. the sample
// is decoded once at startup and the raw bytes requeued on every play.
//
// a nil clickPlayer is valid and silent. the caller does not need to care
// whether the sound file loaded.
type clickPlayer struct {
	id   sdl.AudioDeviceID
	data []byte
}

// newClickPlayer is the preferred method of initialisation for the
// clickPlayer type. an empty path returns a nil player and no error.
func newClickPlayer(path string) (*clickPlayer, error) {
	if path == "" {
		return nil, nil
	}

	pcm, err := sound.LoadPCM(path)
	if err != nil {
		return nil, fmt.Errorf("click: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(pcm.SampleRate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  512,
	}

	cp := &clickPlayer{}

	var actualSpec sdl.AudioSpec
	cp.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("click: %w", err)
	}

	// decoded samples are in the 16bit integer range. the F32 device wants
	// the unit range
	cp.data = make([]byte, 4*len(pcm.Data))
	for i, v := range pcm.Data {
		v /= 32768
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		binary.LittleEndian.PutUint32(cp.data[i*4:], math.Float32bits(v))
	}

	sdl.PauseAudioDevice(cp.id, false)

	return cp, nil
}

// play queues the navigation sound. any sound still playing is cut short so
// that rapid scrolling does not build up a backlog.
func (cp *clickPlayer) play() {
	if cp == nil {
		return
	}
	sdl.ClearQueuedAudio(cp.id)
	_ = sdl.QueueAudio(cp.id, cp.data)
}

func (cp *clickPlayer) destroy() {
	if cp == nil {
		return
	}
	sdl.CloseAudioDevice(cp.id)
}
