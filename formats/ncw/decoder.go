// SPDX-License-Identifier: EPL-2.0

package ncw

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/ncw2wav/audio"
)

// Decode turns a whole NCW file into interleaved, normalized samples.
func Decode(data []byte) (*goaudio.Float32Buffer, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	frames, err := ReadFrameIndex(data, h)
	if err != nil {
		return nil, err
	}

	ch, err := DecodeChannels(data, h, frames)
	if err != nil {
		return nil, err
	}

	return Reconstruct(h, ch)
}

// Decoder adapts Decode to the audio.Decoder interface.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ncw data: %w", err)
	}

	buf, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return audio.NewBufferSource(buf), nil
}
