// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/ncw2wav/audio"
)

// Decoder reads 32-bit IEEE float WAV files, such as the ones WriteFloat32
// produces, through github.com/go-audio/wav. Chunks other than fmt and data
// (fact, LIST, ...) are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != FormatIEEEFloat || dec.BitDepth != 32 {
		return nil, fmt.Errorf("%w: format %d, %d bits", ErrOnlyFloat32Supported, dec.WavAudioFormat, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrMissingData
	}

	raw := make([]byte, dec.PCMSize)
	n, err := io.ReadFull(dec.PCMChunk.R, raw)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}
	raw = raw[:n-n%bytesPerSample]

	samples := make([]float32, len(raw)/bytesPerSample)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*bytesPerSample:]))
	}

	channels := max(int(dec.NumChans), 1)
	samples = samples[:len(samples)-len(samples)%channels]

	return audio.NewBufferSource(&goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  int(dec.SampleRate),
		},
		Data:           samples,
		SourceBitDepth: int(dec.BitDepth),
	}), nil
}
