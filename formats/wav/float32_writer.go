// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/ik5/ncw2wav/audio"
)

const (
	// FormatIEEEFloat is the WAVE format tag for IEEE float samples.
	FormatIEEEFloat = 3

	// HeaderSize is the size of everything WriteFloat32 writes before the samples.
	HeaderSize = 56

	bytesPerSample = 4
)

// WriteFloat32 writes a 32-bit IEEE float WAV with a fact chunk.
// samples are interleaved; their count must be a multiple of channels.
func WriteFloat32(w io.Writer, sampleRate, channels int, samples []float32) error {
	if channels < 1 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", audio.ErrInvalidDstSize, len(samples), channels)
	}

	frames := uint32(len(samples) / channels)
	dataSize := frames * bytesPerSample * uint32(channels)
	riffSize := dataSize + 0x24 + 0xC

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], FormatIEEEFloat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*bytesPerSample*uint32(channels))
	// Block align stays at one sample's width for every channel count.
	binary.LittleEndian.PutUint16(header[32:34], bytesPerSample)
	binary.LittleEndian.PutUint16(header[34:36], bytesPerSample*8)

	// fact chunk (12 bytes)
	copy(header[36:40], "fact")
	binary.LittleEndian.PutUint32(header[40:44], 4)
	binary.LittleEndian.PutUint32(header[44:48], frames)

	// data chunk header (8 bytes)
	copy(header[48:52], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[52:56], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	const chunkSize = 2048 // samples, 8KB per write
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)
	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			binary.LittleEndian.PutUint32(buf[j*bytesPerSample:], math.Float32bits(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	return nil
}

// WriteBuffer writes a go-audio float buffer with WriteFloat32.
func WriteBuffer(w io.Writer, buf *goaudio.Float32Buffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: buffer has no format", ErrMissingFormat)
	}
	return WriteFloat32(w, buf.Format.SampleRate, buf.Format.NumChannels, buf.Data)
}

// WriteSource drains src and writes everything it produced.
func WriteSource(w io.Writer, src audio.Source) error {
	samples, err := audio.ReadAll(src)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	return WriteFloat32(w, src.SampleRate(), src.Channels(), samples)
}
