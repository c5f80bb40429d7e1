// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// BufferSource serves an in-memory go-audio buffer through the Source interface.
type BufferSource struct {
	buf *goaudio.Float32Buffer
	pos int
}

// NewBufferSource wraps buf. The buffer is read, never modified.
func NewBufferSource(buf *goaudio.Float32Buffer) *BufferSource {
	return &BufferSource{buf: buf}
}

func (s *BufferSource) SampleRate() int {
	if s.buf.Format == nil {
		return 0
	}
	return s.buf.Format.SampleRate
}

func (s *BufferSource) Channels() int {
	if s.buf.Format == nil || s.buf.Format.NumChannels == 0 {
		return 1
	}
	return s.buf.Format.NumChannels
}

func (s *BufferSource) BufSize() int { return 4096 }
func (s *BufferSource) Close() error { return nil }

// Frames returns the total number of sample frames in the buffer.
func (s *BufferSource) Frames() int { return len(s.buf.Data) / s.Channels() }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.Channels() != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.buf.Data) {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := copy(dst, s.buf.Data[s.pos:])
	s.pos += n
	if s.pos >= len(s.buf.Data) {
		return n, io.EOF
	}
	return n, nil
}
