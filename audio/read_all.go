// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src and returns every interleaved sample it produced.
//
// A *BufferSource is copied directly. Other sources are read in chunks of
// src.BufSize() frames.
func ReadAll(src Source) ([]float32, error) {
	if bs, ok := src.(*BufferSource); ok {
		out := make([]float32, len(bs.buf.Data)-bs.pos)
		copy(out, bs.buf.Data[bs.pos:])
		bs.pos = len(bs.buf.Data)
		return out, nil
	}

	channels := max(src.Channels(), 1)
	frames := src.BufSize()
	if frames <= 0 {
		frames = 4096
	}
	buf := make([]float32, frames*channels)

	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// Guard against sources that never reach EOF.
			return nil, io.ErrNoProgress
		}
	}

	return out, nil
}
