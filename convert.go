// SPDX-License-Identifier: EPL-2.0

package ncw2wav

import (
	"io"

	"github.com/ik5/ncw2wav/formats/ncw"
	"github.com/ik5/ncw2wav/formats/wav"
)

// Convert decodes an NCW stream from r and writes it to w as a 32-bit float
// WAV file. Nothing is written if decoding fails.
func Convert(r io.Reader, w io.Writer) error {
	src, err := ncw.Decoder{}.Decode(r)
	if err != nil {
		return err
	}
	defer src.Close()

	return wav.WriteSource(w, src)
}
