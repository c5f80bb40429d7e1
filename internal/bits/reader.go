// SPDX-License-Identifier: EPL-2.0

// Package bits reads fixed-width bit fields from a byte slice.
//
// Fields are packed least-significant bit first: the first bit of a field is
// bit 0 of the first unread byte. The reader carries nothing but the buffer
// and a bit position, so two readers over different buffers never interact.
package bits

// MaxWidth is the widest field ReadBits accepts.
const MaxWidth = 32

// Reader is a bit cursor over a byte slice.
type Reader struct {
	buf    []byte
	bitPos uint64
}

// NewReader creates a Reader positioned at the first bit of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the size of the underlying buffer in bytes.
func (r *Reader) Len() int { return len(r.buf) }

// BitPos returns the number of bits consumed so far.
func (r *Reader) BitPos() uint64 { return r.bitPos }

// Offset returns the number of bytes touched so far. A partially consumed
// byte counts as consumed.
func (r *Reader) Offset() int {
	return int((r.bitPos + 7) / 8)
}

// ReadBits reads width bits and returns them as an unsigned value.
//
// A width of zero returns 0 and leaves the cursor where it was. When the
// buffer holds fewer than width unread bits, ErrBufferExhausted is returned
// and the cursor does not move.
func (r *Reader) ReadBits(width uint) (uint32, error) {
	if width == 0 {
		return 0, nil
	}
	if width > MaxWidth {
		return 0, ErrInvalidWidth
	}
	if r.bitPos+uint64(width) > uint64(len(r.buf))*8 {
		return 0, ErrBufferExhausted
	}

	var v uint64
	var got uint
	pos := r.bitPos
	for got < width {
		byteIdx := pos >> 3
		shift := uint(pos & 7)
		take := min(8-shift, width-got)
		chunk := (uint64(r.buf[byteIdx]) >> shift) & (1<<take - 1)
		v |= chunk << got
		got += take
		pos += uint64(take)
	}

	r.bitPos = pos
	return uint32(v), nil
}

// Align moves the cursor up to the next multiple of n bytes, measured from
// the start of the buffer. The cursor may end up past the end of the buffer;
// any read from there fails with ErrBufferExhausted.
func (r *Reader) Align(n int) {
	if n <= 1 {
		r.bitPos = uint64(r.Offset()) * 8
		return
	}
	off := uint64(r.Offset())
	if rem := off % uint64(n); rem != 0 {
		off += uint64(n) - rem
	}
	r.bitPos = off * 8
}

// SignExtend interprets the low width bits of v as a two's-complement value
// whose sign bit is bit width-1.
func SignExtend(v uint32, width uint) int32 {
	if width == 0 {
		return 0
	}
	if width >= MaxWidth {
		return int32(v)
	}
	shift := MaxWidth - width
	return int32(v<<shift) >> shift
}
