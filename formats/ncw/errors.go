package ncw

import (
	"errors"

	"github.com/ik5/ncw2wav/internal/bits"
)

var (
	// ErrTruncatedHeader indicates the input is shorter than the fixed header
	ErrTruncatedHeader = errors.New("truncated NCW header")

	// ErrTruncatedIndex indicates the frame table runs past the end of the input
	ErrTruncatedIndex = errors.New("truncated NCW frame index")

	// ErrInvalidFrameIndex indicates a frame table entry that ends before it starts
	ErrInvalidFrameIndex = errors.New("invalid NCW frame index entry")

	// ErrBufferExhausted indicates a frame or delta stream runs past its data
	ErrBufferExhausted = bits.ErrBufferExhausted

	// ErrInvalidDeltaWidth indicates a delta width above 32 bits
	ErrInvalidDeltaWidth = errors.New("invalid NCW delta width")

	// ErrUnsupportedLayout indicates a channel layout that cannot be reconstructed
	ErrUnsupportedLayout = errors.New("unsupported NCW channel layout")

	// ErrSampleCountOverrun indicates the header claims more samples than the frames hold
	ErrSampleCountOverrun = errors.New("NCW sample count exceeds decoded frames")
)
