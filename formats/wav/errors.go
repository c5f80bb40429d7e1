package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrOnlyFloat32Supported = errors.New("only 32-bit IEEE float supported")
	ErrMissingData          = errors.New("WAV data chunk not found")
	ErrMissingFormat        = errors.New("WAV format not set")
)
