package wav

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrOnlyFloat32Supported", ErrOnlyFloat32Supported, "only 32-bit IEEE float supported"},
		{"ErrMissingData", ErrMissingData, "WAV data chunk not found"},
		{"ErrMissingFormat", ErrMissingFormat, "WAV format not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}

			wrappedErr := errors.Join(tt.err, errors.New("additional context"))
			if !errors.Is(wrappedErr, tt.err) {
				t.Errorf("errors.Is(wrappedErr, %s) = false, want true", tt.name)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrNotWavFile,
		ErrOnlyFloat32Supported,
		ErrMissingData,
		ErrMissingFormat,
	}

	for i := range allErrors {
		for j := range allErrors {
			if i != j && errors.Is(allErrors[i], allErrors[j]) {
				t.Errorf("errors[%d] matches errors[%d]", i, j)
			}
		}
	}
}
