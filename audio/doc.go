// SPDX-License-Identifier: EPL-2.0

// Package audio provides the interfaces shared by the format packages.
//
// # Source Interface
//
// A Source delivers interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Format decoders return a Source, and the WAV writer consumes one.
//
// # Buffer Sources
//
// Decoders that produce a whole file at once wrap their result in a
// BufferSource, which serves a github.com/go-audio/audio Float32Buffer:
//
//	src := audio.NewBufferSource(buf)
//	samples, err := audio.ReadAll(src)
//
// # Format Registry
//
// The registry maps a format key, usually a file extension, to a Decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("ncw", ncw.Decoder{})
//	decoder, ok := registry.Get(filepath.Ext(path))
//
// Keys are case-insensitive and a leading dot is ignored.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
