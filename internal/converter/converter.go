// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ik5/ncw2wav/audio"
	"github.com/ik5/ncw2wav/formats/ncw"
	"github.com/ik5/ncw2wav/formats/wav"
)

// Options configures a Converter.
type Options struct {
	OutputDir string    // empty writes each WAV next to its input
	Workers   int       // <= 0 means runtime.NumCPU()
	Stdout    io.Writer // progress lines; nil discards
	Stderr    io.Writer // failures; nil discards
}

// Result is the outcome of converting one file.
type Result struct {
	Input  string
	Output string
	Frames int
	Err    error
}

// Converter turns NCW files into float WAV files.
type Converter struct {
	opts     Options
	registry *audio.Registry
	stdout   io.Writer
	stderr   io.Writer
}

// New returns a Converter with ncw.Decoder registered for Extension.
func New(opts Options) *Converter {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	registry := audio.NewRegistry()
	registry.Register(Extension, ncw.Decoder{})

	return &Converter{
		opts:     opts,
		registry: registry,
		stdout:   newLockedWriter(opts.Stdout),
		stderr:   newLockedWriter(opts.Stderr),
	}
}

// ConvertFile converts input, found under root, and writes the WAV to the
// path OutputPath chooses.
func (c *Converter) ConvertFile(root, input string) Result {
	res := Result{Input: input, Output: OutputPath(root, input, c.opts.OutputDir)}

	res.Frames, res.Err = c.convert(input, res.Output)
	if res.Err != nil {
		fmt.Fprintf(c.stderr, "failed %s: %v\n", input, res.Err)
		return res
	}

	fmt.Fprintf(c.stdout, "wrote %s (%d frames)\n", res.Output, res.Frames)
	return res
}

func (c *Converter) convert(input, output string) (int, error) {
	decoder, ok := c.registry.Get(filepath.Ext(input))
	if !ok {
		err := fmt.Errorf("%w: %q, known formats: %s", ErrNoDecoder, filepath.Ext(input), strings.Join(c.registry.Formats(), ", "))
		return 0, newFileError("decode", input, err)
	}

	fmt.Fprintf(c.stdout, "opening %s\n", input)

	f, err := os.Open(input)
	if err != nil {
		return 0, newFileError("decode", input, err)
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		return 0, newFileError("decode", input, err)
	}
	defer src.Close()

	frames := 0
	if bs, ok := src.(*audio.BufferSource); ok {
		frames = bs.Frames()
	}

	err = writeAtomic(output, func(w io.Writer) error {
		return wav.WriteSource(w, src)
	})
	if err != nil {
		return 0, newFileError("write", output, fmt.Errorf("%w: %w", ErrOutputWrite, err))
	}

	return frames, nil
}

// writeAtomic writes to a temp file beside path and renames it into place,
// so a failure never leaves a partial file at path.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Run converts inputs on a pool of Options.Workers goroutines and returns
// one Result per input, in input order. A failing file does not stop the
// others. Once ctx is done, files that have not started yet fail with the
// context's error; a file already being converted runs to completion.
func (c *Converter) Run(ctx context.Context, root string, inputs []string) []Result {
	results := make([]Result, len(inputs))
	jobs := make(chan int, c.opts.Workers*2)

	var wg sync.WaitGroup
	for range min(c.opts.Workers, len(inputs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = c.cancelled(root, inputs[i], err)
					continue
				}
				results[i] = c.ConvertFile(root, inputs[i])
			}
		}()
	}

	for i := range inputs {
		if err := ctx.Err(); err != nil {
			results[i] = c.cancelled(root, inputs[i], err)
			continue
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			results[i] = c.cancelled(root, inputs[i], ctx.Err())
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (c *Converter) cancelled(root, input string, err error) Result {
	return Result{
		Input:  input,
		Output: OutputPath(root, input, c.opts.OutputDir),
		Err:    newFileError("convert", input, err),
	}
}

// Summary counts the outcomes of a Run.
type Summary struct {
	Converted int
	Failed    int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Converted++
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("converted %d/%d files, %d failed", s.Converted, s.Converted+s.Failed, s.Failed)
}

// OK reports whether every file converted.
func (s Summary) OK() bool {
	return s.Failed == 0
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func newLockedWriter(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return &lockedWriter{w: w}
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
