// SPDX-License-Identifier: EPL-2.0

// Command ncw2wav converts every NCW file under a directory to a 32-bit
// float WAV file.
//
// Usage:
//
//	ncw2wav -i <input dir> [-o <output dir>]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/ncw2wav/internal/converter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code: 0 when every file converts, 1 when any
// fails, 2 for bad arguments.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ncw2wav", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputDir  string
		outputDir string
	)
	fs.StringVar(&inputDir, "i", "", "directory to search for .ncw files (required)")
	fs.StringVar(&inputDir, "input-dir", "", "same as -i")
	fs.StringVar(&outputDir, "o", "", "directory for .wav files; defaults to beside each input")
	fs.StringVar(&outputDir, "output-dir", "", "same as -o")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ncw2wav -i <input dir> [-o <output dir>]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if inputDir == "" || fs.NArg() > 0 {
		fmt.Fprintln(stderr, "error: an input directory is required and no positional arguments are accepted")
		fs.Usage()
		return 2
	}

	info, err := os.Stat(inputDir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if !info.IsDir() {
		fmt.Fprintf(stderr, "error: %s is not a directory\n", inputDir)
		return 2
	}

	files, err := converter.Discover(inputDir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "found %d NCW files in %s\n", len(files), inputDir)

	conv := converter.New(converter.Options{
		OutputDir: outputDir,
		Stdout:    stdout,
		Stderr:    stderr,
	})
	summary := converter.Summarize(conv.Run(ctx, inputDir, files))

	fmt.Fprintln(stdout, summary)
	if !summary.OK() {
		return 1
	}
	return 0
}
