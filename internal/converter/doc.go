// SPDX-License-Identifier: EPL-2.0

// Package converter batch-converts NCW files found under a directory into
// 32-bit float WAV files.
//
//	files, err := converter.Discover(root)
//	conv := converter.New(converter.Options{OutputDir: out, Stdout: os.Stdout, Stderr: os.Stderr})
//	results := conv.Run(ctx, root, files)
//	fmt.Println(converter.Summarize(results))
//
// Each file is decoded and written on its own; one bad file is reported in
// its Result and the rest still convert. Output is written to a temporary
// file and renamed into place.
package converter
