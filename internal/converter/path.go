// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"path/filepath"
	"strings"
)

// OutputPath returns where the WAV for input goes.
//
// With an empty outDir the WAV sits next to input. Otherwise input's
// directory relative to root is recreated under outDir, so files with the
// same name in different folders do not overwrite each other. Inputs outside
// root land directly in outDir.
func OutputPath(root, input, outDir string) string {
	name := filepath.Base(input)
	if ext := filepath.Ext(name); strings.EqualFold(ext, Extension) {
		name = strings.TrimSuffix(name, ext)
	}
	name += ".wav"

	dir := filepath.Dir(input)
	if outDir == "" {
		return filepath.Join(dir, name)
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil || !filepath.IsLocal(rel) {
		rel = ""
	}
	return filepath.Join(outDir, rel, name)
}
