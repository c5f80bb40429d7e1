// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// Extension is the input suffix Discover looks for, compared case-insensitively.
const Extension = ".ncw"

// Discover returns every regular file under root whose extension is
// Extension, sorted by path.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), Extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, newFileError("discover", root, err)
	}

	slices.Sort(files)
	return files, nil
}
