package index

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// item roots carry images and frame data next to the definitions
	ignoredItemFile = regexp.MustCompile(`^.*\.(png|config|frames|coinitem)`)
	recipeFile      = regexp.MustCompile(`^.*\.recipe`)
)

const (
	objectSuffix = ".object"
	techSuffix   = ".techitem"
)

// candidate is an asset file found during a walk.
type candidate struct {
	Filename string
	Folder   string
}

func (c candidate) path() string {
	return filepath.Join(c.Folder, c.Filename)
}

func (c candidate) isTech() bool {
	return strings.HasSuffix(c.Filename, techSuffix)
}

func isItemFile(name string) bool   { return !ignoredItemFile.MatchString(name) }
func isObjectFile(name string) bool { return strings.HasSuffix(name, objectSuffix) }
func isTechFile(name string) bool   { return strings.HasSuffix(name, techSuffix) }
func isRecipeFile(name string) bool { return recipeFile.MatchString(name) }

// collect walks root in lexical order and returns every regular file accepted
// by match. A missing root yields no candidates; unreadable sub-directories
// are skipped.
func collect(root string, match func(name string) bool) ([]candidate, error) {
	if root == "" {
		return nil, nil
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var found []candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !match(d.Name()) {
			return nil
		}
		found = append(found, candidate{
			Filename: d.Name(),
			Folder:   filepath.Dir(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
