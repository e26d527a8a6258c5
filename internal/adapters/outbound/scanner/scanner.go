package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
}

var profileExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// FileScanner implements domain.ProfileScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns every profile document under root, sorted. A root that does
// not exist holds no profiles.
func (s *FileScanner) Scan(root string, excludePaths ...string) ([]string, error) {
	if _, err := os.Stat(root); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	// Merge extra excludes with built-in skip dirs.
	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[filepath.Clean(strings.TrimSuffix(p, "/"))] = true
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(root, path)
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[relPath]) {
				return filepath.SkipDir
			}
			return nil
		}

		if extraSkip[relPath] || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if profileExts[strings.ToLower(filepath.Ext(d.Name()))] {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}
