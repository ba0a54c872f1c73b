package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// MaxTemplateSize bounds template files read from disk.
const MaxTemplateSize = 1 << 20 // 1 MiB

// readTemplateFile reads a template file, rejecting directories and
// files larger than MaxTemplateSize.
func readTemplateFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	// Read one byte past the limit to detect oversized files without
	// trusting the size reported by Stat.
	data, err := io.ReadAll(io.LimitReader(f, MaxTemplateSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if len(data) > MaxTemplateSize {
		return "", fmt.Errorf("%w: %s (max %d bytes)", ErrTemplateTooLarge, path, MaxTemplateSize)
	}
	return string(data), nil
}
