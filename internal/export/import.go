package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"plotthemes/internal/theme"
)

var ErrThemeFileExists = errors.New("theme file already exists")

// Importer copies validated theme files into a themes directory.
type Importer struct {
	dir     string
	manager *theme.Manager
}

func NewImporter(dir string, manager *theme.Manager) *Importer {
	return &Importer{dir: dir, manager: manager}
}

// ImportResult reports what ImportFile did.
type ImportResult struct {
	Theme   string
	Path    string
	Skipped bool
}

// ImportFile validates the theme at src and writes it to <dir>/<name>.yaml.
// Built-in names can never be shadowed; other clashes follow strategy.
func (i *Importer) ImportFile(src string, strategy ConflictStrategy) (*ImportResult, error) {
	t, err := theme.LoadFile(src)
	if err != nil {
		return nil, err
	}

	if slices.Contains(theme.GetThemeNames(), t.Name()) {
		return nil, fmt.Errorf("%w: %s is a built-in theme", theme.ErrThemeExists, t.Name())
	}

	dst := filepath.Join(i.dir, t.Name()+".yaml")
	result := &ImportResult{Theme: t.Name(), Path: dst}

	_, statErr := os.Stat(dst)
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to check %s: %w", dst, statErr)
	}
	exists := statErr == nil

	// loaded from a differently named file; writing would register it twice
	if !exists && i.manager != nil && i.manager.ThemeExists(t.Name()) {
		if strategy == ConflictStrategySkip {
			result.Skipped = true
			return result, nil
		}
		return nil, fmt.Errorf("%w: %s is defined in another file", ErrThemeFileExists, t.Name())
	}

	if exists {
		switch strategy {
		case ConflictStrategySkip:
			result.Skipped = true
			return result, nil
		case ConflictStrategyOverwrite:
		default:
			return nil, fmt.Errorf("%w: %s", ErrThemeFileExists, dst)
		}
	}

	if err := os.MkdirAll(i.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create themes directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if err := WriteYAML(f, t); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return result, nil
}
