package pathsafe

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideBase reports a configured path resolving outside the
// permitted base directory. It carries no path detail so it can be
// returned to clients verbatim.
var ErrOutsideBase = errors.New("path escapes base directory")

// Resolve turns configured into an absolute, symlink-normalized path
// and verifies it lies within baseDir. A target that does not exist
// yet still passes containment; the caller reports the missing file on
// its own terms.
func Resolve(configured, baseDir string) (string, error) {
	if strings.TrimSpace(configured) == "" {
		return "", fmt.Errorf("resolve data path: empty path")
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve base dir: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	target := configured
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	target = resolveSymlinks(filepath.Clean(target))

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", ErrOutsideBase
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideBase
	}
	return target, nil
}

// resolveSymlinks normalizes symlinks on the deepest existing prefix of
// path, so a link pointing outside the base cannot hide behind a
// missing final component.
func resolveSymlinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	dir, file := filepath.Split(path)
	dir = filepath.Clean(dir)
	if dir == path {
		return path
	}
	return filepath.Join(resolveSymlinks(dir), file)
}
