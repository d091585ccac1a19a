package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/recipemd/recipemd/pkg/errors"
)

// stdinPath is the argument that selects stdin as the input source.
const stdinPath = "-"

// readRecipeSource reads recipe Markdown from a file path, or from stdin
// when the path is "-".
func readRecipeSource(path string) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, "failed to read stdin", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeNotFound, fmt.Sprintf("recipe file %q not found", path), err)
		}
		return "", errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to read recipe file %q", path), err)
	}
	return string(data), nil
}

// writeRecipeFile writes recipe Markdown back to a file, preserving the
// file's permissions when it already exists.
func writeRecipeFile(path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to write recipe file %q", path), err)
	}
	return nil
}
