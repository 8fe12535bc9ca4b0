package finder

import (
	"os"

	"github.com/ydkadri/finders/internal/constants"
	"github.com/ydkadri/finders/internal/errors"
)

// Resolve validates the root of a search. An empty root means the current
// directory. Existence is only checked here; the path may vanish before the
// walk starts.
func Resolve(root string) (string, error) {
	if root == "" {
		return constants.DefaultPath, nil
	}
	if _, err := os.Stat(root); err != nil {
		return "", &errors.PathNotFoundError{Path: root, Err: err}
	}
	return root, nil
}
