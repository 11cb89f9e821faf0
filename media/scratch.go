package media

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

// withScratch runs fn inside a freshly created private directory placed
// under parent and removes the directory with all its content once fn
// returns, whatever the outcome.
func withScratch(parent string, fn func(dir string) error) (err error) {
	dir, err := os.MkdirTemp(parent, "sketchify-")
	if err != nil {
		return fmt.Errorf("%w: scratch dir: %w", ErrEncoding, err)
	}
	defer func() {
		if rerr := os.RemoveAll(dir); rerr != nil {
			err = multierror.Append(err, fmt.Errorf("%w: removing scratch dir: %w", ErrEncoding, rerr)).ErrorOrNil()
		}
	}()

	return fn(dir)
}
