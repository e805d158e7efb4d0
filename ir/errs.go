package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrPath is the sentinel for all path operation errors.
	ErrPath = errors.New("path error")

	ErrEmptyPath = fmt.Errorf("%w: empty path", ErrPath)
)

func notABlockErr(seg string) error {
	return fmt.Errorf("%w: segment %q is not a block", ErrPath, seg)
}
