package orion

import (
	"errors"
	"fmt"
)

// Error kinds reported by the engine. Construction time failures are fatal and
// propagate out of Loop.Run, ErrRuntime marks per frame failures that are logged.
var (
	ErrUnsupportedPlatform = errors.New("platform not supported")
	ErrWindowCreation      = errors.New("window creation failed")
	ErrRendererInit        = errors.New("renderer initialization failed")
	ErrRuntime             = errors.New("runtime error")
)

var kinds = []error{
	ErrUnsupportedPlatform,
	ErrWindowCreation,
	ErrRendererInit,
	ErrRuntime,
}

// WrapKind tags err with the given kind unless err already carries a kind.
func WrapKind(kind error, err error) error {
	if err == nil {
		return nil
	}

	if KindOf(err) != nil {
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// KindOf returns the error kind err was tagged with, or nil.
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
