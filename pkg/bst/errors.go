package bst

import "github.com/pkg/errors"

// ErrInvalidKey is returned when an operation is given a nil or NaN key.
// The tree is never modified when this error is returned.
var ErrInvalidKey = errors.New("key must not be nil")

func checkKey(op string, key any) error {
	if isMissing(key) {
		return errors.WithMessage(ErrInvalidKey, op)
	}

	return nil
}
