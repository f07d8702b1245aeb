package configs

import (
	"errors"
	"fmt"
	"iter"
)

// First decodes the first value at path, or returns the zero value when no file sets it.
// Decode failures panic; call Loader.Err first to surface broken files.
func First[T any](loader Loader, path string) (value T) {
	err := loader.AssignFirst(path, &value)
	if errors.Is(err, ErrValueNotFound) {
		var zero T
		return zero
	}
	if err != nil {
		panic(err)
	}
	return
}

// All decodes the value at path from every file that sets it, in load order.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				yield(zero, err)
				return
			}
			var v T
			if err := value.Decode(&v); err != nil {
				yield(zero, fmt.Errorf("decode %s: %w", path, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
