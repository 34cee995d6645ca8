package source

import (
	"context"
	"fmt"
)

// PositionalSource is a store addressed by position in [0, Count).
type PositionalSource[T any] interface {
	// Count returns the current number of items.
	Count(ctx context.Context) (int, error)

	// LoadRange returns up to count items starting at start. Positions past
	// the end are silently dropped, so the result may be shorter than count.
	LoadRange(ctx context.Context, start, count int) ([]T, error)
}

// checkRange validates the arguments of LoadRange.
func checkRange(start, count int) error {
	if start < 0 || count < 0 {
		return fmt.Errorf("%w: start=%d count=%d", ErrNegativeRange, start, count)
	}

	return nil
}

// SliceSource serves items from memory. The slice is not copied.
type SliceSource[T any] struct {
	items []T
}

// NewSliceSource returns a source over items.
func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

// Count returns len(items).
func (s *SliceSource[T]) Count(context.Context) (int, error) {
	return len(s.items), nil
}

// LoadRange returns a copy of items[start:start+count], clamped to the slice.
func (s *SliceSource[T]) LoadRange(ctx context.Context, start, count int) ([]T, error) {
	if err := checkRange(start, count); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if start >= len(s.items) {
		return nil, nil
	}
	end := min(len(s.items), start+count)

	return append([]T(nil), s.items[start:end]...), nil
}
