package source

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpage/paging"
)

// Loader adapts a PositionalSource to paging.Loader.
type Loader[T any] struct {
	src PositionalSource[T]
}

// NewLoader wraps src. It fails with ErrNilSource when src is nil.
func NewLoader[T any](src PositionalSource[T]) (*Loader[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return &Loader[T]{src: src}, nil
}

// LoadBefore returns the items at [max(0, position-count), position).
func (l *Loader[T]) LoadBefore(ctx context.Context, position, count int) ([]T, error) {
	if err := checkRange(position, count); err != nil {
		return nil, err
	}
	start := max(0, position-count)

	return l.src.LoadRange(ctx, start, position-start)
}

// LoadAfter returns up to count items starting at position.
func (l *Loader[T]) LoadAfter(ctx context.Context, position, count int) ([]T, error) {
	if err := checkRange(position, count); err != nil {
		return nil, err
	}

	return l.src.LoadRange(ctx, position, count)
}

var _ paging.Loader[int] = (*Loader[int])(nil)

// firstPage reads the total and the page of pageSize items centred on
// position, clamped so it lies within [0, total).
func firstPage[T any](ctx context.Context, src PositionalSource[T], position, pageSize int) (start, total int, items []T, err error) {
	if src == nil {
		return 0, 0, nil, ErrNilSource
	}
	if position < 0 || pageSize <= 0 {
		return 0, 0, nil, fmt.Errorf("%w: position=%d pageSize=%d", ErrNegativeRange, position, pageSize)
	}
	if total, err = src.Count(ctx); err != nil {
		return 0, 0, nil, fmt.Errorf("source: count: %w", err)
	}
	start = max(0, min(position-pageSize/2, total-pageSize))
	if items, err = src.LoadRange(ctx, start, pageSize); err != nil {
		return 0, 0, nil, fmt.Errorf("source: load initial page at %d: %w", start, err)
	}

	return start, total, items, nil
}

// InitialList loads the page around position and returns a growing list padded
// to the source's total size, wired to load further pages from src. opts are
// applied after the loader and page size, so they may override both.
func InitialList[T any](ctx context.Context, src PositionalSource[T], position, pageSize int, opts ...paging.Option[T]) (*paging.ContiguousList[T], error) {
	start, total, items, err := firstPage(ctx, src, position, pageSize)
	if err != nil {
		return nil, err
	}
	loader, err := NewLoader(src)
	if err != nil {
		return nil, err
	}
	all := make([]paging.Option[T], 0, len(opts)+2)
	all = append(all, paging.WithLoader[T](loader), paging.WithPageSize[T](pageSize))
	all = append(all, opts...)

	list, err := paging.NewContiguousList(start, items, total-start-len(items), all...)
	if err != nil {
		return nil, fmt.Errorf("source: source changed while loading: %w", err)
	}

	return list, nil
}

// Frozen loads the page around position and returns it as an immutable list
// padded to the source's total size.
func Frozen[T any](ctx context.Context, src PositionalSource[T], position, pageSize int) (*paging.NullPaddedList[T], error) {
	start, total, items, err := firstPage(ctx, src, position, pageSize)
	if err != nil {
		return nil, err
	}
	list, err := paging.NewNullPaddedListTotal(start, total, items)
	if err != nil {
		return nil, fmt.Errorf("source: source changed while loading: %w", err)
	}

	return list, nil
}
