// SPDX-License-Identifier: MIT
// File: null_padded.go
// Role: NullPaddedList, the frozen contiguous variant, its constructors and the
//       Clone copy constructor.
// Concurrency:
//   - NullPaddedList is never mutated after construction; no locks are held and
//     instances may be shared freely across goroutines.

package paging

import "fmt"

// frozenCaps supplies the capability set of a list that never fetches data:
// LoadAround and the callback hooks are explicit no-ops.
type frozenCaps[T any] struct{}

// LoadAround does nothing; a frozen list never loads more data.
func (frozenCaps[T]) LoadAround(int) {}

// AddCallback does nothing and never fails; a frozen list never changes.
func (frozenCaps[T]) AddCallback(PagedList[T], Callback) error { return nil }

// RemoveCallback does nothing.
func (frozenCaps[T]) RemoveCallback(Callback) {}

// IsImmutable reports true.
func (frozenCaps[T]) IsImmutable() bool { return true }

// NullPaddedList is an immutable list of loaded items framed by leading and
// trailing null padding.
//
// The items slice passed to a constructor is taken over by the list: the caller
// must not modify it afterwards.
type NullPaddedList[T any] struct {
	frozenCaps[T]
	w window[T]
}

// NewNullPaddedList returns a list of leading unloaded slots, then items, then
// trailing unloaded slots.
//
// Errors:
//   - ErrInvalidArgument if leading or trailing is negative.
//
// Complexity: O(1).
func NewNullPaddedList[T any](leading int, items []T, trailing int) (*NullPaddedList[T], error) {
	w, err := newWindow(leading, items, trailing, OwnershipShared)
	if err != nil {
		return nil, err
	}

	return &NullPaddedList[T]{w: w}, nil
}

// NewNullPaddedListTotal returns a list of total logical size with items placed
// after leading unloaded slots. The trailing padding is derived as
// total - leading - len(items).
//
// Errors:
//   - ErrInvalidArgument if leading or the derived trailing count is negative.
func NewNullPaddedListTotal[T any](leading, total int, items []T) (*NullPaddedList[T], error) {
	trailing := total - leading - len(items)
	if trailing < 0 {
		return nil, fmt.Errorf("%w: total %d is smaller than leading %d plus %d loaded items",
			ErrInvalidArgument, total, leading, len(items))
	}

	return NewNullPaddedList(leading, items, trailing)
}

// NewNullPaddedListAt returns an unpadded list whose first item sits at store
// position positionOffset. It cannot fail.
func NewNullPaddedListAt[T any](positionOffset int, items []T) *NullPaddedList[T] {
	return &NullPaddedList[T]{w: window[T]{
		backing:        backing[T]{items: items, ownership: OwnershipShared},
		positionOffset: positionOffset,
	}}
}

// Clone returns a frozen copy of src. Padding, position offset and the
// prepended/appended counters are carried over. The loaded items are aliased
// when src's backing is shared, and deep-copied when src owns it, so later
// growth of src never shows through the copy.
//
// Complexity: O(1) for a shared backing, O(LoadedCount) otherwise.
func Clone[T any](src Contiguous[T]) *NullPaddedList[T] {
	return &NullPaddedList[T]{w: src.frozenWindow()}
}

// Get returns the item at index and whether it is loaded.
// Indices inside the padding return the zero value and false.
//
// Errors:
//   - ErrIndexOutOfBounds if index < 0 or index >= Size().
//
// Complexity: O(1).
func (l *NullPaddedList[T]) Get(index int) (T, bool, error) {
	return l.w.get(index)
}

// Size returns LeadingNullCount + LoadedCount + TrailingNullCount.
func (l *NullPaddedList[T]) Size() int {
	return l.w.size()
}

// Snapshot returns l itself: an immutable list is its own snapshot.
func (l *NullPaddedList[T]) Snapshot() PagedList[T] {
	return l
}

// IsContiguous reports true.
func (l *NullPaddedList[T]) IsContiguous() bool { return true }

// PositionOffset returns the store coordinate correction of the loaded window.
func (l *NullPaddedList[T]) PositionOffset() int { return l.w.positionOffset }

// LoadedCount returns the number of loaded items, padding excluded.
func (l *NullPaddedList[T]) LoadedCount() int { return len(l.w.backing.items) }

// LeadingNullCount returns the number of unloaded slots before the loaded items.
func (l *NullPaddedList[T]) LeadingNullCount() int { return l.w.leading }

// TrailingNullCount returns the number of unloaded slots after the loaded items.
func (l *NullPaddedList[T]) TrailingNullCount() int { return l.w.trailing }

// NumberPrepended returns how many items were prepended before this list was frozen.
func (l *NullPaddedList[T]) NumberPrepended() int { return l.w.prepended }

// NumberAppended returns how many items were appended before this list was frozen.
func (l *NullPaddedList[T]) NumberAppended() int { return l.w.appended }

// LoadedPosition maps loaded[i] to its store position,
// i + PositionOffset() + LeadingNullCount().
func (l *NullPaddedList[T]) LoadedPosition(i int) int {
	return i + l.w.positionOffset + l.w.leading
}

// Ownership reports the ownership tag of the backing slice. It is always
// OwnershipShared for a NullPaddedList.
func (l *NullPaddedList[T]) Ownership() Ownership { return l.w.backing.ownership }

func (l *NullPaddedList[T]) frozenWindow() window[T] {
	return l.w.frozen()
}

// String renders the padding shape, e.g. "NullPaddedList[2+3+1]".
func (l *NullPaddedList[T]) String() string {
	return fmt.Sprintf("NullPaddedList[%d+%d+%d]", l.w.leading, len(l.w.backing.items), l.w.trailing)
}

var _ Contiguous[int] = (*NullPaddedList[int])(nil)
