// SPDX-License-Identifier: MIT
// File: types.go
// Role: Capability interfaces shared by every paged list variant, the callback
//       contract, the Loader contract and the ownership-tagged backing window.
// Policy:
//   - PagedList is open: any type may implement it.
//   - Contiguous is closed: its unexported method restricts it to this package,
//     because Clone must read a consistent window from the source.

package paging

import (
	"context"
	"fmt"
	"slices"
)

// PagedList is the capability set shared by frozen and growing paged lists.
// Callers that hold "any paged list" branch on IsImmutable to decide whether a
// snapshot has to copy.
type PagedList[T any] interface {
	// Get returns the item at index and whether that position is loaded.
	// An index outside [0, Size()) returns ErrIndexOutOfBounds.
	Get(index int) (T, bool, error)

	// Size is the logical length, loaded items plus null padding.
	Size() int

	// Snapshot returns a point-in-time view that later growth cannot change.
	Snapshot() PagedList[T]

	// LoadAround hints that positions near index will be read soon.
	LoadAround(index int)

	// AddCallback registers cb. When previous is a non-nil earlier snapshot of
	// this list, the changes made since that snapshot are dispatched to cb first.
	AddCallback(previous PagedList[T], cb Callback) error

	// RemoveCallback unregisters cb (by identity).
	RemoveCallback(cb Callback)

	IsImmutable() bool
	IsContiguous() bool
}

// Contiguous is a PagedList whose loaded data is one contiguous run framed by
// leading and trailing null padding.
type Contiguous[T any] interface {
	PagedList[T]

	// PositionOffset is the store coordinate correction of the loaded window.
	// loaded[i] sits at store position i + PositionOffset() + LeadingNullCount().
	PositionOffset() int
	LoadedCount() int
	LeadingNullCount() int
	TrailingNullCount() int

	// NumberPrepended and NumberAppended count items added to the front/back of
	// the loaded window since the list was created.
	NumberPrepended() int
	NumberAppended() int

	// frozenWindow returns a consistent copy of the window whose backing is safe
	// to retain forever.
	frozenWindow() window[T]
}

// Callback receives change notifications from growing lists.
// Positions are expressed in the coordinates of the list before the change.
// The lists in this package only grow, so they never call OnRemoved.
type Callback interface {
	OnChanged(position, count int)
	OnInserted(position, count int)
	OnRemoved(position, count int)
}

// CallbackFuncs adapts plain functions to Callback. Nil fields are skipped.
// Register it by pointer so RemoveCallback can match it by identity.
type CallbackFuncs struct {
	Changed  func(position, count int)
	Inserted func(position, count int)
	Removed  func(position, count int)
}

// OnChanged implements Callback.
func (f *CallbackFuncs) OnChanged(position, count int) {
	if f.Changed != nil {
		f.Changed(position, count)
	}
}

// OnInserted implements Callback.
func (f *CallbackFuncs) OnInserted(position, count int) {
	if f.Inserted != nil {
		f.Inserted(position, count)
	}
}

// OnRemoved implements Callback.
func (f *CallbackFuncs) OnRemoved(position, count int) {
	if f.Removed != nil {
		f.Removed(position, count)
	}
}

// Loader fetches items for a growing list, in store coordinates.
type Loader[T any] interface {
	// LoadBefore returns up to count items ending just before position,
	// i.e. store positions [max(0, position-count), position).
	LoadBefore(ctx context.Context, position, count int) ([]T, error)

	// LoadAfter returns up to count items starting at position. Fewer than
	// count items means the end of the store was reached.
	LoadAfter(ctx context.Context, position, count int) ([]T, error)
}

// Ownership tags who may mutate a backing slice.
type Ownership uint8

const (
	// OwnershipIndependent marks a slice owned by a single growing list. It is
	// mutated in place and must be copied before anyone else may hold it.
	OwnershipIndependent Ownership = iota

	// OwnershipShared marks a slice nobody will mutate again. It may be aliased
	// by any number of lists.
	OwnershipShared
)

// String implements fmt.Stringer.
func (o Ownership) String() string {
	switch o {
	case OwnershipIndependent:
		return "independent"
	case OwnershipShared:
		return "shared"
	default:
		return fmt.Sprintf("Ownership(%d)", uint8(o))
	}
}

// backing is the loaded slice together with its ownership tag.
type backing[T any] struct {
	items     []T
	ownership Ownership
}

// share returns a backing that may be aliased: the receiver itself when it is
// already shared, otherwise an independent copy tagged shared.
func (b backing[T]) share() backing[T] {
	if b.ownership == OwnershipShared {
		return b
	}

	return backing[T]{items: slices.Clone(b.items), ownership: OwnershipShared}
}

// window is the state common to all contiguous variants.
type window[T any] struct {
	backing        backing[T]
	leading        int
	trailing       int
	positionOffset int
	prepended      int
	appended       int
}

// newWindow validates the padding counts and builds a window.
func newWindow[T any](leading int, items []T, trailing int, own Ownership) (window[T], error) {
	if leading < 0 || trailing < 0 {
		return window[T]{}, fmt.Errorf("%w: leading/trailing null count must be non-negative (leading=%d, trailing=%d)",
			ErrInvalidArgument, leading, trailing)
	}

	return window[T]{
		backing:  backing[T]{items: items, ownership: own},
		leading:  leading,
		trailing: trailing,
	}, nil
}

// size is leading + loaded + trailing.
func (w *window[T]) size() int {
	return w.leading + len(w.backing.items) + w.trailing
}

// get resolves index to a loaded item, an unloaded slot, or an error.
func (w *window[T]) get(index int) (T, bool, error) {
	var zero T
	if index < 0 || index >= w.size() {
		return zero, false, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, w.size())
	}
	index -= w.leading
	if index < 0 || index >= len(w.backing.items) {
		return zero, false, nil
	}

	return w.backing.items[index], true, nil
}

// frozen returns a copy of w whose backing may be aliased.
func (w *window[T]) frozen() window[T] {
	out := *w
	out.backing = w.backing.share()

	return out
}
