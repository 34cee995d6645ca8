// Package paging provides null-padded paged lists: logical sequences of known
// (or estimated) length in which only one contiguous window of items is loaded,
// while every other position is an unloaded placeholder at a known offset.
//
// A list of size N = leading + loaded + trailing is addressed as
//
//	index:  0 … leading-1 | leading … leading+loaded-1 | … N-1
//	value:  unloaded      | loaded[index-leading]      | unloaded
//
// Get is O(1) across the whole logical range and never materializes the
// unloaded positions.
//
// Variants:
//
//   - NullPaddedList – frozen. LoadAround and the callback hooks are no-ops,
//     Snapshot returns the receiver, and its backing slice is tagged
//     OwnershipShared so copies alias it.
//   - ContiguousList – growing. Prepend/Append fill padding first and then grow
//     the list; an optional Loader lets LoadAround fetch pages near the edges.
//     Its backing slice is tagged OwnershipIndependent, so Snapshot deep-copies.
//
// Both implement PagedList (the polymorphic capability set) and Contiguous
// (window accessors: PositionOffset, LoadedCount, LeadingNullCount,
// TrailingNullCount, NumberPrepended, NumberAppended).
//
// Constructors:
//
//	NewNullPaddedList(leading, items, trailing)   // explicit padding
//	NewNullPaddedListTotal(leading, total, items) // trailing = total-leading-len(items)
//	NewNullPaddedListAt(positionOffset, items)    // unpadded, offset-tagged
//	Clone(src)                                    // copy constructor
//
// Snapshots and callbacks:
//
// A consumer takes Snapshot() of a growing list, renders it, and later calls
// AddCallback(snapshot, cb): the list replays the growth since the snapshot as
// OnChanged/OnInserted events before delivering live ones.
//
// Errors:
//
//	ErrInvalidArgument   – negative leading/trailing count (explicit or derived).
//	ErrIndexOutOfBounds  – Get outside [0, Size()).
//	ErrInvalidSnapshot   – AddCallback with a snapshot that cannot precede the list.
package paging
