// SPDX-License-Identifier: MIT
// File: contiguous.go
// Role: ContiguousList, the growing variant: Prepend/Append, snapshot diffs,
//       callbacks and Loader-driven LoadAround.
// Concurrency:
//   - mu guards the window, the callback list and the load bookkeeping.
//   - Callbacks run after mu is released, on the goroutine that made the change,
//     so a callback may read the list.
//   - At most one load per direction is in flight.

package paging

import (
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// ContiguousList is a null-padded list that grows at either end. Its backing
// slice is owned exclusively (OwnershipIndependent), so Snapshot deep-copies it.
type ContiguousList[T any] struct {
	mu sync.RWMutex

	w         window[T]
	cfg       config[T]
	callbacks []Callback

	prependRunning bool
	appendRunning  bool
	endReached     bool
	lastErr        error
}

// NewContiguousList returns a growing list of leading unloaded slots, then
// items, then trailing unloaded slots. The list takes ownership of items.
//
// Errors:
//   - ErrInvalidArgument if leading or trailing is negative.
func NewContiguousList[T any](leading int, items []T, trailing int, opts ...Option[T]) (*ContiguousList[T], error) {
	w, err := newWindow(leading, items, trailing, OwnershipIndependent)
	if err != nil {
		return nil, err
	}

	return &ContiguousList[T]{w: w, cfg: gatherOptions(opts)}, nil
}

// NewContiguousListAt returns an unpadded growing list whose first item sits at
// store position positionOffset.
func NewContiguousListAt[T any](positionOffset int, items []T, opts ...Option[T]) *ContiguousList[T] {
	return &ContiguousList[T]{
		w: window[T]{
			backing:        backing[T]{items: items, ownership: OwnershipIndependent},
			positionOffset: positionOffset,
		},
		cfg: gatherOptions(opts),
	}
}

// Get returns the item at index and whether it is loaded.
//
// Errors:
//   - ErrIndexOutOfBounds if index < 0 or index >= Size().
func (c *ContiguousList[T]) Get(index int) (T, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.get(index)
}

// Size returns LeadingNullCount + LoadedCount + TrailingNullCount.
func (c *ContiguousList[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.size()
}

// IsImmutable reports false.
func (c *ContiguousList[T]) IsImmutable() bool { return false }

// IsContiguous reports true.
func (c *ContiguousList[T]) IsContiguous() bool { return true }

// Snapshot returns a frozen deep copy of the current state.
func (c *ContiguousList[T]) Snapshot() PagedList[T] {
	return Clone[T](c)
}

// Prepend adds items in front of the loaded window. Leading null slots are
// filled first; any surplus grows the list at position 0 and moves the
// position offset back accordingly.
//
// Callbacks receive OnChanged for the filled slots, then OnInserted(0, surplus).
func (c *ContiguousList[T]) Prepend(items ...T) {
	c.mu.Lock()
	evs := c.prependLocked(items)
	cbs := slices.Clone(c.callbacks)
	c.mu.Unlock()

	dispatch(cbs, evs)
}

// Append adds items after the loaded window. Trailing null slots are filled
// first; any surplus grows the list at its end.
//
// Callbacks receive OnChanged for the filled slots, then OnInserted for the surplus.
func (c *ContiguousList[T]) Append(items ...T) {
	c.mu.Lock()
	evs := c.appendLocked(items)
	cbs := slices.Clone(c.callbacks)
	c.mu.Unlock()

	dispatch(cbs, evs)
}

func (c *ContiguousList[T]) prependLocked(items []T) []event {
	n := len(items)
	if n == 0 {
		return nil
	}
	changed := min(c.w.leading, n)
	inserted := n - changed

	merged := make([]T, 0, n+len(c.w.backing.items))
	merged = append(merged, items...)
	merged = append(merged, c.w.backing.items...)
	c.w.backing.items = merged
	c.w.leading -= changed
	c.w.positionOffset -= inserted
	c.w.prepended += n

	return growthEvents(nil, c.w.leading, changed, 0, inserted)
}

func (c *ContiguousList[T]) appendLocked(items []T) []event {
	n := len(items)
	if n == 0 {
		return nil
	}
	end := c.w.leading + len(c.w.backing.items)
	changed := min(c.w.trailing, n)
	inserted := n - changed

	c.w.backing.items = append(c.w.backing.items, items...)
	c.w.trailing -= changed
	c.w.appended += n

	return growthEvents(nil, end, changed, end+changed, inserted)
}

// AddCallback registers cb. When previous is non-nil it must be an earlier
// snapshot of c; the changes made since then are delivered to cb before it
// starts receiving live notifications.
//
// Errors:
//   - ErrInvalidArgument if cb is nil.
//   - ErrInvalidSnapshot if previous is not contiguous or cannot precede the
//     current state.
func (c *ContiguousList[T]) AddCallback(previous PagedList[T], cb Callback) error {
	if cb == nil {
		return fmt.Errorf("%w: nil callback", ErrInvalidArgument)
	}

	// The previous state is read before c is locked: previous may be another
	// live list registering against c at the same time.
	var prev *window[T]
	if previous != nil {
		src, ok := previous.(Contiguous[T])
		if !ok {
			return fmt.Errorf("%w: %T is not contiguous", ErrInvalidSnapshot, previous)
		}
		if src != Contiguous[T](c) {
			w := src.frozenWindow()
			prev = &w
		}
	}

	c.mu.Lock()
	var evs []event
	if prev != nil {
		var ok bool
		if evs, ok = diffSince(prev, &c.w); !ok {
			c.mu.Unlock()
			return ErrInvalidSnapshot
		}
	}
	c.callbacks = append(c.callbacks, cb)
	c.mu.Unlock()

	dispatch([]Callback{cb}, evs)

	return nil
}

// RemoveCallback unregisters every registration of cb.
func (c *ContiguousList[T]) RemoveCallback(cb Callback) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.callbacks = slices.DeleteFunc(c.callbacks, func(x Callback) bool { return x == cb })
}

// LoadAround schedules a page load before and/or after the loaded window when
// index is within the prefetch distance of that edge. It is a no-op without a
// Loader, after the context is cancelled, or while a load in that direction is
// already running.
func (c *ContiguousList[T]) LoadAround(index int) {
	if c.cfg.loader == nil || c.cfg.ctx.Err() != nil {
		return
	}

	var jobs []func()
	c.mu.Lock()
	loadedStart := c.w.leading
	loadedEnd := c.w.leading + len(c.w.backing.items)
	storeStart := c.w.positionOffset + c.w.leading
	storeEnd := storeStart + len(c.w.backing.items)

	if !c.prependRunning && storeStart > 0 && index < loadedStart+c.cfg.prefetchDistance {
		c.prependRunning = true
		jobs = append(jobs, func() { c.loadBefore(storeStart) })
	}
	if !c.appendRunning && !c.endReached && index >= loadedEnd-c.cfg.prefetchDistance {
		c.appendRunning = true
		jobs = append(jobs, func() { c.loadAfter(storeEnd) })
	}
	c.mu.Unlock()

	for _, job := range jobs {
		c.cfg.executor(job)
	}
}

func (c *ContiguousList[T]) loadBefore(position int) {
	log := c.cfg.logger.WithFields(logrus.Fields{
		"direction": "before",
		"position":  position,
		"count":     c.cfg.pageSize,
	})
	items, err := c.cfg.loader.LoadBefore(c.cfg.ctx, position, c.cfg.pageSize)

	c.mu.Lock()
	c.prependRunning = false
	if err != nil {
		c.lastErr = fmt.Errorf("paging: load before %d: %w", position, err)
		c.mu.Unlock()
		log.WithError(err).Warn("page load failed")
		return
	}
	if c.w.positionOffset+c.w.leading != position {
		c.mu.Unlock()
		log.Debug("discarding stale page")
		return
	}
	evs := c.prependLocked(items)
	cbs := slices.Clone(c.callbacks)
	c.mu.Unlock()

	log.WithField("loaded", len(items)).Debug("page loaded")
	dispatch(cbs, evs)
}

func (c *ContiguousList[T]) loadAfter(position int) {
	log := c.cfg.logger.WithFields(logrus.Fields{
		"direction": "after",
		"position":  position,
		"count":     c.cfg.pageSize,
	})
	items, err := c.cfg.loader.LoadAfter(c.cfg.ctx, position, c.cfg.pageSize)

	c.mu.Lock()
	c.appendRunning = false
	if err != nil {
		c.lastErr = fmt.Errorf("paging: load after %d: %w", position, err)
		c.mu.Unlock()
		log.WithError(err).Warn("page load failed")
		return
	}
	if c.w.positionOffset+c.w.leading+len(c.w.backing.items) != position {
		c.mu.Unlock()
		log.Debug("discarding stale page")
		return
	}
	if len(items) < c.cfg.pageSize {
		c.endReached = true
	}
	evs := c.appendLocked(items)
	cbs := slices.Clone(c.callbacks)
	c.mu.Unlock()

	log.WithField("loaded", len(items)).Debug("page loaded")
	dispatch(cbs, evs)
}

// Err returns the error of the most recent failed load, if any.
func (c *ContiguousList[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastErr
}

// EndReached reports whether a load after the window returned a short page.
func (c *ContiguousList[T]) EndReached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.endReached
}

// PositionOffset returns the store coordinate correction of the loaded window.
func (c *ContiguousList[T]) PositionOffset() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.positionOffset
}

// LoadedCount returns the number of loaded items.
func (c *ContiguousList[T]) LoadedCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.w.backing.items)
}

// LeadingNullCount returns the number of unloaded slots before the loaded items.
func (c *ContiguousList[T]) LeadingNullCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.leading
}

// TrailingNullCount returns the number of unloaded slots after the loaded items.
func (c *ContiguousList[T]) TrailingNullCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.trailing
}

// NumberPrepended returns how many items were prepended since construction.
func (c *ContiguousList[T]) NumberPrepended() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.prepended
}

// NumberAppended returns how many items were appended since construction.
func (c *ContiguousList[T]) NumberAppended() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.appended
}

// LoadedPosition maps loaded[i] to its store position.
func (c *ContiguousList[T]) LoadedPosition(i int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return i + c.w.positionOffset + c.w.leading
}

// Ownership reports the ownership tag of the backing slice. It is always
// OwnershipIndependent for a ContiguousList.
func (c *ContiguousList[T]) Ownership() Ownership {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.backing.ownership
}

func (c *ContiguousList[T]) frozenWindow() window[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.w.frozen()
}

// String renders the padding shape, e.g. "ContiguousList[2+3+1]".
func (c *ContiguousList[T]) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return fmt.Sprintf("ContiguousList[%d+%d+%d]", c.w.leading, len(c.w.backing.items), c.w.trailing)
}

var _ Contiguous[int] = (*ContiguousList[int])(nil)
