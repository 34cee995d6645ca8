// SPDX-License-Identifier: MIT
// File: dispatch.go
// Role: Change events produced by growth and by snapshot diffs, and their
//       delivery to callbacks.

package paging

type eventKind uint8

const (
	eventChanged eventKind = iota
	eventInserted
)

type event struct {
	kind     eventKind
	position int
	count    int
}

// growthEvents describes filling `changed` null slots starting at changedAt and
// inserting `inserted` new slots at insertedAt. Empty parts are omitted.
func growthEvents(evs []event, changedAt, changed, insertedAt, inserted int) []event {
	if changed > 0 {
		evs = append(evs, event{kind: eventChanged, position: changedAt, count: changed})
	}
	if inserted > 0 {
		evs = append(evs, event{kind: eventInserted, position: insertedAt, count: inserted})
	}

	return evs
}

// dispatch delivers evs, in order, to every callback.
func dispatch(cbs []Callback, evs []event) {
	if len(evs) == 0 {
		return
	}
	for _, cb := range cbs {
		for _, ev := range evs {
			switch ev.kind {
			case eventChanged:
				cb.OnChanged(ev.position, ev.count)
			case eventInserted:
				cb.OnInserted(ev.position, ev.count)
			}
		}
	}
}

// diffSince computes the events that turn previous into current, where both
// are states of the same growing list. ok is false when previous cannot be an
// ancestor of current.
//
// Appends are reported before prepends so that every position stays valid in
// the coordinates of the list the callback last saw.
func diffSince[T any](previous, current *window[T]) (evs []event, ok bool) {
	newlyAppended := current.appended - previous.appended
	newlyPrepended := current.prepended - previous.prepended
	prevLeading := previous.leading
	prevTrailing := previous.trailing
	prevLoaded := len(previous.backing.items)

	if newlyAppended < 0 || newlyPrepended < 0 {
		return nil, false
	}
	if current.trailing != max(prevTrailing-newlyAppended, 0) ||
		current.leading != max(prevLeading-newlyPrepended, 0) ||
		len(current.backing.items) != prevLoaded+newlyAppended+newlyPrepended {
		return nil, false
	}

	if newlyAppended > 0 {
		changed := min(prevTrailing, newlyAppended)
		end := prevLeading + prevLoaded
		evs = growthEvents(evs, end, changed, end+changed, newlyAppended-changed)
	}
	if newlyPrepended > 0 {
		changed := min(prevLeading, newlyPrepended)
		evs = growthEvents(evs, prevLeading-changed, changed, 0, newlyPrepended-changed)
	}

	return evs, true
}
