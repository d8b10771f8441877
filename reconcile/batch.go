package reconcile

import "sort"

// MapID identifies a map asset across recompilations, typically its
// file path.
type MapID string

// Batch aggregates change notifications for one update tick. The host
// records created/modified/removed events as they arrive and drains the
// batch once per tick; a removal cancels any earlier change for the
// same asset in the same tick, since later events are authoritative.
type Batch struct {
	changed map[MapID]struct{}
	removed map[MapID]struct{}
}

// NewBatch returns an empty change batch.
func NewBatch() *Batch {
	return &Batch{
		changed: make(map[MapID]struct{}),
		removed: make(map[MapID]struct{}),
	}
}

// Created records that a map asset was compiled for the first time.
func (b *Batch) Created(id MapID) {
	b.changed[id] = struct{}{}
	delete(b.removed, id)
}

// Modified records that a map asset was recompiled.
func (b *Batch) Modified(id MapID) {
	b.changed[id] = struct{}{}
	delete(b.removed, id)
}

// Removed records that a map asset was unloaded. Everything realized
// for it must be retired.
func (b *Batch) Removed(id MapID) {
	delete(b.changed, id)
	b.removed[id] = struct{}{}
}

// Changed returns the ids needing reconciliation, sorted for
// deterministic processing.
func (b *Batch) Changed() []MapID {
	return sortedIDs(b.changed)
}

// Removals returns the ids needing full retirement, sorted.
func (b *Batch) Removals() []MapID {
	return sortedIDs(b.removed)
}

// Empty reports whether the batch carries no events.
func (b *Batch) Empty() bool {
	return len(b.changed) == 0 && len(b.removed) == 0
}

// Reset clears the batch for the next tick.
func (b *Batch) Reset() {
	clear(b.changed)
	clear(b.removed)
}

func sortedIDs(set map[MapID]struct{}) []MapID {
	ids := make([]MapID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
