package gamedata

// SlotAllocator hands out surrogate ids for effect slots, which have no
// stable identity of their own in the source documents. Ids are
// monotonically increasing and scoped to one batch run; they are not
// stable across re-ingestions of the same version and must never be
// relied on by external consumers.
type SlotAllocator struct {
	next int64
}

// NewSlotAllocator creates an allocator starting at 1.
func NewSlotAllocator() *SlotAllocator {
	return &SlotAllocator{next: 1}
}

// Next returns the next surrogate slot id.
func (a *SlotAllocator) Next() int64 {
	id := a.next
	a.next++
	return id
}
