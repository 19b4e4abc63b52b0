package model

// ID identifies an item for its whole lifetime. Zero is never assigned.
type ID uint64

// Item is the domain model for a todo entry.
type Item struct {
	ID      ID     `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Editing bool   `json:"editing"`
}

// Clone returns a copy of items that shares no backing array with it.
// A nil or empty input yields an empty, non-nil slice.
func Clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Index returns the position of the item with the given id, or -1.
func Index(items []Item, id ID) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts done and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Split partitions items into pending and done, preserving order.
func Split(items []Item) (pending, done []Item) {
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pending = append(pending, it)
		}
	}
	return
}
