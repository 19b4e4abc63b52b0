package store

import (
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// Apply returns the collection that results from running cmd against items.
// items is never modified; the result never aliases it. Commands that target
// an unknown id, and Add with blank text, return an unchanged copy. ids is
// consulted only when an item is actually added.
func Apply(items []model.Item, cmd Command, ids IDSource) []model.Item {
	switch c := cmd.(type) {
	case Add:
		text := strings.TrimSpace(c.Text)
		if text == "" {
			return model.Clone(items)
		}
		out := make([]model.Item, len(items), len(items)+1)
		copy(out, items)
		return append(out, model.Item{ID: ids.Next(), Text: text})

	case Delete:
		out := make([]model.Item, 0, len(items))
		for _, it := range items {
			if it.ID != c.ID {
				out = append(out, it)
			}
		}
		return out

	case ToggleDone:
		return update(items, c.ID, func(it *model.Item) { it.Done = !it.Done })

	case StartEdit:
		return update(items, c.ID, func(it *model.Item) { it.Editing = true })

	case CommitEdit:
		return update(items, c.ID, func(it *model.Item) {
			it.Text = c.Text
			it.Editing = false
		})

	case ClearAll:
		return []model.Item{}
	}
	return model.Clone(items)
}

func update(items []model.Item, id model.ID, fn func(*model.Item)) []model.Item {
	out := model.Clone(items)
	if i := model.Index(out, id); i >= 0 {
		fn(&out[i])
	}
	return out
}
