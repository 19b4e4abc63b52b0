package store

import (
	"testing"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(texts ...string) ([]model.Item, *Counter) {
	ids := &Counter{}
	items := []model.Item{}
	for _, t := range texts {
		items = Apply(items, Add{Text: t}, ids)
	}
	return items, ids
}

func TestApplyAdd(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Buy milk", want: "Buy milk"},
		{name: "trimmed", in: "  Buy milk \t", want: "Buy milk"},
		{name: "inner spaces kept", in: "a  b", want: "a  b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ids := seed("first")
			out := Apply(items, Add{Text: tt.in}, ids)

			require.Len(t, out, len(items)+1)
			last := out[len(out)-1]
			assert.Equal(t, tt.want, last.Text)
			assert.False(t, last.Done)
			assert.False(t, last.Editing)
			assert.NotEqual(t, items[0].ID, last.ID)
		})
	}
}

func TestApplyAddBlankIsNoop(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		items, ids := seed("A")
		out := Apply(items, Add{Text: text}, ids)
		assert.Equal(t, items, out, "Add(%q)", text)
		assert.Equal(t, model.ID(1), ids.Last(), "blank add must not consume an id")
	}
}

func TestApplyUnknownIDIsNoop(t *testing.T) {
	items, ids := seed("A", "B")
	missing := model.ID(99)

	cmds := []Command{
		Delete{ID: missing},
		ToggleDone{ID: missing},
		StartEdit{ID: missing},
		CommitEdit{ID: missing, Text: "x"},
	}
	for _, cmd := range cmds {
		t.Run(cmd.String(), func(t *testing.T) {
			assert.Equal(t, items, Apply(items, cmd, ids))
		})
	}
}

func TestApplyToggleIsInvolution(t *testing.T) {
	items, ids := seed("A", "B")
	id := items[0].ID

	once := Apply(items, ToggleDone{ID: id}, ids)
	assert.True(t, once[0].Done)
	assert.False(t, once[1].Done)

	twice := Apply(once, ToggleDone{ID: id}, ids)
	assert.Equal(t, items, twice)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items, ids := seed("A", "B")
	snapshot := model.Clone(items)

	for _, cmd := range []Command{
		Add{Text: "C"},
		Delete{ID: items[0].ID},
		ToggleDone{ID: items[0].ID},
		StartEdit{ID: items[1].ID},
		CommitEdit{ID: items[1].ID, Text: "changed"},
		ClearAll{},
	} {
		out := Apply(items, cmd, ids)
		assert.Equal(t, snapshot, items, "input changed by %s", cmd)
		if len(out) > 0 {
			out[0].Text = "scribble"
			assert.Equal(t, snapshot, items, "result of %s aliases input", cmd)
		}
	}
}

func TestApplyClearAll(t *testing.T) {
	for _, items := range [][]model.Item{nil, {}, {{ID: 1, Text: "A", Done: true, Editing: true}}} {
		out := Apply(items, ClearAll{}, &Counter{})
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestApplyEditOnlyTouchesTarget(t *testing.T) {
	items, ids := seed("A", "B", "C")

	out := Apply(items, StartEdit{ID: items[1].ID}, ids)
	out = Apply(out, StartEdit{ID: items[2].ID}, ids)

	assert.False(t, out[0].Editing)
	assert.True(t, out[1].Editing)
	assert.True(t, out[2].Editing, "several items may be editing at once")
}

func TestApplyDeleteWhileEditing(t *testing.T) {
	items, ids := seed("A", "B")
	out := Apply(items, StartEdit{ID: items[0].ID}, ids)
	out = Apply(out, Delete{ID: items[0].ID}, ids)

	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Text)
	for _, it := range out {
		assert.False(t, it.Editing)
	}
}
