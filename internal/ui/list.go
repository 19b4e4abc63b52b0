package ui

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
)

const defaultMaxText = 80

// ListOptions tune the non-interactive listing.
type ListOptions struct {
	Group   bool // split into Pending and Done sections
	MaxText int  // truncate item text beyond this many runes; 0 means 80
}

// Header is the title line with done, pending and total counts.
func (t Theme) Header(items []model.Item) string {
	d, p := model.Stats(items)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(items),
	)
}

// Lines renders header, progress and item listing, ready for Panel.
func (t Theme) Lines(items []model.Item, opt ListOptions) []string {
	d, p := model.Stats(items)

	lines := []string{
		t.Header(items),
		t.ProgressBar(d, d+p, 28),
		"",
	}
	if opt.Group {
		lines = append(lines, t.groupLines(items, opt)...)
	} else {
		lines = append(lines, t.flatLines(items, opt)...)
	}
	return lines
}

// ItemLine renders one item as "#id box text", with an edit marker while
// the item is in edit mode.
func (t Theme) ItemLine(it model.Item, maxText int) string {
	box := t.Muted.Render(t.Box(it.Done))
	text := Truncate(it.Text, maxText)
	if it.Done {
		box = t.Success.Render(t.Box(true))
		text = t.Done.Render(text)
	}
	line := fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("#%-3d", it.ID)), box, text)
	if it.Editing {
		line += " " + t.Accent.Render(t.SymEdit)
	}
	return line
}

func (t Theme) flatLines(items []model.Item, opt ListOptions) []string {
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, t.ItemLine(it, opt.MaxText))
	}
	return out
}

func (t Theme) groupLines(items []model.Item, opt ListOptions) []string {
	pend, done := model.Split(items)
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, t.flatLines(pend, opt)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, t.flatLines(done, opt)...)
	}
	return lines
}

// Truncate shortens s to max runes, ending in "...". max <= 0 means 80.
func Truncate(s string, max int) string {
	if max <= 0 {
		max = defaultMaxText
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
