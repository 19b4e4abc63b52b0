package store

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
)

// Command is one of Add, Delete, ToggleDone, StartEdit, CommitEdit or
// ClearAll. The set is closed.
type Command interface {
	command()
	fmt.Stringer
}

// Add appends a new item. Text is trimmed; blank text is a no-op.
type Add struct{ Text string }

// Delete removes the item with ID.
type Delete struct{ ID model.ID }

// ToggleDone flips the done flag of the item with ID.
type ToggleDone struct{ ID model.ID }

// StartEdit puts the item with ID into edit mode.
type StartEdit struct{ ID model.ID }

// CommitEdit replaces the text of the item with ID and leaves edit mode.
// Text is stored as given, including empty.
type CommitEdit struct {
	ID   model.ID
	Text string
}

// ClearAll empties the collection.
type ClearAll struct{}

func (Add) command()        {}
func (Delete) command()     {}
func (ToggleDone) command() {}
func (StartEdit) command()  {}
func (CommitEdit) command() {}
func (ClearAll) command()   {}

func (c Add) String() string        { return fmt.Sprintf("add(%q)", c.Text) }
func (c Delete) String() string     { return fmt.Sprintf("delete(%d)", c.ID) }
func (c ToggleDone) String() string { return fmt.Sprintf("toggle(%d)", c.ID) }
func (c StartEdit) String() string  { return fmt.Sprintf("edit(%d)", c.ID) }
func (c CommitEdit) String() string { return fmt.Sprintf("commit(%d, %q)", c.ID, c.Text) }
func (ClearAll) String() string     { return "clear" }
