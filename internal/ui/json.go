package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/tada/internal/model"
)

// WriteJSON writes items as an indented JSON array with a trailing newline.
func WriteJSON(w io.Writer, items []model.Item) error {
	b, err := json.MarshalIndent(model.Clone(items), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
