package store

import "github.com/Makepad-fr/tada/internal/model"

// IDSource hands out item ids. Every id returned must be distinct for the
// lifetime of the source.
type IDSource interface {
	Next() model.ID
}

// Counter is a strictly increasing IDSource starting at 1.
// The zero value is ready to use.
type Counter struct {
	last model.ID
}

func (c *Counter) Next() model.ID {
	c.last++
	return c.last
}

// Last returns the most recently issued id, or 0 if none.
func (c *Counter) Last() model.ID { return c.last }
