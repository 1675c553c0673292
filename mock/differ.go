package mock

import (
	"github.com/pagewatch/pagewatch"
)

var _ pagewatch.Differ = (*Differ)(nil)

// Differ is a mock implementation of pagewatch.Differ.
type Differ struct {
	CompareFn func(oldText, newText string) (*pagewatch.DiffResult, error)
}

func (d *Differ) Compare(oldText, newText string) (*pagewatch.DiffResult, error) {
	return d.CompareFn(oldText, newText)
}
