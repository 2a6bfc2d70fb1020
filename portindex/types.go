package portindex

import (
	"sort"

	"github.com/rectree/rectree/gcell"
)

// Index is a seal-then-query sorted sequence of GCells. The zero value is
// an empty, unsealed index ready for Push.
type Index struct {
	cells  []gcell.GCell
	sealed bool
}

// New returns an empty Index.
func New() *Index {
	return &Index{}
}

// Push appends c to the index and marks it unsealed, requiring a fresh
// Seal before the next query.
func (idx *Index) Push(c gcell.GCell) {
	idx.cells = append(idx.cells, c)
	idx.sealed = false
}

// Seal sorts the accumulated cells into the total GCell order and makes the
// index queryable. Safe to call repeatedly (e.g. after further Pushes).
func (idx *Index) Seal() {
	sort.Slice(idx.cells, func(i, j int) bool { return idx.cells[i].Less(idx.cells[j]) })
	idx.sealed = true
}

// Len returns the number of cells pushed so far, sealed or not.
func (idx *Index) Len() int { return len(idx.cells) }

// Cells returns the sealed, sorted backing slice. The caller must not
// mutate it.
func (idx *Index) Cells() ([]gcell.GCell, error) {
	if !idx.sealed {
		return nil, ErrNotSealed
	}

	return idx.cells, nil
}
