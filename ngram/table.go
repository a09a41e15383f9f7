package ngram

import "math"

// Table is a fixed-radix frequency table over a dense alphabet of the given
// width: width^order rows, each holding width bounded counters plus a wide
// running sum. The zero value is unusable; construct with New.
type Table struct {
	order  int
	width  int
	rows   int
	counts []Counter // row-major, rows × width
	sums   []uint64  // one per row; always the arithmetic sum of its cells
}

// New allocates a table of width^order rows. The row count is derived once,
// internally, with an explicit overflow check on both the row count and the
// total cell count. Returns ErrOrderTooSmall for order < 2, ErrWidthTooSmall
// for width < 1, ErrRowCountOverflow if the storage cannot be addressed.
// Complexity: O(width^order) time and memory.
func New(order, width int) (*Table, error) {
	if order < 2 {
		return nil, ErrOrderTooSmall
	}
	if width < 1 {
		return nil, ErrWidthTooSmall
	}
	rows := 1
	for i := 0; i < order; i++ {
		if rows > math.MaxInt/width {
			return nil, ErrRowCountOverflow
		}
		rows *= width
	}
	// The flat cell slice is rows×width; it must be addressable too.
	if rows > math.MaxInt/width {
		return nil, ErrRowCountOverflow
	}

	return &Table{
		order:  order,
		width:  width,
		rows:   rows,
		counts: make([]Counter, rows*width),
		sums:   make([]uint64, rows),
	}, nil
}

// Order returns the context length the table was built for.
func (t *Table) Order() int { return t.order }

// Width returns the alphabet width (number of columns per row).
func (t *Table) Width() int { return t.width }

// Rows returns the total row count, width^order.
func (t *Table) Rows() int { return t.rows }

// RowIndex computes the base-width positional encoding of the last order
// elements of ctx: the most recent (last) element lands in the lowest-order
// position. Returns ErrContextTooShort when ctx has fewer than order
// elements, ErrIndexOutOfRange when any used element falls outside
// [0, width).
// Complexity: O(order).
func (t *Table) RowIndex(ctx []int) (int, error) {
	if len(ctx) < t.order {
		return 0, ErrContextTooShort
	}
	idx := 0
	for _, v := range ctx[len(ctx)-t.order:] {
		if v < 0 || v >= t.width {
			return 0, ErrIndexOutOfRange
		}
		idx = idx*t.width + v
	}
	return idx, nil
}

// Observe records one sighting of next following ctx: the matching cell and
// the row sum are bumped together, or neither is. Returns RowIndex errors,
// ErrIndexOutOfRange for a bad next, ErrCounterSaturated when the cell is at
// its 8-bit cap, ErrSumOverflow when the row total is at its 64-bit cap.
// Complexity: O(order).
func (t *Table) Observe(ctx []int, next int) error {
	row, err := t.RowIndex(ctx)
	if err != nil {
		return err
	}
	if next < 0 || next >= t.width {
		return ErrIndexOutOfRange
	}
	if t.sums[row] == math.MaxUint64 {
		return ErrSumOverflow
	}
	if err = t.counts[row*t.width+next].inc(); err != nil {
		return err
	}
	t.sums[row]++
	return nil
}

// Row returns a copy of the counter row for ctx together with its sum. The
// copy keeps callers from mutating storage behind the sums' back.
// Complexity: O(width).
func (t *Table) Row(ctx []int) ([]uint8, uint64, error) {
	row, err := t.RowIndex(ctx)
	if err != nil {
		return nil, 0, err
	}
	out := make([]uint8, t.width)
	for i, c := range t.counts[row*t.width : (row+1)*t.width] {
		out[i] = uint8(c)
	}
	return out, t.sums[row], nil
}
