package logic

// Navigator tracks the card cursor over a grid laid out row by row and
// the first visible row of the viewport
type Navigator struct {
	selectedIndex int
	count         int
	columns       int
	rowOffset     int
	visibleRows   int
}

// NewNavigator creates a navigator for an empty one-column grid
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, visibleRows: 1}
}

// Reset points the cursor at the first of count items
func (n *Navigator) Reset(count int) {
	n.count = count
	n.selectedIndex = 0
	n.rowOffset = 0
}

// Resize updates the grid geometry and keeps the cursor on screen
func (n *Navigator) Resize(columns, visibleRows int) {
	if columns < 1 {
		columns = 1
	}
	if visibleRows < 1 {
		visibleRows = 1
	}
	n.columns = columns
	n.visibleRows = visibleRows
	n.ensureSelectedVisible()
}

// SelectedIndex returns the cursor position, or -1 when the grid is empty
func (n *Navigator) SelectedIndex() int {
	if n.count == 0 {
		return -1
	}
	return n.selectedIndex
}

// RowOffset returns the first visible row
func (n *Navigator) RowOffset() int {
	return n.rowOffset
}

func (n *Navigator) Columns() int {
	return n.columns
}

func (n *Navigator) VisibleRows() int {
	return n.visibleRows
}

// Rows returns the number of rows the items occupy
func (n *Navigator) Rows() int {
	return (n.count + n.columns - 1) / n.columns
}

// Move applies a direction: up, down, left, right, pageup, pagedown, home or end
func (n *Navigator) Move(direction string) {
	if n.count == 0 {
		return
	}

	idx := n.selectedIndex
	switch direction {
	case "up":
		if idx-n.columns >= 0 {
			idx -= n.columns
		}
	case "down":
		if idx+n.columns < n.count {
			idx += n.columns
		} else if n.rowOf(idx) < n.Rows()-1 {
			// partially filled last row
			idx = n.count - 1
		}
	case "left":
		if idx > 0 {
			idx--
		}
	case "right":
		if idx < n.count-1 {
			idx++
		}
	case "pageup":
		idx -= n.columns * n.visibleRows
	case "pagedown":
		idx += n.columns * n.visibleRows
	case "home":
		idx = 0
	case "end":
		idx = n.count - 1
	}

	n.selectedIndex = clamp(idx, 0, n.count-1)
	n.ensureSelectedVisible()
}

func (n *Navigator) rowOf(index int) int {
	return index / n.columns
}

// ensureSelectedVisible scrolls the viewport to the cursor's row
func (n *Navigator) ensureSelectedVisible() {
	if n.count == 0 {
		n.rowOffset = 0
		return
	}
	n.selectedIndex = clamp(n.selectedIndex, 0, n.count-1)

	row := n.rowOf(n.selectedIndex)
	if row < n.rowOffset {
		n.rowOffset = row
	}
	if row >= n.rowOffset+n.visibleRows {
		n.rowOffset = row - n.visibleRows + 1
	}

	maxOffset := n.Rows() - n.visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	n.rowOffset = clamp(n.rowOffset, 0, maxOffset)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
