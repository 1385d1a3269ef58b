package board

import "slices"

// Stone is the content of a single board cell.
type Stone int

const (
	Empty Stone = iota
	Black
	White
)

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the other color. Empty maps to itself.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Captures counts stones removed from the board over a game, keyed by the
// color of the removed stones (not by who captured them).
type Captures struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Board is one immutable snapshot of a position: the stones, whose move is
// next, and the capture counters accumulated along the snapshot's lineage.
// Place returns a fresh snapshot and never mutates the receiver, so a Board
// can be stored in history and shared freely.
type Board struct {
	positions []Stone
	size      int
	turn      Stone
	captures  Captures
}

// DefaultSize is the standard board used when no size is configured.
const DefaultSize = 9

// New returns an empty size×size board with black to move.
func New(size int) Board {
	return Board{
		positions: make([]Stone, size*size),
		size:      size,
		turn:      Black,
	}
}

// Restore builds a snapshot from an explicit position list. The list length
// must be a perfect square. Used by hosts that re-enter a saved position and
// by tests; regular play only ever goes through New and Place.
func Restore(positions []Stone, turn Stone, captures Captures) (Board, bool) {
	size := 0
	for size*size < len(positions) {
		size++
	}
	if size*size != len(positions) || len(positions) == 0 {
		return Board{}, false
	}
	return Board{
		positions: slices.Clone(positions),
		size:      size,
		turn:      turn,
		captures:  captures,
	}, true
}

// Size returns the board edge length.
func (b Board) Size() int { return b.size }

// Cells returns the number of cells on the board.
func (b Board) Cells() int { return len(b.positions) }

// Turn returns the color that moves next.
func (b Board) Turn() Stone { return b.turn }

// Captures returns the cumulative capture counters.
func (b Board) Captures() Captures { return b.captures }

// At returns the stone at a cell.
func (b Board) At(index int) Stone { return b.positions[index] }

// Positions returns a copy of the position list, row-major.
func (b Board) Positions() []Stone { return slices.Clone(b.positions) }

// Index converts row/column coordinates to a cell index.
func (b Board) Index(row, col int) int { return row*b.size + col }

// SamePosition reports whether two snapshots hold identical stone layouts.
// Turn and capture counters are not compared; this is the equality the ko
// rule is defined over.
func (b Board) SamePosition(other Board) bool {
	return slices.Equal(b.positions, other.positions)
}

// Place puts the current color's stone at index and resolves captures,
// returning the resulting snapshot.
//
// Capture resolution runs in two sweeps: first every opponent group left
// without liberties is removed (liberties judged on the post-placement,
// pre-removal board, all doomed groups dropped together), then the mover's
// own libertyless groups are removed from the board as it stands after the
// opponent sweep. The ordering is what makes it legal to fill an opponent
// group's last liberty: the capture frees cells before self-capture is
// judged. Only opponent removals feed the capture counters.
//
// The turn passes to the opponent unless the position list ends up identical
// to what it was before the placement, which happens exactly when the placed
// stone captured nothing and was itself removed by the self sweep.
//
// Place does not require the cell to be empty or the move to be legal, so
// legality checks can run it speculatively. Precondition: index is a valid
// cell; out-of-range indices are the caller's contract violation.
func (b Board) Place(index int) Board {
	next := b.clone()
	next.positions[index] = b.turn

	opponent := b.turn.Opponent()
	captured := next.condemned(opponent)
	for _, cell := range captured {
		next.positions[cell] = Empty
	}
	switch opponent {
	case Black:
		next.captures.Black += len(captured)
	case White:
		next.captures.White += len(captured)
	}

	for _, cell := range next.condemned(b.turn) {
		next.positions[cell] = Empty
	}

	if !slices.Equal(next.positions, b.positions) {
		next.turn = opponent
	}
	return next
}

// IsLegalPlacement reports whether placing the current color at index is
// immediately legal: the cell is empty and the placed stone survives capture
// resolution. History-dependent legality (the ko rule) lives in the game
// package.
func (b Board) IsLegalPlacement(index int) bool {
	if index < 0 || index >= len(b.positions) {
		return false
	}
	if b.positions[index] != Empty {
		return false
	}
	return b.Place(index).positions[index] == b.turn
}

func (b Board) clone() Board {
	next := b
	next.positions = slices.Clone(b.positions)
	return next
}

// condemned returns every cell holding color whose group has no liberty.
// Liberties are judged against the receiver as-is, so one call removes all
// doomed groups of a color together without earlier removals feeding back
// into later checks.
func (b Board) condemned(color Stone) []int {
	visited := make([]bool, len(b.positions))
	var doomed []int
	for cell, stone := range b.positions {
		if stone != color || visited[cell] {
			continue
		}
		group, alive := b.group(cell)
		for _, member := range group {
			visited[member] = true
		}
		if !alive {
			doomed = append(doomed, group...)
		}
	}
	return doomed
}

// group flood-fills the maximal same-color group containing seed and reports
// whether any cell of the group touches an empty cell. The seen set keeps
// the fill from looping on cyclic group shapes.
func (b Board) group(seed int) (cells []int, hasLiberty bool) {
	color := b.positions[seed]
	seen := make([]bool, len(b.positions))
	seen[seed] = true
	stack := []int{seed}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells = append(cells, cell)
		for _, n := range b.neighbors(cell) {
			switch {
			case b.positions[n] == Empty:
				hasLiberty = true
			case b.positions[n] == color && !seen[n]:
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return cells, hasLiberty
}

// neighbors returns the orthogonally adjacent cells inside the grid.
func (b Board) neighbors(cell int) []int {
	row, col := cell/b.size, cell%b.size
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, cell-b.size)
	}
	if row < b.size-1 {
		out = append(out, cell+b.size)
	}
	if col > 0 {
		out = append(out, cell-1)
	}
	if col < b.size-1 {
		out = append(out, cell+1)
	}
	return out
}
