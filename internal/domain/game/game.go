package game

import "goban/internal/domain/board"

// Game tracks one match as a time-ordered history of board snapshots plus a
// cursor marking which snapshot is "the present". The history is stored
// most-recent-first: index 0 is the latest snapshot, the last entry is the
// empty starting board. The cursor moves for undo/redo; the history itself
// only changes when a move is played.
type Game struct {
	history []board.Board
	index   int
}

// New returns a game whose history holds a single empty board of the given
// size, black to move, cursor on it.
func New(size int) *Game {
	return &Game{history: []board.Board{board.New(size)}}
}

// Current returns the snapshot the cursor points at.
func (g *Game) Current() board.Board { return g.history[g.index] }

// Len returns the number of stored snapshots, the empty start included.
func (g *Game) Len() int { return len(g.history) }

// Cursor returns the history index currently treated as the present.
func (g *Game) Cursor() int { return g.index }

// HasHistory reports whether index addresses a stored snapshot.
func (g *Game) HasHistory(index int) bool {
	return index >= 0 && index < len(g.history)
}

// Place plays the current color at cell on the cursor's snapshot, prepends
// the result to history and resets the cursor to it. Any snapshots newer
// than the cursor — moves that had been undone before this one was played —
// are discarded: undoing and then moving forfeits the old future.
//
// Legality is not checked here; callers wanting rule enforcement ask Legal
// first. Precondition: cell is a valid cell index for the board.
func (g *Game) Place(cell int) {
	next := g.Current().Place(cell)
	kept := g.history[g.index:]
	g.history = append(make([]board.Board, 0, len(kept)+1), next)
	g.history = append(g.history, kept...)
	g.index = 0
}

// Jump moves the cursor to dest without touching history.
// Precondition: HasHistory(dest).
func (g *Game) Jump(dest int) { g.index = dest }

// Legal reports whether playing at cell from the cursor's snapshot is
// allowed: the placement must be immediately legal on the board, and the
// resulting position must not recreate any snapshot that would survive the
// move (the positional ko rule). Snapshots newer than the cursor are not
// consulted — Place would discard them, so replaying into a position that
// exists only in that about-to-be-dropped future is allowed.
func (g *Game) Legal(cell int) bool {
	current := g.Current()
	if !current.IsLegalPlacement(cell) {
		return false
	}
	next := current.Place(cell)
	for _, snap := range g.history[g.index:] {
		if next.SamePosition(snap) {
			return false
		}
	}
	return true
}

// TrimOldest drops the oldest snapshots until at most limit remain; limit 0
// means unlimited. The engine never caps history on its own — this exists
// for hosts that do. The cursor is clamped if its snapshot was dropped.
func (g *Game) TrimOldest(limit int) {
	if limit <= 0 || len(g.history) <= limit {
		return
	}
	g.history = g.history[:limit]
	if g.index >= len(g.history) {
		g.index = len(g.history) - 1
	}
}
