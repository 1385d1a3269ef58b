package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/board"
	gamedomain "goban/internal/domain/game"
	"goban/internal/errors"
)

// Snapshot is the render-ready view of the current position, exposing
// everything a presentation layer needs: the stones, whose turn it is, the
// capture counters, and where the cursor sits in history.
type Snapshot struct {
	Size      int            `json:"size"`
	Positions []board.Stone  `json:"positions"`
	Turn      board.Stone    `json:"turn"`
	Captures  board.Captures `json:"captures"`
	Cursor    int            `json:"cursor"`
	Snapshots int            `json:"snapshots"`
}

// GameUseCase is the validated handle around one match. The raw domain types
// stay permissive and lock-free; this layer rejects out-of-range and illegal
// requests with typed errors, leaving the game untouched on failure, and
// serializes all access behind one mutex so a host may share the handle.
type GameUseCase struct {
	cfg bootstrap.Config
	log *zap.SugaredLogger
	id  string

	mu   sync.Mutex
	game *gamedomain.Game
}

func NewGameUseCase(cfg bootstrap.Config, log *zap.SugaredLogger) *GameUseCase {
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = board.DefaultSize
	}
	return &GameUseCase{
		cfg:  cfg,
		log:  log,
		id:   uuid.NewString(),
		game: gamedomain.New(cfg.BoardSize),
	}
}

// ID returns the instance id carried on every log line for this match.
func (g *GameUseCase) ID() string { return g.id }

// Play validates and applies a move at cell. Returns ErrOutOfRange for a
// cell outside the grid and ErrIllegalMove when the placement breaks the
// liberty or ko rules; the game state is unchanged on failure.
func (g *GameUseCase) Play(cell int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cell < 0 || cell >= g.game.Current().Cells() {
		return fmt.Errorf("cell %d: %w", cell, errors.ErrOutOfRange)
	}
	if !g.game.Legal(cell) {
		g.log.Infow("move rejected", "game_id", g.id, "cell", cell)
		return fmt.Errorf("cell %d: %w", cell, errors.ErrIllegalMove)
	}

	mover := g.game.Current().Turn()
	g.game.Place(cell)
	g.game.TrimOldest(g.cfg.HistoryLimit)
	g.log.Infow("move played",
		"game_id", g.id,
		"cell", cell,
		"color", mover.String(),
		"captures", g.game.Current().Captures(),
	)
	return nil
}

// Seek moves the cursor to the given history index (0 is the latest
// snapshot). Returns ErrOutOfRange when no such snapshot is stored.
func (g *GameUseCase) Seek(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seek(index)
}

// Undo steps the cursor one snapshot back in time.
func (g *GameUseCase) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seek(g.game.Cursor() + 1)
}

// Redo steps the cursor one snapshot forward, toward the latest.
func (g *GameUseCase) Redo() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seek(g.game.Cursor() - 1)
}

func (g *GameUseCase) seek(index int) error {
	if !g.game.HasHistory(index) {
		return fmt.Errorf("history index %d: %w", index, errors.ErrOutOfRange)
	}
	g.game.Jump(index)
	g.log.Debugw("cursor moved", "game_id", g.id, "index", index)
	return nil
}

// Legal reports whether cell is playable from the current snapshot. Cells
// outside the grid are simply not playable.
func (g *GameUseCase) Legal(cell int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cell < 0 || cell >= g.game.Current().Cells() {
		return false
	}
	return g.game.Legal(cell)
}

// CanUndo reports whether an older snapshot exists.
func (g *GameUseCase) CanUndo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.game.HasHistory(g.game.Cursor() + 1)
}

// CanRedo reports whether a newer snapshot exists.
func (g *GameUseCase) CanRedo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.game.HasHistory(g.game.Cursor() - 1)
}

// Snapshot returns the current position for rendering.
func (g *GameUseCase) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	current := g.game.Current()
	return Snapshot{
		Size:      current.Size(),
		Positions: current.Positions(),
		Turn:      current.Turn(),
		Captures:  current.Captures(),
		Cursor:    g.game.Cursor(),
		Snapshots: g.game.Len(),
	}
}
