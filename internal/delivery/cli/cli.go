package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/board"
	gameuc "goban/internal/usecase/game"
)

// Handler drives one match over a terminal: it renders the board, reads
// commands from the session's input and forwards them to the game usecase.
type Handler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
	in     io.Reader
	out    io.Writer
}

func NewHandler(cfg bootstrap.Config, log *zap.SugaredLogger, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		cfg:    cfg,
		log:    log,
		gameUC: gameuc.NewGameUseCase(cfg, log),
		in:     in,
		out:    out,
	}
}

// Run reads commands until quit, end of input, or context cancellation.
func (h *Handler) Run(ctx context.Context) error {
	h.log.Infow("session started", "game_id", h.gameUC.ID(), "board_size", h.cfg.BoardSize)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	h.render()
	for {
		fmt.Fprint(h.out, "> ")
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if h.dispatch(strings.TrimSpace(line)) {
				return nil
			}
		}
	}
}

// dispatch handles one command line and reports whether the session is over.
func (h *Handler) dispatch(line string) bool {
	if line == "" {
		return false
	}
	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case "play", "p":
		if len(fields) != 2 {
			fmt.Fprintln(h.out, "usage: play <coordinate>, e.g. play c3")
			return false
		}
		h.play(fields[1])
	case "undo", "u":
		if err := h.gameUC.Undo(); err != nil {
			fmt.Fprintln(h.out, "nothing to undo")
			return false
		}
		h.render()
	case "redo", "r":
		if err := h.gameUC.Redo(); err != nil {
			fmt.Fprintln(h.out, "nothing to redo")
			return false
		}
		h.render()
	case "jump", "j":
		if len(fields) != 2 {
			fmt.Fprintln(h.out, "usage: jump <history index>, 0 is the latest move")
			return false
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil || h.gameUC.Seek(index) != nil {
			fmt.Fprintf(h.out, "no snapshot at index %s\n", fields[1])
			return false
		}
		h.render()
	case "show", "s":
		h.render()
	case "help", "h", "?":
		h.printHelp()
	case "quit", "q", "exit":
		h.log.Infow("session ended", "game_id", h.gameUC.ID())
		return true
	default:
		fmt.Fprintf(h.out, "unknown command %q, try help\n", fields[0])
	}
	return false
}

func (h *Handler) play(coord string) {
	cell, ok := h.parseCoord(coord)
	if !ok {
		fmt.Fprintf(h.out, "bad coordinate %q, expected column letter + row number, e.g. c3\n", coord)
		return
	}
	if err := h.gameUC.Play(cell); err != nil {
		fmt.Fprintf(h.out, "illegal move at %s\n", coord)
		return
	}
	h.render()
}

// parseCoord converts "c3" style coordinates to a cell index: a column
// letter from the left, a row number counted from the bottom.
func (h *Handler) parseCoord(coord string) (int, bool) {
	size := h.gameUC.Snapshot().Size
	if len(coord) < 2 {
		return 0, false
	}
	col := int(coord[0] - 'a')
	rowNum, err := strconv.Atoi(coord[1:])
	if err != nil {
		return 0, false
	}
	row := size - rowNum
	if col < 0 || col >= size || row < 0 || row >= size {
		return 0, false
	}
	return row*size + col, true
}

func (h *Handler) formatCoord(cell, size int) string {
	row, col := cell/size, cell%size
	return fmt.Sprintf("%c%d", 'a'+col, size-row)
}

func (h *Handler) render() {
	snap := h.gameUC.Snapshot()

	var sb strings.Builder
	sb.WriteString("\n   ")
	for col := 0; col < snap.Size; col++ {
		fmt.Fprintf(&sb, " %c", 'a'+col)
	}
	sb.WriteByte('\n')
	for row := 0; row < snap.Size; row++ {
		fmt.Fprintf(&sb, "%2d ", snap.Size-row)
		for col := 0; col < snap.Size; col++ {
			switch snap.Positions[row*snap.Size+col] {
			case board.Black:
				sb.WriteString(" X")
			case board.White:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(h.out, sb.String())

	fmt.Fprintf(h.out, "%s to move | captured: %d black, %d white",
		snap.Turn, snap.Captures.Black, snap.Captures.White)
	if snap.Cursor > 0 {
		fmt.Fprintf(h.out, " | viewing %d move(s) back", snap.Cursor)
	}
	fmt.Fprintln(h.out)
	if h.gameUC.CanUndo() || h.gameUC.CanRedo() {
		fmt.Fprintf(h.out, "undo available: %t, redo available: %t\n",
			h.gameUC.CanUndo(), h.gameUC.CanRedo())
	}
}

func (h *Handler) printHelp() {
	fmt.Fprintln(h.out, `commands:
  play <coord>  place a stone, e.g. play c3
  undo          step one move back
  redo          step one move forward
  jump <n>      view the position n moves back (0 = latest)
  show          reprint the board
  quit          end the session`)
}
