package bot

import (
	"math/rand"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/rs/zerolog/log"
)

// Engine picks moves for one side. It holds the random source used to break
// ties between equally scored root moves, so a single Engine must not be
// shared between goroutines.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	nodes int
}

// NewEngine creates an engine. A nil src seeds from the clock.
func NewEngine(cfg Config, src rand.Source) *Engine {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Engine{
		cfg: cfg,
		rng: rand.New(src),
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// ChooseMove returns the cell aiRole should play. The board is used for
// speculative moves during the search and is identical to its input state
// when ChooseMove returns. domain.ErrBoardFull is returned when no empty cell
// is left.
func (e *Engine) ChooseMove(board *domain.Board, aiRole domain.Role) (domain.Coordinate, error) {
	if !aiRole.Valid() {
		return domain.Coordinate{}, domain.ErrInvalidRole
	}
	if board.IsFull() {
		return domain.Coordinate{}, domain.ErrBoardFull
	}

	if board.IsEmpty() {
		center := board.Center()
		logDecision("opening", center, aiRole, decisionStats{})
		return center, nil
	}

	if coord, ok := UrgentMove(board, aiRole, e.cfg); ok {
		logDecision("urgent", coord, aiRole, decisionStats{})
		return coord, nil
	}

	e.nodes = 0
	result := e.searchRoot(board, aiRole)
	if len(result.Best) > 0 {
		coord := result.Best[e.rng.Intn(len(result.Best))]
		logDecision("search", coord, aiRole, decisionStats{Score: result.Score, Ties: len(result.Best), Nodes: e.nodes})
		return coord, nil
	}

	coord := nearestToCenter(board)
	logDecision("fallback", coord, aiRole, decisionStats{Nodes: e.nodes})
	return coord, nil
}

// nearestToCenter returns the empty cell closest to the middle of the board.
// The board must have at least one empty cell.
func nearestToCenter(board *domain.Board) domain.Coordinate {
	center := board.Center()
	best := domain.Coordinate{Row: -1, Col: -1}
	bestDist := -1

	for _, cell := range board.EmptyCells() {
		dr, dc := cell.Row-center.Row, cell.Col-center.Col
		dist := dr*dr + dc*dc
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = cell
		}
	}
	return best
}

// decisionStats is what the search reports about a move; zero for paths
// that do not search.
type decisionStats struct {
	Score int
	Ties  int
	Nodes int
}

func logDecision(path string, coord domain.Coordinate, role domain.Role, stats decisionStats) {
	log.Debug().
		Str("path", path).
		Int("row", coord.Row).
		Int("col", coord.Col).
		Str("role", role.String()).
		Int("score", stats.Score).
		Int("ties", stats.Ties).
		Int("nodes", stats.Nodes).
		Msg("engine move")
}
