package bot

import (
	"math"

	"github.com/GPar6/gomoku/internal/domain"
)

// speculate places role at coord for the duration of fn and always clears it again.
func speculate(board *domain.Board, coord domain.Coordinate, role domain.Role, fn func() int) int {
	board.Set(coord.Row, coord.Col, role)
	defer board.Set(coord.Row, coord.Col, domain.Empty)
	return fn()
}

// rootResult is the outcome of a root search: the best value and every root
// move that reached it.
type rootResult struct {
	Score int
	Best  []domain.Coordinate
}

// searchRoot searches each root candidate with a full window so that equal
// scores are exact and can be collected as ties.
func (e *Engine) searchRoot(board *domain.Board, aiRole domain.Role) rootResult {
	result := rootResult{Score: math.MinInt}

	candidates := truncate(OrderedCandidates(board, aiRole, e.cfg), e.cfg.BranchLimit)
	for _, cand := range candidates {
		score := speculate(board, cand.Coord, aiRole, func() int {
			return e.minimax(board, e.cfg.Depth-1, math.MinInt, math.MaxInt, false, aiRole)
		})

		if score > result.Score {
			result.Score = score
			result.Best = []domain.Coordinate{cand.Coord}
		} else if score == result.Score {
			result.Best = append(result.Best, cand.Coord)
		}
	}

	return result
}

// minimax implements the minimax algorithm with alpha-beta pruning. Scores
// are always from aiRole's point of view.
func (e *Engine) minimax(board *domain.Board, depth int, alpha, beta int, isMaximizing bool, aiRole domain.Role) int {
	e.nodes++
	boardScore := EvaluateBoard(board, aiRole, e.cfg.Weights)

	// Terminal conditions
	if depth <= 0 || abs(boardScore) > e.cfg.DecisiveThreshold {
		return boardScore
	}

	side := aiRole
	if !isMaximizing {
		side = aiRole.Opponent()
	}

	candidates := truncate(OrderedCandidates(board, side, e.cfg), e.cfg.BranchLimit)
	if len(candidates) == 0 {
		return boardScore
	}

	if isMaximizing {
		maxEval := math.MinInt
		for _, cand := range candidates {
			eval := speculate(board, cand.Coord, side, func() int {
				return e.minimax(board, depth-1, alpha, beta, false, aiRole)
			})
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)

			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, cand := range candidates {
		eval := speculate(board, cand.Coord, side, func() int {
			return e.minimax(board, depth-1, alpha, beta, true, aiRole)
		})
		minEval = min(minEval, eval)
		beta = min(beta, eval)

		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
