package bot

import (
	"github.com/GPar6/gomoku/internal/domain"
)

// UrgentMove looks for a move that must be played without searching: a win
// for aiRole, a block of an opponent win, or a block of an opponent reply
// scoring at least cfg.UrgentThreshold (an open four one move away).
func UrgentMove(board *domain.Board, aiRole domain.Role, cfg Config) (domain.Coordinate, bool) {
	opponent := aiRole.Opponent()

	var strongest domain.Coordinate
	maxThreat := -1

	n := board.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if board.Get(row, col) != domain.Empty || !board.HasNeighbor(row, col) {
				continue
			}
			coord := domain.Coordinate{Row: row, Col: col}

			if AnalyzePoint(board, coord, aiRole, cfg.Weights).Best == PatternFive {
				return coord, true
			}

			threat := AnalyzePoint(board, coord, opponent, cfg.Weights)
			if threat.Best == PatternFive {
				return coord, true
			}
			if threat.Score > maxThreat {
				maxThreat = threat.Score
				strongest = coord
			}
		}
	}

	if maxThreat >= cfg.UrgentThreshold {
		return strongest, true
	}
	return domain.Coordinate{}, false
}
