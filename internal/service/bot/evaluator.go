package bot

import (
	"github.com/GPar6/gomoku/internal/domain"
)

// Pattern is the shape of the run through a cell along one axis.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternBlockedTwo
	PatternOpenTwo
	PatternBlockedThree
	PatternOpenThree
	PatternSimpleFour
	PatternOpenFour
	PatternFive
)

var patternNames = [...]string{
	PatternNone:         "none",
	PatternBlockedTwo:   "blocked_two",
	PatternOpenTwo:      "open_two",
	PatternBlockedThree: "blocked_three",
	PatternOpenThree:    "open_three",
	PatternSimpleFour:   "simple_four",
	PatternOpenFour:     "open_four",
	PatternFive:         "five",
}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return "unknown"
	}
	return patternNames[p]
}

// classify maps a run length and its number of open ends to exactly one pattern.
func classify(run, emptySide int) Pattern {
	switch {
	case run >= domain.ToWin:
		return PatternFive
	case run == 4 && emptySide == 2:
		return PatternOpenFour
	case run == 4 && emptySide == 1:
		return PatternSimpleFour
	case run == 3 && emptySide == 2:
		return PatternOpenThree
	case run == 3 && emptySide == 1:
		return PatternBlockedThree
	case run == 2 && emptySide == 2:
		return PatternOpenTwo
	case run == 2 && emptySide == 1:
		return PatternBlockedTwo
	}
	return PatternNone
}

func (t ScoreTable) Value(p Pattern) int {
	switch p {
	case PatternFive:
		return t.Five
	case PatternOpenFour:
		return t.OpenFour
	case PatternSimpleFour:
		return t.SimpleFour
	case PatternOpenThree:
		return t.OpenThree
	case PatternBlockedThree:
		return t.BlockedThree
	case PatternOpenTwo:
		return t.OpenTwo
	case PatternBlockedTwo:
		return t.BlockedTwo
	}
	return 0
}

// Threat is the evaluation of one cell for one role.
type Threat struct {
	Score int
	// strongest single-axis pattern
	Best Pattern
}

// AnalyzePoint scores coord for role as if role occupied it. Each of the four
// axes contributes the value of its own pattern; axes are summed.
func AnalyzePoint(board *domain.Board, coord domain.Coordinate, role domain.Role, table ScoreTable) Threat {
	var threat Threat

	for _, dir := range domain.Axes {
		run := 1
		emptySide := 0

		for _, sign := range [2]int{1, -1} {
			dRow, dCol := dir[0]*sign, dir[1]*sign
			r, c := coord.Row+dRow, coord.Col+dCol
			for board.InBounds(r, c) && board.Get(r, c) == role {
				run++
				r += dRow
				c += dCol
			}
			if board.InBounds(r, c) && board.Get(r, c) == domain.Empty {
				emptySide++
			}
		}

		pattern := classify(run, emptySide)
		threat.Score += table.Value(pattern)
		if pattern > threat.Best {
			threat.Best = pattern
		}
	}

	return threat
}

func ScorePoint(board *domain.Board, coord domain.Coordinate, role domain.Role, table ScoreTable) int {
	return AnalyzePoint(board, coord, role, table).Score
}

// EvaluateBoard calculates a heuristic score for the current board position,
// positive when aiRole is better off.
func EvaluateBoard(board *domain.Board, aiRole domain.Role, table ScoreTable) int {
	opponent := aiRole.Opponent()
	score := 0

	n := board.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			switch board.Get(row, col) {
			case aiRole:
				score += ScorePoint(board, domain.Coordinate{Row: row, Col: col}, aiRole, table)
			case opponent:
				score -= ScorePoint(board, domain.Coordinate{Row: row, Col: col}, opponent, table)
			}
		}
	}

	return score
}
