package bot

import (
	"sort"

	"github.com/GPar6/gomoku/internal/domain"
)

// Candidate is an empty cell paired with its move-ordering score.
type Candidate struct {
	Coord domain.Coordinate
	Score float64
}

// OrderedCandidates scores every empty cell next to an existing stone and
// returns them best first. Isolated empty cells are never considered.
func OrderedCandidates(board *domain.Board, role domain.Role, cfg Config) []Candidate {
	opponent := role.Opponent()
	candidates := make([]Candidate, 0, 64)

	n := board.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if board.Get(row, col) != domain.Empty || !board.HasNeighbor(row, col) {
				continue
			}
			coord := domain.Coordinate{Row: row, Col: col}
			attack := ScorePoint(board, coord, role, cfg.Weights)
			defense := ScorePoint(board, coord, opponent, cfg.Weights)

			weight := cfg.DefenseWeight
			if defense >= cfg.DefenseEscalation {
				weight = cfg.EscalatedDefenseWeight
			}

			candidates = append(candidates, Candidate{
				Coord: coord,
				Score: float64(attack) + float64(defense)*weight,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

func truncate(candidates []Candidate, limit int) []Candidate {
	if limit > 0 && len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
