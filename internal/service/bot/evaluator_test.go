package bot

import (
	"math/rand"
	"testing"

	"github.com/GPar6/gomoku/internal/domain"
)

func TestClassifyBuckets(t *testing.T) {
	cases := []struct {
		run, open int
		want      Pattern
	}{
		{5, 0, PatternFive},
		{6, 2, PatternFive},
		{4, 2, PatternOpenFour},
		{4, 1, PatternSimpleFour},
		{4, 0, PatternNone},
		{3, 2, PatternOpenThree},
		{3, 1, PatternBlockedThree},
		{2, 2, PatternOpenTwo},
		{2, 1, PatternBlockedTwo},
		{2, 0, PatternNone},
		{1, 2, PatternNone},
	}
	for _, tc := range cases {
		if got := classify(tc.run, tc.open); got != tc.want {
			t.Fatalf("classify(%d,%d) = %s, want %s", tc.run, tc.open, got, tc.want)
		}
	}
}

func TestOpenFourReachesOpenFourBucket(t *testing.T) {
	table := DefaultScoreTable()
	b := domain.NewBoard(domain.BoardSize)
	place(b, domain.Black, at(7, 5), at(7, 6), at(7, 7), at(7, 8))

	for _, c := range []domain.Coordinate{at(7, 5), at(7, 6), at(7, 7), at(7, 8)} {
		threat := AnalyzePoint(b, c, domain.Black, table)
		if threat.Best != PatternOpenFour {
			t.Fatalf("stone %v: expected open four, got %s", c, threat.Best)
		}
	}
	for _, end := range []domain.Coordinate{at(7, 4), at(7, 9)} {
		if got := ScorePoint(b, end, domain.Black, table); got < table.OpenFour {
			t.Fatalf("end %v: expected at least %d, got %d", end, table.OpenFour, got)
		}
	}
}

func TestSimpleFourAgainstEdge(t *testing.T) {
	table := DefaultScoreTable()
	b := domain.NewBoard(domain.BoardSize)
	place(b, domain.White, at(0, 0), at(1, 0), at(2, 0), at(3, 0))

	threat := AnalyzePoint(b, at(1, 0), domain.White, table)
	if threat.Best != PatternSimpleFour {
		t.Fatalf("expected simple four against the edge, got %s", threat.Best)
	}
}

func TestBlockedByOpponentStone(t *testing.T) {
	table := DefaultScoreTable()
	b := domain.NewBoard(domain.BoardSize)
	place(b, domain.Black, at(7, 6), at(7, 7), at(7, 8))
	place(b, domain.White, at(7, 5))

	threat := AnalyzePoint(b, at(7, 7), domain.Black, table)
	if threat.Best != PatternBlockedThree || threat.Score != table.BlockedThree {
		t.Fatalf("expected single blocked three, got %s (%d)", threat.Best, threat.Score)
	}
}

func TestAxesAreSummed(t *testing.T) {
	table := DefaultScoreTable()
	b := domain.NewBoard(domain.BoardSize)
	// open two horizontally and open two vertically through (7,7)
	place(b, domain.Black, at(7, 8), at(8, 7))

	got := ScorePoint(b, at(7, 7), domain.Black, table)
	if got != 2*table.OpenTwo {
		t.Fatalf("expected %d, got %d", 2*table.OpenTwo, got)
	}
}

func TestEvaluateBoardSign(t *testing.T) {
	table := DefaultScoreTable()
	b := domain.NewBoard(domain.BoardSize)
	place(b, domain.White, at(7, 6), at(7, 7), at(7, 8))
	place(b, domain.Black, at(3, 3))

	if score := EvaluateBoard(b, domain.White, table); score <= 0 {
		t.Fatalf("expected positive score for white, got %d", score)
	}
	if score := EvaluateBoard(b, domain.Black, table); score >= 0 {
		t.Fatalf("expected negative score for black, got %d", score)
	}
	if EvaluateBoard(b, domain.White, table) != -EvaluateBoard(b, domain.Black, table) {
		t.Fatalf("scores for the two sides must be opposite")
	}
}

type symmetry func(n, r, c int) (int, int)

var symmetries = map[string]symmetry{
	"identity":  func(n, r, c int) (int, int) { return r, c },
	"rot90":     func(n, r, c int) (int, int) { return c, n - 1 - r },
	"rot180":    func(n, r, c int) (int, int) { return n - 1 - r, n - 1 - c },
	"rot270":    func(n, r, c int) (int, int) { return n - 1 - c, r },
	"mirror":    func(n, r, c int) (int, int) { return r, n - 1 - c },
	"flip":      func(n, r, c int) (int, int) { return n - 1 - r, c },
	"transpose": func(n, r, c int) (int, int) { return c, r },
	"antidiag":  func(n, r, c int) (int, int) { return n - 1 - c, n - 1 - r },
}

func transform(b *domain.Board, f symmetry) *domain.Board {
	n := b.Size()
	out := domain.NewBoard(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			tr, tc := f(n, r, c)
			out.Set(tr, tc, b.Get(r, c))
		}
	}
	return out
}

func randomBoard(rng *rand.Rand, n int, density float64) *domain.Board {
	b := domain.NewBoard(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Float64() < density {
				b.Set(r, c, domain.Role(1+rng.Intn(2)))
			}
		}
	}
	return b
}

func TestThreatEvaluatorSymmetryInvariant(t *testing.T) {
	table := DefaultScoreTable()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 10; trial++ {
		b := randomBoard(rng, domain.BoardSize, 0.35)
		n := b.Size()
		for name, f := range symmetries {
			tb := transform(b, f)
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					tr, tc := f(n, r, c)
					for _, role := range []domain.Role{domain.Black, domain.White} {
						want := ScorePoint(b, at(r, c), role, table)
						got := ScorePoint(tb, at(tr, tc), role, table)
						if got != want {
							t.Fatalf("%s: cell (%d,%d) role %v: got %d, want %d", name, r, c, role, got, want)
						}
					}
				}
			}
		}
	}
}
