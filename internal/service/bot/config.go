package bot

import "fmt"

// ScoreTable holds the value of each line pattern the evaluator recognises.
type ScoreTable struct {
	Five         int `json:"five"`
	OpenFour     int `json:"open_four"`
	SimpleFour   int `json:"simple_four"`
	OpenThree    int `json:"open_three"`
	BlockedThree int `json:"blocked_three"`
	OpenTwo      int `json:"open_two"`
	BlockedTwo   int `json:"blocked_two"`
}

// Config is every tunable the engine reads. Nothing in the search is hardcoded
// outside of it.
type Config struct {
	Depth       int `json:"depth"`
	BranchLimit int `json:"branch_limit"`
	// positions whose |score| is strictly above this are treated as decided
	DecisiveThreshold int        `json:"decisive_threshold"`
	Weights           ScoreTable `json:"weights"`

	DefenseWeight          float64 `json:"defense_weight"`
	EscalatedDefenseWeight float64 `json:"escalated_defense_weight"`
	DefenseEscalation      int     `json:"defense_escalation"`

	// an opponent reply scoring at least this is blocked without searching
	UrgentThreshold int `json:"urgent_threshold"`
}

const (
	DEFAULT_DEPTH        = 3
	DEFAULT_BRANCH_LIMIT = 8

	// search cost grows roughly by the branch limit per ply, so both are capped
	MAX_DEPTH        = 4
	MAX_BRANCH_LIMIT = 15
)

func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Five:         200000,
		OpenFour:     50000,
		SimpleFour:   10000,
		OpenThree:    10000,
		BlockedThree: 1000,
		OpenTwo:      1000,
		BlockedTwo:   100,
	}
}

func DefaultConfig() Config {
	weights := DefaultScoreTable()
	return Config{
		Depth:                  DEFAULT_DEPTH,
		BranchLimit:            DEFAULT_BRANCH_LIMIT,
		DecisiveThreshold:      weights.OpenFour,
		Weights:                weights,
		DefenseWeight:          1.5,
		EscalatedDefenseWeight: 2.0,
		DefenseEscalation:      weights.SimpleFour,
		UrgentThreshold:        weights.OpenFour,
	}
}

func (c Config) Validate() error {
	if c.Depth < 1 || c.Depth > MAX_DEPTH {
		return fmt.Errorf("depth must be between 1 and %d, got %d", MAX_DEPTH, c.Depth)
	}
	if c.BranchLimit < 1 || c.BranchLimit > MAX_BRANCH_LIMIT {
		return fmt.Errorf("branch limit must be between 1 and %d, got %d", MAX_BRANCH_LIMIT, c.BranchLimit)
	}
	if c.DecisiveThreshold <= 0 {
		return fmt.Errorf("decisive threshold must be positive, got %d", c.DecisiveThreshold)
	}
	w := c.Weights
	for name, v := range map[string]int{
		"five":          w.Five,
		"open_four":     w.OpenFour,
		"simple_four":   w.SimpleFour,
		"open_three":    w.OpenThree,
		"blocked_three": w.BlockedThree,
		"open_two":      w.OpenTwo,
		"blocked_two":   w.BlockedTwo,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must not be negative, got %d", name, v)
		}
	}
	if c.DefenseWeight < 0 || c.EscalatedDefenseWeight < 0 {
		return fmt.Errorf("defense weights must not be negative")
	}
	if c.UrgentThreshold <= 0 {
		return fmt.Errorf("urgent threshold must be positive, got %d", c.UrgentThreshold)
	}
	return nil
}
