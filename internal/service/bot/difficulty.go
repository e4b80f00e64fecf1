package bot

import "github.com/GPar6/gomoku/internal/domain"

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) string {
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		return difficulty
	default:
		return domain.DifficultyMedium
	}
}

// ConfigForDifficulty keeps the scoring of base and only changes how far the
// engine looks ahead. An empty difficulty returns base unchanged.
func ConfigForDifficulty(difficulty string, base Config) Config {
	if difficulty == "" {
		return base
	}
	cfg := base
	switch ParseDifficulty(difficulty) {
	case domain.DifficultyEasy:
		cfg.Depth = 1
		cfg.BranchLimit = 8
	case domain.DifficultyMedium:
		cfg.Depth = 2
		cfg.BranchLimit = 8
	case domain.DifficultyHard:
		cfg.Depth = 3
		cfg.BranchLimit = 10
	}
	return cfg
}
