package game

import (
	"fmt"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/bot"
)

// Service is the entry point for stateless engine queries (facade)
type Service struct {
	Engine bot.Config
}

func NewService(engine bot.Config) *Service {
	return &Service{Engine: engine}
}

// SuggestMove asks the engine for role's move on board using a difficulty preset.
func (s *Service) SuggestMove(board *domain.Board, role domain.Role, difficulty string) (domain.Coordinate, error) {
	return s.SuggestMoveWithConfig(board, role, bot.ConfigForDifficulty(difficulty, s.Engine))
}

// SuggestMoveWithConfig asks the engine for role's move with an explicit configuration.
func (s *Service) SuggestMoveWithConfig(board *domain.Board, role domain.Role, cfg bot.Config) (domain.Coordinate, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: %v", ErrInvalidEngineConfig, err)
	}
	return bot.NewEngine(cfg, nil).ChooseMove(board, role)
}

const ErrInvalidEngineConfig domain.Error = "invalid engine configuration"

// EngineFactory builds the engine that plays one session.
type EngineFactory func(difficulty string) *bot.Engine

func NewEngineFactory(base bot.Config) EngineFactory {
	return func(difficulty string) *bot.Engine {
		return bot.NewEngine(bot.ConfigForDifficulty(difficulty, base), nil)
	}
}
