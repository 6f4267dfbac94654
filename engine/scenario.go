package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cryptid/board"
	"cryptid/deduce"
	"cryptid/hexgrid"
)

// Scenario is a YAML description of a complete session setup: the board
// layout, the structure coordinates, and how the players should behave.
type Scenario struct {
	Arrangement string   `yaml:"arrangement"`
	Structures  [][2]int `yaml:"structures"`
	Players     int      `yaml:"players"`
	KnownClues  []string `yaml:"known_clues"`
	Strategy    string   `yaml:"strategy"`
	Seed        uint64   `yaml:"seed"`
	Rounds      int      `yaml:"rounds"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// Board assembles the scenario's board.
func (s *Scenario) Board() (*board.Board, error) {
	structures := make([]hexgrid.Cell, len(s.Structures))
	for i, pos := range s.Structures {
		structures[i] = hexgrid.At(pos[0], pos[1])
	}
	return board.Assemble(s.Arrangement, structures)
}

// Game assembles the scenario's board and builds the game over it.
func (s *Scenario) Game() (*deduce.Game, error) {
	b, err := s.Board()
	if err != nil {
		return nil, err
	}

	options := []deduce.Option{}
	if s.Seed != 0 {
		options = append(options, deduce.WithSeed(s.Seed))
	}
	if len(s.KnownClues) > 0 {
		clues := make([]deduce.Clue, len(s.KnownClues))
		for i, name := range s.KnownClues {
			if name == "" {
				continue
			}
			clue, err := deduce.ParseClue(name)
			if err != nil {
				return nil, err
			}
			clues[i] = clue
		}
		options = append(options, deduce.WithKnownClues(clues...))
	}

	return deduce.New(b, s.Players, options...)
}

// Engine builds the scenario's game and wraps it in an engine with the
// scenario's strategy.
func (s *Scenario) Engine() (*Engine, error) {
	game, err := s.Game()
	if err != nil {
		return nil, err
	}
	strategy := deduce.Strategy(s.Strategy)
	if strategy == "" {
		strategy = deduce.StrategyRandom
	}
	return New(game, strategy), nil
}
