package deduce

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"cryptid/board"
	"cryptid/hexgrid"
)

var (
	// ErrInvalidArgument marks caller errors: bad player counts, duplicate
	// clue names, unregistered clues, unknown strategies.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState marks operations that need state the game does not
	// have, such as listing a player as known before their clue is.
	ErrInvalidState = errors.New("invalid state")
	// ErrIncompatibleClues is returned by Solve when the clue regions do
	// not intersect in exactly one cell. The solution search consumes it
	// internally.
	ErrIncompatibleClues = errors.New("incompatible clues")
	// ErrUnknownClue is returned by Play when the acting player has not
	// narrowed down their clue yet.
	ErrUnknownClue = errors.New("clue not yet known")
	// ErrNoLegalPlay is returned by Play when no unmarked cell is
	// consistent with the requested mark.
	ErrNoLegalPlay = errors.New("no legal play")
)

// Game owns the board, the shared clue catalog and the players of one
// deduction session. The catalog is built once and never mutated; every
// player works on their own shrinking copy.
type Game struct {
	board   *board.Board
	cells   hexgrid.Region
	catalog Catalog
	players []*Player
	rng     *rand.Rand
}

type config struct {
	seed   uint64
	seeded bool
	known  []Clue
}

// Option configures a new game.
type Option func(*config)

// WithSeed fixes the random source used by the random play strategy, so
// runs are reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithKnownClues assigns each player their clue up front, in player
// order. A zero Clue leaves that player unknown.
func WithKnownClues(clues ...Clue) Option {
	return func(c *config) {
		c.known = clues
	}
}

// New builds a game over a fully populated board for 3 to 5 players.
func New(b *board.Board, playerCount int, options ...Option) (*Game, error) {
	if playerCount < 3 || playerCount > 5 {
		return nil, fmt.Errorf("%w: player count must be 3 to 5, got %d",
			ErrInvalidArgument, playerCount)
	}

	cfg := config{}
	for _, option := range options {
		option(&cfg)
	}
	if len(cfg.known) > 0 && len(cfg.known) != playerCount {
		return nil, fmt.Errorf("%w: %d known clues for %d players",
			ErrInvalidArgument, len(cfg.known), playerCount)
	}
	if !cfg.seeded {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	catalog := BuildCatalog(b)
	g := &Game{
		board:   b,
		cells:   b.CellSet(),
		catalog: catalog,
		rng:     rand.New(rand.NewSource(cfg.seed)),
	}

	for i := 0; i < playerCount; i++ {
		var known *Clue
		if len(cfg.known) > 0 && !cfg.known[i].IsZero() {
			known = &cfg.known[i]
		}
		p, err := newPlayer(i, catalog, known)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		g.players = append(g.players, p)
	}

	return g, nil
}

// Board returns the game board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Catalog returns the shared clue catalog. Callers must not modify it.
func (g *Game) Catalog() Catalog {
	return g.catalog
}

// Players returns the players in play order.
func (g *Game) Players() []*Player {
	return g.players
}
