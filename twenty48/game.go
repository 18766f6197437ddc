// Package twenty48 implements the 2048 board mechanics: a square grid of
// merging tiles, running score, and random tile spawns. It satisfies the
// search engine's game contract; the engine only ever sees it through
// AllowedActions, MakeMove, Reward and Clone.
package twenty48

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"twenty48/game"
)

var (
	_ game.State[Direction, *Game] = (*Game)(nil)
	_ game.Seeder                  = (*Game)(nil)
)

// Board dimensions. The shift logic assumes a square board.
const (
	Width  = 4
	Height = 4
)

// Direction is one of the four 2048 moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Game is one 2048 position. It owns its randomness source: cloning a Game
// copies the source by value, so a clone's spawns never disturb the
// original and two clones diverge as soon as their streams are used
// differently.
type Game struct {
	rng   rand.PCGSource
	tiles [Width * Height]uint16
	score float64
	moves int
}

// NewEmpty returns a game with a blank board and a time-seeded spawn
// source. Use SeedRandomness before the first spawn for a reproducible
// game.
func NewEmpty() *Game {
	g := &Game{}
	g.rng.Seed(uint64(time.Now().UnixNano()))
	return g
}

// New returns a game opened with two spawned tiles.
func New() *Game {
	g := NewEmpty()
	g.Spawn()
	g.Spawn()
	return g
}

// SeedRandomness re-seeds the game's spawn source, determinizing every
// later stochastic transition.
func (g *Game) SeedRandomness(seed uint64) {
	g.rng.Seed(seed)
}

// Tile returns the value at (row, col), 0 for an empty cell.
func (g *Game) Tile(row, col int) uint16 {
	return g.tiles[row*Width+col]
}

// SetTile places value at (row, col).
func (g *Game) SetTile(row, col int, value uint16) {
	g.tiles[row*Width+col] = value
}

// Moves is the number of moves applied so far.
func (g *Game) Moves() int {
	return g.moves
}

// BoardFull reports whether no cell is empty.
func (g *Game) BoardFull() bool {
	for _, tile := range g.tiles {
		if tile == 0 {
			return false
		}
	}
	return true
}

// Spawn places a 2 on a uniformly random empty cell. Panics on a full
// board.
func (g *Game) Spawn() {
	if g.BoardFull() {
		panic("twenty48: spawn on a full board")
	}

	for {
		row := int(g.rng.Uint64() % Height)
		col := int(g.rng.Uint64() % Width)
		if g.Tile(row, col) == 0 {
			g.SetTile(row, col, 2)
			return
		}
	}
}

// AllowedActions returns the directions whose shift changes the board, in
// the fixed order Up, Down, Left, Right. An empty result means the game is
// over.
func (g *Game) AllowedActions() []Direction {
	var allowed []Direction
	for _, dir := range directions {
		if _, _, changed := shiftAndMerge(g.tiles, dir); changed {
			allowed = append(allowed, dir)
		}
	}
	return allowed
}

// MakeMove shifts the board in the given direction, adds the scored points,
// and spawns a new tile. Panics if the move is illegal: the engine only
// plays actions drawn from AllowedActions, so an illegal move means the
// tree and the state have desynchronized.
func (g *Game) MakeMove(dir Direction) {
	shifted, points, changed := shiftAndMerge(g.tiles, dir)
	if !changed {
		panic(fmt.Sprintf("twenty48: illegal move %s", dir))
	}

	g.score += points
	g.moves++
	g.tiles = shifted
	g.Spawn()
}

// Reward is the running score.
func (g *Game) Reward() float64 {
	return g.score
}

// Clone returns an independent copy of the game, spawn source included.
func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

func (g *Game) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "moves=%d score=%.0f\n", g.moves, g.score)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if tile := g.Tile(row, col); tile == 0 {
				b.WriteString("    .")
			} else {
				fmt.Fprintf(&b, "%5d", tile)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
