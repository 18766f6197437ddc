package twenty48

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"twenty48/searcher"
)

func countTiles(g *Game) int {
	count := 0
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if g.Tile(row, col) != 0 {
				count++
			}
		}
	}
	return count
}

// terminalGame builds a full board with no equal neighbors.
func terminalGame() *Game {
	g := NewEmpty()
	g.tiles = [Width * Height]uint16{
		2, 4, 8, 16,
		32, 64, 128, 256,
		512, 1024, 2048, 4,
		8, 16, 32, 64,
	}
	return g
}

func TestNew(t *testing.T) {
	g := New()

	require.Zero(t, g.Reward(), "A fresh game has no score")
	require.Zero(t, g.Moves())
	require.Equal(t, 2, countTiles(g), "A fresh game opens with two tiles")
}

func TestTileSetTile(t *testing.T) {
	g := NewEmpty()
	coords := []struct {
		row, col int
		tile     uint16
	}{
		{0, 1, 2},
		{2, 2, 4},
		{3, 1, 2048},
	}

	for _, c := range coords {
		g.SetTile(c.row, c.col, c.tile)
	}
	for _, c := range coords {
		require.Equal(t, c.tile, g.Tile(c.row, c.col))
	}
}

func TestSpawn(t *testing.T) {
	t.Run("fills the board one cell at a time", func(t *testing.T) {
		g := NewEmpty()
		g.SeedRandomness(1)

		for i := 0; i < Width*Height; i++ {
			require.False(t, g.BoardFull())
			g.Spawn()
			require.Equal(t, i+1, countTiles(g), "Each spawn should fill one empty cell")
		}
		require.True(t, g.BoardFull())
	})

	t.Run("panics on a full board", func(t *testing.T) {
		g := terminalGame()

		require.Panics(t, func() {
			g.Spawn()
		})
	})

	t.Run("same seed spawns the same cells", func(t *testing.T) {
		g1 := NewEmpty()
		g2 := NewEmpty()
		g1.SeedRandomness(42)
		g2.SeedRandomness(42)

		for i := 0; i < 8; i++ {
			g1.Spawn()
			g2.Spawn()
		}

		require.Equal(t, g1.tiles, g2.tiles, "Seeded spawns should be reproducible")
	})
}

func TestAllowedActions(t *testing.T) {
	t.Run("idempotent on an unmutated state", func(t *testing.T) {
		g := NewEmpty()
		g.SeedRandomness(3)
		g.Spawn()
		g.Spawn()

		require.Equal(t, g.AllowedActions(), g.AllowedActions(),
			"Querying twice must not change the answer")
	})

	t.Run("empty cells keep every direction legal", func(t *testing.T) {
		g := NewEmpty()
		g.SetTile(0, 0, 2)

		require.Equal(t, []Direction{Up, Down, Left, Right}, g.AllowedActions())
	})

	t.Run("full board without pairs is terminal", func(t *testing.T) {
		g := terminalGame()

		require.Empty(t, g.AllowedActions())
	})

	t.Run("full board with one pair allows only its axis", func(t *testing.T) {
		g := terminalGame()
		// Make (0,0) and (1,0) the only equal neighbors.
		g.SetTile(1, 0, g.Tile(0, 0))

		require.Equal(t, []Direction{Up, Down}, g.AllowedActions())
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("merges, scores, and spawns", func(t *testing.T) {
		g := NewEmpty()
		g.SeedRandomness(5)
		g.SetTile(0, 0, 2)
		g.SetTile(1, 0, 2)

		g.MakeMove(Up)

		require.Equal(t, uint16(4), g.Tile(0, 0), "The pair should merge at the top")
		require.Equal(t, 4.0, g.Reward(), "The merge should score its tile")
		require.Equal(t, 1, g.Moves())
		require.Equal(t, 2, countTiles(g), "A new tile should spawn after the move")
	})

	t.Run("panics on an illegal move", func(t *testing.T) {
		g := terminalGame()

		require.Panics(t, func() {
			g.MakeMove(Up)
		}, "An illegal move means the tree and state desynchronized")
	})
}

func TestClone(t *testing.T) {
	t.Run("clone is independent of the original", func(t *testing.T) {
		g := NewEmpty()
		g.SeedRandomness(7)
		g.Spawn()

		clone := g.Clone()
		clone.Spawn()
		clone.SetTile(3, 3, 2048)

		require.Equal(t, 1, countTiles(g), "Mutating the clone must not touch the original")
		require.Equal(t, uint16(0), g.Tile(3, 3))
	})

	t.Run("clone copies the spawn source", func(t *testing.T) {
		g := NewEmpty()
		g.SeedRandomness(7)

		clone := g.Clone()
		g.Spawn()
		clone.Spawn()

		require.Equal(t, g.tiles, clone.tiles,
			"A clone's next spawn should replay the original's stream")
	})
}

func TestPlayout(t *testing.T) {
	g := NewEmpty()
	g.SeedRandomness(11)
	g.Spawn()
	g.Spawn()

	final := searcher.Playout[Direction](g, rand.New(rand.NewSource(11)))

	require.Empty(t, final.AllowedActions(), "A playout ends on a terminal board")
	require.True(t, final.BoardFull(), "2048 only ends once the board locks up")
	require.Positive(t, final.Reward(), "Random play always merges something")
	require.Zero(t, g.Moves(), "The playout must not mutate its input")
}
