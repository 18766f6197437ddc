// Package searcher implements Monte Carlo Tree Search with UCT1 selection
// over an ensemble of independent trees. It knows nothing about any
// concrete game; see package game for the contract it searches against.
package searcher

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"twenty48/game"
)

// Option configures an MCTS ensemble.
type Option func(*config)

type config struct {
	seed uint64
}

// WithSeed makes all search randomness deterministic. Each tree draws from
// its own stream derived from seed, so trees stay independent of each
// other while the ensemble as a whole is reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// tree is one independent search tree plus the state snapshot it was built
// from. Its statistics reflect exactly the iterations run against that
// snapshot; advancing the game replaces the tree wholesale.
type tree[A game.Action, S game.State[A, S]] struct {
	root  *node[A]
	state S
	rng   *rand.Rand
}

// MCTS drives an ensemble of independent UCT search trees rooted at clones
// of the canonical game state. Trees share nothing; their first-ply
// statistics are only combined when a best action is requested.
type MCTS[A game.Action, S game.State[A, S]] struct {
	trees []*tree[A, S]
	seed  uint64
	seq   uint64
}

// NewMCTS builds ensembleSize independent trees, each rooted at its own
// clone of state. Panics if ensembleSize < 1.
func NewMCTS[A game.Action, S game.State[A, S]](state S, ensembleSize int, options ...Option) *MCTS[A, S] {
	if ensembleSize < 1 {
		panic("searcher: ensemble must hold at least one tree")
	}

	cfg := config{seed: uint64(time.Now().UnixNano())}
	for _, option := range options {
		option(&cfg)
	}

	m := &MCTS[A, S]{
		trees: make([]*tree[A, S], ensembleSize),
		seed:  cfg.seed,
	}
	m.rebuild(state)
	return m
}

func (m *MCTS[A, S]) rebuild(state S) {
	for i := range m.trees {
		m.trees[i] = &tree[A, S]{
			root:  &node[A]{},
			state: state.Clone(),
			rng:   rand.New(rand.NewSource(m.seed + m.seq)),
		}
		m.seq++
	}
}

// Search runs nSamples iterations against every tree in the ensemble.
// Partial statistics stay valid between calls, so a caller on a wall-clock
// budget simply stops calling Search and queries BestAction. Panics if
// nSamples < 1.
func (m *MCTS[A, S]) Search(nSamples int, c float64) {
	if nSamples < 1 {
		panic("searcher: must run at least one iteration")
	}

	for _, t := range m.trees {
		for i := 0; i < nSamples; i++ {
			iterate(t.root, t.state.Clone(), c, t.rng)
		}
	}
}

// BestAction combines first-ply evidence across the ensemble: every root
// child's (q, n) is summed per action and the action with the highest
// aggregate mean reward wins. The second return is false when no tree has
// any children, i.e. no search has run or the canonical state is terminal.
func (m *MCTS[A, S]) BestAction() (A, bool) {
	type stats struct {
		rewards float64
		visits  float64
	}
	totals := make(map[A]*stats)
	var actions []A // first-seen order, to keep ties deterministic

	for _, t := range m.trees {
		for _, child := range t.root.children {
			st := totals[child.action]
			if st == nil {
				st = &stats{}
				totals[child.action] = st
				actions = append(actions, child.action)
			}
			st.rewards += child.rewards
			st.visits += child.visits
		}
	}

	var best A
	if len(actions) == 0 {
		return best, false
	}

	bestValue := math.Inf(-1)
	for _, action := range actions {
		st := totals[action]
		if value := st.rewards / st.visits; value > bestValue {
			bestValue = value
			best = action
		}
	}
	return best, true
}

// AdvanceGame discards every tree and rebuilds the ensemble from newState
// after a real move has been applied outside the engine. This is a full
// reset: no statistics survive it.
func (m *MCTS[A, S]) AdvanceGame(newState S) {
	m.rebuild(newState)
	log.Debug().Int("trees", len(m.trees)).Msg("search ensemble rebuilt")
}

// PrincipalVariation returns the pure-exploitation action line of the tree
// whose root holds the highest mean reward. Diagnostics only; BestAction
// is the move recommendation.
func (m *MCTS[A, S]) PrincipalVariation() []A {
	var best *tree[A, S]
	bestValue := math.Inf(-1)
	for _, t := range m.trees {
		if t.root.visits == 0 {
			continue
		}
		if value := t.root.rewards / t.root.visits; value > bestValue {
			bestValue = value
			best = t
		}
	}
	if best == nil {
		return nil
	}
	return best.root.bestLine()
}

// String renders every tree in the ensemble, indented by depth.
func (m *MCTS[A, S]) String() string {
	var b strings.Builder
	for i, t := range m.trees {
		fmt.Fprintf(&b, "tree %d:\n", i)
		t.root.dump(&b, 0)
	}
	return b.String()
}
