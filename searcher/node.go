package searcher

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"

	"twenty48/game"
)

// node is one decision point in the explored game tree. A node starts with
// zero statistics and no children, gains one child per expansion, and is
// mutated in place on every iteration that passes through it. Nodes own
// their children outright; the whole tree is discarded on advance.
type node[A game.Action] struct {
	action   A // move that led here from the parent; unset on the root
	children []*node[A]
	terminal bool // the state at this node has no legal actions
	expanded bool // every legal action already has a child
	visits   float64
	rewards  float64
}

// bestChild returns the child maximizing UCT1 with exploration constant c,
// or nil if the node has no children. Unvisited children score +Inf and are
// taken immediately; ties go to the first-found child.
func (nd *node[A]) bestChild(c float64) *node[A] {
	if len(nd.children) == 0 {
		return nil
	}
	if nd.visits == 0 {
		panic("searcher: node has children but no visits")
	}

	var best *node[A]
	bestValue := math.Inf(-1)
	norm := normalizer(c, nd.visits)
	for _, child := range nd.children {
		value := uct1(child.rewards, child.visits, norm)
		if math.IsInf(value, 1) {
			return child
		}
		if value > bestValue {
			bestValue = value
			best = child
		}
	}
	return best
}

// expand adds a child for one untried action, chosen uniformly at random
// from allowed minus the actions already explored. When no action is legal
// it marks the node terminal and returns nil instead. The node becomes
// fully expanded once the last untried action gets its child.
func (nd *node[A]) expand(allowed []A, rng *rand.Rand) *node[A] {
	if len(allowed) == 0 {
		nd.terminal = true
		nd.expanded = true
		return nil
	}

	untried := make([]A, 0, len(allowed))
	for _, action := range allowed {
		if !nd.explored(action) {
			untried = append(untried, action)
		}
	}
	if len(untried) == 0 {
		panic("searcher: expand on a fully expanded node")
	}
	if len(untried) == 1 {
		nd.expanded = true
	}

	child := &node[A]{action: untried[rng.Intn(len(untried))]}
	nd.children = append(nd.children, child)
	return child
}

func (nd *node[A]) explored(action A) bool {
	for _, child := range nd.children {
		if child.action == action {
			return true
		}
	}
	return false
}

// iterate runs one MCTS pass through nd: select while fully expanded,
// expand one new child at the frontier, simulate a random playout from it,
// and fold the resulting reward into the statistics of every node on the
// way back up. state is a working clone mutated along the descent.
func iterate[A game.Action, S game.State[A, S]](nd *node[A], state S, c float64, rng *rand.Rand) float64 {
	var delta float64
	switch {
	case nd.terminal:
		// The node itself is the simulation result.
		delta = state.Reward()

	case nd.expanded:
		child := nd.bestChild(c)
		state.MakeMove(child.action)
		delta = iterate(child, state, c, rng)

	default:
		child := nd.expand(state.AllowedActions(), rng)
		if child == nil {
			// Just discovered a terminal state.
			delta = state.Reward()
		} else {
			state.MakeMove(child.action)
			delta = Playout[A, S](state, rng).Reward()
			child.visits = 1
			child.rewards = delta
		}
	}

	nd.visits++
	nd.rewards += delta
	return delta
}

// bestLine walks greedily from nd with c = 0 (pure exploitation) and
// collects the action at each step until a childless node is reached.
func (nd *node[A]) bestLine() []A {
	var line []A
	for child := nd.bestChild(0); child != nil; child = child.bestChild(0) {
		line = append(line, child.action)
	}
	return line
}

// dump writes an indented rendering of the subtree for diagnostics.
func (nd *node[A]) dump(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("    ", depth))
	if depth == 0 {
		fmt.Fprintf(b, "root q=%g n=%g\n", nd.rewards, nd.visits)
	} else {
		fmt.Fprintf(b, "%s q=%g n=%g\n", nd.action, nd.rewards, nd.visits)
	}
	for _, child := range nd.children {
		child.dump(b, depth+1)
	}
}
