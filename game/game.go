// Package game defines the capability contract the search engine requires
// from a game. The engine never sees a concrete board; it plays any game
// whose state can enumerate legal actions, apply one in place, and report
// a scalar reward.
package game

import "fmt"

// Action identifies one legal move. Actions are small copyable values: the
// engine compares them for equality to track which children of a tree node
// are already explored, and prints them for diagnostics. No ordering is
// required.
type Action interface {
	comparable
	fmt.Stringer
}

// State is the capability set required of a game state. Implementations are
// specialized at compile time, keeping virtual dispatch out of the
// simulation hot path.
//
// The type parameter S is the implementing type itself, so Clone returns
// the concrete state, not an interface.
type State[A Action, S any] interface {
	// AllowedActions returns every action that is legal from this state.
	// An empty result marks a terminal state. It is a pure function of the
	// state: calling it twice in a row yields the same actions.
	AllowedActions() []A

	// MakeMove mutates the state in place by applying action. The action
	// must come from AllowedActions; applying an illegal action is a
	// contract violation and panics.
	MakeMove(action A)

	// Reward is the scalar payoff associated with this state. For games
	// that accumulate points it is the running score, not a delta.
	Reward() float64

	// Clone returns a deep copy sharing no mutable state with the
	// receiver. A state that spawns randomness must clone its randomness
	// source too, so speculative futures never disturb the original.
	Clone() S
}

// Seeder is an optional capability for states with internal randomness.
// Seeding makes a state's stochastic transitions reproducible; it is used
// by applications and tests, never by the engine itself.
type Seeder interface {
	SeedRandomness(seed uint64)
}
