package searcher

import (
	"golang.org/x/exp/rand"

	"twenty48/game"
)

// Playout clones state and plays uniformly random legal actions until none
// remain, returning the terminal clone. The input state is not mutated;
// calling Playout again on the same state draws an independent sample.
func Playout[A game.Action, S game.State[A, S]](state S, rng *rand.Rand) S {
	clone := state.Clone()

	actions := clone.AllowedActions()
	for len(actions) > 0 {
		clone.MakeMove(actions[rng.Intn(len(actions))])
		actions = clone.AllowedActions()
	}
	return clone
}

// ExpectedReward estimates the value of state as the arithmetic mean of the
// terminal reward over nSamples independent playouts. Panics if nSamples
// is less than 1.
func ExpectedReward[A game.Action, S game.State[A, S]](state S, nSamples int, rng *rand.Rand) float64 {
	if nSamples < 1 {
		panic("searcher: must sample at least one playout")
	}

	var sum float64
	for i := 0; i < nSamples; i++ {
		sum += Playout[A, S](state, rng).Reward()
	}
	return sum / float64(nSamples)
}
