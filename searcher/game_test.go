package searcher

import "fmt"

// Fixture games for the searcher tests.

type testAction int

func (a testAction) String() string { return fmt.Sprintf("a%d", int(a)) }

// banditGame offers one action per payout, each leading straight to a
// terminal state worth that payout.
type banditGame struct {
	payouts []float64
	reward  float64
	done    bool
}

func newBandit(payouts ...float64) *banditGame {
	return &banditGame{payouts: payouts}
}

func (g *banditGame) AllowedActions() []testAction {
	if g.done {
		return nil
	}
	actions := make([]testAction, len(g.payouts))
	for i := range actions {
		actions[i] = testAction(i)
	}
	return actions
}

func (g *banditGame) MakeMove(a testAction) {
	if g.done || int(a) < 0 || int(a) >= len(g.payouts) {
		panic("banditGame: illegal move")
	}
	g.reward = g.payouts[int(a)]
	g.done = true
}

func (g *banditGame) Reward() float64 { return g.reward }

func (g *banditGame) Clone() *banditGame {
	clone := *g
	clone.payouts = append([]float64(nil), g.payouts...)
	return &clone
}

// countdownGame pays action+1 points per move and ends after limit moves,
// so a full game is worth between limit and limit*branches points.
type countdownGame struct {
	limit    int
	branches int
	moves    int
	score    float64
}

func (g *countdownGame) AllowedActions() []testAction {
	if g.moves >= g.limit {
		return nil
	}
	actions := make([]testAction, g.branches)
	for i := range actions {
		actions[i] = testAction(i)
	}
	return actions
}

func (g *countdownGame) MakeMove(a testAction) {
	if g.moves >= g.limit {
		panic("countdownGame: illegal move")
	}
	g.moves++
	g.score += float64(int(a) + 1)
}

func (g *countdownGame) Reward() float64 { return g.score }

func (g *countdownGame) Clone() *countdownGame {
	clone := *g
	return &clone
}
