// Package game implements the rules engine for a no-limit Texas
// Hold'em variant used as a simulation environment.
//
// The main type is Game, which drives a single hand through its betting
// rounds and community-card reveals, validates action legality, and
// assembles per-player state views. A hand is advanced by a strict
// sequence of external calls; the engine never blocks.
//
// # Basic usage
//
//	g, _ := game.NewGame(game.Config{NumPlayers: 2, InitChips: 200, DealerID: 0})
//	state, player := g.InitHand()
//	for !g.IsOver() {
//	    state, player, _ = g.Step(state.LegalActions[0])
//	}
//	payoffs := g.GetPayoffs()
//
// # Manual card injection
//
// With Config.ManualMode set, community cards come from an external
// controller instead of the shuffled deck. When a betting round
// completes before the next street's cards have been injected, the
// hand parks in a waiting stage: GetLegalActions returns nothing and
// Step fails with ErrIllegalState until SetFlop, SetTurn or SetRiver
// supplies the cards, which resumes play in place.
//
// # Determinism and undo
//
// Randomness is injected via WithRNG for reproducible deals. With
// Config.AllowStepBack, every Step first records an independent deep
// snapshot; StepBack rewinds to the state before the most recent
// action.
//
// Game delegates to specialized collaborators: CardSource supplies
// cards (automatic or manual), BettingRound enforces betting mechanics
// and detects street completion, and a Judger computes payoffs at
// showdown.
package game
