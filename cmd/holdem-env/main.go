package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pokersim/holdem-env/internal/game"
	"github.com/pokersim/holdem-env/internal/randutil"
	"github.com/pokersim/holdem-env/internal/scenario"
	"github.com/pokersim/holdem-env/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Background(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
)

type CLI struct {
	Scenario string `short:"s" help:"Path to a scenario HCL file" type:"path"`
	Seed     int64  `help:"RNG seed (0 for time-based)"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	fmt.Println(titleStyle.Render(" ♠ ♥ hold'em hand runner ♦ ♣ "))
	fmt.Println()

	if err := run(&cli, logger); err != nil {
		log.Fatal("Hand failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cli *CLI, logger *log.Logger) error {
	s, err := scenario.Load(cli.Scenario)
	if err != nil {
		return err
	}
	compiled, err := s.Compile()
	if err != nil {
		return err
	}

	opts := []game.Option{game.WithLogger(logger)}
	if cli.Seed != 0 {
		opts = append(opts, game.WithRNG(randutil.New(cli.Seed)))
	}
	h, err := game.NewGame(compiled.Game, opts...)
	if err != nil {
		return err
	}

	state, actor := h.InitHand()
	fmt.Printf("dealer seat %d, %d players\n\n", h.DealerID(), h.NumPlayers())
	printState(h, state)

	script := compiled.Actions
	for !h.IsOver() {
		if stage := h.Stage(); !stage.Actionable() {
			if !injectStreet(h, compiled, stage) {
				fmt.Printf("%s: no scripted cards, stopping\n", stage)
				return nil
			}
			actor = h.GetState(actor).CurrentPlayer
			fmt.Printf("\n%s\n", stageStyle.Render(strings.ToUpper(h.Stage().String())))
			printState(h, h.GetState(actor))
			continue
		}

		action, ok := nextAction(h, &script)
		if !ok {
			return fmt.Errorf("no action available in stage %s", h.Stage())
		}

		fmt.Printf("seat %d: %s\n", actor, action)
		state, actor, err = h.Step(action)
		if err != nil {
			return err
		}
		if state.Stage.Actionable() {
			printState(h, state)
		}
	}

	fmt.Println()
	fmt.Println(stageStyle.Render("HAND COMPLETE"))
	printState(h, h.GetState(0))
	for seat, payoff := range h.GetPayoffs() {
		fmt.Printf("seat %d: %+d chips\n", seat, payoff)
	}
	return nil
}

// nextAction pops the scripted action if one is left and legal,
// otherwise falls back to the passive line.
func nextAction(h *game.Game, script *[]game.Action) (game.Action, bool) {
	legal := h.GetLegalActions()
	if len(legal) == 0 {
		return 0, false
	}

	if len(*script) > 0 {
		action := (*script)[0]
		*script = (*script)[1:]
		for _, a := range legal {
			if a == action {
				return action, true
			}
		}
		fmt.Printf("scripted action %s not legal, falling back\n", action)
	}

	for _, a := range []game.Action{game.Check, game.Call} {
		for _, l := range legal {
			if l == a {
				return a, true
			}
		}
	}
	return legal[0], true
}

// injectStreet supplies the scripted cards for the street the hand is
// waiting on. It reports whether cards were available.
func injectStreet(h *game.Game, compiled *scenario.Compiled, stage game.Stage) bool {
	switch stage.Street {
	case game.Flop:
		if len(compiled.Flop) != 3 {
			return false
		}
		return h.SetFlop(compiled.Flop) == nil
	case game.Turn:
		if compiled.Turn == nil {
			return false
		}
		h.SetTurn(*compiled.Turn)
	case game.River:
		if compiled.River == nil {
			return false
		}
		h.SetRiver(*compiled.River)
	default:
		return false
	}
	return true
}

func printState(h *game.Game, state *game.State) {
	fmt.Printf("%s  pot %d\n", stageStyle.Render(state.Stage.String()), state.Pot)
	if len(state.PublicCards) > 0 {
		fmt.Printf("board: %s\n", renderCards(state.PublicCards))
	}
	for seat := 0; seat < h.NumPlayers(); seat++ {
		view := h.GetState(seat)
		marker := " "
		if seat == state.CurrentPlayer {
			marker = "*"
		}
		fmt.Printf("%s seat %d: %s  stack %d  committed %d\n",
			marker, seat, renderCards(view.Hand), view.Stakes[seat], view.AllChips[seat])
	}
	fmt.Println()
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

func renderCard(c poker.Card) string {
	var symbol string
	style := blackCardStyle
	switch c.Suit {
	case poker.Spades:
		symbol = "♠"
	case poker.Hearts:
		symbol, style = "♥", redCardStyle
	case poker.Diamonds:
		symbol, style = "♦", redCardStyle
	case poker.Clubs:
		symbol = "♣"
	}
	return style.Render(c.Rank.String() + symbol)
}
