package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/pokersim/holdem-env/internal/randutil"
	"github.com/pokersim/holdem-env/poker"
)

// Config describes a game before the first hand. It is consumed once;
// later hands reuse it with the dealer button rotating.
type Config struct {
	NumPlayers int
	InitChips  int
	SmallBlind int
	BigBlind   int

	// DealerID fixes the button seat for the first hand; -1 selects it
	// randomly. Subsequent hands rotate from there.
	DealerID int

	// ManualMode makes the card source wait for externally injected
	// cards instead of drawing from the shuffled deck.
	ManualMode bool

	// PlayerZeroHand presets player zero's hole cards. Consumed only
	// when ManualMode is set.
	PlayerZeroHand []poker.Card

	// AllowStepBack records a snapshot before every action so the hand
	// can be rewound with StepBack.
	AllowStepBack bool
}

func (c *Config) validate() error {
	if c.NumPlayers < 2 {
		return fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidArgument, c.NumPlayers)
	}
	if c.InitChips <= 0 {
		return fmt.Errorf("%w: starting chips must be positive, got %d", ErrInvalidArgument, c.InitChips)
	}
	if c.DealerID < -1 || c.DealerID >= c.NumPlayers {
		return fmt.Errorf("%w: dealer seat %d out of range", ErrInvalidArgument, c.DealerID)
	}
	if len(c.PlayerZeroHand) > 2 {
		return fmt.Errorf("%w: preset hand may hold at most 2 cards, got %d", ErrInvalidArgument, len(c.PlayerZeroHand))
	}
	return nil
}

// Game drives a no-limit hold'em hand through its betting rounds and
// community-card reveals. All methods must be called from a single
// goroutine; a hand instance has no internal locking.
type Game struct {
	numPlayers     int
	smallBlind     int
	bigBlind       int
	initChips      int
	dealerID       int
	manualMode     bool
	playerZeroHand []poker.Card
	allowStepBack  bool

	rng    *rand.Rand
	logger *log.Logger
	judger Judger

	source       *CardSource
	players      []*Player
	round        *BettingRound
	stage        Stage
	publicCards  []poker.Card
	roundCounter int
	gamePointer  int
	history      []snapshot
}

// snapshot is an immutable deep copy of everything Step mutates. Stage
// is not recorded; StepBack recomputes it from the round counter.
type snapshot struct {
	round        *BettingRound
	gamePointer  int
	roundCounter int
	source       *CardSource
	publicCards  []poker.Card
	players      []*Player
}

// Option configures a Game during creation
type Option func(*Game)

// WithRNG injects the random source used for shuffling and dealer
// selection. Defaults to a time-seeded RNG.
func WithRNG(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger injects a structured logger. Defaults to a discarding one.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithJudger replaces the default showdown judger.
func WithJudger(j Judger) Option {
	return func(g *Game) { g.judger = j }
}

// NewGame creates a game from the configuration. Call InitHand to start
// the first hand.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if cfg.SmallBlind == 0 {
		cfg.SmallBlind = 1
	}
	if cfg.BigBlind == 0 {
		cfg.BigBlind = 2 * cfg.SmallBlind
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := &Game{
		numPlayers:     cfg.NumPlayers,
		smallBlind:     cfg.SmallBlind,
		bigBlind:       cfg.BigBlind,
		initChips:      cfg.InitChips,
		dealerID:       cfg.DealerID,
		manualMode:     cfg.ManualMode,
		playerZeroHand: append([]poker.Card(nil), cfg.PlayerZeroHand...),
		allowStepBack:  cfg.AllowStepBack,
		logger:         log.New(io.Discard),
		judger:         ChipJudger{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = randutil.NewFromTime()
	}
	return g, nil
}

// InitHand starts a fresh hand: rotates the button, builds a new card
// source, deals hole cards, posts blinds and opens the preflop betting
// round. Any previous hand's history is discarded. It returns the state
// view for the first player to act.
func (g *Game) InitHand() (*State, int) {
	if g.dealerID < 0 {
		g.dealerID = g.rng.IntN(g.numPlayers)
	} else {
		g.dealerID = (g.dealerID + 1) % g.numPlayers
	}

	g.source = NewCardSource(g.rng)
	if g.manualMode {
		g.source.EnableManualMode()
		if len(g.playerZeroHand) > 0 {
			g.source.PresetHand(g.playerZeroHand)
		}
	}

	g.players = make([]*Player, g.numPlayers)
	for i := range g.players {
		g.players[i] = NewPlayer(i, g.initChips)
	}

	for i := range g.players {
		for j := 0; j < 2; j++ {
			g.players[i].Hand = append(g.players[i].Hand, g.source.DealToPlayer(i))
		}
	}

	g.publicCards = nil
	g.stage = Revealed(Preflop)

	// Heads-up the dealer posts the small blind; otherwise the two
	// seats after the dealer post small and big blind.
	var sb, bb int
	if g.numPlayers == 2 {
		sb = g.dealerID
		bb = (g.dealerID + 1) % g.numPlayers
	} else {
		sb = (g.dealerID + 1) % g.numPlayers
		bb = (g.dealerID + 2) % g.numPlayers
	}
	g.players[bb].Bet(g.bigBlind)
	g.players[sb].Bet(g.smallBlind)

	g.gamePointer = (bb + 1) % g.numPlayers

	raised := make([]int, g.numPlayers)
	for i, p := range g.players {
		raised[i] = p.InChips
	}
	g.round = NewBettingRound(g.numPlayers, g.bigBlind)
	g.round.StartNewRound(g.gamePointer, raised)

	g.roundCounter = 0
	g.history = nil

	g.logger.Debug("hand initialized",
		"dealer", g.dealerID, "players", g.numPlayers, "manual", g.manualMode)

	return g.GetState(g.gamePointer), g.gamePointer
}

// GetLegalActions returns the legal actions for the current player. The
// set is empty while the hand waits for manually supplied cards.
func (g *Game) GetLegalActions() []Action {
	if g.IsOver() || !g.stage.Actionable() {
		return nil
	}
	return g.round.LegalActions(g.players, g.Pot())
}

// Step applies an action for the current player and advances the hand,
// dealing community cards when a betting round completes. In manual
// mode a completed round whose cards have not been injected yet parks
// the hand in a waiting stage instead; supplying the cards through the
// matching setter resumes play.
func (g *Game) Step(action Action) (*State, int, error) {
	if g.IsOver() {
		return nil, 0, fmt.Errorf("%w: hand is over", ErrIllegalState)
	}
	if !g.stage.Actionable() {
		return nil, 0, fmt.Errorf("%w: stage %s", ErrIllegalState, g.stage)
	}
	if !slices.Contains(g.GetLegalActions(), action) {
		return nil, 0, fmt.Errorf("%w: %s in stage %s", ErrInvalidAction, action, g.stage)
	}

	if g.allowStepBack {
		g.history = append(g.history, g.makeSnapshot())
	}

	g.gamePointer = g.round.ProceedRound(g.players, g.Pot(), action)

	bypass := make([]bool, g.numPlayers)
	inBypass, folded := 0, 0
	for i, p := range g.players {
		if p.Bypassed() {
			bypass[i] = true
			inBypass++
		}
		if p.Status == Folded {
			folded++
		}
	}
	if g.numPlayers-inBypass == 1 {
		// A sole remaining actor whose commitment already meets the
		// table maximum has nothing left to decide.
		last := slices.Index(bypass, false)
		if g.round.Raised(last) >= g.round.MaxRaised() {
			bypass[last] = true
			inBypass++
		}
	}

	// A hand decided by folds is terminal; no further streets are dealt.
	if folded >= g.numPlayers-1 {
		g.stage = Revealed(EndHidden)
		g.logger.Debug("hand decided by folds", "pot", g.Pot())
	} else if g.round.IsOver(g.players) {
		g.gamePointer = (g.dealerID + 1) % g.numPlayers
		if inBypass < g.numPlayers {
			for bypass[g.gamePointer] {
				g.gamePointer = (g.gamePointer + 1) % g.numPlayers
			}
		}

		switch g.roundCounter {
		case 0:
			g.advanceStreet(Flop)
		case 1:
			g.advanceStreet(Turn)
		case 2:
			g.advanceStreet(River)
		case 3:
			g.stage = Revealed(Showdown)
			g.logger.Debug("hand reached showdown", "pot", g.Pot())
		}
	}

	return g.GetState(g.gamePointer), g.gamePointer, nil
}

// advanceStreet deals the street's community cards and opens the next
// betting round, or parks the hand waiting for them when the manual
// source has nothing queued. The round counter moves only when cards
// were actually dealt, so a waiting hand resumes exactly where it
// paused.
func (g *Game) advanceStreet(street Street) {
	if !g.source.HasPendingCards(street) {
		g.stage = WaitingFor(street)
		g.logger.Debug("waiting for cards", "street", street)
		return
	}
	g.dealStreet(street)
}

func (g *Game) dealStreet(street Street) {
	g.source.SetStreet(street)
	n := 1
	if street == Flop {
		n = 3
	}
	for i := 0; i < n; i++ {
		g.publicCards = append(g.publicCards, g.source.DealCommunity())
	}

	g.stage = Revealed(street)
	g.roundCounter++
	g.round.StartNewRound(g.gamePointer, nil)

	g.logger.Debug("street dealt", "street", street, "board", g.publicCards)
}

// SetFlop injects the flop cards. Outside manual mode it is silently
// ignored. If the hand is parked waiting for the flop the deferred deal
// happens immediately and betting reopens.
func (g *Game) SetFlop(cards []poker.Card) error {
	if !g.manualMode {
		return nil
	}
	if err := g.source.PresetFlop(cards); err != nil {
		return err
	}
	if g.stage == WaitingFor(Flop) {
		g.dealStreet(Flop)
	}
	return nil
}

// SetTurn injects the turn card; see SetFlop.
func (g *Game) SetTurn(card poker.Card) {
	if !g.manualMode {
		return
	}
	g.source.PresetTurn(card)
	if g.stage == WaitingFor(Turn) {
		g.dealStreet(Turn)
	}
}

// SetRiver injects the river card; see SetFlop.
func (g *Game) SetRiver(card poker.Card) {
	if !g.manualMode {
		return
	}
	g.source.PresetRiver(card)
	if g.stage == WaitingFor(River) {
		g.dealStreet(River)
	}
}

// GetState assembles the state view for the given player.
func (g *Game) GetState(playerID int) *State {
	allChips := make([]int, g.numPlayers)
	stakes := make([]int, g.numPlayers)
	for i, p := range g.players {
		allChips[i] = p.InChips
		stakes[i] = p.RemainedChips
	}

	s := &State{
		PlayerID:      playerID,
		Hand:          append([]poker.Card(nil), g.players[playerID].Hand...),
		PublicCards:   append([]poker.Card(nil), g.publicCards...),
		AllChips:      allChips,
		Stakes:        stakes,
		Pot:           g.Pot(),
		CurrentPlayer: g.gamePointer,
		Stage:         g.stage,
		LegalActions:  g.GetLegalActions(),
	}
	if g.stage.Waiting {
		s.WaitingForCards = true
		s.WaitingStage = g.stage
	}
	return s
}

// GetPayoffs asks the judger for each player's payoff. Folded players
// contend with no hand; everyone else contends with hole cards plus the
// board.
func (g *Game) GetPayoffs() []int {
	hands := make([][]poker.Card, g.numPlayers)
	for i, p := range g.players {
		if p.Status == Folded {
			continue
		}
		h := make([]poker.Card, 0, len(p.Hand)+len(g.publicCards))
		h = append(h, p.Hand...)
		h = append(h, g.publicCards...)
		hands[i] = h
	}
	return g.judger.Judge(g.players, hands)
}

// StepBack rewinds the hand to the state before the most recent action.
// It reports whether a history entry was available.
func (g *Game) StepBack() bool {
	if len(g.history) == 0 {
		return false
	}
	snap := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.round = snap.round
	g.gamePointer = snap.gamePointer
	g.roundCounter = snap.roundCounter
	g.source = snap.source
	g.publicCards = snap.publicCards
	g.players = snap.players
	g.stage = stageForRound(g.roundCounter)
	return true
}

// IsOver reports whether the hand is terminal: everyone but one player
// folded, or the river betting round completed.
func (g *Game) IsOver() bool {
	return g.stage == Revealed(EndHidden) || g.stage == Revealed(Showdown)
}

// Pot returns the total chips committed this hand.
func (g *Game) Pot() int {
	pot := 0
	for _, p := range g.players {
		pot += p.InChips
	}
	return pot
}

// Stage returns the current stage.
func (g *Game) Stage() Stage {
	return g.stage
}

// NumPlayers returns the number of seats.
func (g *Game) NumPlayers() int {
	return g.numPlayers
}

// DealerID returns the current button seat.
func (g *Game) DealerID() int {
	return g.dealerID
}

func (g *Game) makeSnapshot() snapshot {
	players := make([]*Player, len(g.players))
	for i, p := range g.players {
		players[i] = p.clone()
	}
	return snapshot{
		round:        g.round.clone(),
		gamePointer:  g.gamePointer,
		roundCounter: g.roundCounter,
		source:       g.source.clone(),
		publicCards:  append([]poker.Card(nil), g.publicCards...),
		players:      players,
	}
}
