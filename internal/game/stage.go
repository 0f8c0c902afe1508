package game

// Street represents a phase of the hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	EndHidden
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case EndHidden:
		return "end-hidden"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// Stage tags the current phase of a hand. Waiting is only ever true for
// Flop, Turn and River and means play is paused until that street's
// cards are supplied by the external controller; a waiting stage has no
// legal actions and no active betting round.
type Stage struct {
	Street  Street
	Waiting bool
}

// Revealed returns the stage for a street whose cards are on the board.
func Revealed(street Street) Stage {
	return Stage{Street: street}
}

// WaitingFor returns the paused stage for a street whose cards have not
// arrived yet.
func WaitingFor(street Street) Stage {
	return Stage{Street: street, Waiting: true}
}

// Actionable reports whether betting actions may be submitted.
func (s Stage) Actionable() bool {
	return !s.Waiting
}

func (s Stage) String() string {
	if s.Waiting {
		return "waiting-for-" + s.Street.String()
	}
	return s.Street.String()
}

// stageForRound maps the round counter back to a revealed stage. Used
// when restoring a snapshot.
func stageForRound(roundCounter int) Stage {
	switch roundCounter {
	case 0:
		return Revealed(Preflop)
	case 1:
		return Revealed(Flop)
	case 2:
		return Revealed(Turn)
	default:
		return Revealed(River)
	}
}
