package game

// Action represents a player action. The enumeration is fixed at six
// members; NumActions exposes its size for callers that build policy
// vectors indexed by action.
type Action int

const (
	Fold Action = iota
	Check
	Call
	RaiseHalfPot
	RaisePot
	AllIn
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case RaiseHalfPot:
		return "raise-half-pot"
	case RaisePot:
		return "raise-pot"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// ParseAction converts a string to an Action
func ParseAction(s string) (Action, bool) {
	switch s {
	case "fold":
		return Fold, true
	case "check":
		return Check, true
	case "call":
		return Call, true
	case "raise-half-pot", "raise_half_pot":
		return RaiseHalfPot, true
	case "raise-pot", "raise_pot":
		return RaisePot, true
	case "all-in", "allin", "all_in":
		return AllIn, true
	default:
		return Fold, false
	}
}

// NumActions returns the size of the action enumeration.
func NumActions() int {
	return int(AllIn) + 1
}
