package ledger

// Status marks the clearing state of a transaction or posting.
type Status int

const (
	StatusUnmarked Status = iota
	StatusCleared
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusCleared:
		return "cleared"
	case StatusPending:
		return "pending"
	default:
		return "unmarked"
	}
}

// ParseStatus converts a textual status name. The empty string means
// unmarked.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "", "unmarked":
		return StatusUnmarked, nil
	case "cleared":
		return StatusCleared, nil
	case "pending":
		return StatusPending, nil
	default:
		return StatusUnmarked, ParseError{Input: s, Reason: "unknown status"}
	}
}

// Transaction headers place the status marker after the date; postings
// place it right after the indent. The two forms are kept separate on
// purpose and must not be unified.

func (s Status) headerSuffix() string {
	switch s {
	case StatusPending:
		return " !"
	case StatusCleared:
		return " *"
	default:
		return ""
	}
}

func (s Status) postingPrefix() string {
	switch s {
	case StatusPending:
		return "! "
	case StatusCleared:
		return "* "
	default:
		return ""
	}
}
