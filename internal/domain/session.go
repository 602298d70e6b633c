package domain

// Session is the record a login flow stores under the session token.
type Session struct {
	Token    Token    `json:"-"`
	Username Username `json:"username"`
}

// DeleteOutcome is what a conditional delete actually did.
// The HTTP layer answers 204 for all three.
type DeleteOutcome int

const (
	// DeleteOutcomeUnknown accompanies an error; nothing is known about the row.
	DeleteOutcomeUnknown DeleteOutcome = iota
	DeleteOutcomeDeleted
	DeleteOutcomeNotFound
	DeleteOutcomeForbidden
)

func (o DeleteOutcome) String() string {
	switch o {
	case DeleteOutcomeDeleted:
		return "deleted"
	case DeleteOutcomeNotFound:
		return "not_found"
	case DeleteOutcomeForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}
