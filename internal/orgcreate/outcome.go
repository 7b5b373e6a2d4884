package orgcreate

import "orgsetup/internal/domain"

// User-facing messages for submission outcomes.
const (
	MsgCannotCreate = "Cannot create organization"
	MsgReachedMax   = "Sorry, You have created more than 2 organization. Please contact admin to upgrade"
	MsgDuplicate    = "The organization name already exists."
)

// OutcomeKind is the terminal result of one submit attempt.
type OutcomeKind int

const (
	// OutcomeCreated means state was written and navigation requested.
	OutcomeCreated OutcomeKind = iota
	// OutcomeInvalid means the name failed validation and nothing was sent.
	OutcomeInvalid
	// OutcomeBusy means a request was already in flight.
	OutcomeBusy
	// OutcomeRejected is a 2xx answer other than 200.
	OutcomeRejected
	// OutcomeReachedMax means the organization limit is reached.
	OutcomeReachedMax
	// OutcomeDuplicate means the name is taken.
	OutcomeDuplicate
	// OutcomeUnrecognized is any other failure. No message is shown.
	OutcomeUnrecognized
)

// String returns the string representation of an OutcomeKind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCreated:
		return "created"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeBusy:
		return "busy"
	case OutcomeRejected:
		return "rejected"
	case OutcomeReachedMax:
		return "reached_max"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Outcome describes how a submit attempt ended.
type Outcome struct {
	Kind OutcomeKind

	// Values are the normalized values that were validated (and possibly sent).
	Values domain.FormValues

	// Organization and Path are set for OutcomeCreated.
	Organization domain.Organization
	Path         string

	// Message is what the user was shown, "" when nothing was.
	Message string

	// Err carries the underlying error for every kind except OutcomeCreated.
	Err error
}

// Succeeded reports whether the organization was created.
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeCreated
}
