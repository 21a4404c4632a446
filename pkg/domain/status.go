package domain

// Status is the read loop verdict after one dispatched command.
type Status string

const (
	StatusContinue Status = "continue" // Command handled, keep reading input
	StatusFailure  Status = "failure"  // Command failed and was reported, keep reading input
	StatusExit     Status = "exit"     // Session is over, stop reading input
)
