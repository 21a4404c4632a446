package domain

import "strings"

// Invocation is a tokenized input line: the command name followed by
// its arguments, in the order they were typed.
type Invocation struct {
	// Name is the first token of the line, used for command lookup.
	Name string

	// Args holds the remaining tokens.
	Args []string
}

// Tokenize splits a raw input line on runs of whitespace.
// It returns false when the line holds no tokens at all (empty or
// blank input), which callers should treat as "nothing to run" rather
// than an error.
func Tokenize(line string) (Invocation, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, false
	}
	return Invocation{Name: fields[0], Args: fields[1:]}, true
}

// String reassembles the invocation as a single normalized line,
// mainly for logging.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}
