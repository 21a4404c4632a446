package domain

import "path/filepath"

// Session is the mutable state of one shell session.
//
// A single Session is shared by reference between the read loop and
// every command it dispatches, so a change made by one command (cd
// moving the working directory) is visible to all later ones.
type Session struct {
	wd      string
	home    string
	history []string
}

// NewSession creates a session rooted at workingDir. The home
// directory may be empty when it is unknown; commands that need it
// report that as a failure instead.
func NewSession(workingDir, home string) *Session {
	return &Session{wd: workingDir, home: home}
}

// WorkingDir returns the current working directory of the session.
func (s *Session) WorkingDir() string {
	return s.wd
}

// SetWorkingDir records a new working directory. Callers are expected
// to pass an absolute path they have verified names an existing
// directory; the cd builtin is the canonical caller.
func (s *Session) SetWorkingDir(dir string) {
	s.wd = dir
}

// Home returns the user home directory, or "" when it is unknown.
func (s *Session) Home() string {
	return s.home
}

// Resolve turns a possibly relative path into a cleaned absolute path
// anchored at the session working directory. Absolute inputs are only
// cleaned. Resolve never touches the filesystem.
func (s *Session) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.wd, path)
}

// AppendHistory records a submitted input line. Lines are kept in
// submission order and live only as long as the session.
func (s *Session) AppendHistory(line string) {
	s.history = append(s.history, line)
}

// History returns a copy of the recorded input lines, oldest first.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}
