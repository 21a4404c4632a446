package domain

import (
	"path/filepath"
	"testing"
)

func TestSessionResolve(t *testing.T) {
	sess := NewSession("/work/project", "/home/ada")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "Relative", path: "notes.txt", want: "/work/project/notes.txt"},
		{name: "Nested Relative", path: "sub/dir", want: "/work/project/sub/dir"},
		{name: "Dot", path: ".", want: "/work/project"},
		{name: "Parent", path: "..", want: "/work"},
		{name: "Absolute", path: "/etc/hosts", want: "/etc/hosts"},
		{name: "Absolute Uncleaned", path: "/etc//./hosts", want: "/etc/hosts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := filepath.FromSlash(tt.want)
			if got := sess.Resolve(tt.path); got != want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, want)
			}
		})
	}
}

func TestSessionWorkingDir(t *testing.T) {
	sess := NewSession("/tmp", "/home/ada")
	if got := sess.WorkingDir(); got != "/tmp" {
		t.Errorf("WorkingDir() = %q, want %q", got, "/tmp")
	}

	sess.SetWorkingDir("/var/log")
	if got := sess.WorkingDir(); got != "/var/log" {
		t.Errorf("WorkingDir() after SetWorkingDir = %q, want %q", got, "/var/log")
	}
	if got := sess.Home(); got != "/home/ada" {
		t.Errorf("Home() = %q, want %q", got, "/home/ada")
	}
}

func TestSessionHistory(t *testing.T) {
	sess := NewSession("/tmp", "")

	if got := sess.History(); len(got) != 0 {
		t.Fatalf("new session history = %v, want empty", got)
	}

	sess.AppendHistory("ls")
	sess.AppendHistory("cd /tmp")

	got := sess.History()
	if len(got) != 2 || got[0] != "ls" || got[1] != "cd /tmp" {
		t.Fatalf("History() = %v, want [ls, cd /tmp]", got)
	}

	// The returned slice is a copy; mutating it must not corrupt the session.
	got[0] = "clobbered"
	if again := sess.History(); again[0] != "ls" {
		t.Errorf("History() exposed internal state: %v", again)
	}
}
