package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the startup banner for interactive sessions.
// Colors degrade to plain text on terminals without color support.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Indigo-to-violet gradient, top to bottom.
	s1 := termenv.String("   __ _ ___| |__  ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  / _` / __| '_ \\ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" | (_| \\__ \\ | | |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String("  \\__,_|___/_| |_|").Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
	fmt.Println(termenv.String(" ash "+strings.TrimSpace(version)+"  (type 'help' for commands)").Faint())
	fmt.Println()
}
