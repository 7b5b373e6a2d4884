package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"orgsetup/internal/debug"
	"orgsetup/internal/ui/theme"
)

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr, defaultProgramFactory)
	debug.Close()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, factory programFactory) int {
	cmd := newRootCmd(factory)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	// Failures the create flow already reported need no second line.
	if !errors.Is(err, errReported) {
		errStyle := lipgloss.NewStyle().Foreground(theme.Current().Error).Bold(true)
		fmt.Fprintf(stderr, "%s %v\n", errStyle.Render("Error:"), err)
	}
	return 1
}
