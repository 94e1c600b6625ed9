package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	socket := flag.String("socket", "", "control socket path; defaults to $COLMWM_SOCK or $XDG_RUNTIME_DIR/colmwm.sock")
	flag.Parse()

	path := *socket
	if path == "" {
		path = defaultSocketPath()
	}

	p := tea.NewProgram(newModel(path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "colmwm-inspect: %v\n", err)
		os.Exit(1)
	}
}

func defaultSocketPath() string {
	if s := os.Getenv("COLMWM_SOCK"); s != "" {
		return s
	}
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return dir + "/colmwm.sock"
}
