// Command assess is the terminal client for the English communication
// assessment service: type or speak, get scored feedback, browse past
// sessions.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/app"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to the YAML configuration file (optional)")
	baseURL := flag.String("api", "", "assessment service base URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		red := color.New(color.FgRed, color.Bold)
		red.Fprintf(os.Stderr, "✗ %v\n", err)
		return 1
	}
	if *baseURL != "" {
		cfg.Server.BaseURL = *baseURL
	}

	program := tea.NewProgram(app.New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "assess: %v\n", err)
		return 1
	}
	return 0
}
