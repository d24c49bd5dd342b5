package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pronouner/internal/driver"
	"pronouner/internal/ui"
)

func runProgressUI(title string, events <-chan driver.Event) error {
	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}
