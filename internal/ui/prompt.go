package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pronouner/internal/grammar"
)

// ErrPromptCancelled is returned when the player leaves the prompt early.
var ErrPromptCancelled = errors.New("player prompt cancelled")

// PronounChoices are the presets offered to the player, in display order.
var PronounChoices = []grammar.Preset{
	grammar.TheyThem,
	grammar.SheHer,
	grammar.HeHim,
	grammar.XeXyr,
	grammar.ItIts,
	grammar.NameAsPronoun,
}

type promptStep uint8

const (
	stepName promptStep = iota
	stepPronouns
	stepDone
)

// PlayerModel asks for a name, then a pronoun preset.
type PlayerModel struct {
	input     textinput.Model
	step      promptStep
	cursor    int
	cancelled bool
	hint      string
}

// NewPlayerModel returns a prompt model; defaultName pre-fills the input.
func NewPlayerModel(defaultName string) *PlayerModel {
	in := textinput.New()
	in.Placeholder = "Name"
	in.CharLimit = 64
	in.Width = 32
	in.Prompt = "> "
	in.SetValue(defaultName)
	in.Focus()
	return &PlayerModel{input: in}
}

func (m *PlayerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.step == stepName {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	}

	switch m.step {
	case stepName:
		if key.Type == tea.KeyEnter {
			if strings.TrimSpace(m.input.Value()) == "" {
				m.hint = "name must not be empty"
				return m, nil
			}
			m.hint = ""
			m.input.Blur()
			m.step = stepPronouns
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case stepPronouns:
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(PronounChoices)-1 {
				m.cursor++
			}
		case "enter":
			m.step = stepDone
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	promptTitle  = lipgloss.NewStyle().Bold(true)
	promptHint   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	promptActive = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	promptMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *PlayerModel) View() string {
	var b strings.Builder
	switch m.step {
	case stepName:
		b.WriteString(promptTitle.Render("What is your name?"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.hint != "" {
			b.WriteString(promptHint.Render(m.hint))
			b.WriteString("\n")
		}
	case stepPronouns:
		b.WriteString(promptTitle.Render(fmt.Sprintf("Which pronouns should %s use?", m.Name())))
		b.WriteString("\n\n")
		for i, preset := range PronounChoices {
			line := ChoiceLabel(preset, m.Name())
			if i == m.cursor {
				b.WriteString(promptActive.Render("› " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(promptMuted.Render("↑/↓ choose • enter confirm • esc cancel"))
		b.WriteString("\n")
	}
	return b.String()
}

// Name returns the trimmed name typed so far.
func (m *PlayerModel) Name() string {
	return strings.TrimSpace(m.input.Value())
}

// Character returns the chosen player, or ErrPromptCancelled.
func (m *PlayerModel) Character() (grammar.Character, error) {
	if m.cancelled || m.step != stepDone {
		return grammar.Character{}, ErrPromptCancelled
	}
	return grammar.NewCharacter(m.Name(), grammar.PresetPronouns(PronounChoices[m.cursor])), nil
}

// ChoiceLabel renders a preset as "she/her/hers"; the name preset uses name.
func ChoiceLabel(preset grammar.Preset, name string) string {
	p := grammar.PresetPronouns(preset)
	subj := p.Form(grammar.Subjective, name)
	obj := p.Form(grammar.Objective, name)
	poss := p.Form(grammar.Possessive, name)
	if preset == grammar.NameAsPronoun {
		return fmt.Sprintf("just my name (%s, %s)", subj, poss)
	}
	return fmt.Sprintf("%s/%s/%s", subj, obj, poss)
}

// PromptPlayer runs the prompt on the terminal.
func PromptPlayer(defaultName string) (grammar.Character, error) {
	m := NewPlayerModel(defaultName)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return grammar.Character{}, err
	}
	return final.(*PlayerModel).Character()
}
