package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/storage"
)

// MenuChoice is what the user picked on the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// Difficulties lists the presets selectable from the menu, in display order.
var Difficulties = []string{"easy", "normal", "hard", "fixed"}

// menuItems are the rows of the title screen. The difficulty row cycles
// with left/right instead of being selected.
var menuItems = []string{"Play", "Difficulty", "High Scores", "Quit"}

const (
	rowPlay = iota
	rowDifficulty
	rowScores
	rowQuit
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor     int
	difficulty int // Index into Difficulties
	best       int
	width      int
	height     int
	keys       *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates a title screen starting on the given difficulty.
// The store is only read for the high score line and may be nil.
func NewMenuModel(store *storage.Store, gameID, difficulty string, width, height int) MenuModel {
	m := MenuModel{
		difficulty: 1,
		width:      width,
		height:     height,
		keys:       NewKeyMapper(0),
	}
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	if store != nil {
		//nolint:errcheck // Missing high score just hides the line
		m.best, _ = store.HighScore(gameID)
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.choice = ChoiceQuit
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	case core.ActionDown:
		m.cursor = (m.cursor + 1) % len(menuItems)
	case core.ActionLeft, core.ActionRight:
		if m.cursor == rowDifficulty {
			step := 1
			if action == core.ActionLeft {
				step = len(Difficulties) - 1
			}
			m.difficulty = (m.difficulty + step) % len(Difficulties)
		}
	case core.ActionConfirm, core.ActionFire:
		switch m.cursor {
		case rowPlay:
			m.choice = ChoicePlay
		case rowScores:
			m.choice = ChoiceScores
		case rowQuit:
			m.choice = ChoiceQuit
		default:
			return m, nil
		}
		return m, tea.Quit
	case core.ActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(m.height/4, 1)))
	b.WriteString(centerText(titleStyle.Render("S T A R   D E F E N D E R"), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("High score %d", m.best)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		label := item
		if i == rowDifficulty {
			label = fmt.Sprintf("Difficulty: < %s >", Difficulties[m.difficulty])
		}
		if i == m.cursor {
			b.WriteString(centerText(activeStyle.Render("> "+label), m.width))
		} else {
			b.WriteString(centerText("  "+label, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset name.
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Width      int
	Height     int
}

// RunMenu runs the title screen and returns the selection.
func RunMenu(store *storage.Store, gameID, difficulty string, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, gameID, difficulty, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Difficulty: difficulty}, nil
	}
	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Width:      m.width,
		Height:     m.height,
	}, nil
}
