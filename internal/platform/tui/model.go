// Package tui runs a game inside a Bubble Tea program.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Model is the Bubble Tea model for a 2048 session.
// Keys are applied to the game as they arrive; there is no tick loop.
type Model struct {
	ctx      context.Context
	game     *t2048.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around an already reset game.
func NewModel(ctx context.Context, game *t2048.Game, cfg core.RuntimeConfig) Model {
	return Model{
		ctx:    ctx,
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
	default:
		m.game.Step(m.ctx, action)
	}
	return m, nil
}

// View renders the board above the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(footer), 0))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program on the alternate screen and blocks
// until the player quits.
func Run(ctx context.Context, game *t2048.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(ctx, game, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
