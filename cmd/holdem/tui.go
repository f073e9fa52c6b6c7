package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/seth1299/poker-game/internal/deck"
	"github.com/seth1299/poker-game/internal/game"
	"github.com/seth1299/poker-game/internal/rules"
)

const frameInterval = 100 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1F6E43")).
			Padding(0, 1).
			Bold(true)
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E45858"))
	turnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C542")).Bold(true)
	foldedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#707070")).Strikethrough(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9A9A"))
	winnerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	potStyle       = lipgloss.NewStyle().Bold(true)
	lastLineStyle  = lipgloss.NewStyle().Italic(true)
	badgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6FA8DC"))
	raisePromptSty = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C542"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	table  *game.Table
	logger *log.Logger

	raiseInput textinput.Model
	raising    bool
	quitting   bool
	width      int
}

func newModel(table *game.Table, logger *log.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "raise to total"
	ti.CharLimit = 8
	ti.Width = 12
	ti.Prompt = "> "

	return model{
		table:      table,
		logger:     logger.WithPrefix("tui"),
		raiseInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// One engine frame per tick. CPU seats act once their think
		// timer runs down; the human seat waits for key input.
		m.table.Update(frameInterval.Seconds())
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.raising {
		switch msg.Type {
		case tea.KeyEnter:
			if total, err := strconv.Atoi(strings.TrimSpace(m.raiseInput.Value())); err == nil {
				m.table.ApplyHumanAction(rules.Raise, total)
			}
			m.raising = false
			m.raiseInput.Blur()
			m.raiseInput.Reset()
			return m, nil
		case tea.KeyEsc:
			m.raising = false
			m.raiseInput.Blur()
			m.raiseInput.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.raiseInput, cmd = m.raiseInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "n":
		if !m.table.HandActive() {
			m.table.StartNewHand()
		}

	case "f":
		if m.table.HumanCanAct() {
			m.table.ApplyHumanAction(rules.Fold, 0)
		}

	case "c", " ":
		if m.table.HumanCanAct() {
			m.table.ApplyHumanAction(rules.Call, 0)
		}

	case "r", "b":
		if m.table.HumanCanAct() {
			m.raising = true
			m.raiseInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Thanks for playing.\n"
	}

	t := m.table
	var b strings.Builder

	sb, bb := t.Blinds()
	b.WriteString(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Fprintf(&b, "  Hand #%d · %s · Blinds %d/%d\n\n", t.HandNumber(), t.Street(), sb, bb)

	b.WriteString(boardStyle.Render(m.boardView()))
	b.WriteString("\n\n")
	b.WriteString(m.seatsView())
	b.WriteString("\n")

	if last := t.LastAction(); last != "" {
		b.WriteString(lastLineStyle.Render(last))
		b.WriteString("\n")
	}

	if sd := t.Showdown(); sd != nil && !t.HandActive() {
		b.WriteString("\n")
		b.WriteString(m.showdownView(sd))
	}

	b.WriteString("\n")
	b.WriteString(m.controlsView())
	return b.String()
}

func (m model) boardView() string {
	t := m.table
	community := t.Community()
	cards := make([]string, 0, 5)
	for _, c := range community {
		cards = append(cards, renderCard(c))
	}
	for len(cards) < 5 {
		cards = append(cards, "··")
	}
	return fmt.Sprintf("Board  %s   %s",
		strings.Join(cards, " "),
		potStyle.Render(fmt.Sprintf("Pot %d", t.Pot())))
}

func (m model) seatsView() string {
	t := m.table
	var b strings.Builder
	human := t.HumanSeat()

	for i, s := range t.Seats() {
		marker := "  "
		if t.HandActive() && t.ToAct() == i {
			marker = turnStyle.Render("▶ ")
		}

		var badges []string
		if i == t.DealerIndex() {
			badges = append(badges, "D")
		}
		if i == t.SmallBlindIndex() {
			badges = append(badges, "SB")
		}
		if i == t.BigBlindIndex() {
			badges = append(badges, "BB")
		}
		badge := ""
		if len(badges) > 0 {
			badge = badgeStyle.Render(" [" + strings.Join(badges, ",") + "]")
		}

		hole := "🂠 🂠"
		if i == human || (!t.HandActive() && t.Showdown() != nil) {
			parts := make([]string, len(s.Hole))
			for j, c := range s.Hole {
				parts[j] = renderCard(c)
			}
			if len(parts) > 0 {
				hole = strings.Join(parts, " ")
			}
		}

		line := fmt.Sprintf("%s%-8s%s  chips %4d  bet %3d  %s  %s",
			marker, s.Name, badge, s.Chips, s.Bet, hole, s.LastAction)
		if s.Folded {
			line = foldedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) showdownView(sd *game.ShowdownSummary) string {
	var b strings.Builder
	b.WriteString(winnerStyle.Render(fmt.Sprintf("%s wins %d", sd.WinnerName, sd.Pot)))
	b.WriteString("\n")
	for _, seat := range sd.Seats {
		cards := make([]string, len(seat.Hole))
		for i, c := range seat.Hole {
			cards[i] = renderCard(c)
		}
		fmt.Fprintf(&b, "  %-8s %s  %s\n", seat.Name, strings.Join(cards, " "), seat.Desc)
	}
	return b.String()
}

func (m model) controlsView() string {
	t := m.table
	if m.raising {
		minTo := t.CurrentBet() + max(1, currentBigBlind(t))
		return raisePromptSty.Render(fmt.Sprintf("Raise to (min %d): ", minTo)) +
			m.raiseInput.View() + helpStyle.Render("  enter confirm · esc cancel")
	}
	if !t.HandActive() {
		return helpStyle.Render("n next hand · q quit")
	}
	if t.HumanCanAct() {
		toCall := t.ToCall(t.HumanSeat())
		callLabel := "c check"
		if toCall > 0 {
			callLabel = fmt.Sprintf("c call %d", toCall)
		}
		return helpStyle.Render(fmt.Sprintf("f fold · %s · r raise · q quit", callLabel))
	}
	return helpStyle.Render("waiting for opponents… · q quit")
}

func currentBigBlind(t *game.Table) int {
	_, bb := t.Blinds()
	return bb
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.Display())
	}
	return c.Display()
}
