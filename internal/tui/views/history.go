// Package views provides TUI view components for the Saya application.
package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saya-chit/saya/internal/chat"
	"github.com/saya-chit/saya/internal/tui"
)

// Localized history strings.
const (
	historyTitle = "စကားဝိုင်း မှတ်တမ်း"
	historyEmpty = "မှတ်တမ်းများ မရှိသေးပါ။"
	clearLabel   = "x: မှတ်တမ်းအားလုံးကိုဖျက်ရန်"
)

// HistoryModel is the view model for the saved-conversation list.
type HistoryModel struct {
	conversations []chat.Conversation
	selected      int
	width         int
	height        int
}

// NewHistoryModel creates the history view for the given conversations
// (already ordered newest-first by the store).
func NewHistoryModel(conversations []chat.Conversation, width, height int) HistoryModel {
	return HistoryModel{
		conversations: conversations,
		width:         width,
		height:        height,
	}
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tui.HistoryClearedMsg:
		if msg.Err == nil {
			m.conversations = nil
			m.selected = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case tui.KeyDown, "j":
			if m.selected < len(m.conversations)-1 {
				m.selected++
			}
			return m, nil
		case tui.KeyEnter:
			if m.selected < len(m.conversations) {
				conv := m.conversations[m.selected]
				return m, func() tea.Msg {
					return tui.LoadConversationMsg{Conversation: conv}
				}
			}
			return m, nil
		case "x":
			if len(m.conversations) > 0 {
				return m, func() tea.Msg { return tui.ClearHistoryMsg{} }
			}
			return m, nil
		case tui.KeyEsc, "tab":
			return m, func() tea.Msg { return tui.CloseHistoryMsg{} }
		}
	}

	return m, nil
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(historyTitle))
	b.WriteString("\n\n")

	if len(m.conversations) == 0 {
		b.WriteString(tui.DimStyle.Render(historyEmpty))
	} else {
		for i, c := range m.conversations {
			ts := time.UnixMilli(c.Timestamp).Local().Format("2006-01-02 15:04")
			line := fmt.Sprintf("%s  %s", ts, truncate(c.InitialQuery, 60))
			if i == m.selected {
				b.WriteString(tui.SelectedStyle.Render("❯ " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	hints := []string{"enter: ပြန်ကြည့်ရန်", "esc: ပြန်ထွက်ရန်"}
	if len(m.conversations) > 0 {
		hints = append(hints, clearLabel)
	}
	b.WriteString(tui.DimStyle.Render(strings.Join(hints, " · ")))

	w := contentWidth(m.width)
	return tui.BoxStyle.Width(w + 2).Render(b.String())
}

func truncate(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit-1]) + "…"
}
