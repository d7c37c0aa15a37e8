// history.go wraps history-store operations as Bubble Tea commands. The
// store is best-effort: a failed list degrades to an empty view and a
// failed save never interrupts the conversation.
package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saya-chit/saya/internal/chat"
	"github.com/saya-chit/saya/internal/history"
	"github.com/saya-chit/saya/internal/tui"
)

// LoadHistoryCmd lists the stored conversations newest-first.
func LoadHistoryCmd(store history.Store) tea.Cmd {
	return func() tea.Msg {
		conversations, err := store.List()
		if err != nil {
			return tui.HistoryLoadedMsg{}
		}
		return tui.HistoryLoadedMsg{Conversations: conversations}
	}
}

// SaveConversationCmd upserts the completed conversation.
func SaveConversationCmd(store history.Store, c chat.Conversation) tea.Cmd {
	return func() tea.Msg {
		return tui.HistorySavedMsg{Err: store.Save(c)}
	}
}

// ClearHistoryCmd wipes the store.
func ClearHistoryCmd(store history.Store) tea.Cmd {
	return func() tea.Msg {
		return tui.HistoryClearedMsg{Err: store.Clear()}
	}
}
