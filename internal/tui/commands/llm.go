// Package commands provides Bubble Tea commands for asynchronous
// operations. Every settlement message carries the conversation id it was
// issued for; the app discards results whose id no longer matches.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saya-chit/saya/internal/chat"
	"github.com/saya-chit/saya/internal/llm"
	"github.com/saya-chit/saya/internal/tui"
)

// NextStepCmd requests the next question-or-terminate decision for the
// given transcript.
func NextStepCmd(client *llm.Client, convID string, transcript []chat.Turn) tea.Cmd {
	return func() tea.Msg {
		step, err := client.NextStep(context.Background(), transcript)
		if err != nil {
			return tui.CapabilityErrorMsg{
				ConversationID: convID,
				Err:            err,
				UserText:       llm.UserMessage(err),
			}
		}
		return tui.NextStepMsg{ConversationID: convID, Step: step}
	}
}

// GenerateFinalCmd requests the structured advice text for the completed
// question loop.
func GenerateFinalCmd(client *llm.Client, convID, initialQuery string, answers []chat.Answer) tea.Cmd {
	return func() tea.Msg {
		content, err := client.GenerateFinal(context.Background(), initialQuery, answers)
		if err != nil {
			return tui.CapabilityErrorMsg{
				ConversationID: convID,
				Err:            err,
				UserText:       llm.UserMessage(err),
			}
		}
		return tui.FinalResponseMsg{ConversationID: convID, Content: content}
	}
}
