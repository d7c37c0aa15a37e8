// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/saya-chit/saya/internal/chat"

// ============================================================================
// User Action Messages
// ============================================================================

// SubmitQueryMsg carries the initial free-text submission.
type SubmitQueryMsg struct {
	Text string
}

// SelectOptionMsg carries the index of the chosen option on the current
// question.
type SelectOptionMsg struct {
	Index int
}

// BeginEditMsg requests edit mode for the initial query.
type BeginEditMsg struct{}

// SaveEditMsg carries the revised initial query.
type SaveEditMsg struct {
	Text string
}

// CancelEditMsg leaves edit mode without changes.
type CancelEditMsg struct{}

// RestartMsg clears the conversation and returns to the initial stage.
type RestartMsg struct{}

// OpenHistoryMsg switches to the history view.
type OpenHistoryMsg struct{}

// CloseHistoryMsg returns from the history view to the chat.
type CloseHistoryMsg struct{}

// ============================================================================
// Capability Settlement Messages
// ============================================================================
// Settlements carry the conversation id the request was issued for so that
// results arriving after a restart are discarded.

// NextStepMsg carries the completion capability's decision.
type NextStepMsg struct {
	ConversationID string
	Step           chat.NextStep
}

// FinalResponseMsg carries the generated advice text.
type FinalResponseMsg struct {
	ConversationID string
	Content        string
}

// CapabilityErrorMsg carries a failed capability call with its user-facing
// description.
type CapabilityErrorMsg struct {
	ConversationID string
	Err            error
	UserText       string
}

// ============================================================================
// History Messages
// ============================================================================

// HistoryLoadedMsg carries the stored conversations, newest-first. A store
// failure degrades to an empty list.
type HistoryLoadedMsg struct {
	Conversations []chat.Conversation
}

// LoadConversationMsg restores a stored conversation into the chat view.
type LoadConversationMsg struct {
	Conversation chat.Conversation
}

// HistorySavedMsg reports the save-on-complete outcome; failures are logged
// and swallowed.
type HistorySavedMsg struct {
	Err error
}

// ClearHistoryMsg requests wiping the store.
type ClearHistoryMsg struct{}

// HistoryClearedMsg reports that the store was wiped.
type HistoryClearedMsg struct {
	Err error
}
