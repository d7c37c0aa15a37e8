// Package app provides the main TUI application that wires the dialogue
// engine, the capability client and the history store together.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saya-chit/saya/internal/chat"
	"github.com/saya-chit/saya/internal/history"
	"github.com/saya-chit/saya/internal/llm"
	"github.com/saya-chit/saya/internal/log"
	"github.com/saya-chit/saya/internal/tui"
	"github.com/saya-chit/saya/internal/tui/commands"
	"github.com/saya-chit/saya/internal/tui/views"
)

// activeView selects which view receives input.
type activeView int

const (
	viewChat activeView = iota
	viewHistory
)

// App is the top-level Bubble Tea model. It owns the dialogue engine and
// enforces the one-outstanding-request discipline: while a capability call
// is pending all interactive elements are disabled, and settlements for a
// conversation that has since been reset are discarded.
type App struct {
	engine *chat.Engine
	client *llm.Client
	store  history.Store
	logger *log.Logger

	view        activeView
	chatView    views.ChatModel
	historyView views.HistoryModel
	pending     bool

	width  int
	height int
}

// New creates the application with its collaborators.
func New(client *llm.Client, store history.Store, logger *log.Logger) *App {
	engine := chat.NewEngine()
	return &App{
		engine:   engine,
		client:   client,
		store:    store,
		logger:   logger,
		chatView: views.NewChatModel(engine, 80, 24),
		width:    80,
		height:   24,
	}
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return a.chatView.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		cmds = append(cmds, cmd)
		a.historyView, cmd = a.historyView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			return a, tea.Quit
		}

	// ---- user actions -------------------------------------------------

	case tui.SubmitQueryMsg:
		return a.handleSubmit(msg.Text)

	case tui.SelectOptionMsg:
		return a.handleSelect(msg.Index)

	case tui.BeginEditMsg:
		if a.engine.BeginEdit() {
			a.chatView.StartEditInput()
			a.chatView.Sync()
		}
		return a, nil

	case tui.CancelEditMsg:
		a.engine.CancelEdit()
		a.chatView.ResetInput()
		a.chatView.Sync()
		return a, nil

	case tui.SaveEditMsg:
		return a.handleSaveEdit(msg.Text)

	case tui.RestartMsg:
		a.log(log.LogEvent{Event: log.EventRestart, ConversationID: a.engine.ID()})
		a.engine.Restart()
		a.pending = false
		a.chatView.SetPending(false)
		a.chatView.ResetInput()
		a.chatView.Sync()
		return a, nil

	case tui.OpenHistoryMsg:
		a.view = viewHistory
		a.historyView = views.NewHistoryModel(nil, a.width, a.height)
		return a, commands.LoadHistoryCmd(a.store)

	case tui.CloseHistoryMsg:
		a.view = viewChat
		return a, nil

	// ---- capability settlements ---------------------------------------

	case tui.NextStepMsg:
		return a.handleNextStep(msg)

	case tui.FinalResponseMsg:
		return a.handleFinal(msg)

	case tui.CapabilityErrorMsg:
		if msg.ConversationID == a.engine.ID() {
			a.pending = false
			a.chatView.SetPending(false)
		}
		if a.engine.Fail(msg.ConversationID, msg.UserText) {
			a.log(log.LogEvent{
				Event:          log.EventCapabilityError,
				ConversationID: msg.ConversationID,
				Stage:          a.engine.Stage().String(),
				Error:          msg.Err.Error(),
			})
			a.chatView.Sync()
		}
		return a, nil

	// ---- history ------------------------------------------------------

	case tui.HistoryLoadedMsg:
		a.historyView = views.NewHistoryModel(msg.Conversations, a.width, a.height)
		return a, nil

	case tui.LoadConversationMsg:
		a.engine.LoadHistorical(msg.Conversation)
		a.view = viewChat
		a.chatView.Sync()
		return a, nil

	case tui.ClearHistoryMsg:
		return a, commands.ClearHistoryCmd(a.store)

	case tui.HistoryClearedMsg:
		if msg.Err == nil {
			a.log(log.LogEvent{Event: log.EventHistoryCleared})
		}
		var cmd tea.Cmd
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case tui.HistorySavedMsg:
		if msg.Err != nil {
			a.log(log.LogEvent{
				Event:          log.EventSaveFailed,
				ConversationID: a.engine.ID(),
				Error:          msg.Err.Error(),
			})
		} else {
			a.log(log.LogEvent{
				Event:          log.EventConversationSaved,
				ConversationID: a.engine.ID(),
			})
		}
		return a, nil
	}

	// Everything else goes to the active view.
	var cmd tea.Cmd
	switch a.view {
	case viewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case viewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleSubmit(text string) (tea.Model, tea.Cmd) {
	id, ok := a.engine.Submit(text)
	if !ok {
		return a, nil
	}
	a.log(log.LogEvent{Event: log.EventConversationStarted, ConversationID: id})
	a.pending = true
	a.chatView.ResetInput()
	a.chatView.SetPending(true)
	return a, commands.NextStepCmd(a.client, id, chat.Transcript(a.engine.InitialQuery(), nil))
}

func (a *App) handleSelect(index int) (tea.Model, tea.Cmd) {
	if a.pending {
		return a, nil
	}
	ans, ok := a.engine.SelectOption(index)
	if !ok {
		return a, nil
	}
	a.log(log.LogEvent{
		Event:          log.EventAnswerRecorded,
		ConversationID: a.engine.ID(),
		Question:       ans.Question,
		Answer:         ans.Answer,
	})
	a.pending = true
	a.chatView.SetPending(true)
	transcript := chat.Transcript(a.engine.InitialQuery(), a.engine.Answers())
	return a, commands.NextStepCmd(a.client, a.engine.ID(), transcript)
}

func (a *App) handleSaveEdit(text string) (tea.Model, tea.Cmd) {
	id, ok := a.engine.SaveEdit(text)
	if !ok {
		return a, nil
	}
	a.log(log.LogEvent{Event: log.EventQueryEdited, ConversationID: id})
	a.pending = true
	a.chatView.ResetInput()
	a.chatView.SetPending(true)
	return a, commands.NextStepCmd(a.client, id, chat.Transcript(a.engine.InitialQuery(), nil))
}

func (a *App) handleNextStep(msg tui.NextStepMsg) (tea.Model, tea.Cmd) {
	switch a.engine.ApplyNextStep(msg.ConversationID, msg.Step) {
	case chat.StepAskedQuestion:
		a.pending = false
		a.chatView.SetPending(false)
		if q, ok := a.engine.CurrentQuestion(); ok {
			a.log(log.LogEvent{
				Event:          log.EventQuestionAsked,
				ConversationID: msg.ConversationID,
				Question:       q.Title,
			})
		}
		return a, nil

	case chat.StepGenerateFinal:
		// Stay pending: the final-generation request goes out immediately.
		a.chatView.Sync()
		return a, commands.GenerateFinalCmd(
			a.client, msg.ConversationID, a.engine.InitialQuery(), a.engine.Answers(),
		)

	case chat.StepInvalid:
		a.pending = false
		a.chatView.SetPending(false)
		a.engine.Fail(msg.ConversationID, llm.UserMessage(llm.ErrBadShape))
		a.log(log.LogEvent{
			Event:          log.EventCapabilityError,
			ConversationID: msg.ConversationID,
			Error:          llm.ErrBadShape.Error(),
		})
		a.chatView.Sync()
		return a, nil
	}

	// Stale decision for a reset conversation: drop it.
	return a, nil
}

func (a *App) handleFinal(msg tui.FinalResponseMsg) (tea.Model, tea.Cmd) {
	if !a.engine.ApplyFinal(msg.ConversationID, msg.Content) {
		return a, nil
	}
	a.pending = false
	a.chatView.SetPending(false)
	a.log(log.LogEvent{
		Event:          log.EventFinalGenerated,
		ConversationID: msg.ConversationID,
	})
	return a, commands.SaveConversationCmd(a.store, a.engine.Snapshot())
}

// log appends an event; logging is best-effort and never interrupts the
// conversation.
func (a *App) log(event log.LogEvent) {
	if a.logger == nil {
		return
	}
	_ = a.logger.Append(event)
}

// View renders the active view.
func (a *App) View() string {
	switch a.view {
	case viewHistory:
		return a.historyView.View()
	default:
		return a.chatView.View()
	}
}
