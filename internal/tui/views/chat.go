// Package views provides TUI view components for the Saya application.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saya-chit/saya/internal/chat"
	"github.com/saya-chit/saya/internal/render"
	"github.com/saya-chit/saya/internal/tui"
)

// Localized interface strings.
const (
	appTitle         = "Saya Chit — AI ဆေးဝါးလက်ထောက်"
	greetingTitle    = "မင်္ဂလာပါခင်ဗျာ။ ကျွန်တော်က Saya Chit ပါ။"
	greetingBody     = "သင့်ရဲ့ ရောဂါလက္ခဏာတွေကို ပြောပြပြီး ဆေးဝါးဆိုင်ရာ အကြံဉာဏ်တွေ ရယူနိုင်ပါတယ်။"
	inputPlaceholder = "ဥပမာ - ခေါင်းကိုက်နေလို့ ဘာဆေးသောက်ရမလဲ။"
	processingText   = "အချက်အလက်များကို စီစစ်နေပါသည်..."
	restartHint      = "r: အစမှပြန်စရန်"
	historyHint      = "tab: မှတ်တမ်း"
	historicalBadge  = "မှတ်တမ်းမှ ပြန်ကြည့်နေသည်"
)

// maxChatWidth is the maximum width for the conversation column.
const maxChatWidth = 100

// ChatModel is the view model for the conversation screen. It renders from
// the dialogue engine; all state transitions happen in the app layer, which
// calls Sync after every engine mutation.
type ChatModel struct {
	engine   *chat.Engine
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	selected int
	pending  bool
	width    int
	height   int
}

// NewChatModel creates the conversation view bound to the given engine.
func NewChatModel(engine *chat.Engine, width, height int) ChatModel {
	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.CharLimit = 2000
	ti.Width = contentWidth(width) - 4
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))

	vp := viewport.New(contentWidth(width), viewportHeight(height))

	m := ChatModel{
		engine:   engine,
		input:    ti,
		viewport: vp,
		spinner:  sp,
		width:    width,
		height:   height,
	}
	m.Sync()
	return m
}

func contentWidth(width int) int {
	w := width - 6
	if w > maxChatWidth {
		w = maxChatWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func viewportHeight(height int) int {
	h := height - 10
	if h < 5 {
		h = 5
	}
	return h
}

// Init returns the initial command for the chat view.
func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// SetPending marks whether a capability call is in flight. All interactive
// elements are disabled while pending.
func (m *ChatModel) SetPending(p bool) {
	m.pending = p
	m.Sync()
}

// Sync rebuilds the viewport content from the engine state.
func (m *ChatModel) Sync() {
	if _, ok := m.engine.CurrentQuestion(); !ok {
		m.selected = 0
	}
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

// StartEditInput preloads the text input with the current query for
// editing.
func (m *ChatModel) StartEditInput() {
	m.input.SetValue(m.engine.InitialQuery())
	m.input.CursorEnd()
	m.input.Focus()
}

// ResetInput clears the text input after a submission or restart.
func (m *ChatModel) ResetInput() {
	m.input.Reset()
	m.input.Focus()
}

// typing reports whether keystrokes go to the text input.
func (m ChatModel) typing() bool {
	return m.engine.Stage() == chat.StageInitial || m.engine.Editing()
}

// Update handles messages for the chat view.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.pending {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = contentWidth(msg.Width)
		m.viewport.Height = viewportHeight(msg.Height)
		m.input.Width = contentWidth(msg.Width) - 4
		m.Sync()
		return m, nil

	case tea.KeyMsg:
		if m.pending {
			// Scrolling stays available while a call is in flight.
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.typing() {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ChatModel) handleKey(msg tea.KeyMsg) (ChatModel, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	if m.engine.Editing() {
		switch key {
		case tui.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				return m, func() tea.Msg { return tui.SaveEditMsg{Text: text} }
			}
			return m, nil
		case tui.KeyEsc:
			return m, func() tea.Msg { return tui.CancelEditMsg{} }
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch m.engine.Stage() {
	case chat.StageInitial:
		switch key {
		case tui.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				return m, func() tea.Msg { return tui.SubmitQueryMsg{Text: text} }
			}
			return m, nil
		case "tab":
			return m, func() tea.Msg { return tui.OpenHistoryMsg{} }
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case chat.StageQuestioning:
		q, interactive := m.engine.CurrentQuestion()
		if !interactive {
			break
		}
		switch key {
		case tui.KeyUp, "k":
			if m.selected > 0 {
				m.selected--
			}
			m.Sync()
			return m, nil
		case tui.KeyDown, "j":
			if m.selected < len(q.Options)-1 {
				m.selected++
			}
			m.Sync()
			return m, nil
		case tui.KeyEnter:
			return m, selectOption(m.selected)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				m.selected = idx
				m.Sync()
			}
			return m, nil
		case "e":
			if m.engine.CanEdit() {
				return m, func() tea.Msg { return tui.BeginEditMsg{} }
			}
		case "tab":
			return m, func() tea.Msg { return tui.OpenHistoryMsg{} }
		}

	case chat.StageComplete, chat.StageError:
		switch key {
		case "r":
			return m, func() tea.Msg { return tui.RestartMsg{} }
		case "tab":
			return m, func() tea.Msg { return tui.OpenHistoryMsg{} }
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func selectOption(index int) tea.Cmd {
	return func() tea.Msg { return tui.SelectOptionMsg{Index: index} }
}

// View renders the chat view.
func (m ChatModel) View() string {
	w := contentWidth(m.width)

	if m.engine.Stage() == chat.StageInitial && len(m.engine.Messages()) == 0 {
		return m.viewGreeting(w)
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(appTitle))
	if m.engine.Historical() {
		b.WriteString("  ")
		b.WriteString(tui.DimStyle.Render(historicalBadge))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	switch {
	case m.pending:
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), processingText))
	case m.engine.Editing():
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("enter: သိမ်းရန် · esc: မလုပ်တော့ပါ"))
	case m.engine.Stage() == chat.StageQuestioning:
		hints := []string{"↑↓: ရွေးရန်", "enter: အတည်ပြုရန်"}
		if m.engine.CanEdit() {
			hints = append(hints, "e: မေးခွန်းပြင်ရန်")
		}
		b.WriteString(tui.DimStyle.Render(strings.Join(hints, " · ")))
	case m.engine.Stage() == chat.StageComplete || m.engine.Stage() == chat.StageError:
		b.WriteString(tui.DimStyle.Render(restartHint + " · " + historyHint))
	}

	return tui.BoxStyle.Width(w + 2).Render(b.String())
}

func (m ChatModel) viewGreeting(w int) string {
	var b strings.Builder
	b.WriteString(tui.BotStyle.Render(greetingTitle))
	b.WriteString("\n")
	b.WriteString(greetingBody)
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("enter: မေးမြန်းရန် · " + historyHint + " · ctrl+c: ထွက်ရန်"))
	return tui.BoxStyle.Width(w + 2).Render(b.String())
}

// renderConversation formats the display log. Only the question embedded in
// the last message is interactive; earlier questions render inert.
func (m ChatModel) renderConversation() string {
	msgs := m.engine.Messages()

	var parts []string
	for i, msg := range msgs {
		interactive := i == len(msgs)-1 && !m.pending
		parts = append(parts, m.renderMessage(msg, interactive))
	}
	return strings.Join(parts, "\n\n")
}

// renderMessage dispatches over every display-message kind.
func (m ChatModel) renderMessage(msg chat.DisplayMessage, interactive bool) string {
	w := contentWidth(m.width)

	switch msg.Kind {
	case chat.KindUser:
		return tui.UserStyle.Render("သင် ▸ ") + msg.Text
	case chat.KindUserAnswer:
		return tui.UserStyle.Render("သင် ▸ ") + msg.Answer
	case chat.KindIntro:
		return tui.BotStyle.Render("Saya ▸ ") + msg.Text
	case chat.KindError:
		return tui.BotStyle.Render("Saya ▸ ") + tui.ErrorStyle.Render(msg.Text)
	case chat.KindQuestion:
		if msg.Question == nil {
			return ""
		}
		return m.renderQuestion(*msg.Question, interactive)
	case chat.KindResponse:
		body := tui.RenderSections(render.Parse(msg.Content), w-2)
		return tui.BotStyle.Render("Saya ▸") + "\n" + body
	}
	return ""
}

func (m ChatModel) renderQuestion(q chat.Question, interactive bool) string {
	var b strings.Builder
	b.WriteString(tui.BotStyle.Render("Saya ▸ "))
	b.WriteString(tui.TableHeaderStyle.Render(q.Title))
	b.WriteString("\n")
	if q.Instruction != "" {
		b.WriteString(tui.DimStyle.Render(q.Instruction))
		b.WriteString("\n")
	}

	_, current := m.engine.CurrentQuestion()
	for i, opt := range q.Options {
		line := fmt.Sprintf("%s. %s", opt.Key, opt.Value)
		switch {
		case interactive && current && i == m.selected:
			b.WriteString(tui.SelectedStyle.Render("❯ " + line))
		case interactive && current:
			b.WriteString("  " + line)
		default:
			b.WriteString(tui.DimStyle.Render("  " + line))
		}
		if i < len(q.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
