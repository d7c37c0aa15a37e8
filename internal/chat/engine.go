// engine.go drives the dialogue state machine for one active conversation.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IntroText is the assistant greeting emitted before the first question.
const IntroText = "မင်္ဂလာပါခင်ဗျာ။ သင့်အတွက် ဘေးအန္တရာယ်ကင်းပြီး အသင့်တော်ဆုံးဖြစ်မယ့် အကြံဉာဏ်ကိုပေးနိုင်ဖို့ မေးခွန်းလေးတွေ အရင်မေးပါရစေ။"

// StepResult reports what ApplyNextStep did with a capability decision.
type StepResult int

const (
	// StepIgnored means the decision was stale or arrived in the wrong
	// stage and was discarded without touching any state.
	StepIgnored StepResult = iota

	// StepAskedQuestion means a question message was appended and the
	// conversation stays in StageQuestioning.
	StepAskedQuestion

	// StepGenerateFinal means the capability signalled termination; the
	// caller must now request the final advice text.
	StepGenerateFinal

	// StepInvalid means the decision had neither shape. The caller should
	// follow up with Fail and a user-facing message.
	StepInvalid
)

// Engine holds all conversation-scoped state and enforces the stage
// transitions. It performs no I/O: the caller issues capability requests and
// feeds settlements back through the Apply* methods, each of which checks
// the conversation id it was issued for so late results of a reset
// conversation are silently discarded.
type Engine struct {
	stage        Stage
	id           string
	initialQuery string
	answers      []Answer
	messages     []DisplayMessage
	historical   bool
	editing      bool
}

// NewEngine returns an engine in StageInitial with an empty display log.
func NewEngine() *Engine {
	return &Engine{stage: StageInitial}
}

// Stage returns the current stage.
func (e *Engine) Stage() Stage { return e.stage }

// ID returns the active conversation id, empty while in StageInitial.
func (e *Engine) ID() string { return e.id }

// InitialQuery returns the recorded free-text query.
func (e *Engine) InitialQuery() string { return e.initialQuery }

// Historical reports whether the engine is showing a restored conversation.
func (e *Engine) Historical() bool { return e.historical }

// Editing reports whether an initial-query edit is in progress.
func (e *Engine) Editing() bool { return e.editing }

// Messages returns the display log. The returned slice must not be mutated.
func (e *Engine) Messages() []DisplayMessage { return e.messages }

// Answers returns the recorded answers. The returned slice must not be
// mutated.
func (e *Engine) Answers() []Answer { return e.answers }

// Submit starts a new conversation from a free-text query and returns the
// fresh conversation id. Empty input is ignored (no transition, ok=false),
// as is a submission outside StageInitial. The caller must follow a
// successful submit with a next-step request for the one-element transcript.
func (e *Engine) Submit(query string) (id string, ok bool) {
	query = strings.TrimSpace(query)
	if query == "" || e.stage != StageInitial {
		return "", false
	}
	e.id = uuid.NewString()
	e.initialQuery = query
	e.messages = append(e.messages, UserMessage(query))
	e.stage = StageQuestioning
	return e.id, true
}

// CurrentQuestion returns the question whose options are interactive: the
// one embedded in the last display message, only while questioning an
// active (non-historical) conversation. All earlier questions are
// permanently inert.
func (e *Engine) CurrentQuestion() (Question, bool) {
	if e.stage != StageQuestioning || e.historical || e.editing || len(e.messages) == 0 {
		return Question{}, false
	}
	last := e.messages[len(e.messages)-1]
	if last.Kind != KindQuestion || last.Question == nil {
		return Question{}, false
	}
	return *last.Question, true
}

// SelectOption records the user's choice on the current question. It
// appends the Answer and its display entry and returns the answer so the
// caller can rebuild the transcript and request the next step.
func (e *Engine) SelectOption(index int) (Answer, bool) {
	q, ok := e.CurrentQuestion()
	if !ok || index < 0 || index >= len(q.Options) {
		return Answer{}, false
	}
	ans := Answer{Question: q.Title, Answer: q.Options[index].Value}
	e.answers = append(e.answers, ans)
	e.messages = append(e.messages, AnswerMessage(ans.Answer))
	return ans, true
}

// ApplyNextStep applies the completion capability's decision issued for
// conversation convID. A decision for a conversation that has since been
// reset is discarded. On the first question of a conversation the greeting
// is emitted ahead of the question message.
func (e *Engine) ApplyNextStep(convID string, step NextStep) StepResult {
	if convID != e.id || e.stage != StageQuestioning {
		return StepIgnored
	}
	if step.GenerateFinal {
		e.stage = StageGeneratingFinal
		return StepGenerateFinal
	}
	if step.Question != nil {
		if e.questionCount() == 0 {
			e.messages = append(e.messages, IntroMessage(IntroText))
		}
		e.messages = append(e.messages, QuestionMessage(*step.Question))
		return StepAskedQuestion
	}
	return StepInvalid
}

// ApplyFinal applies the generated advice text and completes the
// conversation. Returns false if the settlement is stale or the engine is
// not awaiting a final response; the caller persists the snapshot on true.
func (e *Engine) ApplyFinal(convID, content string) bool {
	if convID != e.id || e.stage != StageGeneratingFinal {
		return false
	}
	e.messages = append(e.messages, ResponseMessage(content))
	e.stage = StageComplete
	return true
}

// Fail transitions to StageError with a user-facing failure description.
// Stale settlements are discarded; prior messages stay intact.
func (e *Engine) Fail(convID, userText string) bool {
	if convID != e.id {
		return false
	}
	if e.stage != StageQuestioning && e.stage != StageGeneratingFinal {
		return false
	}
	e.messages = append(e.messages, ErrorMessage(userText))
	e.stage = StageError
	return true
}

// CanEdit reports whether the initial query may still be revised: only
// while the first question is pending unanswered on an active conversation.
func (e *Engine) CanEdit() bool {
	return e.stage == StageQuestioning &&
		!e.historical &&
		len(e.answers) == 0 &&
		e.questionCount() == 1
}

// BeginEdit enters edit mode. The UI disables all other interaction until
// SaveEdit or CancelEdit.
func (e *Engine) BeginEdit() bool {
	if !e.CanEdit() || e.editing {
		return false
	}
	e.editing = true
	return true
}

// CancelEdit leaves edit mode without changes.
func (e *Engine) CancelEdit() {
	e.editing = false
}

// SaveEdit replaces the initial query, discards everything after the (now
// edited) opening message, and re-enters the questioning flow under a fresh
// conversation id so any in-flight settlement for the old id is discarded.
// Empty input is ignored and leaves edit mode open.
func (e *Engine) SaveEdit(query string) (id string, ok bool) {
	query = strings.TrimSpace(query)
	if !e.editing || query == "" {
		return "", false
	}
	e.id = uuid.NewString()
	e.initialQuery = query
	e.answers = nil
	e.messages = []DisplayMessage{UserMessage(query)}
	e.stage = StageQuestioning
	e.editing = false
	return e.id, true
}

// LoadHistorical restores a stored conversation into the view, bypassing
// the normal transitions. Interaction is disabled; only Restart applies.
func (e *Engine) LoadHistorical(c Conversation) {
	e.id = c.ID
	e.initialQuery = c.InitialQuery
	e.answers = append([]Answer(nil), c.Answers...)
	e.messages = append([]DisplayMessage(nil), c.Messages...)
	e.stage = StageComplete
	e.historical = true
	e.editing = false
}

// Restart clears all conversation-scoped state unconditionally and returns
// to StageInitial.
func (e *Engine) Restart() {
	*e = Engine{stage: StageInitial}
}

// Snapshot builds the persisted record for the conversation as it stands.
func (e *Engine) Snapshot() Conversation {
	return Conversation{
		ID:           e.id,
		Timestamp:    time.Now().UnixMilli(),
		InitialQuery: e.initialQuery,
		Answers:      append([]Answer(nil), e.answers...),
		Messages:     append([]DisplayMessage(nil), e.messages...),
	}
}

func (e *Engine) questionCount() int {
	n := 0
	for _, m := range e.messages {
		if m.Kind == KindQuestion {
			n++
		}
	}
	return n
}
